package types

import (
	"github.com/cottand/typealg/internal/log"
	"hash/fnv"
)

var logger = log.DefaultLogger.With("section", "types")

// Type is implemented by every variant of the type system.
//
// Types are immutable values: every operation which produces a different
// type allocates a new one, so a Type can be shared between goroutines freely.
type Type interface {
	// Describe is the canonical textual form, used for display and ordering
	Describe() string
	// Hash is derived from Describe, see Equal
	Hash() uint64
	// Class returns the class a value of this type is an instance of, if there is exactly one
	Class() (string, bool)
	ReferencedClasses() []string
	// Accepts reports whether a value of type candidate can be used where this type is expected
	Accepts(candidate Type, opts AcceptOpts) bool
	CombineWith(other Type) Type
	CanAccessProperties() bool
	CanCallMethods() bool
	IsDocumentableNatively() bool
}

// IterableType is implemented by collection types, whose items all have ItemType
type IterableType interface {
	Type
	ItemType() Type
}

// UnionType is implemented by types which are exactly one of several alternatives
type UnionType interface {
	Type
	// Members returns the alternatives in canonical order.
	// For an IterableUnionType, the collection branch is not part of Members
	Members() []Type
}

// StaticResolvable is implemented by types which may contain a self-type placeholder
// (static or $this), which needs a concrete class in order to be resolved.
type StaticResolvable interface {
	Type
	// ResolveStatic replaces placeholders with the concrete class className
	ResolveStatic(className string) Type
	// ChangeBaseClass keeps placeholders, but anchors them to className,
	// as needed when a method is inherited by a subclass
	ChangeBaseClass(className string) Type
}

// Policy is analyser-wide configuration consulted during acceptance checks.
// It must not change once analysis has started.
type Policy interface {
	ShouldSkipUnionTypeAccepts(union UnionType) bool
}

// AcceptOpts is threaded through every Accepts call
type AcceptOpts struct {
	// Policy may be nil, in which case acceptance is never relaxed
	Policy Policy
}

func (o AcceptOpts) shouldSkipUnionTypeAccepts(union UnionType) bool {
	return o.Policy != nil && o.Policy.ShouldSkipUnionTypeAccepts(union)
}

var (
	_ Type = MixedType{}
	_ Type = NullType{}
	_ Type = IntegerType{}
	_ Type = FloatType{}
	_ Type = StringType{}
	_ Type = BooleanType{}
	_ Type = ConstantBooleanType{}
	_ Type = CallableType{}
	_ Type = ObjectWithoutClassType{}
	_ Type = ObjectType{}

	_ StaticResolvable = StaticType{}
	_ StaticResolvable = ThisType{}

	_ IterableType     = ArrayType{}
	_ StaticResolvable = ArrayType{}

	_ UnionType        = (*CommonUnionType)(nil)
	_ StaticResolvable = (*CommonUnionType)(nil)

	_ UnionType        = (*IterableUnionType)(nil)
	_ IterableType     = (*IterableUnionType)(nil)
	_ StaticResolvable = (*IterableUnionType)(nil)
)

// Equal can be used to compare Type instances for equality.
// Two types are equal when their canonical descriptions are.
func Equal(this, other Type) bool {
	return this.Hash() == other.Hash()
}

func hashDescription(t Type) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(t.Describe()))
	return h.Sum64()
}

func isMixed(t Type) bool {
	_, ok := t.(MixedType)
	return ok
}

// acceptsAll is how non-union types accept a union candidate: every
// alternative of the candidate must be accepted on its own
func acceptsAll(t Type, candidate UnionType, opts AcceptOpts) bool {
	if iterable, ok := candidate.(IterableType); ok {
		if !t.Accepts(ArrayType{Item: iterable.ItemType()}, opts) {
			return false
		}
	}
	for _, member := range candidate.Members() {
		if !t.Accepts(member, opts) {
			return false
		}
	}
	return true
}
