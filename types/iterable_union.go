package types

import (
	"github.com/benbjohnson/immutable"
	"slices"
)

// IterableUnionType is a collection of items of ItemType, or one of Members.
// For example, `int[]|string|null`.
//
// Members are never collections nor unions themselves: nesting is flattened
// by Combine before an IterableUnionType is built.
// An IterableUnionType is immutable, and every transformation returns a new one.
type IterableUnionType struct {
	itemType Type
	members  *immutable.List[Type]
}

// NewIterableUnionType validates members and stores them in canonical order.
// It fails with a ConstructionError if there are no members, or if any
// member is a collection or a union
func NewIterableUnionType(itemType Type, members ...Type) (*IterableUnionType, error) {
	if itemType == nil {
		return nil, newConstructionError("IterableUnionType", nil, members)
	}
	if err := validateMembers("IterableUnionType", itemType, members, 1); err != nil {
		return nil, err
	}
	return &IterableUnionType{
		itemType: itemType,
		members:  immutable.NewList(sortTypes(members)...),
	}, nil
}

// MustNewIterableUnionType is like NewIterableUnionType, but panics
// when members do not satisfy the invariants of the union
func MustNewIterableUnionType(itemType Type, members ...Type) *IterableUnionType {
	t, err := NewIterableUnionType(itemType, members...)
	if err != nil {
		logger.Error("invalid union construction", "error", err)
		panic(err)
	}
	return t
}

func (t *IterableUnionType) ItemType() Type  { return t.itemType }
func (t *IterableUnionType) Members() []Type { return listToSlice(t.members) }

func (t *IterableUnionType) Class() (string, bool) { return sharedClass(t.Members()) }

func (t *IterableUnionType) ReferencedClasses() []string {
	return referencedClasses(append(t.Members(), t.itemType))
}

func (t *IterableUnionType) CombineWith(other Type) Type {
	return Combine(t, other)
}

// Accepts checks, in order:
//   - mixed is always accepted
//   - if the shared union check rejects candidate, so do we
//   - a collection candidate is accepted if its items are accepted by ItemType,
//     regardless of Members
//   - if the policy in opts says so, the check is skipped and candidate accepted
//   - otherwise candidate must be accepted by at least one of Members
func (t *IterableUnionType) Accepts(candidate Type, opts AcceptOpts) bool {
	if isMixed(candidate) {
		return true
	}

	accepts, decided := unionAccepts(t, candidate, opts)
	if decided && !accepts {
		return false
	}

	if iterable, ok := candidate.(IterableType); ok {
		return t.itemType.Accepts(iterable.ItemType(), opts)
	}

	if opts.shouldSkipUnionTypeAccepts(t) {
		return true
	}

	return slices.ContainsFunc(t.Members(), func(member Type) bool {
		return member.Accepts(candidate, opts)
	})
}

func (t *IterableUnionType) Describe() string {
	return describeItem(t.itemType) + "[]|" + describeTypes(t.Members())
}

func (t *IterableUnionType) Hash() uint64 { return hashDescription(t) }

func (t *IterableUnionType) CanAccessProperties() bool { return canAccessProperties(t.Members()) }
func (t *IterableUnionType) CanCallMethods() bool      { return canCallMethods(t.Members()) }

// IsDocumentableNatively is false as there is no native syntax for such a union
func (t *IterableUnionType) IsDocumentableNatively() bool { return false }

func (t *IterableUnionType) ResolveStatic(className string) Type {
	itemType := t.itemType
	if resolvable, ok := itemType.(StaticResolvable); ok {
		itemType = resolvable.ResolveStatic(className)
	}
	return MustNewIterableUnionType(itemType, resolveStaticAll(className, t.Members())...)
}

func (t *IterableUnionType) ChangeBaseClass(className string) Type {
	itemType := t.itemType
	if resolvable, ok := itemType.(StaticResolvable); ok {
		itemType = resolvable.ChangeBaseClass(className)
	}
	return MustNewIterableUnionType(itemType, changeBaseClassAll(className, t.Members())...)
}
