package types

import (
	"github.com/benbjohnson/immutable"
	"slices"
)

// CommonUnionType is a union of at least two types, none of which are collections or unions.
//
// Construct with NewCommonUnionType, or with Combine
type CommonUnionType struct {
	members *immutable.List[Type]
}

func NewCommonUnionType(members ...Type) (*CommonUnionType, error) {
	if err := validateMembers("CommonUnionType", nil, members, 2); err != nil {
		return nil, err
	}
	return &CommonUnionType{members: immutable.NewList(sortTypes(members)...)}, nil
}

// MustNewCommonUnionType is like NewCommonUnionType, but panics
// when members do not satisfy the invariants of the union
func MustNewCommonUnionType(members ...Type) *CommonUnionType {
	t, err := NewCommonUnionType(members...)
	if err != nil {
		logger.Error("invalid union construction", "error", err)
		panic(err)
	}
	return t
}

func (t *CommonUnionType) Members() []Type { return listToSlice(t.members) }

func (t *CommonUnionType) Describe() string             { return describeTypes(t.Members()) }
func (t *CommonUnionType) Hash() uint64                 { return hashDescription(t) }
func (t *CommonUnionType) Class() (string, bool)        { return sharedClass(t.Members()) }
func (t *CommonUnionType) ReferencedClasses() []string  { return referencedClasses(t.Members()) }
func (t *CommonUnionType) CombineWith(other Type) Type  { return Combine(t, other) }
func (t *CommonUnionType) CanAccessProperties() bool    { return canAccessProperties(t.Members()) }
func (t *CommonUnionType) CanCallMethods() bool         { return canCallMethods(t.Members()) }
func (t *CommonUnionType) IsDocumentableNatively() bool { return false }

func (t *CommonUnionType) Accepts(candidate Type, opts AcceptOpts) bool {
	if isMixed(candidate) {
		return true
	}
	if accepts, decided := unionAccepts(t, candidate, opts); decided {
		return accepts
	}
	if opts.shouldSkipUnionTypeAccepts(t) {
		return true
	}
	return slices.ContainsFunc(t.Members(), func(member Type) bool {
		return member.Accepts(candidate, opts)
	})
}

func (t *CommonUnionType) ResolveStatic(className string) Type {
	return &CommonUnionType{members: immutable.NewList(sortTypes(resolveStaticAll(className, t.Members()))...)}
}

func (t *CommonUnionType) ChangeBaseClass(className string) Type {
	return &CommonUnionType{members: immutable.NewList(sortTypes(changeBaseClassAll(className, t.Members()))...)}
}

func listToSlice[A any](list *immutable.List[A]) []A {
	slice := make([]A, 0, list.Len())
	itr := list.Iterator()
	for !itr.Done() {
		_, value := itr.Next()
		slice = append(slice, value)
	}
	return slice
}
