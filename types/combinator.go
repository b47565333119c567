package types

import (
	"github.com/cottand/typealg/internal/log"
	"github.com/hashicorp/go-set/v3"
	"slices"
)

var combinatorLogger = log.DefaultLogger.With("section", "combinator")

// Combine returns the canonical type of a value which is either of type a or of type b.
//
// The result is:
//   - mixed, if either side contains mixed
//   - a single type, if both sides collapse into one (int|int is int, true|false is bool)
//   - an ArrayType, if all alternatives are collections (int[]|string[] is (int|string)[])
//   - a CommonUnionType, if no alternative is a collection
//   - an IterableUnionType otherwise
//
// Unions on either side are flattened before combining, so the result only depends
// on the set of alternatives and not on how they were grouped.
func Combine(a, b Type) Type {
	leaves := flattened{members: set.NewHashSet[Type, uint64](4)}
	leaves.add(a)
	leaves.add(b)

	result := leaves.canonical()
	combinatorLogger.Debug("combined types", "lhs", a.Describe(), "rhs", b.Describe(), "result", result.Describe())
	return result
}

// CombineAll combines every type in ts from left to right.
// It panics if ts is empty, as there is no type for no alternatives
func CombineAll(ts ...Type) Type {
	if len(ts) == 0 {
		panic("cannot combine an empty list of types")
	}
	acc := ts[0]
	for _, t := range ts[1:] {
		acc = Combine(acc, t)
	}
	return acc
}

// flattened accumulates the alternatives of several types, one level deep
type flattened struct {
	// itemTypes are the item types of every collection seen
	itemTypes    []Type
	// members are the non-collection alternatives,
	// and memberOrder the same alternatives in insertion order
	members      *set.HashSet[Type, uint64]
	memberOrder  []Type
	containsTop  bool
	booleanFlags struct{ seenTrue, seenFalse, seenBool bool }
}

func (f *flattened) add(t Type) {
	switch t := t.(type) {
	case MixedType:
		f.containsTop = true
	case *IterableUnionType:
		f.itemTypes = append(f.itemTypes, t.ItemType())
		for _, member := range t.Members() {
			f.addMember(member)
		}
	case UnionType:
		for _, member := range t.Members() {
			f.add(member)
		}
	case IterableType:
		f.itemTypes = append(f.itemTypes, t.ItemType())
	default:
		f.addMember(t)
	}
}

func (f *flattened) addMember(t Type) {
	switch t := t.(type) {
	case MixedType:
		f.containsTop = true
		return
	case BooleanType:
		f.booleanFlags.seenBool = true
	case ConstantBooleanType:
		if t.Value {
			f.booleanFlags.seenTrue = true
		} else {
			f.booleanFlags.seenFalse = true
		}
	}
	if f.members.Insert(t) {
		f.memberOrder = append(f.memberOrder, t)
	}
}

// collapseBooleans replaces constant booleans with bool when both are present,
// or when bool is already a member
func (f *flattened) collapseBooleans() []Type {
	flags := f.booleanFlags
	if !flags.seenBool && !(flags.seenTrue && flags.seenFalse) {
		return f.memberOrder
	}
	members := slices.DeleteFunc(slices.Clone(f.memberOrder), func(t Type) bool {
		_, isConst := t.(ConstantBooleanType)
		_, isBool := t.(BooleanType)
		return isConst || isBool
	})
	return append(members, BooleanType{})
}

func (f *flattened) canonical() Type {
	if f.containsTop {
		return MixedType{}
	}
	members := f.collapseBooleans()

	if len(f.itemTypes) == 0 {
		if len(members) == 1 {
			return members[0]
		}
		return MustNewCommonUnionType(members...)
	}

	itemType := CombineAll(f.itemTypes...)
	if len(members) == 0 {
		return ArrayType{Item: itemType}
	}
	return MustNewIterableUnionType(itemType, members...)
}

// UnionAcceptsPolicy relaxes acceptance checks against unions which cannot be
// written natively and have more than Limit members (Limit+1 if one of them is null)
type UnionAcceptsPolicy struct {
	Enabled bool
	// Limit defaults to 1 when zero
	Limit int
}

var _ Policy = UnionAcceptsPolicy{}

func (p UnionAcceptsPolicy) ShouldSkipUnionTypeAccepts(union UnionType) bool {
	if !p.Enabled || union.IsDocumentableNatively() {
		return false
	}
	limit := p.Limit
	if limit == 0 {
		limit = 1
	}
	members := union.Members()
	if slices.ContainsFunc(members, func(t Type) bool {
		_, isNull := t.(NullType)
		return isNull
	}) {
		limit++
	}
	return len(members) > limit
}
