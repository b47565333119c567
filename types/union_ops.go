package types

import (
	"cmp"
	"github.com/cottand/typealg/util"
	"github.com/xtgo/set"
	"slices"
	"sort"
	"strings"
)

// functions shared by every union variant, operating over its members

// sortTypes returns a copy of types in canonical order: by description,
// and by input order for types with the same description
func sortTypes(types []Type) []Type {
	sorted := slices.Clone(types)
	slices.SortStableFunc(sorted, func(a, b Type) int {
		return cmp.Compare(a.Describe(), b.Describe())
	})
	return sorted
}

// sharedClass returns the class of types, if the members that have a class all agree on it.
// Members without a class (like null) are ignored
func sharedClass(types []Type) (string, bool) {
	shared := ""
	for _, t := range types {
		class, ok := t.Class()
		if !ok {
			continue
		}
		if shared != "" && shared != class {
			return "", false
		}
		shared = class
	}
	return shared, shared != ""
}

// referencedClasses returns the sorted classes referenced by any of types, without duplicates
func referencedClasses(types []Type) []string {
	var classes []string
	for _, t := range types {
		classes = append(classes, t.ReferencedClasses()...)
	}
	sort.Strings(classes)
	return classes[:set.Uniq(sort.StringSlice(classes))]
}

func describeTypes(types []Type) string {
	return strings.Join(util.MapSlice(types, Type.Describe), "|")
}

// unionAccepts is the check every union does before looking at individual members.
// When decided is false, there is no shared verdict and the union must apply its own rules.
func unionAccepts(union UnionType, candidate Type, opts AcceptOpts) (accepts bool, decided bool) {
	if candidate.Describe() == union.Describe() {
		return true, true
	}
	candidateUnion, ok := candidate.(UnionType)
	if !ok {
		return false, false
	}
	if iterable, ok := candidateUnion.(IterableType); ok {
		if !union.Accepts(ArrayType{Item: iterable.ItemType()}, opts) {
			return false, true
		}
	}
	for _, member := range candidateUnion.Members() {
		if !union.Accepts(member, opts) {
			return false, true
		}
	}
	return true, true
}

// canAccessProperties requires every member to support property access,
// as a value of the union may be any of them
func canAccessProperties(types []Type) bool {
	return !slices.ContainsFunc(types, func(t Type) bool { return !t.CanAccessProperties() })
}

func canCallMethods(types []Type) bool {
	return !slices.ContainsFunc(types, func(t Type) bool { return !t.CanCallMethods() })
}

func resolveStaticAll(className string, types []Type) []Type {
	return util.MapSlice(types, func(t Type) Type {
		if resolvable, ok := t.(StaticResolvable); ok {
			return resolvable.ResolveStatic(className)
		}
		return t
	})
}

func changeBaseClassAll(className string, types []Type) []Type {
	return util.MapSlice(types, func(t Type) Type {
		if resolvable, ok := t.(StaticResolvable); ok {
			return resolvable.ChangeBaseClass(className)
		}
		return t
	})
}
