package types

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"testing"
)

func TestAccepts(t *testing.T) {
	foo := ObjectType{ClassName: "Foo"}
	bar := ObjectType{ClassName: "Bar"}

	testCases := []struct {
		typ       Type
		candidate Type
		expected  bool
	}{
		{IntegerType{}, IntegerType{}, true},
		{IntegerType{}, FloatType{}, false},
		{IntegerType{}, MixedType{}, true},
		{FloatType{}, IntegerType{}, true},
		{StringType{}, NullType{}, false},
		{NullType{}, NullType{}, true},
		{BooleanType{}, ConstantBooleanType{Value: true}, true},
		{ConstantBooleanType{Value: true}, ConstantBooleanType{Value: false}, false},
		{ConstantBooleanType{Value: false}, BooleanType{}, false},
		{CallableType{}, StringType{}, true},
		{CallableType{}, ObjectType{ClassName: "Closure"}, true},
		{CallableType{}, foo, false},
		{MixedType{}, ArrayType{Item: foo}, true},
		{ObjectWithoutClassType{}, foo, true},
		{ObjectWithoutClassType{}, StaticType{BaseClass: "Foo"}, true},
		{ObjectWithoutClassType{}, IntegerType{}, false},
		{foo, foo, true},
		{foo, bar, false},
		{foo, StaticType{BaseClass: "Foo"}, true},
		{foo, ThisType{BaseClass: "Bar"}, false},
		{StaticType{BaseClass: "Foo"}, foo, true},
		{ThisType{BaseClass: "Foo"}, bar, false},
		{FloatType{}, MustNewCommonUnionType(IntegerType{}, FloatType{}), true},
		{IntegerType{}, MustNewCommonUnionType(IntegerType{}, StringType{}), false},
		{ArrayType{Item: FloatType{}}, ArrayType{Item: IntegerType{}}, true},
		{ArrayType{Item: IntegerType{}}, ArrayType{Item: FloatType{}}, false},
		{ArrayType{Item: IntegerType{}}, IntegerType{}, false},
		{ArrayType{Item: IntegerType{}}, MustNewIterableUnionType(IntegerType{}, StringType{}), false},
		{MustNewCommonUnionType(IntegerType{}, StringType{}), MustNewCommonUnionType(StringType{}, IntegerType{}), true},
		{MustNewCommonUnionType(IntegerType{}, StringType{}), FloatType{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.typ.Describe()+" accepts "+tc.candidate.Describe(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.typ.Accepts(tc.candidate, AcceptOpts{}))
		})
	}
}

func TestCommonUnionAcceptsWithPolicy(t *testing.T) {
	union := MustNewCommonUnionType(IntegerType{}, StringType{})
	relaxed := AcceptOpts{Policy: UnionAcceptsPolicy{Enabled: true}}

	assert.False(t, union.Accepts(FloatType{}, AcceptOpts{}))
	assert.True(t, union.Accepts(FloatType{}, relaxed))
	assert.False(t, union.Accepts(MustNewCommonUnionType(FloatType{}, NullType{}), AcceptOpts{}))
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		typ      Type
		expected string
	}{
		{MixedType{}, "mixed"},
		{ConstantBooleanType{Value: false}, "false"},
		{ObjectWithoutClassType{}, "object"},
		{ObjectType{ClassName: `App\Model\User`}, `App\Model\User`},
		{StaticType{BaseClass: "Foo"}, "static(Foo)"},
		{ThisType{BaseClass: "Foo"}, "$this(Foo)"},
		{ArrayType{Item: ArrayType{Item: CallableType{}}}, "callable[][]"},
		{ArrayType{Item: MustNewCommonUnionType(StringType{}, IntegerType{})}, "(int|string)[]"},
		{MustNewCommonUnionType(StringType{}, NullType{}, BooleanType{}), "bool|null|string"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.typ.Describe())
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(MustNewCommonUnionType(IntegerType{}, NullType{}), MustNewCommonUnionType(NullType{}, IntegerType{})))
	assert.True(t, Equal(ArrayType{Item: IntegerType{}}, ArrayType{Item: IntegerType{}}))
	assert.False(t, Equal(StaticType{BaseClass: "Foo"}, ObjectType{ClassName: "Foo"}))
}

func TestPlaceholderResolution(t *testing.T) {
	static := StaticType{BaseClass: "Base"}
	this := ThisType{BaseClass: "Base"}

	assert.Equal(t, ObjectType{ClassName: "Child"}, static.ResolveStatic("Child"))
	assert.Equal(t, ObjectType{ClassName: "Child"}, this.ResolveStatic("Child"))
	assert.Equal(t, StaticType{BaseClass: "Child"}, static.ChangeBaseClass("Child"))
	assert.Equal(t, ThisType{BaseClass: "Child"}, this.ChangeBaseClass("Child"))

	noPlaceholder := ArrayType{Item: IntegerType{}}
	assert.Equal(t, noPlaceholder, noPlaceholder.ResolveStatic("Child"))

	union := MustNewCommonUnionType(static, NullType{})
	assert.Equal(t, "Child|null", union.ResolveStatic("Child").Describe())
	assert.Equal(t, "null|static(Child)", union.ChangeBaseClass("Child").Describe())
	assert.Equal(t, "null|static(Base)", union.Describe())
}

func TestNewCommonUnionTypeRejectsInvalidMembers(t *testing.T) {
	testCases := []struct {
		name    string
		members []Type
	}{
		{"no members", nil},
		{"single member", []Type{IntegerType{}}},
		{"collection member", []Type{IntegerType{}, ArrayType{Item: IntegerType{}}}},
		{"union member", []Type{IntegerType{}, MustNewCommonUnionType(StringType{}, NullType{})}},
		{"nil member", []Type{IntegerType{}, nil}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCommonUnionType(tc.members...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrContractViolation)
			assert.Panics(t, func() {
				MustNewCommonUnionType(tc.members...)
			})
		})
	}
}

func TestConstructionErrorLogValue(t *testing.T) {
	_, err := NewIterableUnionType(IntegerType{}, ArrayType{Item: StringType{}}, NullType{})
	require.Error(t, err)

	var constructionErr *ConstructionError
	require.True(t, errors.As(err, &constructionErr))

	value := constructionErr.LogValue()
	require.Equal(t, slog.KindGroup, value.Kind())
	attrs := map[string]string{}
	for _, attr := range value.Group() {
		attrs[attr.Key] = attr.Value.String()
	}
	assert.Equal(t, map[string]string{
		"variant":  "IterableUnionType",
		"members":  "string[]|null",
		"itemType": "int",
	}, attrs)
}
