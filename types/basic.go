package types

// scalar types, none of which reference classes or support property access

type scalar struct{}

func (scalar) Class() (string, bool)        { return "", false }
func (scalar) ReferencedClasses() []string  { return nil }
func (scalar) CanAccessProperties() bool    { return false }
func (scalar) CanCallMethods() bool         { return false }
func (scalar) IsDocumentableNatively() bool { return true }

// MixedType is the top type
type MixedType struct{ scalar }

func (t MixedType) Describe() string              { return "mixed" }
func (t MixedType) Hash() uint64                  { return hashDescription(t) }
func (t MixedType) Accepts(Type, AcceptOpts) bool { return true }
func (t MixedType) CombineWith(other Type) Type   { return Combine(t, other) }
func (t MixedType) CanAccessProperties() bool     { return true }
func (t MixedType) CanCallMethods() bool          { return true }
func (t MixedType) IsDocumentableNatively() bool  { return false }

type NullType struct{ scalar }

func (t NullType) Describe() string            { return "null" }
func (t NullType) Hash() uint64                { return hashDescription(t) }
func (t NullType) CombineWith(other Type) Type { return Combine(t, other) }
func (t NullType) Accepts(candidate Type, opts AcceptOpts) bool {
	return acceptsScalar(t, candidate, opts, func(c Type) bool {
		_, ok := c.(NullType)
		return ok
	})
}

type IntegerType struct{ scalar }

func (t IntegerType) Describe() string            { return "int" }
func (t IntegerType) Hash() uint64                { return hashDescription(t) }
func (t IntegerType) CombineWith(other Type) Type { return Combine(t, other) }
func (t IntegerType) Accepts(candidate Type, opts AcceptOpts) bool {
	return acceptsScalar(t, candidate, opts, func(c Type) bool {
		_, ok := c.(IntegerType)
		return ok
	})
}

// FloatType also accepts int, as integers are implicitly widened
type FloatType struct{ scalar }

func (t FloatType) Describe() string            { return "float" }
func (t FloatType) Hash() uint64                { return hashDescription(t) }
func (t FloatType) CombineWith(other Type) Type { return Combine(t, other) }
func (t FloatType) Accepts(candidate Type, opts AcceptOpts) bool {
	return acceptsScalar(t, candidate, opts, func(c Type) bool {
		switch c.(type) {
		case FloatType, IntegerType:
			return true
		}
		return false
	})
}

type StringType struct{ scalar }

func (t StringType) Describe() string            { return "string" }
func (t StringType) Hash() uint64                { return hashDescription(t) }
func (t StringType) CombineWith(other Type) Type { return Combine(t, other) }
func (t StringType) Accepts(candidate Type, opts AcceptOpts) bool {
	return acceptsScalar(t, candidate, opts, func(c Type) bool {
		_, ok := c.(StringType)
		return ok
	})
}

type BooleanType struct{ scalar }

func (t BooleanType) Describe() string            { return "bool" }
func (t BooleanType) Hash() uint64                { return hashDescription(t) }
func (t BooleanType) CombineWith(other Type) Type { return Combine(t, other) }
func (t BooleanType) Accepts(candidate Type, opts AcceptOpts) bool {
	return acceptsScalar(t, candidate, opts, func(c Type) bool {
		switch c.(type) {
		case BooleanType, ConstantBooleanType:
			return true
		}
		return false
	})
}

// ConstantBooleanType is either true or false.
// Combining both yields BooleanType
type ConstantBooleanType struct {
	scalar
	Value bool
}

func (t ConstantBooleanType) Describe() string {
	if t.Value {
		return "true"
	}
	return "false"
}
func (t ConstantBooleanType) Hash() uint64                 { return hashDescription(t) }
func (t ConstantBooleanType) CombineWith(other Type) Type  { return Combine(t, other) }
func (t ConstantBooleanType) IsDocumentableNatively() bool { return false }
func (t ConstantBooleanType) Accepts(candidate Type, opts AcceptOpts) bool {
	return acceptsScalar(t, candidate, opts, func(c Type) bool {
		asConst, ok := c.(ConstantBooleanType)
		return ok && asConst.Value == t.Value
	})
}

// CallableType accepts strings (function names) and closures
type CallableType struct{ scalar }

func (t CallableType) Describe() string            { return "callable" }
func (t CallableType) Hash() uint64                { return hashDescription(t) }
func (t CallableType) CombineWith(other Type) Type { return Combine(t, other) }
func (t CallableType) Accepts(candidate Type, opts AcceptOpts) bool {
	return acceptsScalar(t, candidate, opts, func(c Type) bool {
		switch c := c.(type) {
		case CallableType, StringType:
			return true
		case ObjectType:
			return c.ClassName == closureClass
		}
		return false
	})
}

const closureClass = "Closure"

// acceptsScalar holds the rules shared by all non-union types:
// mixed is always accepted and unions are accepted member by member
func acceptsScalar(t Type, candidate Type, opts AcceptOpts, accepts func(Type) bool) bool {
	if isMixed(candidate) {
		return true
	}
	if union, ok := candidate.(UnionType); ok {
		return acceptsAll(t, union, opts)
	}
	return accepts(candidate)
}
