package types

import "fmt"

type objectBase struct{}

func (objectBase) CanAccessProperties() bool    { return true }
func (objectBase) CanCallMethods() bool         { return true }
func (objectBase) IsDocumentableNatively() bool { return true }

// ObjectWithoutClassType is any object, regardless of its class
type ObjectWithoutClassType struct{ objectBase }

func (t ObjectWithoutClassType) Describe() string            { return "object" }
func (t ObjectWithoutClassType) Hash() uint64                { return hashDescription(t) }
func (t ObjectWithoutClassType) Class() (string, bool)       { return "", false }
func (t ObjectWithoutClassType) ReferencedClasses() []string { return nil }
func (t ObjectWithoutClassType) CombineWith(other Type) Type { return Combine(t, other) }
func (t ObjectWithoutClassType) Accepts(candidate Type, opts AcceptOpts) bool {
	return acceptsScalar(t, candidate, opts, func(c Type) bool {
		_, hasClass := c.Class()
		_, isObject := c.(ObjectWithoutClassType)
		return hasClass || isObject
	})
}

// ObjectType is an instance of a concrete class.
//
// Class hierarchies are not known at this level, so an ObjectType
// only accepts instances of exactly the same class
type ObjectType struct {
	objectBase
	ClassName string
}

func (t ObjectType) Describe() string            { return t.ClassName }
func (t ObjectType) Hash() uint64                { return hashDescription(t) }
func (t ObjectType) Class() (string, bool)       { return t.ClassName, true }
func (t ObjectType) ReferencedClasses() []string { return []string{t.ClassName} }
func (t ObjectType) CombineWith(other Type) Type { return Combine(t, other) }
func (t ObjectType) Accepts(candidate Type, opts AcceptOpts) bool {
	return acceptsScalar(t, candidate, opts, func(c Type) bool {
		switch c.(type) {
		case ObjectType, StaticType, ThisType:
			class, _ := c.Class()
			return class == t.ClassName
		}
		return false
	})
}

// StaticType is the self-type placeholder `static`: the class of the call site,
// known so far only to be BaseClass or one of its subclasses
type StaticType struct {
	objectBase
	BaseClass string
}

func (t StaticType) Describe() string             { return fmt.Sprintf("static(%s)", t.BaseClass) }
func (t StaticType) Hash() uint64                 { return hashDescription(t) }
func (t StaticType) Class() (string, bool)        { return t.BaseClass, true }
func (t StaticType) ReferencedClasses() []string  { return []string{t.BaseClass} }
func (t StaticType) CombineWith(other Type) Type  { return Combine(t, other) }
func (t StaticType) IsDocumentableNatively() bool { return false }
func (t StaticType) Accepts(candidate Type, opts AcceptOpts) bool {
	return acceptsStatic(t, candidate, opts)
}

func (t StaticType) ResolveStatic(className string) Type {
	return ObjectType{ClassName: className}
}

func (t StaticType) ChangeBaseClass(className string) Type {
	return StaticType{BaseClass: className}
}

// ThisType is the `$this` placeholder. It resolves like StaticType,
// but stays a ThisType when re-anchored to another base class
type ThisType struct {
	objectBase
	BaseClass string
}

func (t ThisType) Describe() string             { return fmt.Sprintf("$this(%s)", t.BaseClass) }
func (t ThisType) Hash() uint64                 { return hashDescription(t) }
func (t ThisType) Class() (string, bool)        { return t.BaseClass, true }
func (t ThisType) ReferencedClasses() []string  { return []string{t.BaseClass} }
func (t ThisType) CombineWith(other Type) Type  { return Combine(t, other) }
func (t ThisType) IsDocumentableNatively() bool { return false }
func (t ThisType) Accepts(candidate Type, opts AcceptOpts) bool {
	return acceptsStatic(t, candidate, opts)
}

func (t ThisType) ResolveStatic(className string) Type {
	return ObjectType{ClassName: className}
}

func (t ThisType) ChangeBaseClass(className string) Type {
	return ThisType{BaseClass: className}
}

// acceptsStatic accepts any object of the placeholder's base class
func acceptsStatic(t Type, candidate Type, opts AcceptOpts) bool {
	class, _ := t.Class()
	return acceptsScalar(t, candidate, opts, func(c Type) bool {
		switch c.(type) {
		case ObjectType, StaticType, ThisType:
			candidateClass, _ := c.Class()
			return candidateClass == class
		}
		return false
	})
}
