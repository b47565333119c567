package types

// ArrayType is a collection whose items all have type Item
type ArrayType struct {
	Item Type
}

func (t ArrayType) ItemType() Type               { return t.Item }
func (t ArrayType) Describe() string             { return describeItem(t.Item) + "[]" }
func (t ArrayType) Hash() uint64                 { return hashDescription(t) }
func (t ArrayType) Class() (string, bool)        { return "", false }
func (t ArrayType) CombineWith(other Type) Type  { return Combine(t, other) }
func (t ArrayType) CanAccessProperties() bool    { return false }
func (t ArrayType) CanCallMethods() bool         { return false }
func (t ArrayType) ReferencedClasses() []string  { return t.Item.ReferencedClasses() }
func (t ArrayType) IsDocumentableNatively() bool { return true }

// Accepts is covariant in the item type
func (t ArrayType) Accepts(candidate Type, opts AcceptOpts) bool {
	if isMixed(candidate) {
		return true
	}
	switch c := candidate.(type) {
	case UnionType:
		// this includes IterableUnionType, whose scalar members are never accepted
		return acceptsAll(t, c, opts)
	case IterableType:
		return t.Item.Accepts(c.ItemType(), opts)
	}
	return false
}

func (t ArrayType) ResolveStatic(className string) Type {
	if item, ok := t.Item.(StaticResolvable); ok {
		return ArrayType{Item: item.ResolveStatic(className)}
	}
	return t
}

func (t ArrayType) ChangeBaseClass(className string) Type {
	if item, ok := t.Item.(StaticResolvable); ok {
		return ArrayType{Item: item.ChangeBaseClass(className)}
	}
	return t
}

// describeItem parenthesises unions so that `(int|string)[]` is not read as `int|string[]`
func describeItem(item Type) string {
	if _, ok := item.(UnionType); ok {
		return "(" + item.Describe() + ")"
	}
	return item.Describe()
}
