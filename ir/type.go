package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		NumberType: "Number",
		StringType: "String",
		BoolType:   "Bool",
		ObjectType: "Object",
		ArrayType:  "Array",
	}[t]
	if !ok {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return s
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

func Types() []Type {
	return []Type{NullType, NumberType, StringType, BoolType, ObjectType, ArrayType}
}

// ParseType maps a lowercase type name to a Type.  "int" and "float"
// are not Types; they are refinements of "number" distinguished by
// Node.TypeName.
func ParseType(v string) (Type, error) {
	t, ok := map[string]Type{
		"null":   NullType,
		"number": NumberType,
		"string": StringType,
		"bool":   BoolType,
		"object": ObjectType,
		"array":  ArrayType,
	}[v]
	if !ok {
		return 0, fmt.Errorf("unknown type name %q", v)
	}
	return t, nil
}
