// Package descriptor models the entities ts3gen generates.
//
// Descriptors are plain immutable values. They are assembled through the
// copy-with-override builders in this package so that families of similar
// properties can share a prototype without sharing state.
package descriptor

import "fmt"

// Kind is the semantic kind of a property type.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat64
	KindString
	KindDuration
	KindTimestamp
	KindPermission
	KindEnum
	KindEntity
	KindNamed
	KindOptional
	KindMap
	KindSlice
)

var kindNames = map[Kind]string{
	KindInvalid:    "invalid",
	KindBool:       "bool",
	KindInt8:       "int8",
	KindInt16:      "int16",
	KindInt32:      "int32",
	KindInt64:      "int64",
	KindUint8:      "uint8",
	KindUint16:     "uint16",
	KindUint32:     "uint32",
	KindUint64:     "uint64",
	KindFloat64:    "float64",
	KindString:     "string",
	KindDuration:   "duration",
	KindTimestamp:  "timestamp",
	KindPermission: "permission",
	KindEnum:       "enum",
	KindEntity:     "entity",
	KindNamed:      "named",
	KindOptional:   "optional",
	KindMap:        "map",
	KindSlice:      "slice",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Type is the semantic type of a property. Name is set for enum, entity and
// named kinds; Key and Elem for the container kinds.
type Type struct {
	Kind Kind
	Name string
	Key  *Type
	Elem *Type
}

func Bool() Type       { return Type{Kind: KindBool} }
func Int8() Type       { return Type{Kind: KindInt8} }
func Int16() Type      { return Type{Kind: KindInt16} }
func Int32() Type      { return Type{Kind: KindInt32} }
func Int64() Type      { return Type{Kind: KindInt64} }
func Uint8() Type      { return Type{Kind: KindUint8} }
func Uint16() Type     { return Type{Kind: KindUint16} }
func Uint32() Type     { return Type{Kind: KindUint32} }
func Uint64() Type     { return Type{Kind: KindUint64} }
func Float64() Type    { return Type{Kind: KindFloat64} }
func String() Type     { return Type{Kind: KindString} }
func Duration() Type   { return Type{Kind: KindDuration} }
func Timestamp() Type  { return Type{Kind: KindTimestamp} }
func Permission() Type { return Type{Kind: KindPermission} }

// Enum is a value enum stored by the host as a raw integer code.
func Enum(name string) Type { return Type{Kind: KindEnum, Name: name} }

// Nested is a generated entity held inside another one.
func Nested(name string) Type { return Type{Kind: KindEntity, Name: name} }

// Named is a named scalar such as an identifier type.
func Named(name string) Type { return Type{Kind: KindNamed, Name: name} }

func Optional(elem Type) Type { return Type{Kind: KindOptional, Elem: &elem} }
func Slice(elem Type) Type    { return Type{Kind: KindSlice, Elem: &elem} }
func Map(key, elem Type) Type { return Type{Kind: KindMap, Key: &key, Elem: &elem} }

// GoType renders the Go spelling of t.
func (t Type) GoType() string {
	switch t.Kind {
	case KindDuration:
		return "time.Duration"
	case KindTimestamp:
		return "time.Time"
	case KindPermission:
		return "Permission"
	case KindEnum, KindEntity, KindNamed:
		return t.Name
	case KindOptional:
		return "*" + t.elem().GoType()
	case KindSlice:
		return "[]" + t.elem().GoType()
	case KindMap:
		return "map[" + t.key().GoType() + "]" + t.elem().GoType()
	case KindInvalid:
		return ""
	default:
		return t.Kind.String()
	}
}

func (t Type) String() string {
	return t.GoType()
}

func (t Type) elem() Type {
	if t.Elem == nil {
		return Type{}
	}
	return *t.Elem
}

func (t Type) key() Type {
	if t.Key == nil {
		return Type{}
	}
	return *t.Key
}

// Equal compares two types structurally.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind || t.Name != o.Name {
		return false
	}
	if (t.Key == nil) != (o.Key == nil) || (t.Elem == nil) != (o.Elem == nil) {
		return false
	}
	if t.Key != nil && !t.Key.Equal(*o.Key) {
		return false
	}
	if t.Elem != nil && !t.Elem.Equal(*o.Elem) {
		return false
	}
	return true
}

// Valid reports whether t and all its components are complete.
func (t Type) Valid() bool {
	switch t.Kind {
	case KindInvalid:
		return false
	case KindEnum, KindEntity, KindNamed:
		return t.Name != ""
	case KindOptional, KindSlice:
		return t.Elem != nil && t.Elem.Valid()
	case KindMap:
		return t.Key != nil && t.Key.Valid() && t.Elem != nil && t.Elem.Valid()
	default:
		return true
	}
}

// Integer reports whether t is one of the integer kinds.
func (t Type) Integer() bool {
	return t.Kind >= KindInt8 && t.Kind <= KindUint64
}

// Imports lists the standard library packages the Go spelling of t needs.
func (t Type) Imports() []string {
	var out []string
	switch t.Kind {
	case KindDuration, KindTimestamp:
		out = append(out, "time")
	}
	if t.Key != nil {
		out = append(out, t.Key.Imports()...)
	}
	if t.Elem != nil {
		out = append(out, t.Elem.Imports()...)
	}
	return out
}
