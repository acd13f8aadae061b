package descriptor

import "slices"

// Variant is one value of an enum and the raw code the host uses for it.
type Variant struct {
	Name string
	Code int64
	Doc  string
}

// EnumDef describes a value enum decoded from raw integer codes.
type EnumDef struct {
	Name       string
	Doc        string
	Underlying Type
	Variants   []Variant
}

// Type returns the semantic type referring to the enum.
func (e EnumDef) Type() Type {
	return Enum(e.Name)
}

// ParserName is the checked conversion from a raw code.
func (e EnumDef) ParserName() string {
	return "Parse" + e.Name
}

// ConstName is the Go constant of a variant.
func (e EnumDef) ConstName(v Variant) string {
	return e.Name + v.Name
}

// EnumBuilder assembles an EnumDef. Enums default to an int32 code.
type EnumBuilder struct {
	e EnumDef
}

func NewEnum(name string) EnumBuilder {
	return EnumBuilder{e: EnumDef{Name: name, Underlying: Int32()}}
}

func (b EnumBuilder) Doc(doc string) EnumBuilder {
	b.e.Doc = doc
	return b
}

func (b EnumBuilder) Underlying(t Type) EnumBuilder {
	b.e.Underlying = t
	return b
}

func (b EnumBuilder) Variant(name string, code int64, doc string) EnumBuilder {
	b.e.Variants = append(slices.Clone(b.e.Variants), Variant{Name: name, Code: code, Doc: doc})
	return b
}

func (b EnumBuilder) Finalize() EnumDef {
	e := b.e
	e.Variants = slices.Clone(e.Variants)
	return e
}
