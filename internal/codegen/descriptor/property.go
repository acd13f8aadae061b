package descriptor

import (
	"slices"

	"github.com/ts3go/ts3plugin/internal/codegen/common"
)

// CallSite describes how a fetch function is called: the expression the
// function is selected on and the identifying arguments passed before the
// property selector.
type CallSite struct {
	Fetcher string
	Args    []string
}

// TypeFunction maps a raw or semantic type to the fetch function returning it.
type TypeFunction struct {
	Type     Type
	Function string
}

// Property describes one field of a generated entity and how to obtain and
// refresh its value.
type Property struct {
	Name string
	Type Type
	Doc  string

	Fallible   bool
	Initialize bool
	Update     bool

	Initializer string
	Updater     string
	Accessor    string

	Namespace string
	Variant   string

	Functions       []TypeFunction
	Reinterpretable []Type

	InitialCall CallSite
	UpdateCall  CallSite

	API    bool
	Public bool
}

// FieldName is the unexported struct field holding the property.
func (p Property) FieldName() string {
	return common.ToCamelCase(p.Name)
}

// GetterName is the accessor method name.
func (p Property) GetterName() string {
	if p.Public {
		return common.ToPascalCase(p.Name)
	}
	return "get" + common.ToPascalCase(p.Name)
}

// APIGetterName is the accessor name on the API type, always exported.
func (p Property) APIGetterName() string {
	return common.ToPascalCase(p.Name)
}

// UpdaterName is the method refreshing the property.
func (p Property) UpdaterName() string {
	return "update" + common.ToPascalCase(p.Name)
}

// VariantName is the selector variant requested from the fetch layer.
func (p Property) VariantName() string {
	if p.Variant != "" {
		return p.Variant
	}
	return common.ToPascalCase(p.Name)
}

// Selector is the Go constant naming the property in the fetch layer.
func (p Property) Selector() string {
	return p.Namespace + p.VariantName()
}

// Function returns the fetch function registered for t.
func (p Property) Function(t Type) (string, bool) {
	for _, tf := range p.Functions {
		if tf.Type.Equal(t) {
			return tf.Function, true
		}
	}
	return "", false
}

// IsReinterpretable reports whether the property type is stored as a raw
// integer code.
func (p Property) IsReinterpretable() bool {
	return slices.ContainsFunc(p.Reinterpretable, p.Type.Equal)
}

// PropertyBuilder derives property descriptors from a prototype. Every
// method returns a modified copy; the receiver is never changed.
type PropertyBuilder struct {
	p Property
}

// NewProperty starts a builder for a fallible, initialized, refreshed
// property that is exposed on the API type.
func NewProperty() PropertyBuilder {
	return PropertyBuilder{p: Property{
		Fallible:   true,
		Initialize: true,
		Update:     true,
		API:        true,
		Public:     true,
	}}
}

func (b PropertyBuilder) Name(name string) PropertyBuilder {
	b.p.Name = name
	return b
}

func (b PropertyBuilder) Type(t Type) PropertyBuilder {
	b.p.Type = t
	return b
}

func (b PropertyBuilder) Doc(doc string) PropertyBuilder {
	b.p.Doc = doc
	return b
}

func (b PropertyBuilder) Fallible(v bool) PropertyBuilder {
	b.p.Fallible = v
	return b
}

func (b PropertyBuilder) Initialize(v bool) PropertyBuilder {
	b.p.Initialize = v
	return b
}

func (b PropertyBuilder) Update(v bool) PropertyBuilder {
	b.p.Update = v
	return b
}

// Initializer sets a literal Go expression used to build the stored value.
// For fallible properties the expression must evaluate to an Outcome.
func (b PropertyBuilder) Initializer(expr string) PropertyBuilder {
	b.p.Initializer = expr
	return b
}

// Updater sets a literal Go expression used when refreshing the property.
func (b PropertyBuilder) Updater(expr string) PropertyBuilder {
	b.p.Updater = expr
	return b
}

// Accessor bypasses the type based function lookup.
func (b PropertyBuilder) Accessor(fn string) PropertyBuilder {
	b.p.Accessor = fn
	return b
}

func (b PropertyBuilder) Namespace(ns string) PropertyBuilder {
	b.p.Namespace = ns
	return b
}

func (b PropertyBuilder) Variant(v string) PropertyBuilder {
	b.p.Variant = v
	return b
}

// Function registers the fetch function returning t, replacing an earlier
// registration for the same type.
func (b PropertyBuilder) Function(t Type, fn string) PropertyBuilder {
	funcs := slices.Clone(b.p.Functions)
	funcs = slices.DeleteFunc(funcs, func(tf TypeFunction) bool { return tf.Type.Equal(t) })
	b.p.Functions = append(funcs, TypeFunction{Type: t, Function: fn})
	return b
}

// Reinterpretable marks types stored as raw integer codes.
func (b PropertyBuilder) Reinterpretable(types ...Type) PropertyBuilder {
	out := slices.Clone(b.p.Reinterpretable)
	for _, t := range types {
		if !slices.ContainsFunc(out, t.Equal) {
			out = append(out, t)
		}
	}
	b.p.Reinterpretable = out
	return b
}

// InitialCall sets the call site used by the constructor.
func (b PropertyBuilder) InitialCall(fetcher string, args ...string) PropertyBuilder {
	b.p.InitialCall = CallSite{Fetcher: fetcher, Args: slices.Clone(args)}
	return b
}

// UpdateCall sets the call site used by the refresh methods, where the
// identifying values are read from the receiver.
func (b PropertyBuilder) UpdateCall(fetcher string, args ...string) PropertyBuilder {
	b.p.UpdateCall = CallSite{Fetcher: fetcher, Args: slices.Clone(args)}
	return b
}

func (b PropertyBuilder) API(v bool) PropertyBuilder {
	b.p.API = v
	return b
}

func (b PropertyBuilder) Public(v bool) PropertyBuilder {
	b.p.Public = v
	return b
}

// Finalize returns the descriptor. Slices are copied so later builder
// calls cannot reach into it.
func (b PropertyBuilder) Finalize() Property {
	p := b.p
	p.Functions = slices.Clone(p.Functions)
	p.Reinterpretable = slices.Clone(p.Reinterpretable)
	p.InitialCall.Args = slices.Clone(p.InitialCall.Args)
	p.UpdateCall.Args = slices.Clone(p.UpdateCall.Args)
	return p
}
