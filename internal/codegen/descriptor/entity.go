package descriptor

import (
	"slices"

	"github.com/ts3go/ts3plugin/internal/codegen/common"
)

// Entity describes one generated type. The order of Properties fixes the
// order of fields, accessors, updates and constructor statements.
type Entity struct {
	Name    string
	APIName string
	Doc     string

	Properties []Property

	// Freeform text injected verbatim: struct fields, constructor
	// statements run before the properties are bound, and composite
	// literal entries appended after the properties.
	ExtraFields   []string
	ExtraInit     []string
	ExtraCreation []string

	// Params is the constructor parameter list, e.g. "fetcher Fetcher".
	Params []string
	Public bool
}

// Receiver is the receiver name of the generated methods.
func (e Entity) Receiver() string {
	return common.Receiver(e.Name)
}

// ConstructorName is the uniform constructor name.
func (e Entity) ConstructorName() string {
	if e.Public {
		return "New" + e.Name
	}
	return "new" + e.Name
}

// APIConstructorName builds the API view from a data handle.
func (e Entity) APIConstructorName() string {
	if e.Public {
		return "New" + e.APIName
	}
	return "new" + e.APIName
}

// UpdateName and UpdateFromName are the refresh and reconciliation methods.
func (e Entity) UpdateName() string {
	if e.Public {
		return "Update"
	}
	return "update"
}

func (e Entity) UpdateFromName() string {
	if e.Public {
		return "UpdateFrom"
	}
	return "updateFrom"
}

// Property looks a property up by name.
func (e Entity) Property(name string) (Property, bool) {
	for _, p := range e.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// EntityBuilder assembles an Entity with copy-with-override semantics.
type EntityBuilder struct {
	e Entity
}

func NewEntity(name string) EntityBuilder {
	return EntityBuilder{e: Entity{Name: name, Public: true}}
}

func (b EntityBuilder) Name(name string) EntityBuilder {
	b.e.Name = name
	return b
}

func (b EntityBuilder) APIName(name string) EntityBuilder {
	b.e.APIName = name
	return b
}

func (b EntityBuilder) Doc(doc string) EntityBuilder {
	b.e.Doc = doc
	return b
}

func (b EntityBuilder) Public(v bool) EntityBuilder {
	b.e.Public = v
	return b
}

// Properties appends properties in the given order.
func (b EntityBuilder) Properties(ps ...Property) EntityBuilder {
	b.e.Properties = append(slices.Clone(b.e.Properties), ps...)
	return b
}

func (b EntityBuilder) ExtraFields(lines ...string) EntityBuilder {
	b.e.ExtraFields = append(slices.Clone(b.e.ExtraFields), lines...)
	return b
}

func (b EntityBuilder) ExtraInit(lines ...string) EntityBuilder {
	b.e.ExtraInit = append(slices.Clone(b.e.ExtraInit), lines...)
	return b
}

func (b EntityBuilder) ExtraCreation(lines ...string) EntityBuilder {
	b.e.ExtraCreation = append(slices.Clone(b.e.ExtraCreation), lines...)
	return b
}

func (b EntityBuilder) Params(params ...string) EntityBuilder {
	b.e.Params = slices.Clone(params)
	return b
}

func (b EntityBuilder) Finalize() Entity {
	e := b.e
	e.Properties = slices.Clone(e.Properties)
	e.ExtraFields = slices.Clone(e.ExtraFields)
	e.ExtraInit = slices.Clone(e.ExtraInit)
	e.ExtraCreation = slices.Clone(e.ExtraCreation)
	e.Params = slices.Clone(e.Params)
	return e
}
