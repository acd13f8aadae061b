package meta

import "github.com/ts3go/ts3plugin/internal/codegen/descriptor"

// Metadata holds every descriptor of one generator run, in declaration order.
// Shared between the domain definitions, the emitter and the driver.
type Metadata struct {
	Package  string
	Enums    []descriptor.EnumDef
	Entities []descriptor.Entity
}

// Enum looks an enum up by name.
func (md *Metadata) Enum(name string) (descriptor.EnumDef, bool) {
	for _, e := range md.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return descriptor.EnumDef{}, false
}
