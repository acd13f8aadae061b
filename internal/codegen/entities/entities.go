// Package entities declares the Server, Channel and Connection descriptors
// and the value enums they use.
package entities

import (
	"github.com/ts3go/ts3plugin/internal/codegen/descriptor"
	"github.com/ts3go/ts3plugin/internal/codegen/meta"
)

// Metadata returns the descriptors of one generator run in declaration order.
func Metadata(pkg string) *meta.Metadata {
	return &meta.Metadata{
		Package:  pkg,
		Enums:    Enums(),
		Entities: []descriptor.Entity{Channel(), Connection(), Server()},
	}
}

// identifier is a value passed to the constructor and never refetched.
func identifier(name, typeName, doc string) descriptor.Property {
	return descriptor.NewProperty().
		Name(name).
		Type(descriptor.Named(typeName)).
		Doc(doc).
		Fallible(false).
		Initialize(false).
		Update(false).
		Finalize()
}

// fetched returns the prototype shared by every property read through one
// selector namespace. recv is the receiver of the generated methods.
func fetched(namespace, prefix, recv string, ids ...string) descriptor.PropertyBuilder {
	updateArgs := make([]string, len(ids))
	for i, id := range ids {
		updateArgs[i] = recv + "." + id
	}
	return descriptor.NewProperty().
		Namespace(namespace).
		Function(descriptor.Int32(), prefix+"VariableAsInt").
		Function(descriptor.Uint64(), prefix+"VariableAsUint64").
		Function(descriptor.String(), prefix+"VariableAsString").
		Reinterpretable(enumTypes()...).
		InitialCall("fetcher", ids...).
		UpdateCall(recv+".fetcher", updateArgs...)
}
