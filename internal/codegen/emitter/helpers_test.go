package emitter_test

import (
	"github.com/ts3go/ts3plugin/internal/codegen/descriptor"
	"github.com/ts3go/ts3plugin/internal/codegen/meta"
)

// channelBase mirrors how the channel properties are declared.
func channelBase() descriptor.PropertyBuilder {
	return descriptor.NewProperty().
		Namespace("ChannelProperty").
		Function(descriptor.Int32(), "ChannelVariableAsInt").
		Function(descriptor.Uint64(), "ChannelVariableAsUint64").
		Function(descriptor.String(), "ChannelVariableAsString").
		Reinterpretable(descriptor.Enum("Codec")).
		InitialCall("fetcher", "serverID", "id").
		UpdateCall("c.fetcher", "c.serverID", "c.id")
}

func idProperty() descriptor.Property {
	return descriptor.NewProperty().
		Name("id").
		Type(descriptor.Named("ChannelID")).
		Fallible(false).
		Initialize(false).
		Update(false).
		Finalize()
}

func channelEntity(props ...descriptor.Property) descriptor.Entity {
	return descriptor.NewEntity("Channel").
		APIName("ChannelAPI").
		Params("fetcher Fetcher", "serverID ServerID", "id ChannelID").
		ExtraFields("fetcher Fetcher").
		ExtraCreation("fetcher: fetcher").
		Properties(props...).
		Finalize()
}

func codecEnum() descriptor.EnumDef {
	return descriptor.NewEnum("Codec").
		Variant("SpeexNarrowband", 0, "").
		Variant("OpusVoice", 4, "").
		Variant("OpusMusic", 5, "").
		Finalize()
}

func metadata(entities ...descriptor.Entity) *meta.Metadata {
	return &meta.Metadata{
		Package:  "ts3",
		Enums:    []descriptor.EnumDef{codecEnum()},
		Entities: entities,
	}
}
