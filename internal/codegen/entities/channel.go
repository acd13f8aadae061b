package entities

import "github.com/ts3go/ts3plugin/internal/codegen/descriptor"

// Channel describes a channel of a server.
func Channel() descriptor.Entity {
	base := fetched("ChannelProperty", "Channel", "c", "serverID", "id")
	flag := base.Type(descriptor.Bool())
	str := base.Type(descriptor.String())
	num := base.Type(descriptor.Int32())

	return descriptor.NewEntity("Channel").
		APIName("ChannelAPI").
		Doc("Channel is a snapshot of one channel. Every fetched property carries\nits own load error.").
		Params("fetcher Fetcher", "serverID ServerID", "id ChannelID").
		ExtraFields("fetcher Fetcher").
		ExtraCreation("fetcher: fetcher").
		Properties(
			identifier("server_id", "ServerID", "the server the channel belongs to"),
			identifier("id", "ChannelID", "the channel identifier"),
			base.Name("parent_channel_id").
				Type(descriptor.Named("ChannelID")).
				Doc("the parent channel, zero for top level channels").
				Initializer("Capture(fetcher.ParentChannelOfChannel(serverID, id))").
				Updater("Capture(c.fetcher.ParentChannelOfChannel(c.serverID, c.id))").
				Finalize(),
			str.Name("name").Doc("the display name of the channel").Finalize(),
			str.Name("topic").Finalize(),
			str.Name("description").Finalize(),
			str.Name("password").Doc("the channel password, usually blank").API(false).Finalize(),
			base.Name("codec").Type(descriptor.Enum("Codec")).Doc("the voice codec").Finalize(),
			num.Name("codec_quality").Finalize(),
			num.Name("max_clients").Finalize(),
			num.Name("max_family_clients").Finalize(),
			base.Name("order").
				Type(descriptor.Named("ChannelID")).
				Doc("the channel sorted directly above this one").
				Accessor("ChannelVariableAsChannelID").
				Finalize(),
			flag.Name("is_permanent").Variant("FlagPermanent").Finalize(),
			flag.Name("is_semi_permanent").Variant("FlagSemiPermanent").Finalize(),
			flag.Name("is_default").Variant("FlagDefault").Doc("whether new clients join this channel").Finalize(),
			flag.Name("has_password").Variant("FlagPassword").Finalize(),
			num.Name("codec_latency_factor").Finalize(),
			flag.Name("is_unencrypted").Variant("CodecIsUnencrypted").Finalize(),
			str.Name("security_salt").API(false).Public(false).Finalize(),
			base.Name("delete_delay").
				Type(descriptor.Duration()).
				Doc("how long an empty temporary channel survives").
				Finalize(),
			flag.Name("max_clients_unlimited").Variant("FlagMaxClientsUnlimited").Finalize(),
			flag.Name("max_family_clients_unlimited").Variant("FlagMaxFamilyClientsUnlimited").Finalize(),
			flag.Name("max_family_clients_inherited").Variant("FlagMaxFamilyClientsInherited").Finalize(),
			flag.Name("is_subscribed").Variant("FlagAreSubscribed").Finalize(),
			str.Name("file_path").Finalize(),
			num.Name("needed_talk_power").Finalize(),
			flag.Name("forced_silence").Finalize(),
			str.Name("phonetic_name").Variant("NamePhonetic").Finalize(),
			base.Name("icon_id").Type(descriptor.Uint64()).Finalize(),
			flag.Name("is_private").Variant("FlagPrivate").Finalize(),
		).
		Finalize()
}
