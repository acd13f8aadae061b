package entities

import "github.com/ts3go/ts3plugin/internal/codegen/descriptor"

const serverChannels = `channelIDs, err := fetcher.ChannelList(id)
if err != nil {
	return nil, fmt.Errorf("server %d: list channels: %w", id, err)
}
channels := make(map[ChannelID]*Channel, len(channelIDs))
for _, channelID := range channelIDs {
	channel, err := NewChannel(fetcher, id, channelID)
	if err != nil {
		return nil, fmt.Errorf("server %d: channel %d: %w", id, channelID, err)
	}
	channels[channelID] = channel
}`

const serverConnections = `connectionIDs, err := fetcher.ConnectionList(id)
if err != nil {
	return nil, fmt.Errorf("server %d: list connections: %w", id, err)
}
connections := make(map[ConnectionID]*Connection, len(connectionIDs))
for _, connectionID := range connectionIDs {
	connection, err := NewConnection(fetcher, id, connectionID)
	if err != nil {
		return nil, fmt.Errorf("server %d: connection %d: %w", id, connectionID, err)
	}
	connections[connectionID] = connection
}`

// Server describes a server connection tab together with its channels and
// connected clients.
func Server() descriptor.Entity {
	base := fetched("ServerProperty", "Server", "s", "id")
	str := base.Type(descriptor.String())
	num := base.Type(descriptor.Int32())

	// children are listed once at construction time.
	children := func(name, key, elem, doc string) descriptor.Property {
		return descriptor.NewProperty().
			Name(name).
			Type(descriptor.Map(descriptor.Named(key), descriptor.Optional(descriptor.Named(elem)))).
			Doc(doc).
			Fallible(false).
			Initialize(false).
			Update(false).
			API(false).
			Finalize()
	}

	return descriptor.NewEntity("Server").
		APIName("ServerAPI").
		Doc("Server is a snapshot of one server connection. Channels and\nconnections are listed when the server is constructed.").
		Params("fetcher Fetcher", "id ServerID").
		ExtraFields("fetcher Fetcher").
		ExtraInit(serverChannels, serverConnections).
		ExtraCreation("fetcher: fetcher").
		Properties(
			identifier("id", "ServerID", "the server connection handler"),
			base.Name("own_connection_id").
				Type(descriptor.Named("ConnectionID")).
				Doc("the connection of the local client").
				Initializer("Capture(fetcher.OwnConnectionID(id))").
				Updater("Capture(s.fetcher.OwnConnectionID(s.id))").
				Finalize(),
			str.Name("uid").Variant("UniqueIdentifier").Doc("the unique identity of the server").Finalize(),
			str.Name("name").Finalize(),
			str.Name("welcome_message").Finalize(),
			str.Name("platform").Finalize(),
			str.Name("version").Finalize(),
			num.Name("max_clients").Finalize(),
			num.Name("clients_online").Finalize(),
			num.Name("channels_online").Finalize(),
			base.Name("created").Type(descriptor.Timestamp()).Doc("when the server was created").Finalize(),
			base.Name("uptime").Type(descriptor.Duration()).Finalize(),
			base.Name("codec_encryption_mode").Type(descriptor.Enum("CodecEncryptionMode")).Finalize(),
			str.Name("host_message").Finalize(),
			base.Name("host_message_mode").Type(descriptor.Enum("HostMessageMode")).Finalize(),
			base.Name("default_server_group").
				Type(descriptor.Named("ServerGroupID")).
				Accessor("ServerVariableAsServerGroupID").
				Finalize(),
			base.Name("default_channel_group").
				Type(descriptor.Named("ChannelGroupID")).
				Accessor("ServerVariableAsChannelGroupID").
				Finalize(),
			base.Name("default_channel_admin_group").
				Type(descriptor.Named("ChannelGroupID")).
				Accessor("ServerVariableAsChannelGroupID").
				Finalize(),
			base.Name("has_password").Type(descriptor.Bool()).Variant("FlagPassword").Finalize(),
			str.Name("host_banner_url").Finalize(),
			str.Name("host_banner_gfx_url").Finalize(),
			base.Name("host_banner_gfx_interval").Type(descriptor.Duration()).Finalize(),
			base.Name("host_banner_mode").Type(descriptor.Enum("HostBannerMode")).Finalize(),
			str.Name("host_button_tooltip").Finalize(),
			str.Name("host_button_url").Finalize(),
			str.Name("host_button_gfx_url").Finalize(),
			str.Name("phonetic_name").Variant("NamePhonetic").Finalize(),
			base.Name("icon_id").Type(descriptor.Uint64()).Finalize(),
			num.Name("reserved_slots").Finalize(),
			base.Name("ask_for_privilege_key").Type(descriptor.Bool()).Finalize(),
			base.Name("channel_temp_delete_delay_default").Type(descriptor.Duration()).Finalize(),
			children("channels", "ChannelID", "Channel", "the channels of the server keyed by id"),
			children("connections", "ConnectionID", "Connection", "the connected clients keyed by id"),
		).
		Finalize()
}
