package entities

import "github.com/ts3go/ts3plugin/internal/codegen/descriptor"

// Connection describes a client connected to a server. Transport statistics
// come from the connection namespace, everything the client reports about
// itself from the client namespace.
func Connection() descriptor.Entity {
	conn := fetched("ConnectionProperty", "Connection", "c", "serverID", "id").
		Function(descriptor.Float64(), "ConnectionVariableAsDouble")
	client := fetched("ClientProperty", "Client", "c", "serverID", "id")

	counter := conn.Type(descriptor.Uint64())
	str := client.Type(descriptor.String())
	flag := client.Type(descriptor.Bool())
	num := client.Type(descriptor.Int32())

	return descriptor.NewEntity("Connection").
		APIName("ConnectionAPI").
		Doc("Connection is a snapshot of one client connection.").
		Params("fetcher Fetcher", "serverID ServerID", "id ConnectionID").
		ExtraFields("fetcher Fetcher").
		ExtraCreation("fetcher: fetcher").
		Properties(
			identifier("server_id", "ServerID", "the server the client is connected to"),
			identifier("id", "ConnectionID", "the connection identifier"),
			client.Name("channel_id").
				Type(descriptor.Named("ChannelID")).
				Doc("the channel the client is in").
				Initializer("Capture(fetcher.ChannelOfConnection(serverID, id))").
				Updater("Capture(c.fetcher.ChannelOfConnection(c.serverID, c.id))").
				Finalize(),

			counter.Name("ping").Doc("the round trip time in milliseconds").Finalize(),
			conn.Name("ping_deviation").Type(descriptor.Float64()).Finalize(),
			conn.Name("connected_time").Type(descriptor.Duration()).Finalize(),
			conn.Name("idle_time").Type(descriptor.Duration()).Finalize(),
			conn.Name("client_ip").Type(descriptor.String()).Finalize(),
			counter.Name("client_port").Finalize(),
			conn.Name("server_ip").Type(descriptor.String()).Finalize(),
			counter.Name("server_port").Finalize(),
			counter.Name("packets_sent_total").Finalize(),
			counter.Name("bytes_sent_total").Finalize(),
			counter.Name("packets_received_total").Finalize(),
			counter.Name("bytes_received_total").Finalize(),
			conn.Name("packetloss_total").Type(descriptor.Float64()).Doc("the packet loss ratio").Finalize(),

			str.Name("uid").Variant("UniqueIdentifier").Doc("the unique identity of the client").Finalize(),
			str.Name("name").Variant("Nickname").Doc("the nickname of the client").Finalize(),
			str.Name("version").Finalize(),
			str.Name("platform").Finalize(),
			client.Name("talking").Type(descriptor.Enum("TalkStatus")).Variant("FlagTalking").Finalize(),
			client.Name("input_muted").Type(descriptor.Enum("MuteInputStatus")).Finalize(),
			client.Name("output_muted").Type(descriptor.Enum("MuteOutputStatus")).Finalize(),
			flag.Name("output_only_muted").Finalize(),
			client.Name("input_hardware").Type(descriptor.Enum("HardwareInputStatus")).Finalize(),
			client.Name("output_hardware").Type(descriptor.Enum("HardwareOutputStatus")).Finalize(),
			client.Name("input_deactivated").Type(descriptor.Enum("InputDeactivationStatus")).Finalize(),
			str.Name("default_channel").Finalize(),
			str.Name("meta_data").Finalize(),
			flag.Name("is_muted").Finalize(),
			flag.Name("is_recording").Finalize(),
			num.Name("volume_modificator").Finalize(),
			client.Name("database_id").Type(descriptor.Uint64()).Finalize(),
			client.Name("created").Type(descriptor.Timestamp()).Doc("when the client identity was first seen").Finalize(),
			client.Name("last_connected").Type(descriptor.Timestamp()).Finalize(),
			num.Name("total_connections").Finalize(),
			client.Name("away").Type(descriptor.Enum("AwayStatus")).Finalize(),
			str.Name("away_message").Finalize(),
			num.Name("talk_power").Finalize(),
			flag.Name("talk_request").Finalize(),
			str.Name("talk_request_message").Variant("TalkRequestMsg").Finalize(),
			str.Name("description").Finalize(),
			flag.Name("is_talker").Finalize(),
			flag.Name("is_priority_speaker").Finalize(),
			num.Name("unread_messages").Finalize(),
			str.Name("phonetic_name").Variant("NicknamePhonetic").Finalize(),
			num.Name("needed_serverquery_view_power").Variant("NeededServerQueryViewPower").Finalize(),
			client.Name("icon_id").Type(descriptor.Uint64()).Finalize(),
			flag.Name("is_channel_commander").Finalize(),
			str.Name("country").Finalize(),
			str.Name("badges").Finalize(),
		).
		Finalize()
}
