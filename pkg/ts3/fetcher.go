package ts3

// Fetcher reads raw property values from the host application. Every call may
// fail independently; the generated entities store those failures per
// property instead of aborting.
type Fetcher interface {
	ServerVariableAsInt(serverID ServerID, p ServerProperty) (int32, error)
	ServerVariableAsUint64(serverID ServerID, p ServerProperty) (uint64, error)
	ServerVariableAsString(serverID ServerID, p ServerProperty) (string, error)
	ServerVariableAsServerGroupID(serverID ServerID, p ServerProperty) (ServerGroupID, error)
	ServerVariableAsChannelGroupID(serverID ServerID, p ServerProperty) (ChannelGroupID, error)

	ChannelVariableAsInt(serverID ServerID, channelID ChannelID, p ChannelProperty) (int32, error)
	ChannelVariableAsUint64(serverID ServerID, channelID ChannelID, p ChannelProperty) (uint64, error)
	ChannelVariableAsString(serverID ServerID, channelID ChannelID, p ChannelProperty) (string, error)
	ChannelVariableAsChannelID(serverID ServerID, channelID ChannelID, p ChannelProperty) (ChannelID, error)

	ConnectionVariableAsInt(serverID ServerID, connectionID ConnectionID, p ConnectionProperty) (int32, error)
	ConnectionVariableAsUint64(serverID ServerID, connectionID ConnectionID, p ConnectionProperty) (uint64, error)
	ConnectionVariableAsString(serverID ServerID, connectionID ConnectionID, p ConnectionProperty) (string, error)
	ConnectionVariableAsDouble(serverID ServerID, connectionID ConnectionID, p ConnectionProperty) (float64, error)

	ClientVariableAsInt(serverID ServerID, connectionID ConnectionID, p ClientProperty) (int32, error)
	ClientVariableAsUint64(serverID ServerID, connectionID ConnectionID, p ClientProperty) (uint64, error)
	ClientVariableAsString(serverID ServerID, connectionID ConnectionID, p ClientProperty) (string, error)

	OwnConnectionID(serverID ServerID) (ConnectionID, error)
	ChannelOfConnection(serverID ServerID, connectionID ConnectionID) (ChannelID, error)
	ParentChannelOfChannel(serverID ServerID, channelID ChannelID) (ChannelID, error)
	ChannelList(serverID ServerID) ([]ChannelID, error)
	ConnectionList(serverID ServerID) ([]ConnectionID, error)
}
