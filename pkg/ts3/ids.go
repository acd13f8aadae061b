package ts3

// ServerID identifies a server connection handler of the host.
type ServerID uint64

// ChannelID identifies a channel on a server.
type ChannelID uint64

// ConnectionID identifies a client connection on a server.
type ConnectionID uint16

// ServerGroupID identifies a server group.
type ServerGroupID uint64

// ChannelGroupID identifies a channel group.
type ChannelGroupID uint64

// Permission is an opaque permission handle issued by the host.
type Permission uint32
