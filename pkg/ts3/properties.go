package ts3

// Property selectors carry the codes the host uses for each property.

// ServerProperty selects a property of a virtual server.
type ServerProperty int32

const (
	ServerPropertyUniqueIdentifier              ServerProperty = 0
	ServerPropertyName                          ServerProperty = 1
	ServerPropertyWelcomeMessage                ServerProperty = 2
	ServerPropertyPlatform                      ServerProperty = 3
	ServerPropertyVersion                       ServerProperty = 4
	ServerPropertyMaxClients                    ServerProperty = 5
	ServerPropertyClientsOnline                 ServerProperty = 7
	ServerPropertyChannelsOnline                ServerProperty = 8
	ServerPropertyCreated                       ServerProperty = 9
	ServerPropertyUptime                        ServerProperty = 10
	ServerPropertyCodecEncryptionMode           ServerProperty = 11
	ServerPropertyHostMessage                   ServerProperty = 21
	ServerPropertyHostMessageMode               ServerProperty = 22
	ServerPropertyDefaultServerGroup            ServerProperty = 24
	ServerPropertyDefaultChannelGroup           ServerProperty = 25
	ServerPropertyFlagPassword                  ServerProperty = 26
	ServerPropertyDefaultChannelAdminGroup      ServerProperty = 27
	ServerPropertyHostBannerURL                 ServerProperty = 30
	ServerPropertyHostBannerGfxURL              ServerProperty = 31
	ServerPropertyHostBannerGfxInterval         ServerProperty = 32
	ServerPropertyHostButtonTooltip             ServerProperty = 44
	ServerPropertyHostButtonURL                 ServerProperty = 45
	ServerPropertyHostButtonGfxURL              ServerProperty = 46
	ServerPropertyNamePhonetic                  ServerProperty = 65
	ServerPropertyIconID                        ServerProperty = 66
	ServerPropertyReservedSlots                 ServerProperty = 67
	ServerPropertyAskForPrivilegeKey            ServerProperty = 76
	ServerPropertyHostBannerMode                ServerProperty = 77
	ServerPropertyChannelTempDeleteDelayDefault ServerProperty = 78
)

// ChannelProperty selects a property of a channel.
type ChannelProperty int32

const (
	ChannelPropertyName                          ChannelProperty = 0
	ChannelPropertyTopic                         ChannelProperty = 1
	ChannelPropertyDescription                   ChannelProperty = 2
	ChannelPropertyPassword                      ChannelProperty = 3
	ChannelPropertyCodec                         ChannelProperty = 4
	ChannelPropertyCodecQuality                  ChannelProperty = 5
	ChannelPropertyMaxClients                    ChannelProperty = 6
	ChannelPropertyMaxFamilyClients              ChannelProperty = 7
	ChannelPropertyOrder                         ChannelProperty = 8
	ChannelPropertyFlagPermanent                 ChannelProperty = 9
	ChannelPropertyFlagSemiPermanent             ChannelProperty = 10
	ChannelPropertyFlagDefault                   ChannelProperty = 11
	ChannelPropertyFlagPassword                  ChannelProperty = 12
	ChannelPropertyCodecLatencyFactor            ChannelProperty = 13
	ChannelPropertyCodecIsUnencrypted            ChannelProperty = 14
	ChannelPropertySecuritySalt                  ChannelProperty = 15
	ChannelPropertyDeleteDelay                   ChannelProperty = 16
	ChannelPropertyFlagMaxClientsUnlimited       ChannelProperty = 23
	ChannelPropertyFlagMaxFamilyClientsUnlimited ChannelProperty = 24
	ChannelPropertyFlagMaxFamilyClientsInherited ChannelProperty = 25
	ChannelPropertyFlagAreSubscribed             ChannelProperty = 26
	ChannelPropertyFilePath                      ChannelProperty = 27
	ChannelPropertyNeededTalkPower               ChannelProperty = 28
	ChannelPropertyForcedSilence                 ChannelProperty = 29
	ChannelPropertyNamePhonetic                  ChannelProperty = 30
	ChannelPropertyIconID                        ChannelProperty = 31
	ChannelPropertyFlagPrivate                   ChannelProperty = 32
)

// ConnectionProperty selects a network statistic of a client connection.
type ConnectionProperty int32

const (
	ConnectionPropertyPing                 ConnectionProperty = 0
	ConnectionPropertyPingDeviation        ConnectionProperty = 1
	ConnectionPropertyConnectedTime        ConnectionProperty = 2
	ConnectionPropertyIdleTime             ConnectionProperty = 3
	ConnectionPropertyClientIP             ConnectionProperty = 4
	ConnectionPropertyClientPort           ConnectionProperty = 5
	ConnectionPropertyServerIP             ConnectionProperty = 6
	ConnectionPropertyServerPort           ConnectionProperty = 7
	ConnectionPropertyPacketsSentTotal     ConnectionProperty = 11
	ConnectionPropertyBytesSentTotal       ConnectionProperty = 15
	ConnectionPropertyPacketsReceivedTotal ConnectionProperty = 19
	ConnectionPropertyBytesReceivedTotal   ConnectionProperty = 23
	ConnectionPropertyPacketlossTotal      ConnectionProperty = 27
)

// ClientProperty selects a property of the client behind a connection.
type ClientProperty int32

const (
	ClientPropertyUniqueIdentifier           ClientProperty = 0
	ClientPropertyNickname                   ClientProperty = 1
	ClientPropertyVersion                    ClientProperty = 2
	ClientPropertyPlatform                   ClientProperty = 3
	ClientPropertyFlagTalking                ClientProperty = 4
	ClientPropertyInputMuted                 ClientProperty = 5
	ClientPropertyOutputMuted                ClientProperty = 6
	ClientPropertyOutputOnlyMuted            ClientProperty = 7
	ClientPropertyInputHardware              ClientProperty = 8
	ClientPropertyOutputHardware             ClientProperty = 9
	ClientPropertyInputDeactivated           ClientProperty = 10
	ClientPropertyDefaultChannel             ClientProperty = 12
	ClientPropertyMetaData                   ClientProperty = 15
	ClientPropertyIsMuted                    ClientProperty = 16
	ClientPropertyIsRecording                ClientProperty = 17
	ClientPropertyVolumeModificator          ClientProperty = 18
	ClientPropertyDatabaseID                 ClientProperty = 33
	ClientPropertyCreated                    ClientProperty = 36
	ClientPropertyLastConnected              ClientProperty = 37
	ClientPropertyTotalConnections           ClientProperty = 38
	ClientPropertyAway                       ClientProperty = 39
	ClientPropertyAwayMessage                ClientProperty = 40
	ClientPropertyTalkPower                  ClientProperty = 43
	ClientPropertyTalkRequest                ClientProperty = 44
	ClientPropertyTalkRequestMsg             ClientProperty = 45
	ClientPropertyDescription                ClientProperty = 46
	ClientPropertyIsTalker                   ClientProperty = 47
	ClientPropertyIsPrioritySpeaker          ClientProperty = 52
	ClientPropertyUnreadMessages             ClientProperty = 53
	ClientPropertyNicknamePhonetic           ClientProperty = 54
	ClientPropertyNeededServerQueryViewPower ClientProperty = 55
	ClientPropertyIconID                     ClientProperty = 57
	ClientPropertyIsChannelCommander         ClientProperty = 58
	ClientPropertyCountry                    ClientProperty = 59
	ClientPropertyBadges                     ClientProperty = 61
)
