package protocol

// APIKeyEnum identifies the RPC operation a request header belongs to.
type APIKeyEnum int16

// API keys defined at protocol version 0.10.2.
const (
	APIKeyProduce            APIKeyEnum = 0
	APIKeyFetch              APIKeyEnum = 1
	APIKeyListOffset         APIKeyEnum = 2
	APIKeyMetadata           APIKeyEnum = 3
	APIKeyLeaderAndIsr       APIKeyEnum = 4
	APIKeyStopReplica        APIKeyEnum = 5
	APIKeyUpdateMetadata     APIKeyEnum = 6
	APIKeyControlledShutdown APIKeyEnum = 7
	APIKeyOffsetCommit       APIKeyEnum = 8
	APIKeyOffsetFetch        APIKeyEnum = 9
	APIKeyFindCoordinator    APIKeyEnum = 10
	APIKeyJoinGroup          APIKeyEnum = 11
	APIKeyHeartbeat          APIKeyEnum = 12
	APIKeyLeaveGroup         APIKeyEnum = 13
	APIKeySyncGroup          APIKeyEnum = 14
	APIKeyDescribeGroups     APIKeyEnum = 15
	APIKeyListGroups         APIKeyEnum = 16
	APIKeySaslHandshake      APIKeyEnum = 17
	APIKeyApiVersions        APIKeyEnum = 18
	APIKeyCreateTopics       APIKeyEnum = 19
	APIKeyDeleteTopics       APIKeyEnum = 20
)
