package adventure

// Log messages
const (
	LogMsgResolveCalled   = "ResolveAction called"
	LogMsgFleeCalled      = "AttemptFlee called"
	LogMsgLootPoolBuilt   = "Weighted loot pool built"
	LogMsgEncounterRolled = "Encounter rolled"
)

// Error context messages
const (
	ErrContextFailedToGetSnapshot = "failed to get character snapshot"
	ErrContextFailedToPersist     = "failed to persist resolution"
	ErrContextFailedToLoadCatalog = "failed to load catalog"
)
