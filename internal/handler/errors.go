package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
// Both handlers and tests reference these constants to stay consistent.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Adventure operation error messages
	ErrMsgResolveFailed    = "Failed to resolve action"
	ErrMsgFleeFailed       = "Failed to resolve flee attempt"
	ErrMsgEncounterFailed  = "Failed to roll encounter"
	ErrMsgExploreFailed    = "Failed to resolve exploration"
	ErrMsgLootPoolFailed   = "Failed to build loot pool"
	ErrMsgInvalidEncounter = "Invalid encounter mode"

	// Catalog operation messages
	ErrMsgCatalogFailed   = "Failed to read catalog"
	MsgCatalogReloaded    = "Catalog cache reloaded"
	LogMsgCatalogReloaded = "Catalog cache invalidated"
)
