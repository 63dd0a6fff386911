package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Character errors
	ErrMsgCharacterNotFound = "character not found"

	// Catalog errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgMonsterNotFound = "monster not found"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"
	ErrMsgInvalidMode  = "invalid resolve mode"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrMonsterNotFound   = errors.New(ErrMsgMonsterNotFound)
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)
	ErrInvalidMode       = errors.New(ErrMsgInvalidMode)
)
