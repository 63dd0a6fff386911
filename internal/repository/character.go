package repository

import (
	"context"

	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
)

// Character defines the interface for character persistence. The engine never
// touches this directly; the adventure service reads a snapshot before
// resolution and persists the engine's reported mutations after.
type Character interface {
	GetSnapshot(ctx context.Context, characterID string) (*domain.CharacterSnapshot, error)
	// ApplyResolution persists the mutations one resolution produced: buff
	// consumption, flee counter, hearts, and KO state.
	ApplyResolution(ctx context.Context, characterID string, update domain.CharacterUpdate) error
}
