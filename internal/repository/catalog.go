package repository

import (
	"context"

	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
)

// Catalog defines the interface for item and monster catalog access. The
// catalog is read-only from the engine's point of view.
type Catalog interface {
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	GetItemsByFlag(ctx context.Context, flag string) ([]domain.Item, error)
	GetAllMonsters(ctx context.Context) ([]domain.Monster, error)
	GetMonstersByRegion(ctx context.Context, region string) ([]domain.Monster, error)
}
