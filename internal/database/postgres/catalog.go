package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
)

// CatalogRepository implements the catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const itemColumns = `item_id, internal_name, display_name, rarity, aux_weight, flags`

func (r *CatalogRepository) scanItems(ctx context.Context, query string, args ...interface{}) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.InternalName, &item.DisplayName, &item.Rarity, &item.AuxWeight, &item.Flags); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

// GetAllItems returns every loot candidate in the catalog.
func (r *CatalogRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	return r.scanItems(ctx, fmt.Sprintf("SELECT %s FROM items ORDER BY item_id", itemColumns))
}

// GetItemsByFlag returns the candidates carrying the given flag.
func (r *CatalogRepository) GetItemsByFlag(ctx context.Context, flag string) ([]domain.Item, error) {
	query := fmt.Sprintf("SELECT %s FROM items WHERE $1 = ANY(flags) ORDER BY item_id", itemColumns)
	return r.scanItems(ctx, query, flag)
}

const monsterColumns = `monster_id, internal_name, display_name, tier, aux_weight`

func (r *CatalogRepository) scanMonsters(ctx context.Context, query string, args ...interface{}) ([]domain.Monster, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monsters: %w", err)
	}
	defer rows.Close()

	monsters := make([]domain.Monster, 0)
	for rows.Next() {
		var m domain.Monster
		if err := rows.Scan(&m.ID, &m.InternalName, &m.DisplayName, &m.Tier, &m.AuxWeight); err != nil {
			return nil, fmt.Errorf("failed to scan monster: %w", err)
		}
		monsters = append(monsters, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read monsters: %w", err)
	}
	return monsters, nil
}

// GetAllMonsters returns every encounter candidate in the catalog.
func (r *CatalogRepository) GetAllMonsters(ctx context.Context) ([]domain.Monster, error) {
	return r.scanMonsters(ctx, fmt.Sprintf("SELECT %s FROM monsters ORDER BY monster_id", monsterColumns))
}

// GetMonstersByRegion returns the encounter candidates for a region.
func (r *CatalogRepository) GetMonstersByRegion(ctx context.Context, region string) ([]domain.Monster, error) {
	query := fmt.Sprintf("SELECT %s FROM monsters WHERE region = $1 ORDER BY monster_id", monsterColumns)
	return r.scanMonsters(ctx, query, region)
}
