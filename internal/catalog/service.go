// Package catalog fronts the item/monster repositories with an in-memory LRU
// cache. Catalog content changes rarely relative to how often the engine
// samples it, so cache hits keep resolution latency flat under load.
package catalog

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
	"github.com/mossvale/WildkeeperBot_Go/internal/repository"
)

const cacheSize = 64

// Cache keys
const (
	keyAllItems    = "items:all"
	keyAllMonsters = "monsters:all"
)

// Service provides cached catalog reads.
type Service interface {
	Items(ctx context.Context) ([]domain.Item, error)
	ItemsForJob(ctx context.Context, jobTag string) ([]domain.Item, error)
	Monsters(ctx context.Context) ([]domain.Monster, error)
	MonstersForRegion(ctx context.Context, region string) ([]domain.Monster, error)
	Invalidate()
}

type service struct {
	repo     repository.Catalog
	items    *lru.Cache[string, []domain.Item]
	monsters *lru.Cache[string, []domain.Monster]
}

// NewService creates a cached catalog service.
func NewService(repo repository.Catalog) (Service, error) {
	items, err := lru.New[string, []domain.Item](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create item cache: %w", err)
	}
	monsters, err := lru.New[string, []domain.Monster](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create monster cache: %w", err)
	}
	return &service{repo: repo, items: items, monsters: monsters}, nil
}

func (s *service) Items(ctx context.Context) ([]domain.Item, error) {
	if cached, ok := s.items.Get(keyAllItems); ok {
		return cached, nil
	}
	items, err := s.repo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	s.items.Add(keyAllItems, items)
	return items, nil
}

func (s *service) ItemsForJob(ctx context.Context, jobTag string) ([]domain.Item, error) {
	key := "items:flag:" + jobTag
	if cached, ok := s.items.Get(key); ok {
		return cached, nil
	}
	items, err := s.repo.GetItemsByFlag(ctx, jobTag)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for job %q: %w", jobTag, err)
	}
	s.items.Add(key, items)
	return items, nil
}

func (s *service) Monsters(ctx context.Context) ([]domain.Monster, error) {
	if cached, ok := s.monsters.Get(keyAllMonsters); ok {
		return cached, nil
	}
	monsters, err := s.repo.GetAllMonsters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load monsters: %w", err)
	}
	s.monsters.Add(keyAllMonsters, monsters)
	return monsters, nil
}

func (s *service) MonstersForRegion(ctx context.Context, region string) ([]domain.Monster, error) {
	key := "monsters:region:" + region
	if cached, ok := s.monsters.Get(key); ok {
		return cached, nil
	}
	monsters, err := s.repo.GetMonstersByRegion(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to load monsters for region %q: %w", region, err)
	}
	s.monsters.Add(key, monsters)
	return monsters, nil
}

// Invalidate drops all cached catalog entries, e.g. after an admin reload.
func (s *service) Invalidate() {
	s.items.Purge()
	s.monsters.Purge()
}
