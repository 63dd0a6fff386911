// Package adventure orchestrates the resolution engines against persistence:
// it reads a character snapshot, invokes the pure engine packages, and
// persists the mutations they report. Resolution calls for the same character
// are serialized through a named lock so a buff can never be double-consumed
// and a flee failure never double-counted.
package adventure

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/mossvale/WildkeeperBot_Go/internal/catalog"
	"github.com/mossvale/WildkeeperBot_Go/internal/combat"
	"github.com/mossvale/WildkeeperBot_Go/internal/concurrency"
	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
	"github.com/mossvale/WildkeeperBot_Go/internal/encounter"
	"github.com/mossvale/WildkeeperBot_Go/internal/flee"
	"github.com/mossvale/WildkeeperBot_Go/internal/logger"
	"github.com/mossvale/WildkeeperBot_Go/internal/loot"
	"github.com/mossvale/WildkeeperBot_Go/internal/metrics"
	"github.com/mossvale/WildkeeperBot_Go/internal/repository"
)

// Service defines the adventure resolution operations.
type Service interface {
	BuildLootPool(ctx context.Context, characterID string, finalValue float64) ([]domain.Item, error)
	RollEncounter(ctx context.Context, mode encounter.Mode) (domain.EncounterResult, error)
	ExploreEncounter(ctx context.Context) (*domain.Monster, error)
	ResolveAction(ctx context.Context, characterID string, diceRoll float64, mode domain.ResolveMode, actionCtx domain.ActionContext) (*domain.FinalValueResult, error)
	AttemptFlee(ctx context.Context, characterID string, monsterTier, advantageAttempts int) (*domain.FleeOutcome, error)
}

type service struct {
	characterRepo repository.Character
	catalogSvc    catalog.Service
	engineCfg     *EngineConfig
	locks         *concurrency.LockManager
	newRNG        func() *rand.Rand
}

// NewService creates the adventure service. The rng factory is called once
// per resolution; tests override it with a seeded source.
func NewService(characterRepo repository.Character, catalogSvc catalog.Service, engineCfg *EngineConfig) Service {
	return &service{
		characterRepo: characterRepo,
		catalogSvc:    catalogSvc,
		engineCfg:     engineCfg,
		locks:         concurrency.NewLockManager(),
		newRNG: func() *rand.Rand {
			//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// BuildLootPool builds the rarity-weighted item pool for a character's final
// value, applying village-level scaling and the character's job flag.
func (s *service) BuildLootPool(ctx context.Context, characterID string, finalValue float64) ([]domain.Item, error) {
	snap, err := s.characterRepo.GetSnapshot(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetSnapshot, err)
	}

	items, err := s.catalogSvc.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadCatalog, err)
	}

	rng := s.newRNG()
	weights := loot.AdjustWeights(finalValue, snap.VillageLevel, rng)
	pool := loot.BuildWeightedPool(items, weights, snap.JobTag)

	metrics.LootPoolsBuilt.WithLabelValues(snap.JobTag).Inc()
	logger.FromContext(ctx).Debug(LogMsgLootPoolBuilt,
		"character_id", characterID, "final_value", finalValue, "pool_size", len(pool))

	return pool, nil
}

// RollEncounter selects an encounter tier for the mode and gathers the
// monsters available at that tier, walking the fallback chain on sparse
// catalogs. An empty catalog yields the no-encounter sentinel.
func (s *service) RollEncounter(ctx context.Context, mode encounter.Mode) (domain.EncounterResult, error) {
	monsters, err := s.catalogSvc.Monsters(ctx)
	if err != nil {
		return domain.EncounterResult{}, fmt.Errorf("%s: %w", ErrContextFailedToLoadCatalog, err)
	}

	tier := encounter.SelectEncounterTier(mode, s.newRNG())
	result := encounter.SelectMonsterForTier(tier, monsters)

	metrics.EncountersRolled.WithLabelValues(string(mode), strconv.Itoa(int(result.Tier))).Inc()
	logger.FromContext(ctx).Debug(LogMsgEncounterRolled,
		"mode", mode, "rolled_tier", int(tier), "resolved", result.Encounter)

	return result, nil
}

// ExploreEncounter picks a single monster using the tier-weighted exploration
// sampler. Returns nil when the catalog has no valid candidates.
func (s *service) ExploreEncounter(ctx context.Context) (*domain.Monster, error) {
	monsters, err := s.catalogSvc.Monsters(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadCatalog, err)
	}

	m, ok := encounter.SelectExplorationMonster(monsters, s.newRNG())
	if !ok {
		return nil, nil
	}
	metrics.EncountersRolled.WithLabelValues(string(encounter.ModeExploration), strconv.Itoa(int(m.Tier))).Inc()
	return &m, nil
}

// ResolveAction runs one final-value resolution under the character's lock
// and persists the buff consumption it reports.
func (s *service) ResolveAction(ctx context.Context, characterID string, diceRoll float64, mode domain.ResolveMode, actionCtx domain.ActionContext) (*domain.FinalValueResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgResolveCalled, "character_id", characterID, "mode", mode, "context", actionCtx)

	lock := s.locks.GetLock(characterID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := s.characterRepo.GetSnapshot(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetSnapshot, err)
	}

	resolver := combat.NewResolver(s.engineCfg.Combat, s.newRNG())
	result := resolver.Resolve(ctx, snap, diceRoll, mode, actionCtx)

	update := domain.CharacterUpdate{
		BuffConsumed:       result.BuffConsumed,
		FailedFleeAttempts: snap.FailedFleeAttempts,
		Hearts:             snap.Hearts,
	}
	if err := s.characterRepo.ApplyResolution(ctx, characterID, update); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToPersist, err)
	}

	metrics.ResolutionsTotal.WithLabelValues(string(mode), string(actionCtx)).Inc()
	metrics.FinalValueObserved.WithLabelValues(string(mode)).Observe(float64(result.AdjustedRandomValue))
	if result.BuffConsumed {
		metrics.ElixirsConsumed.WithLabelValues(string(actionCtx)).Inc()
	}
	if result.BuffSkipped {
		metrics.ElixirsSkipped.WithLabelValues(string(actionCtx)).Inc()
	}

	return &result, nil
}

// AttemptFlee runs one flee resolution under the character's lock and
// persists the counter, hearts, and buff mutations it reports.
func (s *service) AttemptFlee(ctx context.Context, characterID string, monsterTier, advantageAttempts int) (*domain.FleeOutcome, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgFleeCalled, "character_id", characterID, "monster_tier", monsterTier, "advantage_attempts", advantageAttempts)

	lock := s.locks.GetLock(characterID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := s.characterRepo.GetSnapshot(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetSnapshot, err)
	}

	resolver := flee.NewResolver(s.engineCfg.Flee, s.newRNG())
	outcome := resolver.AttemptFlee(ctx, snap, monsterTier, advantageAttempts)

	update := domain.CharacterUpdate{
		BuffConsumed:       outcome.BuffConsumed,
		FailedFleeAttempts: outcome.FailedFleeAttempts,
		Hearts:             outcome.HeartsRemaining,
		KnockedOut:         outcome.State == domain.FleeFailedKO,
	}
	if err := s.characterRepo.ApplyResolution(ctx, characterID, update); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToPersist, err)
	}

	metrics.FleeAttemptsTotal.WithLabelValues(string(outcome.State)).Inc()
	if outcome.BuffConsumed {
		metrics.ElixirsConsumed.WithLabelValues(string(domain.ContextTravel)).Inc()
	}

	return &outcome, nil
}
