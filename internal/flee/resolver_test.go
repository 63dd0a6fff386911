package flee

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
)

func newTestResolver(seed int64) *Resolver {
	return NewResolver(DefaultSettings(), rand.New(rand.NewSource(seed)))
}

func fleeCharacter(hearts, failures int) *domain.CharacterSnapshot {
	return &domain.CharacterSnapshot{ID: "c1", Name: "Rowan", Hearts: hearts, FailedFleeAttempts: failures}
}

func TestSuccessChance_Base(t *testing.T) {
	r := newTestResolver(42)
	assert.InDelta(t, 0.5, r.SuccessChance(fleeCharacter(10, 0)), 1e-9)
}

func TestSuccessChance_EscalatesPerFailure(t *testing.T) {
	r := newTestResolver(42)
	assert.InDelta(t, 0.55, r.SuccessChance(fleeCharacter(10, 1)), 1e-9)
	assert.InDelta(t, 0.75, r.SuccessChance(fleeCharacter(10, 5)), 1e-9)
}

func TestSuccessChance_CappedAtMax(t *testing.T) {
	r := newTestResolver(42)
	assert.InDelta(t, 0.95, r.SuccessChance(fleeCharacter(10, 9)), 1e-9)
	assert.InDelta(t, 0.95, r.SuccessChance(fleeCharacter(10, 50)), 1e-9)
}

func TestSuccessChance_FleeBoost(t *testing.T) {
	r := newTestResolver(42)
	c := fleeCharacter(10, 0)
	c.ActiveBuff = &domain.ActiveBuff{
		Kind:           domain.BuffKindElixir,
		TriggerContext: domain.ContextTravel,
		FleeBoost:      2,
		IsActive:       true,
	}

	assert.InDelta(t, 0.8, r.SuccessChance(c), 1e-9)
}

func TestSuccessChance_ConsumedBoostIgnored(t *testing.T) {
	r := newTestResolver(42)
	c := fleeCharacter(10, 0)
	c.ActiveBuff = &domain.ActiveBuff{FleeBoost: 2, IsActive: false}

	assert.InDelta(t, 0.5, r.SuccessChance(c), 1e-9)
}

func TestAttemptFlee_SuccessResetsCounter(t *testing.T) {
	// With 9+ prior failures the chance sits at the cap, so a success arrives
	// quickly on any seed; scan for one and verify the reset.
	r := newTestResolver(42)
	for i := 0; i < 50; i++ {
		outcome := r.AttemptFlee(context.Background(), fleeCharacter(10, 9), 3, 1)
		if outcome.Success {
			assert.Equal(t, domain.FleeSucceeded, outcome.State)
			assert.Zero(t, outcome.FailedFleeAttempts)
			assert.Zero(t, outcome.DamageDealt)
			assert.Equal(t, 10, outcome.HeartsRemaining)
			return
		}
	}
	t.Fatal("no successful flee in 50 tries at the capped chance")
}

func TestAttemptFlee_FailureIncrementsCounterAndDamages(t *testing.T) {
	// Zero base chance cannot succeed
	settings := DefaultSettings()
	settings.BaseChance = 0.0000001
	settings.EscalationPerFailure = 0
	r := NewResolver(settings, rand.New(rand.NewSource(42)))

	outcome := r.AttemptFlee(context.Background(), fleeCharacter(10, 2), 3, 1)

	assert.False(t, outcome.Success)
	assert.Equal(t, domain.FleeFailedDamaged, outcome.State)
	assert.Equal(t, 3, outcome.FailedFleeAttempts)
	assert.GreaterOrEqual(t, outcome.DamageDealt, 1)
	assert.LessOrEqual(t, outcome.DamageDealt, 3)
	assert.Equal(t, 10-outcome.DamageDealt, outcome.HeartsRemaining)
}

func TestAttemptFlee_KnockoutAtZeroHearts(t *testing.T) {
	settings := DefaultSettings()
	settings.BaseChance = 0.0000001
	settings.EscalationPerFailure = 0
	r := NewResolver(settings, rand.New(rand.NewSource(42)))

	outcome := r.AttemptFlee(context.Background(), fleeCharacter(1, 0), 5, 1)

	assert.False(t, outcome.Success)
	assert.Equal(t, domain.FleeFailedKO, outcome.State)
	assert.Zero(t, outcome.HeartsRemaining)
}

func TestAttemptFlee_AdvantageAttemptsStopAtFirstSuccess(t *testing.T) {
	r := newTestResolver(42)

	outcome := r.AttemptFlee(context.Background(), fleeCharacter(10, 9), 3, 5)

	if outcome.Success {
		assert.LessOrEqual(t, outcome.AttemptsMade, 5)
		assert.GreaterOrEqual(t, outcome.AttemptsMade, 1)
	} else {
		assert.Equal(t, 5, outcome.AttemptsMade)
	}
}

func TestAttemptFlee_AdvantageImprovesOdds(t *testing.T) {
	const trials = 5000
	single := 0
	triple := 0

	r1 := newTestResolver(1)
	r2 := newTestResolver(2)
	for i := 0; i < trials; i++ {
		if r1.AttemptFlee(context.Background(), fleeCharacter(10, 0), 3, 1).Success {
			single++
		}
		if r2.AttemptFlee(context.Background(), fleeCharacter(10, 0), 3, 3).Success {
			triple++
		}
	}

	// 1-(0.5)^3 = 0.875 vs 0.5
	assert.InDelta(t, 0.5, float64(single)/trials, 0.03)
	assert.InDelta(t, 0.875, float64(triple)/trials, 0.03)
}

func TestAttemptFlee_SuccessConsumesTravelBoost(t *testing.T) {
	settings := DefaultSettings()
	settings.BaseChance = 0.99
	settings.MaxChance = 1
	r := NewResolver(settings, rand.New(rand.NewSource(42)))

	c := fleeCharacter(10, 0)
	c.ActiveBuff = &domain.ActiveBuff{
		Kind:           domain.BuffKindElixir,
		TriggerContext: domain.ContextTravel,
		FleeBoost:      1,
		IsActive:       true,
	}

	outcome := r.AttemptFlee(context.Background(), c, 3, 1)

	assert.True(t, outcome.Success)
	assert.True(t, outcome.BuffConsumed)
	assert.False(t, c.ActiveBuff.IsActive)
}

func TestAttemptFlee_TierClamped(t *testing.T) {
	settings := DefaultSettings()
	settings.BaseChance = 0.0000001
	settings.EscalationPerFailure = 0
	r := NewResolver(settings, rand.New(rand.NewSource(42)))

	outcome := r.AttemptFlee(context.Background(), fleeCharacter(20, 0), 99, 1)
	assert.LessOrEqual(t, outcome.DamageDealt, int(domain.TierMax))

	outcome = r.AttemptFlee(context.Background(), fleeCharacter(20, 0), -4, 1)
	assert.Equal(t, 1, outcome.DamageDealt, "tier floors at 1 where damage is always 1")
}

func TestWeightedDamage_Distribution(t *testing.T) {
	r := newTestResolver(42)

	const draws = 60000
	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		counts[r.weightedDamage(3)]++
	}

	// Weights 3/6, 2/6, 1/6 for damage 1, 2, 3
	assert.InDelta(t, 3.0/6.0, float64(counts[1])/draws, 0.01)
	assert.InDelta(t, 2.0/6.0, float64(counts[2])/draws, 0.01)
	assert.InDelta(t, 1.0/6.0, float64(counts[3])/draws, 0.01)
}

func TestWeightedDamage_TierOne(t *testing.T) {
	r := newTestResolver(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, 1, r.weightedDamage(1))
	}
}
