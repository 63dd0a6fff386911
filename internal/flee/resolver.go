// Package flee resolves escape attempts: an escalating-probability retry loop
// where the first success wins, with weighted-random damage on total failure.
package flee

import (
	"context"
	"math/rand"

	"github.com/mossvale/WildkeeperBot_Go/internal/buff"
	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
	"github.com/mossvale/WildkeeperBot_Go/internal/utils"
)

// Resolver runs flee attempts with an injected random source.
type Resolver struct {
	settings Settings
	rng      *rand.Rand
}

// NewResolver creates a flee resolver.
func NewResolver(settings Settings, rng *rand.Rand) *Resolver {
	return &Resolver{settings: settings, rng: rng}
}

// SuccessChance computes the per-attempt success probability: base chance
// plus the failure escalation plus any active flee-boost levels, capped.
func (r *Resolver) SuccessChance(c *domain.CharacterSnapshot) float64 {
	chance := r.settings.BaseChance +
		r.settings.EscalationPerFailure*float64(utils.CoerceStat(c.FailedFleeAttempts))

	if b := c.ActiveBuff; b != nil && b.IsActive && b.FleeBoost > 0 {
		chance += r.settings.BoostPerLevel * float64(b.FleeBoost)
	}

	if chance > r.settings.MaxChance {
		chance = r.settings.MaxChance
	}
	return chance
}

// AttemptFlee rolls up to advantageAttempts independent draws at the fixed
// per-attempt chance, stopping at the first success. On success the failure
// counter resets and a contributing flee-boost buff is consumed when the
// travel context matches its trigger. On total failure the counter increments
// and a weighted-random damage value in [1, monsterTier] is applied; reaching
// zero hearts transitions the outcome to the terminal KO state. The caller
// persists the reported counter, hearts, and buff consumption.
func (r *Resolver) AttemptFlee(ctx context.Context, c *domain.CharacterSnapshot, monsterTier, advantageAttempts int) domain.FleeOutcome {
	if c == nil {
		c = &domain.CharacterSnapshot{}
	}
	if monsterTier < int(domain.TierMin) {
		monsterTier = int(domain.TierMin)
	}
	if monsterTier > int(domain.TierMax) {
		monsterTier = int(domain.TierMax)
	}
	if advantageAttempts < 1 {
		advantageAttempts = 1
	}

	chance := r.SuccessChance(c)
	boostContributed := c.ActiveBuff != nil && c.ActiveBuff.IsActive && c.ActiveBuff.FleeBoost > 0

	outcome := domain.FleeOutcome{
		HeartsRemaining:    c.Hearts,
		FailedFleeAttempts: utils.CoerceStat(c.FailedFleeAttempts),
	}

	for attempt := 1; attempt <= advantageAttempts; attempt++ {
		outcome.AttemptsMade = attempt
		if r.rng.Float64() < chance {
			outcome.Success = true
			break
		}
	}

	if outcome.Success {
		outcome.State = domain.FleeSucceeded
		outcome.FailedFleeAttempts = 0
		if boostContributed {
			outcome.BuffConsumed, _ = buff.TryConsume(ctx, c.ActiveBuff, domain.ContextTravel)
		}
		return outcome
	}

	outcome.FailedFleeAttempts++
	outcome.DamageDealt = r.weightedDamage(monsterTier)
	outcome.HeartsRemaining = c.Hearts - outcome.DamageDealt

	if outcome.HeartsRemaining <= 0 {
		outcome.HeartsRemaining = 0
		outcome.State = domain.FleeFailedKO
	} else {
		outcome.State = domain.FleeFailedDamaged
	}
	return outcome
}

// weightedDamage draws a damage value in [1, tier] where damage d has weight
// tier-d+1: damage 1 is always the most likely outcome and damage = tier the
// least likely.
func (r *Resolver) weightedDamage(tier int) int {
	total := tier * (tier + 1) / 2
	roll := r.rng.Intn(total)

	cumulative := 0
	for damage := 1; damage <= tier; damage++ {
		cumulative += tier - damage + 1
		if roll < cumulative {
			return damage
		}
	}
	return tier
}
