// Package combat turns a base dice roll into a bounded final value by
// layering blight scaling, elixir magnitudes, and gear bonuses. All outputs
// land in [1,100]; malformed inputs coerce to safe floors instead of failing,
// because a broken probability computation must never crash an in-progress
// player action.
package combat

import (
	"context"
	"math"
	"math/rand"

	"github.com/mossvale/WildkeeperBot_Go/internal/buff"
	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
	"github.com/mossvale/WildkeeperBot_Go/internal/utils"
)

// Resolver is the top-level final-value combinator. It is pure over its
// inputs apart from the injected rng and the one-shot buff consumption flag,
// which it flips on the snapshot and echoes in the result for the caller to
// persist.
type Resolver struct {
	settings Settings
	rng      *rand.Rand
}

// NewResolver creates a resolver with an injected random source. Tests pass a
// seeded rng so the statistical properties are deterministic.
func NewResolver(settings Settings, rng *rand.Rand) *Resolver {
	return &Resolver{settings: settings, rng: rng}
}

// Resolve computes the final value for one action.
//
// Order of operations: coerce the roll into [1,100], apply the blight stage 2
// scale, add elixir speed/stealth magnitudes (consuming the buff only when the
// action context matches its trigger), then the mode's gear logic, then clamp.
func (r *Resolver) Resolve(ctx context.Context, c *domain.CharacterSnapshot, diceRoll float64, mode domain.ResolveMode, actionCtx domain.ActionContext) domain.FinalValueResult {
	if c == nil {
		c = &domain.CharacterSnapshot{}
	}

	roll := utils.CoerceRoll(diceRoll)
	attack := utils.CoerceStat(c.Attack)
	defense := utils.CoerceStat(c.Defense)

	if c.IsBlighted && c.BlightStage == 2 {
		roll = math.Floor(roll * r.settings.BlightStageTwoScale)
	}

	result := domain.FinalValueResult{}

	// Elixir magnitudes land on the working roll before gear logic. The buff
	// is consumed exactly once, and only under a matching context.
	if b := c.ActiveBuff; b != nil && b.IsActive && (b.SpeedBoost > 0 || b.StealthBoost > 0) {
		if b.TriggerContext == actionCtx {
			roll += float64(b.SpeedBoost + b.StealthBoost)
		}
		result.BuffConsumed, result.BuffSkipped = buff.TryConsume(ctx, b, actionCtx)
	}

	working := int(roll)

	switch mode {
	case domain.ModeRaid:
		if attack > 0 {
			eff := buff.AttackWith(attack, c.ActiveBuff, actionCtx)
			working += int(math.Floor(float64(eff) * r.settings.RaidWeaponMultiplier))
			result.AttackApplied = eff
			result.WeaponFired = true
		}
		if defense > 0 {
			eff := buff.DefenseWith(defense, c.ActiveBuff, actionCtx)
			working += int(math.Floor(float64(eff) * r.settings.RaidArmorMultiplier))
			result.DefenseApplied = eff
			result.ArmorFired = true
		}

	default: // regular
		attackChance := math.Min(1, float64(attack)*r.settings.AttackChancePerPoint)
		defenseChance := math.Min(1, float64(defense)*r.settings.DefenseChancePerPoint)

		if r.rng.Float64() < attackChance {
			eff := buff.AttackWith(attack, c.ActiveBuff, actionCtx)
			working += eff * r.settings.AttackBonusPerPoint
			result.AttackApplied = eff
			result.WeaponFired = true
		}
		if r.rng.Float64() < defenseChance {
			eff := buff.DefenseWith(defense, c.ActiveBuff, actionCtx)
			working += eff * r.settings.DefenseBonusPerPoint
			result.DefenseApplied = eff
			result.ArmorFired = true
		}
	}

	// Gear-style attack/defense boosts are consumed the first time they
	// actually land on a result, same one-shot rule as the elixirs above.
	if b := c.ActiveBuff; b != nil && b.IsActive &&
		(b.AttackBoost > 0 || b.DefenseBoost > 0) &&
		(result.WeaponFired || result.ArmorFired) {
		consumed, skipped := buff.TryConsume(ctx, b, actionCtx)
		result.BuffConsumed = result.BuffConsumed || consumed
		result.BuffSkipped = result.BuffSkipped || skipped
	}

	result.DamageValue = working
	result.AdjustedRandomValue = utils.ClampInt(working, 1, 100)
	return result
}
