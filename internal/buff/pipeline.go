// Package buff combines a character's base stats with any active time-boxed
// buff. Buff contributions are always context-scoped: a buff only adds its
// magnitude, and is only consumed, when the resolution's action context
// matches the buff's trigger context. Consumption is one-shot and idempotent;
// a consumed buff contributes zero on every later call.
package buff

import (
	"context"

	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
	"github.com/mossvale/WildkeeperBot_Go/internal/logger"
)

// contributes reports whether the buff is live for the given context.
func contributes(b *domain.ActiveBuff, actionCtx domain.ActionContext) bool {
	return b != nil && b.IsActive && b.TriggerContext == actionCtx
}

func floored(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}

// AttackWith returns the effective attack stat, minimum 1.
func AttackWith(base int, b *domain.ActiveBuff, actionCtx domain.ActionContext) int {
	if contributes(b, actionCtx) {
		base += b.AttackBoost
	}
	return floored(base, AttackFloor)
}

// DefenseWith returns the effective defense stat, minimum 0.
func DefenseWith(base int, b *domain.ActiveBuff, actionCtx domain.ActionContext) int {
	if contributes(b, actionCtx) {
		base += b.DefenseBoost
	}
	return floored(base, DefenseFloor)
}

// WeightedDefenseWith returns the effective defense scaled for
// success-weighting contexts: x1.5, floored, minimum 0.
func WeightedDefenseWith(base int, b *domain.ActiveBuff, actionCtx domain.ActionContext) int {
	eff := DefenseWith(base, b, actionCtx)
	return floored(int(float64(eff)*SuccessWeightDefenseScale), DefenseFloor)
}

// SpeedWith returns the effective speed stat, minimum 1.
func SpeedWith(base int, b *domain.ActiveBuff, actionCtx domain.ActionContext) int {
	if contributes(b, actionCtx) {
		base += b.SpeedBoost
	}
	return floored(base, SpeedFloor)
}

// StaminaWith returns the effective stamina pool, minimum 0. Stamina has no
// lower play floor: a drained pool stays drained until recovery ticks.
func StaminaWith(base int, b *domain.ActiveBuff, actionCtx domain.ActionContext) int {
	if contributes(b, actionCtx) {
		base += b.StaminaBoost
	}
	return floored(base, StaminaFloor)
}

// StaminaRecoveryWith returns the effective per-tick stamina recovery,
// minimum 0.
func StaminaRecoveryWith(base int, b *domain.ActiveBuff, actionCtx domain.ActionContext) int {
	if contributes(b, actionCtx) {
		base += b.StaminaRecovery
	}
	return floored(base, StaminaFloor)
}

// StealthWith returns the effective stealth stat, minimum 1.
func StealthWith(base int, b *domain.ActiveBuff, actionCtx domain.ActionContext) int {
	if contributes(b, actionCtx) {
		base += b.StealthBoost
	}
	return floored(base, StealthFloor)
}

// TryConsume deactivates the buff if it is live for the given context.
// Returns (consumed, skipped): skipped flags the "elixir not used" case where
// an active buff's trigger context did not match. Re-invoking on an already
// consumed buff is a no-op.
func TryConsume(ctx context.Context, b *domain.ActiveBuff, actionCtx domain.ActionContext) (consumed, skipped bool) {
	if b == nil || !b.IsActive {
		return false, false
	}
	if b.TriggerContext != actionCtx {
		logger.FromContext(ctx).Debug(LogMsgElixirNotUsed,
			"buff_kind", b.Kind, "trigger_context", b.TriggerContext, "action_context", actionCtx)
		return false, true
	}
	b.IsActive = false
	logger.FromContext(ctx).Debug(LogMsgElixirUsed, "buff_kind", b.Kind, "action_context", actionCtx)
	return true, false
}

// ResistanceFor returns the buff's resistance magnitude for the damage type,
// or 0 when no live buff covers it. When the action context matches the
// resistance's designated trigger context the buff is consumed as a side
// effect; a mismatched context contributes nothing, is never consumed, and is
// logged for observability.
func ResistanceFor(ctx context.Context, b *domain.ActiveBuff, dt domain.DamageType, actionCtx domain.ActionContext) (int, bool) {
	if b == nil || !b.IsActive {
		return 0, false
	}
	magnitude := b.ResistanceFor(dt)
	if magnitude <= 0 {
		return 0, false
	}

	if trigger := resistanceTriggerContexts[dt]; trigger != actionCtx {
		logger.FromContext(ctx).Debug(LogMsgElixirNotUsed,
			"buff_kind", b.Kind, "damage_type", dt, "trigger_context", trigger, "action_context", actionCtx)
		return 0, false
	}

	b.IsActive = false
	logger.FromContext(ctx).Debug(LogMsgElixirUsed, "buff_kind", b.Kind, "damage_type", dt)
	return magnitude, true
}
