package buff

import "github.com/mossvale/WildkeeperBot_Go/internal/domain"

// Documented stat floors after buff stacking.
const (
	AttackFloor  = 1
	SpeedFloor   = 1
	StealthFloor = 1
	DefenseFloor = 0
	StaminaFloor = 0
)

// SuccessWeightDefenseScale scales defense for success-weighting contexts.
const SuccessWeightDefenseScale = 1.5

// resistanceTriggerContexts designates which action context consumes each
// resistance type. A resistance read outside its trigger context contributes
// nothing and leaves the elixir intact.
var resistanceTriggerContexts = map[domain.DamageType]domain.ActionContext{
	domain.DamageBlight:   domain.ContextTravel,
	domain.DamageCold:     domain.ContextGather,
	domain.DamageElectric: domain.ContextCombat,
	domain.DamageFire:     domain.ContextCombat,
}

// Log messages
const (
	LogMsgElixirNotUsed = "Elixir not used: context mismatch"
	LogMsgElixirUsed    = "Elixir consumed"
)
