package domain

// BuffKind identifies the consumable that created a buff.
type BuffKind string

const (
	BuffKindElixir BuffKind = "ELIXIR"
	BuffKindTonic  BuffKind = "TONIC"
	BuffKindSalve  BuffKind = "SALVE"
)

// ActionContext scopes buff effects to the action being resolved. A buff only
// contributes, and is only consumed, when the resolution context matches its
// trigger context.
type ActionContext string

const (
	ContextCombat ActionContext = "combat"
	ContextGather ActionContext = "gather"
	ContextLoot   ActionContext = "loot"
	ContextTravel ActionContext = "travel"
)

// DamageType classifies environmental damage a resistance buff can absorb.
type DamageType string

const (
	DamageBlight   DamageType = "blight"
	DamageCold     DamageType = "cold"
	DamageElectric DamageType = "electric"
	DamageFire     DamageType = "fire"
)

// ActiveBuff is a time-boxed, context-scoped modifier attached to a character.
// It is created externally when a consumable is used and deactivated the first
// time its effect is actually applied under a matching context. A buff with
// IsActive=false contributes nothing, ever.
type ActiveBuff struct {
	Kind               BuffKind      `json:"kind" db:"kind"`
	TriggerContext     ActionContext `json:"trigger_context" db:"trigger_context"`
	AttackBoost        int           `json:"attack_boost" db:"attack_boost"`
	DefenseBoost       int           `json:"defense_boost" db:"defense_boost"`
	SpeedBoost         int           `json:"speed_boost" db:"speed_boost"`
	StealthBoost       int           `json:"stealth_boost" db:"stealth_boost"`
	StaminaBoost       int           `json:"stamina_boost" db:"stamina_boost"`
	StaminaRecovery    int           `json:"stamina_recovery" db:"stamina_recovery"`
	ExtraHearts        int           `json:"extra_hearts" db:"extra_hearts"`
	FleeBoost          int           `json:"flee_boost" db:"flee_boost"`
	BlightResistance   int           `json:"blight_resistance" db:"blight_resistance"`
	ColdResistance     int           `json:"cold_resistance" db:"cold_resistance"`
	ElectricResistance int           `json:"electric_resistance" db:"electric_resistance"`
	FireResistance     int           `json:"fire_resistance" db:"fire_resistance"`
	IsActive           bool          `json:"is_active" db:"is_active"`
}

// ResistanceFor returns the buff's magnitude for the given damage type.
func (b *ActiveBuff) ResistanceFor(dt DamageType) int {
	switch dt {
	case DamageBlight:
		return b.BlightResistance
	case DamageCold:
		return b.ColdResistance
	case DamageElectric:
		return b.ElectricResistance
	case DamageFire:
		return b.FireResistance
	default:
		return 0
	}
}
