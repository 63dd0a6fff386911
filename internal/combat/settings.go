package combat

// Settings holds the tunable resolution parameters. The raid weapon
// multiplier is deliberately configuration, not a literal: game design has
// shipped both 1.8 and 2.5 at different times and the default tracks the
// documented value.
type Settings struct {
	AttackChancePerPoint  float64 `json:"attack_chance_per_point" validate:"gte=0,lte=1"`
	DefenseChancePerPoint float64 `json:"defense_chance_per_point" validate:"gte=0,lte=1"`
	AttackBonusPerPoint   int     `json:"attack_bonus_per_point" validate:"gt=0"`
	DefenseBonusPerPoint  int     `json:"defense_bonus_per_point" validate:"gt=0"`
	RaidWeaponMultiplier  float64 `json:"raid_weapon_multiplier" validate:"gt=0"`
	RaidArmorMultiplier   float64 `json:"raid_armor_multiplier" validate:"gt=0"`
	BlightStageTwoScale   float64 `json:"blight_stage_two_scale" validate:"gt=0"`
}

// DefaultSettings returns the documented resolution constants.
func DefaultSettings() Settings {
	return Settings{
		AttackChancePerPoint:  0.10,
		DefenseChancePerPoint: 0.02,
		AttackBonusPerPoint:   10,
		DefenseBonusPerPoint:  2,
		RaidWeaponMultiplier:  1.8,
		RaidArmorMultiplier:   0.7,
		BlightStageTwoScale:   1.5,
	}
}
