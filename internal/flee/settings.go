package flee

// Settings holds the tunable flee parameters.
type Settings struct {
	BaseChance           float64 `json:"base_chance" validate:"gt=0,lt=1"`
	EscalationPerFailure float64 `json:"escalation_per_failure" validate:"gte=0"`
	BoostPerLevel        float64 `json:"boost_per_level" validate:"gte=0"`
	MaxChance            float64 `json:"max_chance" validate:"gt=0,lte=1"`
}

// DefaultSettings returns the documented flee constants.
func DefaultSettings() Settings {
	return Settings{
		BaseChance:           0.5,
		EscalationPerFailure: 0.05,
		BoostPerLevel:        0.15,
		MaxChance:            0.95,
	}
}
