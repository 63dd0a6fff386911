package domain

// ResolveMode selects the combat resolution variant.
type ResolveMode string

const (
	// ModeRegular gives gear an independent chance to apply per resolution.
	ModeRegular ResolveMode = "regular"
	// ModeRaid applies gear bonuses unconditionally whenever the stat is > 0.
	ModeRaid ResolveMode = "raid"
)

// FinalValueResult is the outcome of a single final-value resolution. It is
// created fresh per call and never stored by the engine.
type FinalValueResult struct {
	// DamageValue is the accumulated total before clamping, useful for
	// downstream damage math.
	DamageValue int `json:"damage_value"`
	// AdjustedRandomValue is the bounded score, always in [1,100].
	AdjustedRandomValue int `json:"adjusted_random_value"`
	// AttackApplied and DefenseApplied are the effective stat values that
	// actually contributed (0 when the modifier did not fire).
	AttackApplied  int `json:"attack_applied"`
	DefenseApplied int `json:"defense_applied"`

	WeaponFired bool `json:"weapon_fired"`
	ArmorFired  bool `json:"armor_fired"`

	// BuffConsumed tells the caller to persist the buff deactivation.
	// BuffSkipped flags the "elixir not used" case: an active buff whose
	// trigger context did not match this resolution.
	BuffConsumed bool `json:"buff_consumed"`
	BuffSkipped  bool `json:"buff_skipped"`
}

// FleeState is the terminal state of a flee attempt.
type FleeState string

const (
	FleeSucceeded     FleeState = "SUCCEEDED"
	FleeFailedDamaged FleeState = "FAILED_DAMAGED"
	FleeFailedKO      FleeState = "FAILED_KO"
)

// FleeOutcome is the result of a full flee resolution (all advantage
// attempts). Created fresh per call.
type FleeOutcome struct {
	Success      bool      `json:"success"`
	State        FleeState `json:"state"`
	AttemptsMade int       `json:"attempts_made"`
	// DamageDealt is 0 on success, otherwise the weighted-random damage.
	DamageDealt     int `json:"damage_dealt"`
	HeartsRemaining int `json:"hearts_remaining"`
	// FailedFleeAttempts is the new counter value for the caller to persist.
	FailedFleeAttempts int  `json:"failed_flee_attempts"`
	BuffConsumed       bool `json:"buff_consumed"`
}
