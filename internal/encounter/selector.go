package encounter

import (
	"math/rand"

	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
)

// SelectTier draws r in [0,100) and walks the table's cumulative sums,
// returning the first tier whose cumulative bound exceeds r.
func SelectTier(table ProbabilityTable, rng *rand.Rand) domain.Tier {
	if len(table) == 0 {
		return domain.TierNone
	}

	r := rng.Float64() * 100
	cumulative := 0.0
	for _, tc := range table {
		cumulative += tc.Percent
		if r < cumulative {
			return tc.Tier
		}
	}

	// Tables sum to 100 by precondition; float drift can still leave r just
	// past the last bound, in which case the last row wins.
	return table[len(table)-1].Tier
}

// SelectEncounterTier picks a tier for the given mode.
func SelectEncounterTier(mode Mode, rng *rand.Rand) domain.Tier {
	return SelectTier(TableForMode(mode), rng)
}

// SelectMonsterForTier gathers the monsters at the rolled tier. When the tier
// has no monsters the tier is decremented and retried down to tier 1; an
// exhausted catalog yields the no-encounter sentinel, never an error.
func SelectMonsterForTier(tier domain.Tier, pool []domain.Monster) domain.EncounterResult {
	for t := tier; t >= domain.TierMin; t-- {
		matched := monstersAtTier(pool, t)
		if len(matched) > 0 {
			return domain.EncounterResult{
				Encounter: t.String(),
				Tier:      t,
				Monsters:  matched,
			}
		}
	}

	return domain.EncounterResult{
		Encounter: domain.NoEncounterLabel,
		Tier:      domain.TierNone,
		Monsters:  []domain.Monster{},
	}
}

func monstersAtTier(pool []domain.Monster, tier domain.Tier) []domain.Monster {
	matched := make([]domain.Monster, 0)
	for _, m := range pool {
		if m.Tier == tier {
			matched = append(matched, m)
		}
	}
	return matched
}
