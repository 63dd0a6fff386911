package loot

import (
	"math/rand"

	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
)

// BuildWeightedPool expands candidates into a repetition-weighted pool.
// Candidates with no rarity or a zero weight are filtered out. Each survivor
// appears round-toward-zero(weight) times, minimum once while its weight is
// positive, so low-weight rares remain reachable. Candidates flagged with the
// job tag get the stacked job multiplier before expansion.
//
// An empty candidate list or an all-zero weight table yields an empty pool;
// the caller must treat that as "nothing available", not an error.
func BuildWeightedPool(candidates []domain.Item, weights WeightTable, jobTag string) []domain.Item {
	if len(candidates) == 0 {
		return []domain.Item{}
	}

	pool := make([]domain.Item, 0, len(candidates))
	for _, c := range candidates {
		if c.Rarity < RarityMin || c.Rarity > RarityMax {
			continue
		}
		w := weights[c.Rarity]
		if w <= 0 {
			continue
		}

		aux := c.AuxWeight
		if aux <= 0 {
			aux = 1.0
		}
		w *= aux

		if jobTag != "" && c.HasFlag(jobTag) {
			w *= JobBaseMultiplier * JobStackMultiplier
		}

		reps := int(w) // truncate toward zero
		if reps < 1 {
			reps = 1
		}
		for i := 0; i < reps; i++ {
			pool = append(pool, c)
		}
	}

	return pool
}

// SampleFromPool draws uniformly from an expanded pool. The second return is
// false when the pool is empty.
func SampleFromPool(pool []domain.Item, rng *rand.Rand) (domain.Item, bool) {
	if len(pool) == 0 {
		return domain.Item{}, false
	}
	return pool[rng.Intn(len(pool))], true
}
