package encounter

import (
	"math/rand"

	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
)

// perTierWeight flattens the exploration spread: tier 1 buckets weigh ten
// times a tier 10 bucket of the same size, so high tiers appear noticeably
// less often than low tiers but never drop to zero while their bucket is
// non-empty.
func perTierWeight(tier domain.Tier) float64 {
	if !tier.Valid() {
		return 0
	}
	return float64(domain.TierMax) + 1 - float64(tier)
}

// SelectExplorationMonster buckets the pool by tier, weighs each bucket by
// perTierWeight(tier) * bucketSize, samples a bucket proportionally, then
// draws uniformly within it. The second return is false when the pool holds
// no valid-tier monsters.
func SelectExplorationMonster(pool []domain.Monster, rng *rand.Rand) (domain.Monster, bool) {
	buckets := make(map[domain.Tier][]domain.Monster)
	for _, m := range pool {
		if m.Tier.Valid() {
			buckets[m.Tier] = append(buckets[m.Tier], m)
		}
	}
	if len(buckets) == 0 {
		return domain.Monster{}, false
	}

	// Ordered walk so a given rng seed always yields the same selection.
	var totalWeight float64
	for t := domain.TierMin; t <= domain.TierMax; t++ {
		totalWeight += perTierWeight(t) * float64(len(buckets[t]))
	}

	r := rng.Float64() * totalWeight
	cumulative := 0.0
	for t := domain.TierMin; t <= domain.TierMax; t++ {
		bucket := buckets[t]
		if len(bucket) == 0 {
			continue
		}
		cumulative += perTierWeight(t) * float64(len(bucket))
		if r < cumulative {
			return bucket[rng.Intn(len(bucket))], true
		}
	}

	// Float drift fallback: highest populated tier.
	for t := domain.TierMax; t >= domain.TierMin; t-- {
		if bucket := buckets[t]; len(bucket) > 0 {
			return bucket[rng.Intn(len(bucket))], true
		}
	}
	return domain.Monster{}, false
}
