package loot

import (
	"math"
	"math/rand"

	"github.com/mossvale/WildkeeperBot_Go/internal/utils"
)

// WeightTable maps rarity (1-10) to a sampling weight.
type WeightTable map[int]float64

// baseRarityWeights is the default table: monotonically decreasing, so higher
// rarity items are always scarcer before fortune and village scaling.
var baseRarityWeights = WeightTable{
	1:  40,
	2:  30,
	3:  22,
	4:  16,
	5:  12,
	6:  8,
	7:  5,
	8:  3,
	9:  2,
	10: 1,
}

// fortuneBandRarity returns the rarity whose fortune band contains the final
// value. Bands are contiguous with inclusive lower bounds: rarity 1 owns
// [0,10), rarity 2 owns [10,20), ... rarity 9 owns [80,91). The top rarity's
// bonus only fires at finalValue >= 91, so rarity 9 absorbs [90,91).
func fortuneBandRarity(finalValue float64) int {
	if math.IsNaN(finalValue) || finalValue < 0 {
		finalValue = 0
	}
	if finalValue >= fortuneTopRarityFV {
		return RarityMax
	}
	band := 1 + int(finalValue)/fortuneBandWidth
	if band >= RarityMax {
		band = RarityMax - 1
	}
	return band
}

// AdjustWeights produces the per-rarity sampling weights for a character's
// final value and village level. The fortune bonus multiplies exactly one
// rarity's base weight; village level 2+ additionally multiplies a mid-rarity
// sub-range by a bounded uniform draw. The returned table always satisfies
// weight >= 0 for all rarities and keeps the base ordering outside the
// boosted bands.
func AdjustWeights(finalValue float64, villageLevel int, rng *rand.Rand) WeightTable {
	villageLevel = utils.ClampInt(villageLevel, VillageLevelMin, VillageLevelMax)

	weights := make(WeightTable, len(baseRarityWeights))
	for rarity, w := range baseRarityWeights {
		weights[rarity] = w
	}

	boosted := fortuneBandRarity(finalValue)
	weights[boosted] *= FortuneBonusMultiplier

	if villageLevel >= 2 {
		high := VillageBoostRarityHighLv2
		if villageLevel >= 3 {
			high = VillageBoostRarityHighLv3
		}
		mult := VillageBoostMin + rng.Float64()*(VillageBoostMax-VillageBoostMin)
		for rarity := VillageBoostRarityLow; rarity <= high; rarity++ {
			weights[rarity] *= mult
		}
	}

	return weights
}
