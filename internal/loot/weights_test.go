package loot

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustWeights_FortuneBandBoost(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	weights := AdjustWeights(25, 1, rng)

	// Final value 25 falls in rarity 3's band
	assert.InDelta(t, baseRarityWeights[3]*FortuneBonusMultiplier, weights[3], 1e-9)
	for rarity := RarityMin; rarity <= RarityMax; rarity++ {
		if rarity == 3 {
			continue
		}
		assert.InDelta(t, baseRarityWeights[rarity], weights[rarity], 1e-9, "rarity %d should be unboosted", rarity)
	}
}

func TestAdjustWeights_HighFinalValueBoostsTopRarity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	high := AdjustWeights(95, 1, rng)
	low := AdjustWeights(5, 1, rand.New(rand.NewSource(42)))

	assert.Greater(t, high[RarityMax], low[RarityMax],
		"a high final value must make top rarity more likely than a low one")
	assert.InDelta(t, baseRarityWeights[RarityMax]*FortuneBonusMultiplier, high[RarityMax], 1e-9)
}

func TestAdjustWeights_BandEdges(t *testing.T) {
	assert.Equal(t, 1, fortuneBandRarity(0))
	assert.Equal(t, 1, fortuneBandRarity(9.99))
	assert.Equal(t, 2, fortuneBandRarity(10))
	assert.Equal(t, 9, fortuneBandRarity(89.5))
	assert.Equal(t, 9, fortuneBandRarity(90), "rarity 10 bonus must not fire below 91")
	assert.Equal(t, 9, fortuneBandRarity(90.99))
	assert.Equal(t, RarityMax, fortuneBandRarity(91))
	assert.Equal(t, RarityMax, fortuneBandRarity(100))
}

func TestAdjustWeights_DegenerateFinalValue(t *testing.T) {
	assert.Equal(t, 1, fortuneBandRarity(math.NaN()))
	assert.Equal(t, 1, fortuneBandRarity(-50))
	assert.Equal(t, RarityMax, fortuneBandRarity(math.Inf(1)))
}

func TestAdjustWeights_VillageLevelTwoBoostsMidRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	weights := AdjustWeights(0, 2, rng)

	for rarity := VillageBoostRarityLow; rarity <= VillageBoostRarityHighLv2; rarity++ {
		mult := weights[rarity] / baseRarityWeights[rarity]
		assert.GreaterOrEqual(t, mult, VillageBoostMin, "rarity %d multiplier below bound", rarity)
		assert.Less(t, mult, VillageBoostMax, "rarity %d multiplier above bound", rarity)
	}
	// Rarities outside the boosted range stay at base (band 1 gets the fortune bonus)
	assert.InDelta(t, baseRarityWeights[6], weights[6], 1e-9)
	assert.InDelta(t, baseRarityWeights[7], weights[7], 1e-9)
}

func TestAdjustWeights_VillageLevelThreeWidensRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	weights := AdjustWeights(0, 3, rng)

	for rarity := VillageBoostRarityLow; rarity <= VillageBoostRarityHighLv3; rarity++ {
		mult := weights[rarity] / baseRarityWeights[rarity]
		assert.GreaterOrEqual(t, mult, VillageBoostMin)
		assert.Less(t, mult, VillageBoostMax)
	}
	assert.InDelta(t, baseRarityWeights[8], weights[8], 1e-9)
}

func TestAdjustWeights_SameVillageMultiplierAcrossRange(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	weights := AdjustWeights(0, 3, rng)

	// One uniform draw drives the whole boosted sub-range
	first := weights[VillageBoostRarityLow] / baseRarityWeights[VillageBoostRarityLow]
	for rarity := VillageBoostRarityLow + 1; rarity <= VillageBoostRarityHighLv3; rarity++ {
		assert.InDelta(t, first, weights[rarity]/baseRarityWeights[rarity], 1e-9)
	}
}

func TestAdjustWeights_AllWeightsNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, fv := range []float64{0, 13, 50, 91, 100, math.NaN(), -5} {
		for lvl := 0; lvl <= 4; lvl++ {
			weights := AdjustWeights(fv, lvl, rng)
			require.Len(t, weights, RarityMax)
			for rarity, w := range weights {
				assert.GreaterOrEqual(t, w, 0.0, "fv=%v lvl=%d rarity=%d", fv, lvl, rarity)
			}
		}
	}
}
