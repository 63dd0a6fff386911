package loot

// Rarity bounds for catalog items.
const (
	RarityMin = 1
	RarityMax = 10
)

// Fortune band layout: each rarity owns a contiguous final-value range with an
// inclusive lower bound. The top rarity's band is open-ended.
const (
	fortuneBandWidth   = 10
	fortuneTopRarityFV = 91 // rarity 10 bonus requires finalValue >= 91
)

// FortuneBonusMultiplier scales the base weight of the rarity whose fortune
// band contains the final value.
const FortuneBonusMultiplier = 2.0

// Village-level weight boosts. Level 2 villages boost rarities 3-5, level 3
// villages boost rarities 3-7, each by a uniform draw in
// [VillageBoostMin, VillageBoostMax).
const (
	VillageBoostRarityLow     = 3
	VillageBoostRarityHighLv2 = 5
	VillageBoostRarityHighLv3 = 7

	VillageBoostMin = 1.5
	VillageBoostMax = 2.0

	VillageLevelMin = 1
	VillageLevelMax = 3
)

// Job multiplier for flagged candidates: two stacked x5 bonuses.
const (
	JobBaseMultiplier  = 5.0
	JobStackMultiplier = 5.0
)
