package encounter

import "github.com/mossvale/WildkeeperBot_Go/internal/domain"

// Mode selects which probability table drives tier selection.
type Mode string

const (
	ModeStandard    Mode = "standard"
	ModeBloodMoon   Mode = "bloodmoon"
	ModeExploration Mode = "exploration"
)

// TierChance is one row of a probability table.
type TierChance struct {
	Tier    domain.Tier `json:"tier"`
	Percent float64     `json:"percent"`
}

// ProbabilityTable is an ordered list of (tier, percent) rows. Rows must sum
// to 100; that is a precondition the caller guarantees, not enforced at
// runtime.
type ProbabilityTable []TierChance

// StandardTable reserves the largest share for no encounter and tapers sharply
// toward the high tiers.
var StandardTable = ProbabilityTable{
	{domain.TierNone, 50},
	{1, 12},
	{2, 10},
	{3, 8},
	{4, 6},
	{5, 5},
	{6, 4},
	{7, 2.5},
	{8, 1.5},
	{9, 0.6},
	{10, 0.4},
}

// BloodMoonTable guarantees an encounter and spreads weight across all tiers.
var BloodMoonTable = ProbabilityTable{
	{1, 16},
	{2, 14},
	{3, 13},
	{4, 12},
	{5, 11},
	{6, 10},
	{7, 9},
	{8, 7},
	{9, 5},
	{10, 3},
}

// ExplorationTable is equal-weighted; the flattening for exploration content
// happens in the tier-weighted bucket sampler instead.
var ExplorationTable = ProbabilityTable{
	{1, 10}, {2, 10}, {3, 10}, {4, 10}, {5, 10},
	{6, 10}, {7, 10}, {8, 10}, {9, 10}, {10, 10},
}

// TableForMode maps a selection mode to its table. Unknown modes fall back to
// the standard table.
func TableForMode(mode Mode) ProbabilityTable {
	switch mode {
	case ModeBloodMoon:
		return BloodMoonTable
	case ModeExploration:
		return ExplorationTable
	default:
		return StandardTable
	}
}
