package domain

import "fmt"

// Tier classifies encounter difficulty. Zero is the "No Encounter" sentinel.
type Tier int

// TierNone is returned when a roll lands on the no-encounter share of a
// probability table, or when the fallback chain exhausts the catalog.
const TierNone Tier = 0

const (
	TierMin Tier = 1
	TierMax Tier = 10
)

// NoEncounterLabel is the user-facing sentinel for an empty encounter.
const NoEncounterLabel = "No Encounter"

func (t Tier) String() string {
	if t <= TierNone {
		return NoEncounterLabel
	}
	return fmt.Sprintf("Tier %d", int(t))
}

// Valid reports whether t is a real encounter tier (not the sentinel).
func (t Tier) Valid() bool {
	return t >= TierMin && t <= TierMax
}

// Monster is an encounter candidate supplied by the catalog provider.
type Monster struct {
	ID           int     `json:"monster_id" db:"monster_id"`
	InternalName string  `json:"internal_name" db:"internal_name"`
	DisplayName  string  `json:"display_name" db:"display_name"`
	Tier         Tier    `json:"tier" db:"tier"`
	AuxWeight    float64 `json:"aux_weight" db:"aux_weight"`
}

// EncounterResult reports which tier an encounter roll resolved to and the
// monsters available at that tier. Encounter is NoEncounterLabel when the
// catalog had nothing to offer; that is a normal outcome, not an error.
type EncounterResult struct {
	Encounter string    `json:"encounter"`
	Tier      Tier      `json:"tier"`
	Monsters  []Monster `json:"monsters"`
}
