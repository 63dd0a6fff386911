package domain

// Item is a loot candidate supplied by the catalog provider. The engine never
// mutates items; they flow through the weighted sampler by value.
type Item struct {
	ID           int      `json:"item_id" db:"item_id"`
	InternalName string   `json:"internal_name" db:"internal_name"`
	DisplayName  string   `json:"display_name" db:"display_name"`
	Rarity       int      `json:"rarity" db:"rarity"`         // 1-10, 0 means unclassified
	AuxWeight    float64  `json:"aux_weight" db:"aux_weight"` // per-item weight scale, 1.0 default
	Flags        []string `json:"flags" db:"flags"`           // job tags and feature flags
}

// HasFlag reports whether the item carries the given flag.
func (i Item) HasFlag(flag string) bool {
	for _, f := range i.Flags {
		if f == flag {
			return true
		}
	}
	return false
}
