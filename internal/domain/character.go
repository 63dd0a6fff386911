package domain

// CharacterSnapshot is an immutable-per-call view of a character as read from
// persistence. The engine treats it as read-only except for ActiveBuff, whose
// consumption flag may be flipped during resolution; the new values the caller
// must persist are reported back through CharacterUpdate.
type CharacterSnapshot struct {
	ID                 string      `json:"character_id" db:"character_id"`
	Name               string      `json:"name" db:"name"`
	Attack             int         `json:"attack" db:"attack"`
	Defense            int         `json:"defense" db:"defense"`
	Speed              int         `json:"speed" db:"speed"`
	Stealth            int         `json:"stealth" db:"stealth"`
	Hearts             int         `json:"hearts" db:"hearts"`
	MaxHearts          int         `json:"max_hearts" db:"max_hearts"`
	IsBlighted         bool        `json:"is_blighted" db:"is_blighted"`
	BlightStage        int         `json:"blight_stage" db:"blight_stage"`
	FailedFleeAttempts int         `json:"failed_flee_attempts" db:"failed_flee_attempts"`
	VillageLevel       int         `json:"village_level" db:"village_level"`
	JobTag             string      `json:"job_tag" db:"job_tag"`
	ActiveBuff         *ActiveBuff `json:"active_buff,omitempty"`
}

// CharacterUpdate carries the mutations a resolution produced. The engine
// never writes these itself; the caller persists them through the character
// repository after the resolution call returns.
type CharacterUpdate struct {
	BuffConsumed       bool `json:"buff_consumed"`
	FailedFleeAttempts int  `json:"failed_flee_attempts"`
	Hearts             int  `json:"hearts"`
	KnockedOut         bool `json:"knocked_out"`
}
