package utils

import "math"

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CoerceStat maps malformed stat inputs to the documented default of 0.
// Negative values come from callers that subtract below zero; they are floored
// rather than rejected so a broken stat never crashes a player action.
func CoerceStat(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// CoerceRoll maps a raw roll into the engine's working range [1,100].
// NaN and infinities coerce to the lower bound.
func CoerceRoll(roll float64) float64 {
	if math.IsNaN(roll) || math.IsInf(roll, 0) {
		return 1
	}
	if roll < 1 {
		return 1
	}
	if roll > 100 {
		return 100
	}
	return roll
}
