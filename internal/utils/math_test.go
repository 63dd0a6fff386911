package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampInt(t *testing.T) {
	tests := []struct {
		name     string
		v        int
		lo       int
		hi       int
		expected int
	}{
		{name: "within range", v: 50, lo: 1, hi: 100, expected: 50},
		{name: "below lower bound", v: -10, lo: 1, hi: 100, expected: 1},
		{name: "above upper bound", v: 250, lo: 1, hi: 100, expected: 100},
		{name: "at lower bound", v: 1, lo: 1, hi: 100, expected: 1},
		{name: "at upper bound", v: 100, lo: 1, hi: 100, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampInt(tt.v, tt.lo, tt.hi))
		})
	}
}

func TestCoerceStat(t *testing.T) {
	assert.Equal(t, 0, CoerceStat(-5))
	assert.Equal(t, 0, CoerceStat(0))
	assert.Equal(t, 7, CoerceStat(7))
}

func TestCoerceRoll(t *testing.T) {
	tests := []struct {
		name     string
		roll     float64
		expected float64
	}{
		{name: "within range", roll: 42.5, expected: 42.5},
		{name: "below one", roll: 0.2, expected: 1},
		{name: "negative", roll: -80, expected: 1},
		{name: "above hundred", roll: 300, expected: 100},
		{name: "NaN", roll: math.NaN(), expected: 1},
		{name: "positive infinity", roll: math.Inf(1), expected: 1},
		{name: "negative infinity", roll: math.Inf(-1), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CoerceRoll(tt.roll), 1e-9)
		})
	}
}
