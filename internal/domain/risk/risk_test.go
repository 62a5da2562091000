package risk

import (
	"testing"

	"tidewise/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		want int
	}{
		{"no readings", Inputs{}, 0},
		{"mock weather and rising tide", Inputs{WindKnots: ptr(12), WaveMeters: ptr(1.2), Tide: entity.TideRising}, 37},
		{"gale and high seas", Inputs{WindKnots: ptr(40), WaveMeters: ptr(3), Tide: entity.TideRising}, 100},
		{"readings above the scale are capped", Inputs{WindKnots: ptr(80), WaveMeters: ptr(9), Tide: entity.TideFalling}, 97},
		{"negative readings clamp to zero", Inputs{WindKnots: ptr(-5), WaveMeters: ptr(-1), Tide: entity.TideSlack}, 0},
		{"falling tide only", Inputs{Tide: entity.TideFalling}, 2},
		{"half wind scale", Inputs{WindKnots: ptr(20)}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.in))
		})
	}
}

func TestColor(t *testing.T) {
	assert.Equal(t, ColorCalm, Color(0))
	assert.Equal(t, ColorCalm, Color(24))
	assert.Equal(t, ColorModerate, Color(25))
	assert.Equal(t, ColorRough, Color(50))
	assert.Equal(t, ColorRough, Color(74))
	assert.Equal(t, ColorSevere, Color(75))
	assert.Equal(t, ColorSevere, Color(100))
}
