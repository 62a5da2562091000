// Package risk scores sea conditions for small fishing boats.
package risk

import (
	"math"

	"tidewise/internal/domain/entity"
)

// Heat map colours, from calm to severe.
const (
	ColorCalm     = "#22c55e"
	ColorModerate = "#84cc16"
	ColorRough    = "#f59e0b"
	ColorSevere   = "#ef4444"
)

// Inputs are the readings a score is built from. Nil readings contribute nothing.
type Inputs struct {
	WindKnots  *float64
	WaveMeters *float64
	Tide       entity.TideState
}

// Score maps wind (0-40 kt to 0-60), waves (0-3 m to 0-35) and tide
// (rising +5, falling +2) onto a rounded 0-100 scale.
func Score(in Inputs) int {
	score := 0.0
	if in.WindKnots != nil {
		score += clamp(*in.WindKnots/40*60, 0, 60)
	}
	if in.WaveMeters != nil {
		score += clamp(*in.WaveMeters/3*35, 0, 35)
	}
	switch in.Tide {
	case entity.TideRising:
		score += 5
	case entity.TideFalling:
		score += 2
	}

	return int(math.Round(math.Min(100, score)))
}

// Color picks the heat map colour for a score.
func Color(score int) string {
	switch {
	case score >= 75:
		return ColorSevere
	case score >= 50:
		return ColorRough
	case score >= 25:
		return ColorModerate
	default:
		return ColorCalm
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
