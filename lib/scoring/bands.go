package scoring

import (
	"github.com/pescuma/gitscore/lib/utils"
)

// Banded scoring: 1.0 inside a fixed optimal range, linear decay towards the
// poor edges outside it. All edges and slopes are configuration constants,
// never derived from the population. They encode what "healthy" looks like
// regardless of how the team behaves.

// Band scores quantities where both too little and too much are bad.
type Band struct {
	OptimalMin float64
	OptimalMax float64
	PoorMin    float64
	PoorMax    float64
}

func (b Band) Score(v float64) float64 {
	switch {
	case v >= b.OptimalMin && v <= b.OptimalMax:
		return 1

	case v < b.OptimalMin:
		if v <= b.PoorMin {
			return 0
		}
		return utils.Clamp((v-b.PoorMin)/(b.OptimalMin-b.PoorMin), 0, 1)

	default:
		if v >= b.PoorMax {
			return 0
		}
		return utils.Clamp(1-(v-b.OptimalMax)/(b.PoorMax-b.OptimalMax), 0, 1)
	}
}

// Threshold scores monotone quantities against fixed excellent/poor marks.
// Inverted means lower is better (churn, merge ratio).
type Threshold struct {
	Excellent float64
	Poor      float64
	Inverted  bool
}

func (t Threshold) Score(v float64) float64 {
	if t.Inverted {
		switch {
		case v <= t.Excellent:
			return 1
		case v >= t.Poor:
			return 0
		default:
			return utils.Clamp(1-(v-t.Excellent)/(t.Poor-t.Excellent), 0, 1)
		}
	}

	switch {
	case v >= t.Excellent:
		return 1
	case v <= t.Poor:
		return 0
	default:
		return utils.Clamp((v-t.Poor)/(t.Excellent-t.Poor), 0, 1)
	}
}

// Quality bands. Churn under 0.2 is mostly new code; above 1.5 the history
// is rewriting itself. Commits between 50 and 500 changed lines are
// reviewable; past 2000 they are code dumps. One to three files per commit
// is focused; fifteen is scattered. A merge commit share above 40% signals
// integration pain.
var (
	churnRatioThreshold = Threshold{Excellent: 0.2, Poor: 1.5, Inverted: true}
	commitSizeBand      = Band{OptimalMin: 50, OptimalMax: 500, PoorMin: 0, PoorMax: 2000}
	filesPerCommitBand  = Threshold{Excellent: 3, Poor: 15, Inverted: true}
	mergeRatioThreshold = Threshold{Excellent: 0.1, Poor: 0.4, Inverted: true}
)

// Collaboration thresholds. Some merges mean integration work; half of the
// touched files shared with others means actual co-ownership; sixty days of
// span means sustained engagement.
var (
	mergeActivityThreshold = Threshold{Excellent: 5, Poor: 0}
	sharedFilesThreshold   = Threshold{Excellent: 0.5, Poor: 0.1}
	activeSpanThreshold    = Threshold{Excellent: 60, Poor: 7}
)

// Productivity absolute thresholds: fixed marks for the one sub-metric the
// absolute normalization grades directly.
var commitCountThreshold = Threshold{Excellent: 50, Poor: 5}
