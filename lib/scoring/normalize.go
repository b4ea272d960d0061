package scoring

import (
	"sort"

	"github.com/pescuma/gitscore/lib/model"
	"github.com/pescuma/gitscore/lib/utils"
)

// TeamStatistics is the distribution of one metric across the contributor
// population. Recomputed per run, never persisted. The dynamic thresholds
// carry floors so a team of dabblers doesn't grade itself excellent: poor is
// at least 1, excellent at least 10.
type TeamStatistics struct {
	Min    float64
	Max    float64
	Sorted []float64

	Poor      float64
	Excellent float64
}

func NewTeamStatistics(values []float64) *TeamStatistics {
	s := &TeamStatistics{
		Sorted: append([]float64(nil), values...),
	}
	sort.Float64s(s.Sorted)

	if len(s.Sorted) > 0 {
		s.Min = s.Sorted[0]
		s.Max = s.Sorted[len(s.Sorted)-1]
	}

	s.Poor = utils.Max(1, s.percentile(25))
	s.Excellent = utils.Max(10, s.percentile(90))

	return s
}

func (s *TeamStatistics) percentile(p float64) float64 {
	n := len(s.Sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return s.Sorted[0]
	}

	rank := p / 100 * float64(n-1)
	lo := int(rank)
	if lo >= n-1 {
		return s.Sorted[n-1]
	}

	frac := rank - float64(lo)
	return s.Sorted[lo]*(1-frac) + s.Sorted[lo+1]*frac
}

// Relative is min-max normalization within the team. A zero-variance
// population is uniformly at the ceiling, not undefined.
func (s *TeamStatistics) Relative(v float64) float64 {
	if s.Max == s.Min {
		return 1
	}
	return utils.Clamp((v-s.Min)/(s.Max-s.Min), 0, 1)
}

// Absolute grades against the dynamic thresholds. A degenerate band
// (excellent <= poor) collapses to a step function at poor.
func (s *TeamStatistics) Absolute(v float64) float64 {
	if s.Excellent <= s.Poor {
		return utils.IIf(v >= s.Poor, 1.0, 0.0)
	}
	return utils.Clamp((v-s.Poor)/(s.Excellent-s.Poor), 0, 1)
}

// Statistical is the mid-rank percentile: ties take half credit, so a
// population of one scores exactly 0.5.
func (s *TeamStatistics) Statistical(v float64) float64 {
	if len(s.Sorted) == 0 {
		return 0
	}

	below := 0
	equal := 0
	for _, x := range s.Sorted {
		switch {
		case x < v:
			below++
		case x == v:
			equal++
		}
	}

	return (float64(below) + 0.5*float64(equal)) / float64(len(s.Sorted))
}

// Normalize applies the three normalizations over one snapshot of the metric
// and averages them.
func Normalize(v float64, s *TeamStatistics) model.MetricScores {
	result := model.MetricScores{
		Relative:    s.Relative(v),
		Absolute:    s.Absolute(v),
		Statistical: s.Statistical(v),
	}
	result.Score = (result.Relative + result.Absolute + result.Statistical) / 3
	return result
}
