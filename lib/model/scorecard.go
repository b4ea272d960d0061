package model

// MetricScores holds the three independent normalizations of one raw metric
// across the team, plus their unweighted average. All values are in [0, 1].
type MetricScores struct {
	Relative    float64
	Absolute    float64
	Statistical float64
	Score       float64
}

// DimensionScore is a MetricScores with a measured flag: an unmeasured
// dimension (no survey supplied) is reported as 0.0 but excluded from the
// overall weighting instead of counting as a zero quality signal.
type DimensionScore struct {
	MetricScores
	Measured bool
}

// Scorecard is the evaluation result for one contributor: raw counters stay
// on the Contributor, everything derived lives here.
type Scorecard struct {
	Contributor *Contributor

	// Team-relative normalizations of the base counters.
	Commits      MetricScores
	Lines        MetricScores
	FilesTouched MetricScores
	ActiveDays   MetricScores

	Productivity  DimensionScore
	Quality       DimensionScore
	Collaboration DimensionScore
	Satisfaction  DimensionScore

	Overall float64
}
