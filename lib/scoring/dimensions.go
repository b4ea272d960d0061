package scoring

import (
	"github.com/samber/lo"

	"github.com/pescuma/gitscore/lib/model"
)

// Productivity sub-weights: volume counts most, consistency least.
const (
	prodCommitsWeight    = 0.40
	prodLinesWeight      = 0.30
	prodFilesWeight      = 0.20
	prodActiveDaysWeight = 0.10
)

// Quality sub-weights over the banded scores.
const (
	qualityChurnWeight      = 0.35
	qualityCommitSizeWeight = 0.25
	qualityFilesWeight      = 0.25
	qualityMergeWeight      = 0.15
)

// Collaboration sub-weights.
const (
	collabMergesWeight      = 0.40
	collabSharedWeight      = 0.35
	collabSpanWeight        = 0.25
)

// Dimension weights for the overall score. They sum to 1.0 in both shapes;
// when a survey is present satisfaction joins as an equal fourth dimension.
const (
	overallProductivityWeight  = 0.333
	overallQualityWeight       = 0.333
	overallCollaborationWeight = 0.334

	overallWithSurveyWeight = 0.25
)

// Score turns the fully aggregated population into scorecards. It needs the
// whole population at once: every normalization is computed against the same
// metric snapshot it was measured in.
//
// satisfaction maps contributor keys to raw [0,1] survey scores; nil means
// no survey was supplied, and the satisfaction dimension is reported as
// unmeasured instead of silently counting as zero.
func Score(contributors *model.Contributors, satisfaction map[string]float64) []*model.Scorecard {
	all := contributors.List()

	commitsStats := statsOf(all, func(c *model.Contributor) float64 { return float64(c.CommitsTotal()) })
	linesStats := statsOf(all, func(c *model.Contributor) float64 { return float64(c.LinesTotal()) })
	filesStats := statsOf(all, func(c *model.Contributor) float64 { return float64(c.FilesTouched.Size()) })
	daysStats := statsOf(all, func(c *model.Contributor) float64 { return float64(c.ActiveDays.Size()) })

	prodRaw := lo.Map(all, func(c *model.Contributor, _ int) float64 { return productivityRaw(c) })
	qualityRaw := lo.Map(all, func(c *model.Contributor, _ int) float64 { return qualityComposite(c) })
	collabRaw := lo.Map(all, func(c *model.Contributor, _ int) float64 { return collaborationComposite(c) })

	prodStats := NewTeamStatistics(prodRaw)
	qualityStats := NewTeamStatistics(qualityRaw)
	collabStats := NewTeamStatistics(collabRaw)

	var satStats *TeamStatistics
	if satisfaction != nil {
		satStats = NewTeamStatistics(lo.Map(all, func(c *model.Contributor, _ int) float64 {
			return satisfaction[c.Key]
		}))
	}

	result := make([]*model.Scorecard, 0, len(all))
	for i, c := range all {
		card := &model.Scorecard{
			Contributor:  c,
			Commits:      Normalize(float64(c.CommitsTotal()), commitsStats),
			Lines:        Normalize(float64(c.LinesTotal()), linesStats),
			FilesTouched: Normalize(float64(c.FilesTouched.Size()), filesStats),
			ActiveDays:   Normalize(float64(c.ActiveDays.Size()), daysStats),
		}

		card.Productivity = dimension(prodRaw[i], prodStats,
			commitCountThreshold.Score(float64(c.CommitsNonMerge())))
		card.Quality = dimension(qualityRaw[i], qualityStats, qualityRaw[i])
		card.Collaboration = dimension(collabRaw[i], collabStats, collabRaw[i])

		if satisfaction != nil {
			raw := satisfaction[c.Key]
			card.Satisfaction = dimension(raw, satStats, raw)
		}

		card.Overall = overall(card)

		result = append(result, card)
	}

	return result
}

func statsOf(all []*model.Contributor, metric func(*model.Contributor) float64) *TeamStatistics {
	return NewTeamStatistics(lo.Map(all, func(c *model.Contributor, _ int) float64 { return metric(c) }))
}

// dimension combines the team-relative normalizations of the raw dimension
// value with the dimension's own absolute score.
func dimension(raw float64, stats *TeamStatistics, absolute float64) model.DimensionScore {
	result := model.DimensionScore{Measured: true}
	result.Relative = stats.Relative(raw)
	result.Absolute = absolute
	result.Statistical = stats.Statistical(raw)
	result.Score = (result.Relative + result.Absolute + result.Statistical) / 3
	return result
}

// productivityRaw is an unnormalized volume indicator. It is only ever
// compared within one population, so the mixed units don't matter.
func productivityRaw(c *model.Contributor) float64 {
	return prodCommitsWeight*float64(c.CommitsNonMerge()) +
		prodLinesWeight*c.WeightedLines +
		prodFilesWeight*c.WeightedFiles +
		prodActiveDaysWeight*float64(c.ActiveDays.Size())
}

func qualityComposite(c *model.Contributor) float64 {
	return qualityChurnWeight*churnRatioThreshold.Score(c.ChurnRatio()) +
		qualityCommitSizeWeight*commitSizeBand.Score(c.LinesPerCommitAvg()) +
		qualityFilesWeight*filesPerCommitBand.Score(c.FilesPerCommitAvg()) +
		qualityMergeWeight*mergeRatioThreshold.Score(c.MergeRatio())
}

func collaborationComposite(c *model.Contributor) float64 {
	return collabMergesWeight*mergeActivityThreshold.Score(float64(c.CommitsMerge)) +
		collabSharedWeight*sharedFilesThreshold.Score(c.SharedFileRatio) +
		collabSpanWeight*activeSpanThreshold.Score(float64(c.DaysSpan()))
}

func overall(card *model.Scorecard) float64 {
	if card.Satisfaction.Measured {
		return overallWithSurveyWeight * (card.Productivity.Score +
			card.Quality.Score +
			card.Collaboration.Score +
			card.Satisfaction.Score)
	}

	return overallProductivityWeight*card.Productivity.Score +
		overallQualityWeight*card.Quality.Score +
		overallCollaborationWeight*card.Collaboration.Score
}
