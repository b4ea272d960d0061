package orm

import (
	"time"

	"github.com/pescuma/gitscore/lib/model"
)

type sqlConfig struct {
	Key   string `gorm:"primaryKey"`
	Value string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type sqlContributor struct {
	Key  string `gorm:"primaryKey"`
	Name string

	Names  []string `gorm:"serializer:json"`
	Emails []string `gorm:"serializer:json"`

	CommitsMerge   int
	CommitsBugfix  int
	CommitsFeature int

	LinesAdded   int
	LinesDeleted int
	FilesBinary  int
	FilesChanged int

	WeightedLines float64
	WeightedFiles float64

	Categories map[string]*model.CategoryCounters `gorm:"serializer:json"`

	ActiveDays   []string `gorm:"serializer:json"`
	FilesTouched []string `gorm:"serializer:json"`

	ReviewsGiven      int
	CommitsCoauthored int

	FirstSeen time.Time
	LastSeen  time.Time

	SharedFileRatio float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type sqlScorecard struct {
	ContributorKey string `gorm:"primaryKey"`

	Commits      model.MetricScores `gorm:"embedded;embeddedPrefix:commits_"`
	Lines        model.MetricScores `gorm:"embedded;embeddedPrefix:lines_"`
	FilesTouched model.MetricScores `gorm:"embedded;embeddedPrefix:files_"`
	ActiveDays   model.MetricScores `gorm:"embedded;embeddedPrefix:days_"`

	Productivity  model.DimensionScore `gorm:"embedded;embeddedPrefix:prod_"`
	Quality       model.DimensionScore `gorm:"embedded;embeddedPrefix:quality_"`
	Collaboration model.DimensionScore `gorm:"embedded;embeddedPrefix:collab_"`
	Satisfaction  model.DimensionScore `gorm:"embedded;embeddedPrefix:satisfaction_"`

	Overall float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toSqlContributor(c *model.Contributor) *sqlContributor {
	categories := map[string]*model.CategoryCounters{}
	for cat, counters := range c.Categories {
		categories[cat.String()] = counters
	}

	return &sqlContributor{
		Key:               c.Key,
		Name:              c.Name,
		Names:             c.ListNames(),
		Emails:            c.ListEmails(),
		CommitsMerge:      c.CommitsMerge,
		CommitsBugfix:     c.CommitsBugfix,
		CommitsFeature:    c.CommitsFeature,
		LinesAdded:        c.LinesAdded,
		LinesDeleted:      c.LinesDeleted,
		FilesBinary:       c.FilesBinary,
		FilesChanged:      c.FilesChanged,
		WeightedLines:     c.WeightedLines,
		WeightedFiles:     c.WeightedFiles,
		Categories:        categories,
		ActiveDays:        sortedSlice(c.ActiveDays),
		FilesTouched:      sortedSlice(c.FilesTouched),
		ReviewsGiven:      c.ReviewsGiven,
		CommitsCoauthored: c.CommitsCoauthored,
		FirstSeen:         c.FirstSeen,
		LastSeen:          c.LastSeen,
		SharedFileRatio:   c.SharedFileRatio,
	}
}

func (s *sqlContributor) toModel() *model.Contributor {
	result := model.NewContributor(s.Key)
	result.Name = s.Name

	for _, n := range s.Names {
		result.AddIdentity(n, "")
	}
	for _, e := range s.Emails {
		result.AddIdentity("", e)
	}

	result.CommitsMerge = s.CommitsMerge
	result.CommitsBugfix = s.CommitsBugfix
	result.CommitsFeature = s.CommitsFeature
	result.LinesAdded = s.LinesAdded
	result.LinesDeleted = s.LinesDeleted
	result.FilesBinary = s.FilesBinary
	result.FilesChanged = s.FilesChanged
	result.WeightedLines = s.WeightedLines
	result.WeightedFiles = s.WeightedFiles

	for name, counters := range s.Categories {
		for _, cat := range model.FileCategories() {
			if cat.String() == name {
				result.Categories[cat] = counters
			}
		}
	}

	result.ActiveDays.InsertSlice(s.ActiveDays)
	result.FilesTouched.InsertSlice(s.FilesTouched)
	result.ReviewsGiven = s.ReviewsGiven
	result.CommitsCoauthored = s.CommitsCoauthored
	result.FirstSeen = s.FirstSeen
	result.LastSeen = s.LastSeen
	result.SharedFileRatio = s.SharedFileRatio

	return result
}

func toSqlScorecard(card *model.Scorecard) *sqlScorecard {
	return &sqlScorecard{
		ContributorKey: card.Contributor.Key,
		Commits:        card.Commits,
		Lines:          card.Lines,
		FilesTouched:   card.FilesTouched,
		ActiveDays:     card.ActiveDays,
		Productivity:   card.Productivity,
		Quality:        card.Quality,
		Collaboration:  card.Collaboration,
		Satisfaction:   card.Satisfaction,
		Overall:        card.Overall,
	}
}

func (s *sqlScorecard) toModel(contributor *model.Contributor) *model.Scorecard {
	return &model.Scorecard{
		Contributor:   contributor,
		Commits:       s.Commits,
		Lines:         s.Lines,
		FilesTouched:  s.FilesTouched,
		ActiveDays:    s.ActiveDays,
		Productivity:  s.Productivity,
		Quality:       s.Quality,
		Collaboration: s.Collaboration,
		Satisfaction:  s.Satisfaction,
		Overall:       s.Overall,
	}
}
