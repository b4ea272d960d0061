package model

import (
	"sort"
	"time"

	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"
)

// Contributor is the unit of evaluation: one logical person, possibly seen
// under several name/email identities. Counters are mutated additively while
// the history is folded in and become read-only at scoring time.
type Contributor struct {
	Key  string
	Name string

	names  map[string]bool
	emails map[string]bool

	CommitsMerge   int
	CommitsBugfix  int
	CommitsFeature int

	LinesAdded   int
	LinesDeleted int
	FilesBinary  int

	// Every file change counts here, touching the same file in ten
	// commits counts ten times. FilesTouched below holds the unique set.
	FilesChanged int

	// Unweighted totals are kept next to the weighted ones: weighted for
	// fairness, unweighted for transparency.
	WeightedLines float64
	WeightedFiles float64

	Categories map[FileCategory]*CategoryCounters

	ActiveDays   *set.Set[string]
	FilesTouched *set.Set[string]

	ReviewsGiven      int
	CommitsCoauthored int

	FirstSeen time.Time
	LastSeen  time.Time

	// |files touched by this contributor and at least one other| /
	// |files touched by this contributor|. Filled by a second pass once
	// the whole population is folded.
	SharedFileRatio float64
}

type CategoryCounters struct {
	LinesAdded   int
	LinesDeleted int
	FilesTouched int
}

func NewContributor(key string) *Contributor {
	return &Contributor{
		Key:          key,
		names:        map[string]bool{},
		emails:       map[string]bool{},
		Categories:   map[FileCategory]*CategoryCounters{},
		ActiveDays:   set.New[string](10),
		FilesTouched: set.New[string](100),
	}
}

func (c *Contributor) AddIdentity(name string, email string) {
	if name != "" {
		c.names[name] = true
	}
	if email != "" {
		c.emails[email] = true
	}
}

func (c *Contributor) ListNames() []string {
	result := lo.Keys(c.names)
	sort.Strings(result)
	return result
}

func (c *Contributor) ListEmails() []string {
	result := lo.Keys(c.emails)
	sort.Strings(result)
	return result
}

func (c *Contributor) GetOrCreateCategory(cat FileCategory) *CategoryCounters {
	result, ok := c.Categories[cat]
	if !ok {
		result = &CategoryCounters{}
		c.Categories[cat] = result
	}
	return result
}

func (c *Contributor) SeenAt(ts ...time.Time) {
	empty := time.Time{}

	for _, t := range ts {
		t = t.UTC().Round(time.Second)

		if c.FirstSeen == empty || t.Before(c.FirstSeen) {
			c.FirstSeen = t
		}
		if c.LastSeen == empty || t.After(c.LastSeen) {
			c.LastSeen = t
		}
	}
}

func (c *Contributor) CommitsNonMerge() int {
	return c.CommitsBugfix + c.CommitsFeature
}

func (c *Contributor) CommitsTotal() int {
	return c.CommitsNonMerge() + c.CommitsMerge
}

func (c *Contributor) LinesTotal() int {
	return c.LinesAdded + c.LinesDeleted
}

func (c *Contributor) LinesPerCommitAvg() float64 {
	if c.CommitsNonMerge() == 0 {
		return 0
	}
	return float64(c.LinesTotal()) / float64(c.CommitsNonMerge())
}

func (c *Contributor) CommitsPerActiveDay() float64 {
	if c.ActiveDays.Size() == 0 {
		return 0
	}
	return float64(c.CommitsNonMerge()) / float64(c.ActiveDays.Size())
}

// ChurnRatio is deletions over additions: a proxy for rework vs. new
// development.
func (c *Contributor) ChurnRatio() float64 {
	if c.LinesAdded == 0 {
		return 0
	}
	return float64(c.LinesDeleted) / float64(c.LinesAdded)
}

// FilesPerCommitAvg is file-change events per commit, not unique files: a
// contributor reworking the same ten files in every commit still averages
// ten per commit.
func (c *Contributor) FilesPerCommitAvg() float64 {
	if c.CommitsNonMerge() == 0 {
		return 0
	}
	return float64(c.FilesChanged) / float64(c.CommitsNonMerge())
}

func (c *Contributor) MergeRatio() float64 {
	if c.CommitsTotal() == 0 {
		return 0
	}
	return float64(c.CommitsMerge) / float64(c.CommitsTotal())
}

// DaysSpan is the calendar-date difference, so an evening commit followed by
// one the next morning spans a day even though less than 24h passed.
func (c *Contributor) DaysSpan() int {
	if c.FirstSeen.IsZero() || c.LastSeen.IsZero() {
		return 0
	}
	return int(dayStart(c.LastSeen).Sub(dayStart(c.FirstSeen)).Hours() / 24)
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
