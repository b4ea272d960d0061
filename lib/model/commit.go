package model

import (
	"time"
)

// Commit is one parsed history entry. It is created once by a parser or
// importer and never mutated afterwards.
type Commit struct {
	Hash        string
	AuthorName  string
	AuthorEmail string
	Date        time.Time
	Parents     []string
	Message     string
	Files       []*FileChange
}

func (c *Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

// ActiveDay is the calendar date of the commit in the timezone encoded in
// its timestamp, so results don't depend on where the tool runs.
func (c *Commit) ActiveDay() string {
	return c.Date.Format("2006-01-02")
}

// FileChange belongs to exactly one Commit. For binary files git reports no
// line counts; they stay 0/0 but the file still counts as touched.
type FileChange struct {
	Path         string
	LinesAdded   int
	LinesDeleted int
	Binary       bool
	Category     FileCategory
}
