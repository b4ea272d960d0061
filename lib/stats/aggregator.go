package stats

import (
	"github.com/hashicorp/go-set/v2"

	"github.com/pescuma/gitscore/lib/classify"
	"github.com/pescuma/gitscore/lib/model"
	"github.com/pescuma/gitscore/lib/people"
)

// Aggregator folds classified commits into per-contributor counters. Every
// operation is a commutative sum or set union, so commits can arrive in any
// order and the final state is the same.
type Aggregator struct {
	resolver     *people.Resolver
	contributors *model.Contributors
}

func NewAggregator(resolver *people.Resolver) *Aggregator {
	return &Aggregator{
		resolver:     resolver,
		contributors: model.NewContributors(),
	}
}

func (a *Aggregator) CountParseFailures(n int) {
	a.contributors.ParseFailures += n
}

func (a *Aggregator) Add(commit *model.Commit) {
	info := classify.Commit(commit)

	key, displayName := a.resolver.Resolve(commit.AuthorName, commit.AuthorEmail)

	c := a.contributors.GetOrCreate(key)
	if c.Name == "" {
		c.Name = displayName
	}
	c.AddIdentity(commit.AuthorName, commit.AuthorEmail)
	c.SeenAt(commit.Date)
	c.ActiveDays.Insert(commit.ActiveDay())

	switch {
	case info.IsMerge:
		c.CommitsMerge++
	case info.IsBugfix:
		c.CommitsBugfix++
	default:
		c.CommitsFeature++
	}

	for _, fc := range commit.Files {
		cat := c.GetOrCreateCategory(fc.Category)
		cat.LinesAdded += fc.LinesAdded
		cat.LinesDeleted += fc.LinesDeleted
		cat.FilesTouched++

		c.LinesAdded += fc.LinesAdded
		c.LinesDeleted += fc.LinesDeleted
		c.FilesChanged++
		if fc.Binary {
			c.FilesBinary++
		}

		weight := fc.Category.Weight()
		c.WeightedLines += float64(fc.LinesAdded) * weight
		c.WeightedFiles += weight

		c.FilesTouched.Insert(fc.Path)
	}

	// Review and co-author credit goes to the named contributor, not the
	// commit author, and resolves through the same mapping.
	for _, email := range info.Reviewers {
		a.creditContributor(email).ReviewsGiven++
	}
	for _, email := range info.Coauthors {
		a.creditContributor(email).CommitsCoauthored++
	}
}

func (a *Aggregator) creditContributor(email string) *model.Contributor {
	key, displayName := a.resolver.Resolve("", email)

	c := a.contributors.GetOrCreate(key)
	if c.Name == "" {
		c.Name = displayName
	}
	c.AddIdentity("", email)
	return c
}

// Finish runs the global joins that need the whole population and returns
// it. The result is read-only from here on.
func (a *Aggregator) Finish() *model.Contributors {
	computeSharedFileRatios(a.contributors)
	return a.contributors
}

// Shared-file ratio needs a pass across every contributor's file set: a
// file is shared when at least two different contributors touched it.
func computeSharedFileRatios(contributors *model.Contributors) {
	touchedBy := map[string]int{}

	all := contributors.List()
	for _, c := range all {
		c.FilesTouched.ForEach(func(path string) bool {
			touchedBy[path]++
			return true
		})
	}

	for _, c := range all {
		if c.FilesTouched.Size() == 0 {
			c.SharedFileRatio = 0
			continue
		}

		shared := set.New[string](10)
		c.FilesTouched.ForEach(func(path string) bool {
			if touchedBy[path] > 1 {
				shared.Insert(path)
			}
			return true
		})

		c.SharedFileRatio = float64(shared.Size()) / float64(c.FilesTouched.Size())
	}
}
