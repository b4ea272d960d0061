package stats_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/gitscore/lib/classify"
	"github.com/pescuma/gitscore/lib/model"
	"github.com/pescuma/gitscore/lib/people"
	"github.com/pescuma/gitscore/lib/stats"
)

func TestAddClassifiesCommits(t *testing.T) {
	t.Parallel()

	a := stats.NewAggregator(people.NewResolver(nil))
	a.Add(commit("alice@example.com", "2024-03-01T10:00:00Z", 1, "Fix broken link"))
	a.Add(commit("alice@example.com", "2024-03-01T11:00:00Z", 1, "Add export"))
	a.Add(commit("alice@example.com", "2024-03-02T10:00:00Z", 2, "Merge branch 'x'"))

	cs := a.Finish()
	require.Equal(t, 1, cs.Size())

	c := cs.Get("alice@example.com")
	require.NotNil(t, c)
	assert.Equal(t, 1, c.CommitsBugfix)
	assert.Equal(t, 1, c.CommitsFeature)
	assert.Equal(t, 1, c.CommitsMerge)
	assert.Equal(t, c.CommitsMerge+c.CommitsBugfix+c.CommitsFeature, c.CommitsTotal())
	assert.Equal(t, 2, c.ActiveDays.Size())
}

func TestAddAccumulatesFileCounters(t *testing.T) {
	t.Parallel()

	c1 := commit("alice@example.com", "2024-03-01T10:00:00Z", 1, "Add feature",
		file("lib/app.go", 10, 2),
		file("docs/guide.md", 5, 0))
	c2 := commit("alice@example.com", "2024-03-02T10:00:00Z", 1, "More work",
		file("lib/app.go", 3, 1))

	a := stats.NewAggregator(people.NewResolver(nil))
	a.Add(c1)
	a.Add(c2)

	c := a.Finish().Get("alice@example.com")
	require.NotNil(t, c)

	assert.Equal(t, 18, c.LinesAdded)
	assert.Equal(t, 3, c.LinesDeleted)
	assert.Equal(t, 21, c.LinesTotal())
	assert.Equal(t, 3, c.FilesChanged)
	assert.Equal(t, 2, c.FilesTouched.Size())
	assert.InDelta(t, 1.5, c.FilesPerCommitAvg(), 0.0001)

	code := c.Categories[model.FileCode]
	require.NotNil(t, code)
	assert.Equal(t, 13, code.LinesAdded)
	assert.Equal(t, 2, code.FilesTouched)

	// Code weighs 1.0 and documentation 0.4.
	assert.InDelta(t, 13*1.0+5*0.4, c.WeightedLines, 0.0001)
	assert.InDelta(t, 2*1.0+1*0.4, c.WeightedFiles, 0.0001)
}

func TestRepeatedFileTouchesAccumulate(t *testing.T) {
	t.Parallel()

	a := stats.NewAggregator(people.NewResolver(nil))

	files := make([]*model.FileChange, 10)
	for i := range files {
		files[i] = file(fmt.Sprintf("file-%d.go", i), 1, 0)
	}
	for i := 0; i < 30; i++ {
		a.Add(commit("alice@example.com", fmt.Sprintf("2024-03-01T%02d:00:00Z", i%24), 1,
			fmt.Sprintf("Change %d", i), files...))
	}

	c := a.Finish().Get("alice@example.com")
	require.NotNil(t, c)

	assert.Equal(t, 300, c.FilesChanged)
	assert.Equal(t, 10, c.FilesTouched.Size())
	assert.InDelta(t, 10.0, c.FilesPerCommitAvg(), 0.0001)
}

func TestAddIsOrderIndependent(t *testing.T) {
	t.Parallel()

	commits := []*model.Commit{
		commit("alice@example.com", "2024-03-01T10:00:00Z", 1, "Fix bug", file("a.go", 10, 5)),
		commit("alice@example.com", "2024-03-02T10:00:00Z", 2, "Merge branch 'y'"),
		commit("bob@example.com", "2024-03-03T10:00:00Z", 1, "Add stuff", file("a.go", 1, 0), file("b.go", 2, 0)),
		commit("alice@example.com", "2024-03-04T10:00:00Z", 1, "More", file("c.md", 7, 1)),
	}

	forward := stats.NewAggregator(people.NewResolver(nil))
	for _, c := range commits {
		forward.Add(c)
	}

	backward := stats.NewAggregator(people.NewResolver(nil))
	for i := len(commits) - 1; i >= 0; i-- {
		backward.Add(commits[i])
	}

	a := forward.Finish()
	b := backward.Finish()

	require.Equal(t, a.Size(), b.Size())
	for _, ca := range a.List() {
		cb := b.Get(ca.Key)
		require.NotNil(t, cb)
		assert.Equal(t, ca.CommitsTotal(), cb.CommitsTotal())
		assert.Equal(t, ca.LinesTotal(), cb.LinesTotal())
		assert.Equal(t, ca.FilesChanged, cb.FilesChanged)
		assert.Equal(t, ca.FilesTouched.Size(), cb.FilesTouched.Size())
		assert.Equal(t, ca.ActiveDays.Size(), cb.ActiveDays.Size())
		assert.Equal(t, ca.FirstSeen, cb.FirstSeen)
		assert.Equal(t, ca.LastSeen, cb.LastSeen)
		assert.InDelta(t, ca.SharedFileRatio, cb.SharedFileRatio, 0.0001)
	}
}

func TestTrailerCreditGoesToNamedContributor(t *testing.T) {
	t.Parallel()

	c := commit("alice@example.com", "2024-03-01T10:00:00Z", 1,
		"Add feature\n\nReviewed-by: Bob <bob@example.com>\nCo-authored-by: Carol <carol@example.com>",
		file("a.go", 1, 0))

	a := stats.NewAggregator(people.NewResolver(nil))
	a.Add(c)
	cs := a.Finish()

	alice := cs.Get("alice@example.com")
	bob := cs.Get("bob@example.com")
	carol := cs.Get("carol@example.com")
	require.NotNil(t, alice)
	require.NotNil(t, bob)
	require.NotNil(t, carol)

	assert.Equal(t, 0, alice.ReviewsGiven)
	assert.Equal(t, 1, bob.ReviewsGiven)
	assert.Equal(t, 0, bob.CommitsTotal())
	assert.Equal(t, 1, carol.CommitsCoauthored)
}

func TestMappedIdentitiesFoldIntoOneContributor(t *testing.T) {
	t.Parallel()

	r := people.NewResolver(map[string]string{
		"alice@example.com": "Alice Smith",
		"asmith@work.com":   "Alice Smith",
	})

	a := stats.NewAggregator(r)
	a.Add(commit("alice@example.com", "2024-03-01T10:00:00Z", 1, "One", file("a.go", 1, 0)))
	a.Add(commit("asmith@work.com", "2024-03-02T10:00:00Z", 1, "Two", file("b.go", 1, 0)))

	cs := a.Finish()
	require.Equal(t, 1, cs.Size())

	c := cs.Get("Alice Smith")
	require.NotNil(t, c)
	assert.Equal(t, 2, c.CommitsTotal())
	assert.Equal(t, []string{"alice@example.com", "asmith@work.com"}, c.ListEmails())
}

func TestSharedFileRatio(t *testing.T) {
	t.Parallel()

	a := stats.NewAggregator(people.NewResolver(nil))

	// Alice and Bob touch the exact same files, Alice with 10 commits and
	// Bob with 2. Every file of both is shared.
	for i := 0; i < 10; i++ {
		a.Add(commit("alice@example.com", fmt.Sprintf("2024-03-%02dT10:00:00Z", i+1), 1,
			fmt.Sprintf("Change %d", i), file("a.go", 1, 0), file("b.go", 1, 0)))
	}
	for i := 0; i < 2; i++ {
		a.Add(commit("bob@example.com", fmt.Sprintf("2024-03-%02dT12:00:00Z", i+1), 1,
			fmt.Sprintf("Tweak %d", i), file("a.go", 1, 0), file("b.go", 1, 0)))
	}
	a.Add(commit("carol@example.com", "2024-03-05T10:00:00Z", 1, "Solo work", file("c.go", 1, 0)))

	cs := a.Finish()

	assert.InDelta(t, 1.0, cs.Get("alice@example.com").SharedFileRatio, 0.0001)
	assert.InDelta(t, 1.0, cs.Get("bob@example.com").SharedFileRatio, 0.0001)
	assert.InDelta(t, 0.0, cs.Get("carol@example.com").SharedFileRatio, 0.0001)
}

func TestCountParseFailures(t *testing.T) {
	t.Parallel()

	a := stats.NewAggregator(people.NewResolver(nil))
	a.CountParseFailures(3)
	a.CountParseFailures(2)

	assert.Equal(t, 5, a.Finish().ParseFailures)
}

func commit(email string, date string, parents int, message string, files ...*model.FileChange) *model.Commit {
	ts, err := time.Parse(time.RFC3339, date)
	if err != nil {
		panic(err)
	}

	var ps []string
	for i := 0; i < parents; i++ {
		ps = append(ps, fmt.Sprintf("p%d", i))
	}

	return &model.Commit{
		Hash:        fmt.Sprintf("%v-%v", email, date),
		AuthorName:  email,
		AuthorEmail: email,
		Date:        ts,
		Parents:     ps,
		Message:     message,
		Files:       files,
	}
}

func file(path string, added, deleted int) *model.FileChange {
	return &model.FileChange{
		Path:         path,
		LinesAdded:   added,
		LinesDeleted: deleted,
		Category:     classify.File(path),
	}
}
