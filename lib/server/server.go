package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/gitscore/lib/consoles"
	"github.com/pescuma/gitscore/lib/model"
	"github.com/pescuma/gitscore/lib/storages"
)

type Options struct {
	Port uint
}

// Run serves previously computed scorecards as JSON.
func Run(console consoles.Console, storage storages.Storage, opts *Options) error {
	s := newServer(opts)

	console.Printf("Loading existing results...\n")

	err := s.load(storage)
	if err != nil {
		return err
	}

	console.Printf("Starting server on port %v...\n", s.opts.Port)

	return s.run()
}

type server struct {
	opts *Options

	cards []*model.Scorecard
}

func newServer(opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = 2428
	}

	return &server{
		opts: opts,
	}
}

func (s *server) load(storage storages.Storage) error {
	var err error

	s.cards, err = storage.LoadScorecards()
	return err
}

func (s *server) run() error {
	return s.router().Run(fmt.Sprintf(":%v", s.opts.Port))
}

func (s *server) router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/api/contributors", s.listContributors)
	r.GET("/api/scorecards", s.listScorecards)
	r.GET("/api/scorecards/:key", s.getScorecard)

	return r
}

func (s *server) listContributors(c *gin.Context) {
	c.JSON(http.StatusOK, lo.Map(s.cards, func(card *model.Scorecard, _ int) gin.H {
		return contributorJSON(card.Contributor)
	}))
}

func (s *server) listScorecards(c *gin.Context) {
	c.JSON(http.StatusOK, lo.Map(s.cards, func(card *model.Scorecard, _ int) gin.H {
		return scorecardJSON(card)
	}))
}

func (s *server) getScorecard(c *gin.Context) {
	key := c.Param("key")

	card, ok := lo.Find(s.cards, func(card *model.Scorecard) bool {
		return card.Contributor.Key == key
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown contributor"})
		return
	}

	c.JSON(http.StatusOK, scorecardJSON(card))
}

func contributorJSON(contributor *model.Contributor) gin.H {
	return gin.H{
		"key":                contributor.Key,
		"name":               contributor.Name,
		"emails":             contributor.ListEmails(),
		"commitsTotal":       contributor.CommitsTotal(),
		"commitsMerge":       contributor.CommitsMerge,
		"commitsBugfix":      contributor.CommitsBugfix,
		"commitsFeature":     contributor.CommitsFeature,
		"linesAdded":         contributor.LinesAdded,
		"linesDeleted":       contributor.LinesDeleted,
		"filesChanged":       contributor.FilesChanged,
		"filesTouched":       contributor.FilesTouched.Size(),
		"activeDays":         contributor.ActiveDays.Size(),
		"reviewsGiven":       contributor.ReviewsGiven,
		"commitsCoauthored":  contributor.CommitsCoauthored,
		"sharedFileRatio":    contributor.SharedFileRatio,
		"firstSeen":          contributor.FirstSeen,
		"lastSeen":           contributor.LastSeen,
	}
}

func scorecardJSON(card *model.Scorecard) gin.H {
	return gin.H{
		"contributor":   contributorJSON(card.Contributor),
		"commits":       card.Commits,
		"lines":         card.Lines,
		"filesTouched":  card.FilesTouched,
		"activeDays":    card.ActiveDays,
		"productivity":  card.Productivity,
		"quality":       card.Quality,
		"collaboration": card.Collaboration,
		"satisfaction":  card.Satisfaction,
		"overall":       card.Overall,
	}
}
