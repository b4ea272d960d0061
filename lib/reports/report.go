package reports

import (
	"sort"

	"github.com/aquilax/truncate"
	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"github.com/samber/lo"

	"github.com/pescuma/gitscore/lib/consoles"
	"github.com/pescuma/gitscore/lib/model"
)

var plural = pluralize.NewClient()

// PrintSummary writes the human-readable evaluation report: overall
// rankings, per-dimension leaders and a normalization breakdown for the top
// contributor.
func PrintSummary(console consoles.Console, cards []*model.Scorecard, parseFailures int) {
	sorted := append([]*model.Scorecard(nil), cards...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Overall > sorted[j].Overall
	})

	console.Printf("Evaluated %v %v\n",
		humanize.Comma(int64(len(sorted))), plural.Pluralize("contributor", len(sorted), false))
	if parseFailures > 0 {
		console.Printf("Skipped %v malformed log %v\n",
			humanize.Comma(int64(parseFailures)), plural.Pluralize("entry", parseFailures, false))
	}

	console.Printf("\nOverall rankings:\n")
	for i, card := range sorted {
		c := card.Contributor
		console.Printf("%3d. %-40v overall %.3f\n", i+1, shortName(c), card.Overall)
		console.Printf("     productivity %.3f | quality %.3f | collaboration %.3f%v\n",
			card.Productivity.Score, card.Quality.Score, card.Collaboration.Score,
			satisfactionColumn(card))
		console.Printf("     %v commits, %v lines, %v files, %v active days\n",
			humanize.Comma(int64(c.CommitsTotal())),
			humanize.Comma(int64(c.LinesTotal())),
			humanize.Comma(int64(c.FilesTouched.Size())),
			humanize.Comma(int64(c.ActiveDays.Size())))
	}

	printLeaders(console, sorted)

	if len(sorted) > 0 {
		printNormalizations(console, sorted[0])
	}
}

func satisfactionColumn(card *model.Scorecard) string {
	if !card.Satisfaction.Measured {
		return " | satisfaction not measured"
	}
	return " | satisfaction " + ftoa(card.Satisfaction.Score)
}

func printLeaders(console consoles.Console, cards []*model.Scorecard) {
	if len(cards) == 0 {
		return
	}

	console.Printf("\nDimension leaders:\n")

	dims := []struct {
		name  string
		score func(*model.Scorecard) float64
	}{
		{"productivity", func(s *model.Scorecard) float64 { return s.Productivity.Score }},
		{"quality", func(s *model.Scorecard) float64 { return s.Quality.Score }},
		{"collaboration", func(s *model.Scorecard) float64 { return s.Collaboration.Score }},
	}

	for _, d := range dims {
		top := lo.MaxBy(cards, func(a *model.Scorecard, b *model.Scorecard) bool {
			return d.score(a) > d.score(b)
		})
		console.Printf("  %-15v %-40v %.3f\n", d.name, shortName(top.Contributor), d.score(top))
	}
}

func printNormalizations(console consoles.Console, card *model.Scorecard) {
	console.Printf("\nNormalization breakdown for %v:\n", shortName(card.Contributor))

	dims := []struct {
		name string
		s    model.DimensionScore
	}{
		{"productivity", card.Productivity},
		{"quality", card.Quality},
		{"collaboration", card.Collaboration},
	}

	for _, d := range dims {
		console.Printf("  %-15v relative %.3f | absolute %.3f | statistical %.3f -> %.3f\n",
			d.name, d.s.Relative, d.s.Absolute, d.s.Statistical, d.s.Score)
	}
}

func shortName(c *model.Contributor) string {
	name := c.Name
	if name == "" {
		name = c.Key
	}
	return truncate.Truncate(name, 40, "...", truncate.PositionEnd)
}
