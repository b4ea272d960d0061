package reports

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/pescuma/gitscore/lib/model"
)

// Column order is part of the output contract: downstream spreadsheets key
// on it, don't reorder.
var csvHeader = []string{
	"name", "emails",
	"commits_non_merge", "commits_merge", "commits_bugfix", "commits_feature",
	"commits_total", "commits_coauthored", "reviews_given",
	"lines_added", "lines_deleted", "lines_total", "weighted_lines",
	"files_changed", "files_touched", "files_binary", "weighted_files",
	"days_active", "days_span", "first_commit", "last_commit",
	"lines_per_commit_avg", "commits_per_day", "churn_ratio",
	"files_per_commit_avg", "merge_ratio", "shared_file_ratio",
	"commits_team_pct", "lines_team_pct", "files_team_pct",
}

var csvScoreHeader = []string{
	"commits_rel", "commits_abs", "commits_stat", "commits_score",
	"lines_rel", "lines_abs", "lines_stat", "lines_score",
	"files_rel", "files_abs", "files_stat", "files_score",
	"days_rel", "days_abs", "days_stat", "days_score",
	"prod_rel", "prod_abs", "prod_stat", "prod_score",
	"quality_rel", "quality_abs", "quality_stat", "quality_score",
	"collab_rel", "collab_abs", "collab_stat", "collab_score",
	"satisfaction_rel", "satisfaction_abs", "satisfaction_stat", "satisfaction_score",
	"satisfaction_measured",
	"overall_score",
}

func WriteCSV(w io.Writer, cards []*model.Scorecard) error {
	cw := csv.NewWriter(w)

	header := append(append([]string{}, csvHeader...), categoryHeader()...)
	header = append(header, csvScoreHeader...)

	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing csv header")
	}

	totals := teamTotalsOf(cards)

	for _, card := range cards {
		if err := cw.Write(csvRow(card, totals)); err != nil {
			return errors.Wrap(err, "writing csv row")
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing csv")
}

type teamTotals struct {
	commits int
	lines   int
	files   int
}

func teamTotalsOf(cards []*model.Scorecard) teamTotals {
	var result teamTotals
	for _, card := range cards {
		result.commits += card.Contributor.CommitsTotal()
		result.lines += card.Contributor.LinesTotal()
		result.files += card.Contributor.FilesChanged
	}
	return result
}

func categoryHeader() []string {
	var result []string
	for _, cat := range model.FileCategories() {
		result = append(result, cat.String()+"_files", cat.String()+"_lines")
	}
	return result
}

func csvRow(card *model.Scorecard, totals teamTotals) []string {
	c := card.Contributor

	row := []string{
		c.Name,
		strings.Join(c.ListEmails(), " "),
		itoa(c.CommitsNonMerge()), itoa(c.CommitsMerge), itoa(c.CommitsBugfix), itoa(c.CommitsFeature),
		itoa(c.CommitsTotal()), itoa(c.CommitsCoauthored), itoa(c.ReviewsGiven),
		itoa(c.LinesAdded), itoa(c.LinesDeleted), itoa(c.LinesTotal()), ftoa(c.WeightedLines),
		itoa(c.FilesChanged), itoa(c.FilesTouched.Size()), itoa(c.FilesBinary), ftoa(c.WeightedFiles),
		itoa(c.ActiveDays.Size()), itoa(c.DaysSpan()), day(c.FirstSeen), day(c.LastSeen),
		ftoa(c.LinesPerCommitAvg()), ftoa(c.CommitsPerActiveDay()), ftoa(c.ChurnRatio()),
		ftoa(c.FilesPerCommitAvg()), ftoa(c.MergeRatio()), ftoa(c.SharedFileRatio),
		ftoa(pct(c.CommitsTotal(), totals.commits)),
		ftoa(pct(c.LinesTotal(), totals.lines)),
		ftoa(pct(c.FilesChanged, totals.files)),
	}

	for _, cat := range model.FileCategories() {
		counters := c.Categories[cat]
		if counters == nil {
			counters = &model.CategoryCounters{}
		}
		row = append(row, itoa(counters.FilesTouched), itoa(counters.LinesAdded+counters.LinesDeleted))
	}

	for _, m := range []model.MetricScores{
		card.Commits, card.Lines, card.FilesTouched, card.ActiveDays,
		card.Productivity.MetricScores, card.Quality.MetricScores,
		card.Collaboration.MetricScores, card.Satisfaction.MetricScores,
	} {
		row = append(row, ftoa(m.Relative), ftoa(m.Absolute), ftoa(m.Statistical), ftoa(m.Score))
	}

	row = append(row,
		strconv.FormatBool(card.Satisfaction.Measured),
		ftoa(card.Overall))

	return row
}

func pct(part int, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func day(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
