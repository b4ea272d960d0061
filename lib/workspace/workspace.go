package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/gitscore/lib/consoles"
	"github.com/pescuma/gitscore/lib/filters"
	"github.com/pescuma/gitscore/lib/gitlog"
	"github.com/pescuma/gitscore/lib/importers/git"
	"github.com/pescuma/gitscore/lib/model"
	"github.com/pescuma/gitscore/lib/people"
	"github.com/pescuma/gitscore/lib/reports"
	"github.com/pescuma/gitscore/lib/scoring"
	"github.com/pescuma/gitscore/lib/server"
	"github.com/pescuma/gitscore/lib/stats"
	"github.com/pescuma/gitscore/lib/storages"
	"github.com/pescuma/gitscore/lib/storages/orm"
	"github.com/pescuma/gitscore/lib/survey"
	"github.com/pescuma/gitscore/lib/utils"
)

type Workspace struct {
	console consoles.Console
	storage storages.Storage
}

func NewWorkspace(file string) (*Workspace, error) {
	if file == "" {
		if exists, err := utils.FileExists("./.gitscore"); err == nil && exists {
			file = "./.gitscore/gitscore.sqlite"
		} else {
			file = "~/.gitscore/gitscore.sqlite"
		}
	}

	console := consoles.NewStdOutConsole()

	var storage storages.Storage
	var err error
	switch {
	case file == ":memory:":
		storage, err = orm.NewGormStorage(orm.WithSqliteInMemory(), console)

	case strings.HasSuffix(file, ".sqlite"):
		file, err = utils.PathAbs(file)
		if err != nil {
			return nil, err
		}

		err = createWorkspaceDir(file)
		if err != nil {
			return nil, err
		}

		storage, err = orm.NewGormStorage(orm.WithSqlite(file), console)

	default:
		return nil, fmt.Errorf("unknown storage type for file %v", file)
	}
	if err != nil {
		return nil, err
	}

	return &Workspace{
		console: console,
		storage: storage,
	}, nil
}

func createWorkspaceDir(file string) error {
	path := filepath.Dir(file)

	if _, err := os.Stat(path); err != nil {
		fmt.Printf("Creating workspace at %v\n", path)
		err = os.MkdirAll(path, 0o700)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *Workspace) Close() error {
	return w.storage.Close()
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

type AnalyzeOptions struct {
	// Local repository paths, searched recursively for .git dirs.
	Paths []string
	// Remote URL to clone into a temp dir instead of using Paths.
	RepoURL string
	Branch  string

	// Pre-captured `git log` output (see gitlog.Format) instead of a
	// repository.
	LogFile string

	MappingFile string
	SurveyFile  string
	Excludes    []string
}

type AnalyzeResult struct {
	Scorecards    []*model.Scorecard
	ParseFailures int
}

// Analyze runs the whole pipeline: import, classify, aggregate, score and
// persist. Scoring needs the fully aggregated population, so nothing is
// emitted before the import finishes.
func (w *Workspace) Analyze(opts *AnalyzeOptions) (*AnalyzeResult, error) {
	resolver, err := w.newResolver(opts.MappingFile)
	if err != nil {
		return nil, err
	}

	commits, parseFailures, err := w.importCommits(opts)
	if err != nil {
		return nil, err
	}

	w.console.Printf("Aggregating %v commits...\n", len(commits))

	aggregator := stats.NewAggregator(resolver)
	aggregator.CountParseFailures(parseFailures)
	for _, commit := range commits {
		aggregator.Add(commit)
	}
	contributors := aggregator.Finish()

	satisfaction, err := w.loadSurvey(opts.SurveyFile, resolver)
	if err != nil {
		return nil, err
	}

	w.console.Printf("Scoring %v contributors...\n", contributors.Size())

	cards := scoring.Score(contributors, satisfaction)

	err = w.storage.WriteContributors(contributors)
	if err != nil {
		return nil, err
	}

	err = w.storage.WriteScorecards(cards)
	if err != nil {
		return nil, err
	}

	return &AnalyzeResult{
		Scorecards:    cards,
		ParseFailures: contributors.ParseFailures,
	}, nil
}

func (w *Workspace) newResolver(mappingFile string) (*people.Resolver, error) {
	var mapping map[string]string

	if mappingFile != "" {
		var err error
		mapping, err = people.LoadMapping(mappingFile)
		if err != nil {
			return nil, err
		}
	}

	return people.NewResolver(mapping), nil
}

func (w *Workspace) importCommits(opts *AnalyzeOptions) ([]*model.Commit, int, error) {
	if opts.LogFile != "" {
		f, err := os.Open(opts.LogFile)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "opening log file %v", opts.LogFile)
		}
		defer f.Close()

		result, err := gitlog.Parse(f)
		if err != nil {
			return nil, 0, err
		}

		return result.Commits, result.ParseFailures, nil
	}

	keep, err := filters.ParseExcludes(opts.Excludes)
	if err != nil {
		return nil, 0, err
	}

	paths := opts.Paths

	if opts.RepoURL != "" {
		dir, err := git.CloneTemp(w.console, opts.RepoURL)
		if err != nil {
			return nil, 0, err
		}
		defer os.RemoveAll(dir)

		paths = []string{dir}
	}

	importer := git.NewImporter(w.console)
	commits, err := importer.Import(paths, &git.Options{
		Branch:     opts.Branch,
		PathFilter: keep,
	})
	if err != nil {
		return nil, 0, err
	}

	return commits, 0, nil
}

func (w *Workspace) loadSurvey(surveyFile string, resolver *people.Resolver) (survey.Results, error) {
	if surveyFile == "" {
		return nil, nil
	}

	responses, err := survey.Load(surveyFile)
	if err != nil {
		return nil, err
	}

	return survey.Resolve(responses, resolver), nil
}

func (w *Workspace) WriteCSV(file string, cards []*model.Scorecard) error {
	f, err := os.Create(file)
	if err != nil {
		return errors.Wrapf(err, "creating %v", file)
	}
	defer f.Close()

	return reports.WriteCSV(f, cards)
}

func (w *Workspace) PrintSummary(result *AnalyzeResult) {
	reports.PrintSummary(w.console, result.Scorecards, result.ParseFailures)
}

func (w *Workspace) Serve(port uint) error {
	return server.Run(w.console, w.storage, &server.Options{Port: port})
}
