package git

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/pkg/errors"

	"github.com/pescuma/gitscore/lib/classify"
	"github.com/pescuma/gitscore/lib/consoles"
	"github.com/pescuma/gitscore/lib/filters"
	"github.com/pescuma/gitscore/lib/model"
	"github.com/pescuma/gitscore/lib/utils"
)

// Importer walks local git repositories and produces the same commit stream
// the text log parser produces, so everything downstream is source-agnostic.
type Importer struct {
	console consoles.Console
}

type Options struct {
	// Branch to walk. Empty walks all refs, which is what team-wide
	// scoring wants: work in unmerged branches still counts.
	Branch string

	MaxCommits *int

	PathFilter filters.PathFilter
}

func NewImporter(console consoles.Console) *Importer {
	return &Importer{console: console}
}

// Import reads the full history of every repository under dirs.
func (i *Importer) Import(dirs []string, opts *Options) ([]*model.Commit, error) {
	if opts == nil {
		opts = &Options{}
	}
	keep := opts.PathFilter
	if keep == nil {
		keep = filters.KeepAll
	}

	dirs, err := findRootDirs(dirs)
	if err != nil {
		return nil, err
	}

	var result []*model.Commit

	for _, dir := range dirs {
		gitRepo, err := git.PlainOpen(dir)
		if err != nil {
			i.console.Printf("Skipping '%s': %s\n", dir, err)
			continue
		}

		commits, err := i.importRepo(dir, gitRepo, opts, keep)
		if err != nil {
			return nil, err
		}

		result = append(result, commits...)
	}

	return result, nil
}

func (i *Importer) importRepo(dir string, gitRepo *git.Repository, opts *Options, keep filters.PathFilter) ([]*model.Commit, error) {
	total, err := i.countCommits(gitRepo, opts)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}

	i.console.Printf("%v: Importing %v commits...\n", dir, total)

	commitsIter, err := i.log(gitRepo, opts)
	if err != nil {
		return nil, err
	}

	result := make([]*model.Commit, 0, total)

	bar := utils.NewProgressBar(total)
	err = commitsIter.ForEach(func(gitCommit *object.Commit) error {
		if opts.MaxCommits != nil && len(result) >= *opts.MaxCommits {
			return storer.ErrStop
		}

		bar.Describe(gitCommit.Committer.When.Format("2006-01-02 15"))
		_ = bar.Add(1)

		result = append(result, i.convert(gitCommit, keep))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (i *Importer) convert(gitCommit *object.Commit, keep filters.PathFilter) *model.Commit {
	commit := &model.Commit{
		Hash:        gitCommit.Hash.String(),
		AuthorName:  strings.TrimSpace(gitCommit.Author.Name),
		AuthorEmail: strings.TrimSpace(gitCommit.Author.Email),
		Date:        gitCommit.Author.When,
		Message:     strings.TrimSpace(gitCommit.Message),
	}

	for _, p := range gitCommit.ParentHashes {
		commit.Parents = append(commit.Parents, p.String())
	}

	// Merge commits carry no file stats: what they integrate was already
	// counted on the branch commits, and diffing a merge against one
	// parent would double count the other side's work.
	if len(commit.Parents) > 1 {
		return commit
	}

	stats, err := gitCommit.Stats()
	if err != nil {
		// Stats can fail on exotic objects; the commit still counts.
		return commit
	}

	for _, s := range stats {
		if !keep(s.Name) {
			continue
		}

		commit.Files = append(commit.Files, &model.FileChange{
			Path:         s.Name,
			LinesAdded:   utils.Max(0, s.Addition),
			LinesDeleted: utils.Max(0, s.Deletion),
			// go-git reports binary files as 0/0. Mode changes look the
			// same; both count only as a touched file.
			Binary:   s.Addition == 0 && s.Deletion == 0,
			Category: classify.File(s.Name),
		})
	}

	return commit
}

func (i *Importer) countCommits(gitRepo *git.Repository, opts *Options) (int, error) {
	commitsIter, err := i.log(gitRepo, opts)
	if err != nil {
		return 0, err
	}

	result := 0
	err = commitsIter.ForEach(func(*object.Commit) error {
		result++
		return nil
	})
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (i *Importer) log(gitRepo *git.Repository, opts *Options) (object.CommitIter, error) {
	if opts.Branch == "" {
		return gitRepo.Log(&git.LogOptions{All: true})
	}

	hash, err := gitRepo.ResolveRevision(plumbing.Revision(opts.Branch))
	if err != nil {
		return nil, errors.Wrapf(err, "resolving branch %v", opts.Branch)
	}

	return gitRepo.Log(&git.LogOptions{From: *hash})
}
