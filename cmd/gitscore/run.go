package main

import (
	"github.com/pescuma/gitscore/lib/importers/git"
	"github.com/pescuma/gitscore/lib/workspace"
)

type RunCmd struct {
	Paths   []string `arg:"" optional:"" help:"Paths to recursively search for git repositories." type:"existingpath"`
	Repo    string   `help:"URL of a remote repository to clone into a temporary directory and analyze."`
	Branch  string   `help:"Git branch to use to import data. Default is all branches."`
	Mapping string   `help:"CSV file mapping author emails to canonical names." type:"existingfile"`
	Survey  string   `help:"CSV file with satisfaction survey responses." type:"existingfile"`
	Exclude []string `help:"Glob patterns of file paths to ignore."`
	Output  string   `short:"o" help:"Write scorecards to this CSV file."`
	Print   bool     `default:"true" negatable:"" help:"Print a summary of the scorecards."`
}

func (c *RunCmd) Run(ctx *context) error {
	if c.Repo == "" && len(c.Paths) == 0 {
		c.Paths = []string{"."}
	}

	if c.Repo != "" && !git.IsValidURL(c.Repo) {
		return errInvalidRepoURL(c.Repo)
	}

	result, err := ctx.ws.Analyze(&workspace.AnalyzeOptions{
		Paths:       c.Paths,
		RepoURL:     c.Repo,
		Branch:      c.Branch,
		MappingFile: c.Mapping,
		SurveyFile:  c.Survey,
		Excludes:    c.Exclude,
	})
	if err != nil {
		return err
	}

	return output(ctx.ws, result, c.Output, c.Print)
}
