package main

import (
	"github.com/pescuma/gitscore/lib/workspace"
)

type ParseLogCmd struct {
	File    string `arg:"" help:"File with the output of git log, captured with the expected format." type:"existingfile"`
	Mapping string `help:"CSV file mapping author emails to canonical names." type:"existingfile"`
	Survey  string `help:"CSV file with satisfaction survey responses." type:"existingfile"`
	Output  string `short:"o" help:"Write scorecards to this CSV file."`
	Print   bool   `default:"true" negatable:"" help:"Print a summary of the scorecards."`
}

func (c *ParseLogCmd) Run(ctx *context) error {
	result, err := ctx.ws.Analyze(&workspace.AnalyzeOptions{
		LogFile:     c.File,
		MappingFile: c.Mapping,
		SurveyFile:  c.Survey,
	})
	if err != nil {
		return err
	}

	return output(ctx.ws, result, c.Output, c.Print)
}
