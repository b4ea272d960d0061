package main

import (
	"fmt"

	"github.com/pescuma/gitscore/lib/workspace"
)

func errInvalidRepoURL(url string) error {
	return fmt.Errorf("not a recognized git repository URL: %v", url)
}

func output(ws *workspace.Workspace, result *workspace.AnalyzeResult, csvFile string, print bool) error {
	if csvFile != "" {
		err := ws.WriteCSV(csvFile, result.Scorecards)
		if err != nil {
			return err
		}

		ws.Console().Printf("Wrote %v scorecards to %v\n", len(result.Scorecards), csvFile)
	}

	if print {
		ws.PrintSummary(result)
	}

	return nil
}
