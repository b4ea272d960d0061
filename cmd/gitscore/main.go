package main

import (
	"github.com/alecthomas/kong"

	"github.com/pescuma/gitscore/lib/workspace"
)

var cli struct {
	Workspace string `short:"w" help:"Workspace to store data. Default is ./.gitscore or ~/.gitscore if that does not exist. Use :memory: to avoid storing anything." type:"path"`

	Run      RunCmd      `cmd:"" help:"Analyze git repositories and score contributors."`
	ParseLog ParseLogCmd `cmd:"" help:"Analyze a pre-captured git log file and score contributors."`
	Serve    ServeCmd    `cmd:"" help:"Start a web server to browse computed scorecards."`
}

type context struct {
	ws *workspace.Workspace
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	ws, err := workspace.NewWorkspace(cli.Workspace)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&context{
		ws: ws,
	})
	_ = ws.Close()
	ctx.FatalIfErrorf(err)
}
