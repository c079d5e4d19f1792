package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Classify ClassifyCmd      `cmd:"" help:"Classify hands given on the command line"`
	Batch    BatchCmd         `cmd:"" help:"Classify a file of hands, one per line"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handeval"),
		kong.Description("Classify five-card poker hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
