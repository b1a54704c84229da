package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Run a Monte Carlo simulation against a strategy"`
	Optimize OptimizeCmd      `cmd:"" help:"Search for the highest-EV action in every strategy cell"`
	Analyze  AnalyzeCmd       `cmd:"" help:"Estimate per-action EV for a specific deal"`
	Play     PlayCmd          `cmd:"" help:"Play hands one at a time against the live strategy"`
	Strategy StrategyCmd      `cmd:"" help:"Inspect, initialize, and convert strategy tables"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Blackjack strategy simulator and optimizer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
