package main

import (
	"fmt"

	"github.com/wolfxxx/blackjack/internal/strategy"
)

// StrategyCmd groups strategy table utilities.
type StrategyCmd struct {
	Show StrategyShowCmd `cmd:"" help:"Render a strategy table as an action grid"`
	Init StrategyInitCmd `cmd:"" help:"Write the built-in basic strategy to a file"`
}

// StrategyShowCmd renders a table.
type StrategyShowCmd struct {
	File string `kong:"help='Strategy table JSON file (default: built-in basic strategy)'"`
}

func (c *StrategyShowCmd) Run() error {
	table := strategy.Basic()
	title := "Basic strategy"
	if c.File != "" {
		loaded, err := strategy.Load(c.File)
		if err != nil {
			return err
		}
		table = loaded
		title = c.File
	}
	fmt.Println(NewStyles().RenderStrategyTable(table, title))
	return nil
}

// StrategyInitCmd seeds a strategy file with basic strategy, ready for
// manual editing or optimization.
type StrategyInitCmd struct {
	Output string `kong:"arg,help='Destination file'"`
}

func (c *StrategyInitCmd) Run() error {
	if err := strategy.Basic().Save(c.Output); err != nil {
		return err
	}
	fmt.Printf("wrote basic strategy to %s\n", c.Output)
	return nil
}
