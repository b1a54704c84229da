package main

import (
	"fmt"

	"github.com/wolfxxx/blackjack/cmd/blackjack/shared"
	"github.com/wolfxxx/blackjack/internal/simulator"
)

// OptimizeCmd sweeps every strategy cell and writes the best action
// found into the table.
type OptimizeCmd struct {
	GameFlags `embed:""`

	Trials     int    `kong:"default='10000',help='Trials per cell and action'"`
	CountLevel *int   `kong:"help='Optimize a count-specific override layer instead of the base table'"`
	Output     string `kong:"required,help='Where to save the optimized strategy table'"`
}

func (c *OptimizeCmd) Run() error {
	cfg, table, logger, err := c.setup(1)
	if err != nil {
		return err
	}

	sim, err := simulator.New(cfg)
	if err != nil {
		return err
	}

	logger.Info("starting optimization sweep",
		"trials", c.Trials,
		"decks", cfg.NumDecks,
		"seed", cfg.Seed)

	ctx := shared.SetupSignalHandler(logger)
	result, err := sim.Optimize(ctx, table, c.CountLevel, c.Trials, func(p simulator.Progress) {
		logger.Info("progress", "cells", p.Completed, "total", p.Total,
			"percent", fmt.Sprintf("%.0f%%", p.Percent))
	})
	if err != nil {
		return err
	}

	styles := NewStyles()
	for _, ch := range result.Changes {
		fmt.Printf("%s vs %s: %s -> %s (EV %+.4f)\n",
			ch.Label, ch.Dealer, ch.From, styles.action(ch.To).Render(ch.To.String()), ch.EV)
	}
	if result.Cancelled {
		logger.Warn("sweep cancelled", "cells_done", result.CellsDone, "cells_total", result.CellsTotal)
	}
	logger.Info("sweep finished", "changes", len(result.Changes))

	if err := table.Save(c.Output); err != nil {
		return fmt.Errorf("saving strategy table: %w", err)
	}
	logger.Info("strategy table saved", "path", c.Output)
	return nil
}
