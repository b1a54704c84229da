package main

import (
	"fmt"

	"github.com/wolfxxx/blackjack/cmd/blackjack/shared"
	"github.com/wolfxxx/blackjack/internal/simulator"
)

// SimulateCmd runs a batch of hands and reports aggregate EV.
type SimulateCmd struct {
	GameFlags `embed:""`

	Hands   int `kong:"default='100000',help='Number of hands to simulate'"`
	Workers int `kong:"default='1',help='Parallel workers, each with its own shoe'"`
}

func (c *SimulateCmd) Run() error {
	cfg, table, logger, err := c.setup(c.Hands)
	if err != nil {
		return err
	}
	if c.Workers > 1 {
		cfg.Workers = c.Workers
	}

	sim, err := simulator.New(cfg)
	if err != nil {
		return err
	}

	logger.Info("starting simulation",
		"hands", cfg.Hands,
		"decks", cfg.NumDecks,
		"counting", string(cfg.Counting),
		"workers", cfg.Workers,
		"seed", cfg.Seed)

	ctx := shared.SetupSignalHandler(logger)
	lastPercent := -1
	stats, err := sim.RunParallel(ctx, table, func(p simulator.Progress) {
		percent := int(p.Percent)
		if percent/10 > lastPercent/10 {
			logger.Info("progress", "completed", p.Completed, "total", p.Total,
				"percent", fmt.Sprintf("%.0f%%", p.Percent))
		}
		lastPercent = percent
	})
	if err != nil {
		return err
	}

	fmt.Println(NewStyles().RenderStats(stats))
	return nil
}
