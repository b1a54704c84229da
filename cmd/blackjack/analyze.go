package main

import (
	"fmt"

	"github.com/wolfxxx/blackjack/cmd/blackjack/shared"
	"github.com/wolfxxx/blackjack/internal/simulator"
)

// AnalyzeCmd estimates per-action EV for one specific deal, with the
// known cards removed from the shoe.
type AnalyzeCmd struct {
	GameFlags `embed:""`

	Player   string `kong:"arg,help='Player cards, comma separated (e.g. 10,6 or A,8)'"`
	Dealer   string `kong:"arg,help='Dealer up-card (2-10, J, Q, K, A)'"`
	Trials   int    `kong:"default='100000',help='Trials per action'"`
	NoDouble bool   `kong:"help='Disallow doubling'"`
	NoSplit  bool   `kong:"help='Disallow splitting'"`
}

func (c *AnalyzeCmd) Run() error {
	cfg, table, logger, err := c.setup(1)
	if err != nil {
		return err
	}

	sim, err := simulator.New(cfg)
	if err != nil {
		return err
	}

	ctx := shared.SetupSignalHandler(logger)
	analysis, err := sim.AnalyzeSituation(ctx, table, simulator.Situation{
		PlayerCards: c.Player,
		DealerCard:  c.Dealer,
		AllowDouble: !c.NoDouble,
		AllowSplit:  !c.NoSplit,
	}, c.Trials)
	if err != nil {
		return err
	}

	fmt.Println(NewStyles().RenderAnalysis(analysis))
	return nil
}
