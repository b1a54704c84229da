package main

import (
	"fmt"

	"github.com/wolfxxx/blackjack/internal/simulator"
)

// PlayCmd plays hands one at a time against the live strategy,
// printing the full card sequences. The shoe persists across hands.
type PlayCmd struct {
	GameFlags `embed:""`

	Hands int `kong:"default='1',help='Number of hands to play'"`
}

func (c *PlayCmd) Run() error {
	cfg, table, _, err := c.setup(1)
	if err != nil {
		return err
	}

	sim, err := simulator.New(cfg)
	if err != nil {
		return err
	}

	styles := NewStyles()
	for i := 0; i < c.Hands; i++ {
		res, err := sim.PlaySingleHand(table)
		if err != nil {
			return err
		}
		if c.Hands > 1 {
			fmt.Println(styles.Header.Render(fmt.Sprintf("Hand %d", i+1)))
		}
		fmt.Println(styles.RenderHand(res))
	}
	return nil
}
