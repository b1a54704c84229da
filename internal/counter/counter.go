// Package counter implements pluggable card-counting systems. A counter
// accumulates a running count from every card drawn and converts it to a
// true count normalized by the decks remaining in the shoe.
package counter

import (
	"fmt"
	"math"

	"github.com/wolfxxx/blackjack/internal/deck"
)

// System identifies a named point-value counting system.
type System string

const (
	HiLo    System = "Hi-Lo"
	HiOptI  System = "Hi-Opt I"
	HiOptII System = "Hi-Opt II"
	OmegaII System = "Omega II"
	KO      System = "KO"
	AceFive System = "Ace-Five"
	Custom  System = "Custom"
)

// Weights maps every rank to its point value.
type Weights map[deck.Rank]int

// Balanced reports whether the weights sum to zero over a full deck.
// Used to classify Custom systems; named systems carry a fixed
// classification instead.
func (w Weights) Balanced() bool {
	sum := 0
	for _, rank := range deck.Ranks {
		sum += w[rank]
	}
	return sum == 0
}

// systemBalanced classifies the named systems. KO and Ace-Five are
// played off the running count rather than a true-count conversion, so
// they count as unbalanced even though Ace-Five's weights sum to zero.
func systemBalanced(system System) bool {
	switch system {
	case KO, AceFive:
		return false
	default:
		return true
	}
}

func systemWeights(system System) (Weights, error) {
	switch system {
	case HiLo, "":
		return Weights{
			deck.Two: 1, deck.Three: 1, deck.Four: 1, deck.Five: 1, deck.Six: 1,
			deck.Seven: 0, deck.Eight: 0, deck.Nine: 0,
			deck.Ten: -1, deck.Jack: -1, deck.Queen: -1, deck.King: -1, deck.Ace: -1,
		}, nil
	case HiOptI:
		return Weights{
			deck.Two: 0, deck.Three: 1, deck.Four: 1, deck.Five: 1, deck.Six: 1,
			deck.Seven: 0, deck.Eight: 0, deck.Nine: 0,
			deck.Ten: -1, deck.Jack: -1, deck.Queen: -1, deck.King: -1, deck.Ace: 0,
		}, nil
	case HiOptII:
		return Weights{
			deck.Two: 1, deck.Three: 1, deck.Four: 2, deck.Five: 2, deck.Six: 1,
			deck.Seven: 1, deck.Eight: 0, deck.Nine: 0,
			deck.Ten: -2, deck.Jack: -2, deck.Queen: -2, deck.King: -2, deck.Ace: 0,
		}, nil
	case OmegaII:
		return Weights{
			deck.Two: 1, deck.Three: 1, deck.Four: 2, deck.Five: 2, deck.Six: 2,
			deck.Seven: 1, deck.Eight: 0, deck.Nine: -1,
			deck.Ten: -2, deck.Jack: -2, deck.Queen: -2, deck.King: -2, deck.Ace: 0,
		}, nil
	case KO:
		return Weights{
			deck.Two: 1, deck.Three: 1, deck.Four: 1, deck.Five: 1, deck.Six: 1,
			deck.Seven: 1, deck.Eight: 0, deck.Nine: 0,
			deck.Ten: -1, deck.Jack: -1, deck.Queen: -1, deck.King: -1, deck.Ace: -1,
		}, nil
	case AceFive:
		return Weights{
			deck.Two: 0, deck.Three: 0, deck.Four: 0, deck.Five: 1, deck.Six: 0,
			deck.Seven: 0, deck.Eight: 0, deck.Nine: 0,
			deck.Ten: 0, deck.Jack: 0, deck.Queen: 0, deck.King: 0, deck.Ace: -1,
		}, nil
	default:
		return nil, fmt.Errorf("unknown counting system %q", system)
	}
}

// Counter tracks the running count for a counting system.
type Counter struct {
	system   System
	weights  Weights
	balanced bool
	running  int
}

// New creates a counter for the named system. For Custom, the supplied
// weights are used; for named systems customWeights is ignored.
func New(system System, customWeights Weights) (*Counter, error) {
	var weights Weights
	var balanced bool
	if system == Custom {
		if len(customWeights) == 0 {
			return nil, fmt.Errorf("custom counting system requires weights")
		}
		weights = customWeights
		balanced = weights.Balanced()
	} else {
		var err error
		weights, err = systemWeights(system)
		if err != nil {
			return nil, err
		}
		if system == "" {
			system = HiLo
		}
		balanced = systemBalanced(system)
	}
	return &Counter{
		system:   system,
		weights:  weights,
		balanced: balanced,
	}, nil
}

// System returns the counter's system name.
func (c *Counter) System() System {
	return c.system
}

// Balanced reports whether the system is balanced. Unbalanced systems
// are played off the running count.
func (c *Counter) Balanced() bool {
	return c.balanced
}

// Update applies the card's point value to the running count and returns
// the delta applied.
func (c *Counter) Update(card deck.Card) int {
	delta := c.weights[card.Rank]
	c.running += delta
	return delta
}

// Reset zeroes the running count. Invoked by the shoe on reshuffle.
func (c *Counter) Reset() {
	c.running = 0
}

// RunningCount returns the current running count.
func (c *Counter) RunningCount() int {
	return c.running
}

// TrueCount converts the running count to a per-deck count given the cards
// remaining in the shoe. The remaining-deck estimate is clamped to
// [0.5, numDecks] so a nearly empty shoe does not blow up the conversion;
// a non-positive estimate yields 0.
func (c *Counter) TrueCount(remainingCards, numDecks int) float64 {
	decks := float64(remainingCards) / float64(deck.CardsPerDeck)
	decks = math.Min(math.Max(decks, 0.5), float64(numDecks))
	if decks <= 0 {
		return 0
	}
	return float64(c.running) / decks
}

// CountRange rounds the true count to the nearest integer. This integer
// keys count-based strategy overrides and statistics buckets.
func (c *Counter) CountRange(remainingCards, numDecks int) int {
	return int(math.Round(c.TrueCount(remainingCards, numDecks)))
}
