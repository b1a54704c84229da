// Package game implements the blackjack engine: hand valuation and the
// state machine that plays one full hand from deal through settlement,
// including splits, resplits, and doubles.
package game

import "fmt"

// Payout is a blackjack payout ratio.
type Payout string

const (
	PayThreeToTwo Payout = "3:2"
	PaySixToFive  Payout = "6:5"
	PayEvenMoney  Payout = "1:1"
)

// Multiplier returns the win multiple paid on a player natural.
func (p Payout) Multiplier() float64 {
	switch p {
	case PaySixToFive:
		return 1.2
	case PayEvenMoney:
		return 1.0
	default:
		return 1.5
	}
}

// Rules holds the table rules for a run. Immutable once a simulation
// starts.
type Rules struct {
	DealerHitsSoft17 bool
	DoubleAfterSplit bool
	Resplit          bool
	ResplitAces      bool
	BlackjackPayout  Payout
}

// DefaultRules returns common six-deck table rules: dealer hits soft 17,
// double after split allowed, resplitting allowed except Aces, naturals
// pay 3:2.
func DefaultRules() Rules {
	return Rules{
		DealerHitsSoft17: true,
		DoubleAfterSplit: true,
		Resplit:          true,
		ResplitAces:      false,
		BlackjackPayout:  PayThreeToTwo,
	}
}

// Validate ensures the rule set is well-formed.
func (r Rules) Validate() error {
	switch r.BlackjackPayout {
	case PayThreeToTwo, PaySixToFive, PayEvenMoney, "":
	default:
		return fmt.Errorf("unknown blackjack payout %q", r.BlackjackPayout)
	}
	return nil
}
