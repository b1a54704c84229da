package game

import (
	"github.com/wolfxxx/blackjack/internal/deck"
	"github.com/wolfxxx/blackjack/internal/strategy"
)

// Outcome is the net result of a played hand.
type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeLose      Outcome = "lose"
	OutcomePush      Outcome = "push"
	OutcomeBlackjack Outcome = "blackjack"
)

// Result records one fully settled hand.
type Result struct {
	Outcome Outcome

	// Winnings is the net amount won or lost across all hands,
	// in currency (bet size units applied).
	Winnings float64

	// TotalBet is the total amount wagered: the base bet plus any
	// additional wagers from splits and doubles.
	TotalBet float64

	// InitialCards are the two cards dealt to the player.
	InitialCards []deck.Card

	// Hands are the final player hands after splits and hits.
	Hands []Hand

	// DealerCards is the dealer's completed hand. DealerUp is its
	// first card, visible to the player throughout.
	DealerCards []deck.Card
	DealerUp    deck.Card

	// FirstAction is the first strategy decision taken on the initial
	// hand. HasFirstAction is false when the hand resolved as a
	// natural before any decision was made.
	FirstAction    strategy.Action
	HasFirstAction bool

	// Count is the rounded true count in effect when the hand was
	// dealt. Zero when no counting system is attached.
	Count int
}

// PlayerLabel returns the initial two cards as a comma-separated label.
func (r Result) PlayerLabel() string {
	return Label(r.InitialCards)
}

// DealerBlackjack reports whether the dealer held a natural. Such hands
// settle before the player acts, so the dealer hand is always exactly
// the up-card and hole card.
func (r Result) DealerBlackjack() bool {
	return IsBlackjack(r.DealerCards)
}
