package game

import (
	"strings"

	"github.com/wolfxxx/blackjack/internal/deck"
	"github.com/wolfxxx/blackjack/internal/strategy"
)

// Hand is one player hand in play. A split produces additional hands
// sharing the same settlement.
type Hand struct {
	Cards []deck.Card
	// Bet is the wager multiplier for this hand relative to the base
	// bet: 1 for the initial hand, doubled by a double down.
	Bet float64
	// Lost marks a hand that busted during play and settles as a loss
	// regardless of the dealer outcome.
	Lost bool
}

// Value returns the best total of the hand and whether it is soft
// (an Ace still counted as 11).
func (h *Hand) Value() (int, bool) {
	return HandValue(h.Cards)
}

// HandValue totals a set of cards, demoting Aces from 11 to 1 while the
// total exceeds 21. The soft flag reports whether an Ace remains at 11.
func HandValue(cards []deck.Card) (total int, soft bool) {
	aces := 0
	for _, c := range cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// IsBlackjack reports whether the cards are a natural: exactly two
// cards totalling 21.
func IsBlackjack(cards []deck.Card) bool {
	if len(cards) != 2 {
		return false
	}
	total, _ := HandValue(cards)
	return total == 21
}

// IsBust reports whether the cards total over 21.
func IsBust(cards []deck.Card) bool {
	total, _ := HandValue(cards)
	return total > 21
}

// CanSplit reports whether two cards form a splittable pair. Pairing is
// by value, so any two ten-value cards may be split.
func CanSplit(cards []deck.Card) bool {
	return len(cards) == 2 && cards[0].Value() == cards[1].Value()
}

// Key derives the strategy lookup key for the cards. A pair keys into
// the pair table only while it may actually be split; a pair that can
// no longer split plays as its hard or soft total.
func Key(cards []deck.Card, splitEligible bool) strategy.HandKey {
	if splitEligible && CanSplit(cards) {
		return strategy.Pair(cards[0].Value())
	}
	total, soft := HandValue(cards)
	if soft {
		return strategy.Soft(total)
	}
	return strategy.Hard(total)
}

// Label renders cards as a comma-separated list, e.g. "A,7".
func Label(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}
