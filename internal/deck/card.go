package deck

import (
	"fmt"
	"strings"
)

// Rank represents a card rank. Suits carry no information in blackjack, so a
// card is fully described by its rank.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank once, in deal order for a fresh deck.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Value returns the blackjack value of the rank: Aces count 11 here, the
// soft/hard reduction happens during hand valuation.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int(r)
	}
}

// ParseRank parses a rank label ("A", "K", "10", "2".."9"). Labels are
// case-insensitive.
func ParseRank(label string) (Rank, error) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "A":
		return Ace, nil
	case "K":
		return King, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "10":
		return Ten, nil
	case "9":
		return Nine, nil
	case "8":
		return Eight, nil
	case "7":
		return Seven, nil
	case "6":
		return Six, nil
	case "5":
		return Five, nil
	case "4":
		return Four, nil
	case "3":
		return Three, nil
	case "2":
		return Two, nil
	default:
		return 0, fmt.Errorf("invalid card rank %q", label)
	}
}

// Card represents a playing card drawn from a shoe. Immutable once drawn.
type Card struct {
	Rank Rank
}

// NewCard creates a new card of the given rank.
func NewCard(rank Rank) Card {
	return Card{Rank: rank}
}

// String returns the rank label of the card.
func (c Card) String() string {
	return c.Rank.String()
}

// Value returns the blackjack value of the card (A=11, faces=10).
func (c Card) Value() int {
	return c.Rank.Value()
}

// IsAce returns true if the card is an Ace.
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// ValueLabel normalizes the card to the label used in strategy tables:
// "A" for Aces, "10" for any ten-value card, else the numeric value.
// Tens and face cards are interchangeable for strategy purposes.
func (c Card) ValueLabel() string {
	switch {
	case c.Rank == Ace:
		return "A"
	case c.Value() == 10:
		return "10"
	default:
		return fmt.Sprintf("%d", c.Value())
	}
}

// ParseCards parses a comma-separated list of rank labels ("A,10" or
// "8, 8") into cards.
func ParseCards(input string) ([]Card, error) {
	parts := strings.Split(input, ",")
	cards := make([]Card, 0, len(parts))
	for _, part := range parts {
		rank, err := ParseRank(part)
		if err != nil {
			return nil, err
		}
		cards = append(cards, NewCard(rank))
	}
	return cards, nil
}
