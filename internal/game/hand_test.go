package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wolfxxx/blackjack/internal/deck"
	"github.com/wolfxxx/blackjack/internal/strategy"
)

func cards(ranks ...deck.Rank) []deck.Card {
	out := make([]deck.Card, len(ranks))
	for i, r := range ranks {
		out[i] = deck.NewCard(r)
	}
	return out
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name  string
		ranks []deck.Rank
		total int
		soft  bool
	}{
		{"hard sixteen", []deck.Rank{deck.Ten, deck.Six}, 16, false},
		{"natural", []deck.Rank{deck.Ace, deck.King}, 21, true},
		{"pair of aces", []deck.Rank{deck.Ace, deck.Ace}, 12, true},
		{"aces forced hard", []deck.Rank{deck.Ace, deck.Ace, deck.Ten}, 12, false},
		{"soft twenty one", []deck.Rank{deck.Five, deck.Five, deck.Ace}, 21, true},
		{"soft seventeen", []deck.Rank{deck.Ace, deck.Six}, 17, true},
		{"bust", []deck.Rank{deck.Ten, deck.Nine, deck.Five}, 24, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			total, soft := HandValue(cards(tc.ranks...))
			assert.Equal(t, tc.total, total)
			assert.Equal(t, tc.soft, soft)
		})
	}
}

func TestIsBlackjack(t *testing.T) {
	assert.True(t, IsBlackjack(cards(deck.Ace, deck.King)))
	assert.True(t, IsBlackjack(cards(deck.Ten, deck.Ace)))
	assert.False(t, IsBlackjack(cards(deck.Ace, deck.Ace)))
	assert.False(t, IsBlackjack(cards(deck.Seven, deck.Seven, deck.Seven)))
}

func TestCanSplit(t *testing.T) {
	assert.True(t, CanSplit(cards(deck.Eight, deck.Eight)))
	assert.True(t, CanSplit(cards(deck.King, deck.Ten)), "ten-value cards pair by value")
	assert.True(t, CanSplit(cards(deck.Ace, deck.Ace)))
	assert.False(t, CanSplit(cards(deck.Nine, deck.Eight)))
	assert.False(t, CanSplit(cards(deck.Eight, deck.Eight, deck.Eight)))
}

func TestKey(t *testing.T) {
	assert.Equal(t, strategy.Pair(10), Key(cards(deck.King, deck.Queen), true))
	assert.Equal(t, strategy.Pair(11), Key(cards(deck.Ace, deck.Ace), true))
	assert.Equal(t, strategy.Soft(17), Key(cards(deck.Ace, deck.Six), true))
	assert.Equal(t, strategy.Hard(16), Key(cards(deck.Ten, deck.Six), true))
	assert.Equal(t, strategy.Hard(12), Key(cards(deck.Ace, deck.Ace, deck.Ten), true))

	// A pair that can no longer split plays as its total.
	assert.Equal(t, strategy.Hard(18), Key(cards(deck.Nine, deck.Nine), false))
	assert.Equal(t, strategy.Soft(12), Key(cards(deck.Ace, deck.Ace), false))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "A,K", Label(cards(deck.Ace, deck.King)))
	assert.Equal(t, "10,6,5", Label(cards(deck.Ten, deck.Six, deck.Five)))
}
