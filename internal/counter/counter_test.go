package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfxxx/blackjack/internal/deck"
)

func TestHiLoRunningCount(t *testing.T) {
	c, err := New(HiLo, nil)
	require.NoError(t, err)

	tests := []struct {
		rank  deck.Rank
		delta int
	}{
		{deck.Two, 1},
		{deck.Six, 1},
		{deck.Seven, 0},
		{deck.Nine, 0},
		{deck.Ten, -1},
		{deck.King, -1},
		{deck.Ace, -1},
	}

	running := 0
	for _, tt := range tests {
		delta := c.Update(deck.NewCard(tt.rank))
		assert.Equal(t, tt.delta, delta, "delta for %s", tt.rank)
		running += tt.delta
		assert.Equal(t, running, c.RunningCount())
	}
}

func TestSystemBalance(t *testing.T) {
	tests := []struct {
		system   System
		balanced bool
	}{
		{HiLo, true},
		{HiOptI, true},
		{HiOptII, true},
		{OmegaII, true},
		{KO, false},
		{AceFive, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.system), func(t *testing.T) {
			c, err := New(tt.system, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.balanced, c.Balanced())
		})
	}
}

func TestCustomSystem(t *testing.T) {
	weights := Weights{deck.Five: 2, deck.Ace: -2}
	c, err := New(Custom, weights)
	require.NoError(t, err)
	assert.True(t, c.Balanced(), "custom balance derives from the weight sum")

	lopsided, err := New(Custom, Weights{deck.Five: 1})
	require.NoError(t, err)
	assert.False(t, lopsided.Balanced())

	c.Update(deck.NewCard(deck.Five))
	c.Update(deck.NewCard(deck.Ace))
	c.Update(deck.NewCard(deck.Nine)) // unmapped rank counts 0
	assert.Equal(t, 0, c.RunningCount())

	_, err = New(Custom, nil)
	assert.Error(t, err, "custom system without weights")
}

func TestUnknownSystem(t *testing.T) {
	_, err := New(System("Zen"), nil)
	assert.Error(t, err)
}

func TestTrueCount(t *testing.T) {
	c, err := New(HiLo, nil)
	require.NoError(t, err)

	// Running count +6 with 3 decks remaining -> true count 2.
	for i := 0; i < 6; i++ {
		c.Update(deck.NewCard(deck.Five))
	}
	assert.InDelta(t, 2.0, c.TrueCount(3*deck.CardsPerDeck, 6), 1e-9)
	assert.Equal(t, 2, c.CountRange(3*deck.CardsPerDeck, 6))

	// Remaining decks are clamped to a half deck minimum.
	assert.InDelta(t, 12.0, c.TrueCount(0, 6), 1e-9)

	// Rounding to nearest integer.
	assert.Equal(t, 3, c.CountRange(2*deck.CardsPerDeck+13, 6))
}

func TestReset(t *testing.T) {
	c, err := New(HiLo, nil)
	require.NoError(t, err)
	c.Update(deck.NewCard(deck.Four))
	require.NotZero(t, c.RunningCount())
	c.Reset()
	assert.Zero(t, c.RunningCount())
}

func TestShoeIntegration(t *testing.T) {
	c, err := New(HiLo, nil)
	require.NoError(t, err)

	shoe := deck.NewShoe(1, 75, 17)
	shoe.SetCounter(c)

	// Drawing a full single deck with a balanced system nets to zero.
	for i := 0; i < deck.CardsPerDeck; i++ {
		shoe.Draw()
	}
	assert.Zero(t, c.RunningCount())
}
