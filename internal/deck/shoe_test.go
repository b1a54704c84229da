package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCounter struct {
	updates int
	resets  int
}

func (c *recordingCounter) Update(Card) int { c.updates++; return 0 }
func (c *recordingCounter) Reset()          { c.resets++ }

func TestNewShoeComposition(t *testing.T) {
	shoe := NewShoe(6, 75, 1)
	require.Equal(t, 6*CardsPerDeck, shoe.Remaining())

	// Every rank should appear numDecks*4 times.
	counts := make(map[Rank]int)
	for shoe.Remaining() > 0 {
		counts[shoe.Draw().Rank]++
	}
	for _, rank := range Ranks {
		assert.Equal(t, 24, counts[rank], "rank %s", rank)
	}
}

func TestShoeDeterministicForSeed(t *testing.T) {
	a := NewShoe(2, 75, 42)
	b := NewShoe(2, 75, 42)
	for i := 0; i < 2*CardsPerDeck; i++ {
		require.Equal(t, a.Draw(), b.Draw(), "card %d", i)
	}
}

func TestPenetrationTracking(t *testing.T) {
	shoe := NewShoe(1, 75, 7)
	require.Zero(t, shoe.Penetration())

	for k := 1; k <= 26; k++ {
		shoe.Draw()
		want := float64(k) / float64(CardsPerDeck) * 100
		require.InDelta(t, want, shoe.Penetration(), 1e-9, "after %d draws", k)
	}
}

func TestShouldReshuffle(t *testing.T) {
	shoe := NewShoe(2, 75, 3)

	// Fresh shoe: not eligible.
	assert.False(t, shoe.ShouldReshuffle())

	// Past threshold but still a full deck remaining: not eligible.
	for shoe.Penetration() < 75 {
		shoe.Draw()
	}
	if shoe.Remaining() >= CardsPerDeck {
		assert.False(t, shoe.ShouldReshuffle())
	}

	// Below one deck remaining and past threshold: eligible.
	for shoe.Remaining() >= CardsPerDeck {
		shoe.Draw()
	}
	assert.True(t, shoe.ShouldReshuffle())

	// Shuffling resets penetration.
	shoe.Shuffle()
	assert.Zero(t, shoe.Penetration())
	assert.False(t, shoe.ShouldReshuffle())
}

func TestEmergencyReshuffle(t *testing.T) {
	shoe := NewShoe(1, 100, 9)
	for i := 0; i < CardsPerDeck; i++ {
		shoe.Draw()
	}
	require.Zero(t, shoe.Remaining())

	// Draw from an exhausted shoe silently reshuffles instead of failing.
	_ = shoe.Draw()
	assert.Equal(t, CardsPerDeck-1, shoe.Remaining())
}

func TestShuffleResetsCounter(t *testing.T) {
	shoe := NewShoe(1, 75, 5)
	counter := &recordingCounter{}
	shoe.SetCounter(counter)

	shoe.Draw()
	shoe.Draw()
	assert.Equal(t, 2, counter.updates)

	shoe.Shuffle()
	assert.Equal(t, 1, counter.resets)
}

func TestRemoveRank(t *testing.T) {
	shoe := NewShoe(1, 75, 11)
	require.True(t, shoe.RemoveRank(Ace))
	assert.Equal(t, CardsPerDeck-1, shoe.Remaining())

	for i := 0; i < 3; i++ {
		require.True(t, shoe.RemoveRank(Ace))
	}
	assert.False(t, shoe.RemoveRank(Ace), "only four aces in a single deck")
}

func TestSetPenetrationThresholdClamps(t *testing.T) {
	shoe := NewShoe(1, 75, 13)
	shoe.SetPenetrationThreshold(10)
	assert.Equal(t, 50, shoe.threshold)
	shoe.SetPenetrationThreshold(150)
	assert.Equal(t, 100, shoe.threshold)
	shoe.SetPenetrationThreshold(80)
	assert.Equal(t, 80, shoe.threshold)
}
