package deck

import (
	rand "math/rand/v2"

	"github.com/wolfxxx/blackjack/internal/randutil"
)

// CardsPerDeck is the number of cards in a single deck.
const CardsPerDeck = 52

// DefaultPenetration is the reshuffle threshold applied when none is
// configured, as a percentage of the shoe.
const DefaultPenetration = 75

// Counter receives every card drawn from the shoe and is reset whenever the
// shoe is shuffled, since a running count is only meaningful relative to the
// current shoe composition.
type Counter interface {
	Update(Card) int
	Reset()
}

// Shoe is a multi-deck card source. Cards are drawn from the top; consumed
// cards are tallied to compute penetration, which drives the reshuffle
// policy. Between reshuffles, drawable + consumed always equals
// numDecks * 52 (unless cards were explicitly removed for composition
// analysis).
type Shoe struct {
	numDecks  int
	threshold int
	cards     []Card
	consumed  int
	rng       *rand.Rand
	counter   Counter
}

// NewShoe builds a shuffled shoe of numDecks decks with the given
// penetration threshold percentage. The seed determines the shuffle
// sequence; equal seeds produce equal shoes.
func NewShoe(numDecks, penetrationPct int, seed int64) *Shoe {
	if numDecks < 1 {
		numDecks = 1
	}
	if penetrationPct <= 0 {
		penetrationPct = DefaultPenetration
	}
	s := &Shoe{
		numDecks:  numDecks,
		threshold: penetrationPct,
		rng:       randutil.New(seed),
	}
	s.Shuffle()
	return s
}

// NewStacked builds a shoe that deals the given cards in order. The shoe
// never reshuffles on its own until exhausted. Intended for scripting
// exact card sequences in tests.
func NewStacked(cards ...Card) *Shoe {
	s := &Shoe{
		numDecks:  1,
		threshold: 100,
		rng:       randutil.New(0),
	}
	s.cards = make([]Card, len(cards))
	for i, c := range cards {
		s.cards[len(cards)-1-i] = c
	}
	return s
}

// SetCounter attaches a card counter to the shoe. Every subsequent Draw
// feeds the counter, and every shuffle resets it.
func (s *Shoe) SetCounter(c Counter) {
	s.counter = c
}

// Shuffle rebuilds the full shoe, applies a uniform Fisher-Yates
// permutation, and resets the consumed tally and the attached counter.
func (s *Shoe) Shuffle() {
	s.cards = s.cards[:0]
	for d := 0; d < s.numDecks; d++ {
		for _, rank := range Ranks {
			for i := 0; i < 4; i++ {
				s.cards = append(s.cards, NewCard(rank))
			}
		}
	}
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
	s.consumed = 0
	if s.counter != nil {
		s.counter.Reset()
	}
}

// Draw pops one card from the shoe. An empty shoe triggers a silent
// emergency reshuffle first, so Draw never fails. The drawn card is fed to
// the attached counter, if any.
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		s.Shuffle()
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	s.consumed++
	if s.counter != nil {
		s.counter.Update(card)
	}
	return card
}

// Remaining returns the number of drawable cards left.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// NumDecks returns the number of decks the shoe was built from.
func (s *Shoe) NumDecks() int {
	return s.numDecks
}

// Penetration returns the percentage of the shoe consumed since the last
// shuffle.
func (s *Shoe) Penetration() float64 {
	total := s.numDecks * CardsPerDeck
	return float64(s.consumed) / float64(total) * 100
}

// ShouldReshuffle reports whether the shoe is due for a reshuffle: the
// penetration threshold has been reached and fewer than one deck's worth of
// cards remain. Reshuffling is deferred to hand boundaries, so callers check
// this between hands rather than mid-hand.
func (s *Shoe) ShouldReshuffle() bool {
	return s.Penetration() >= float64(s.threshold) && len(s.cards) < CardsPerDeck
}

// SetPenetrationThreshold configures the percentage (50-100) at which a
// reshuffle becomes eligible.
func (s *Shoe) SetPenetrationThreshold(pct int) {
	if pct < 50 {
		pct = 50
	}
	if pct > 100 {
		pct = 100
	}
	s.threshold = pct
}

// RemoveRank removes one card of the given rank from the drawable stack
// without counting it as consumed. Used to deal known cards out of the shoe
// for composition-accurate situation analysis. Returns false if no card of
// that rank remains.
func (s *Shoe) RemoveRank(rank Rank) bool {
	for i, c := range s.cards {
		if c.Rank == rank {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return true
		}
	}
	return false
}
