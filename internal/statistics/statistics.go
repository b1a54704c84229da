// Package statistics aggregates hand results into the running totals,
// per-cell breakdowns, and count-level buckets used for reporting and
// strategy optimization.
package statistics

import (
	"math"

	"github.com/wolfxxx/blackjack/internal/game"
)

// CellKey identifies one strategy cell as actually observed during
// play: the initial hand label, the dealer up-card, the first action
// taken, and the rounded count in effect at the deal.
type CellKey struct {
	Player string
	Dealer string
	Action string
	Count  int
}

// CellStats accumulates outcomes for one cell. EV estimates for the
// optimizer come straight from these.
type CellStats struct {
	Hands    int
	Wins     int
	Losses   int
	Pushes   int
	Winnings float64
}

// EV returns the mean net winnings per hand for the cell.
func (c *CellStats) EV() float64 {
	if c.Hands == 0 {
		return 0
	}
	return c.Winnings / float64(c.Hands)
}

// CountBucket accumulates outcomes for one rounded count level.
type CountBucket struct {
	Hands    int
	Winnings float64
}

// EV returns the mean net winnings per hand at the count level.
func (b *CountBucket) EV() float64 {
	if b.Hands == 0 {
		return 0
	}
	return b.Winnings / float64(b.Hands)
}

// Stats is the aggregate over a batch of simulated hands. Not safe for
// concurrent use; parallel workers each keep their own Stats and Merge
// afterwards.
type Stats struct {
	Games      int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int

	TotalWinnings float64
	TotalBet      float64

	// Cells breaks results down by observed (hand, dealer, first
	// action, count). Hands that resolved as naturals carry no first
	// action and are excluded.
	Cells map[CellKey]*CellStats

	// Counts breaks results down by the rounded count at the deal.
	Counts map[int]*CountBucket

	// Cancelled marks an aggregate cut short by cancellation; the
	// totals cover only the hands completed before the cut.
	Cancelled bool

	sum   float64
	sumSq float64
}

// New returns an empty aggregate.
func New() *Stats {
	return &Stats{
		Cells:  make(map[CellKey]*CellStats),
		Counts: make(map[int]*CountBucket),
	}
}

// Record folds one hand result into the aggregate.
func (s *Stats) Record(res game.Result) {
	s.Games++
	switch res.Outcome {
	case game.OutcomeWin:
		s.Wins++
	case game.OutcomeLose:
		s.Losses++
	case game.OutcomePush:
		s.Pushes++
	case game.OutcomeBlackjack:
		s.Blackjacks++
	}
	s.TotalWinnings += res.Winnings
	s.TotalBet += res.TotalBet
	s.sum += res.Winnings
	s.sumSq += res.Winnings * res.Winnings

	bucket := s.Counts[res.Count]
	if bucket == nil {
		bucket = &CountBucket{}
		s.Counts[res.Count] = bucket
	}
	bucket.Hands++
	bucket.Winnings += res.Winnings

	if !res.HasFirstAction {
		return
	}
	key := CellKey{
		Player: game.Key(res.InitialCards, true).Label(),
		Dealer: res.DealerUp.ValueLabel(),
		Action: res.FirstAction.Code(),
		Count:  res.Count,
	}
	cell := s.Cells[key]
	if cell == nil {
		cell = &CellStats{}
		s.Cells[key] = cell
	}
	cell.Hands++
	cell.Winnings += res.Winnings
	switch {
	case res.Winnings > 0:
		cell.Wins++
	case res.Winnings < 0:
		cell.Losses++
	default:
		cell.Pushes++
	}
}

// Merge folds another aggregate into this one. Merging is associative,
// so per-worker aggregates can be reduced in any order.
func (s *Stats) Merge(other *Stats) {
	s.Games += other.Games
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Blackjacks += other.Blackjacks
	s.TotalWinnings += other.TotalWinnings
	s.TotalBet += other.TotalBet
	s.sum += other.sum
	s.sumSq += other.sumSq
	s.Cancelled = s.Cancelled || other.Cancelled

	for key, cell := range other.Cells {
		dst := s.Cells[key]
		if dst == nil {
			dst = &CellStats{}
			s.Cells[key] = dst
		}
		dst.Hands += cell.Hands
		dst.Wins += cell.Wins
		dst.Losses += cell.Losses
		dst.Pushes += cell.Pushes
		dst.Winnings += cell.Winnings
	}
	for level, bucket := range other.Counts {
		dst := s.Counts[level]
		if dst == nil {
			dst = &CountBucket{}
			s.Counts[level] = dst
		}
		dst.Hands += bucket.Hands
		dst.Winnings += bucket.Winnings
	}
}

// ExpectedValue returns the mean net winnings per hand.
func (s *Stats) ExpectedValue() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.TotalWinnings / float64(s.Games)
}

// WinRate returns the percentage of hands won, naturals included.
func (s *Stats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins+s.Blackjacks) / float64(s.Games) * 100
}

// ReturnRate returns net winnings as a percentage of the total wagered.
func (s *Stats) ReturnRate() float64 {
	if s.TotalBet == 0 {
		return 0
	}
	return s.TotalWinnings / s.TotalBet * 100
}

// Variance returns the sample variance of per-hand net winnings.
func (s *Stats) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	n := float64(s.Games)
	return (s.sumSq - s.sum*s.sum/n) / (n - 1)
}

// StdError returns the standard error of the per-hand mean.
func (s *Stats) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return math.Sqrt(s.Variance() / float64(s.Games))
}

// ConfidenceInterval returns the 95% confidence interval around the
// per-hand EV.
func (s *Stats) ConfidenceInterval() (low, high float64) {
	ev := s.ExpectedValue()
	margin := 1.96 * s.StdError()
	return ev - margin, ev + margin
}
