package simulator

import (
	"context"
	"errors"
	"fmt"

	"github.com/wolfxxx/blackjack/internal/deck"
	"github.com/wolfxxx/blackjack/internal/game"
	"github.com/wolfxxx/blackjack/internal/statistics"
	"github.com/wolfxxx/blackjack/internal/strategy"
)

// ErrInvalidCard reports unparseable card input to situation analysis.
var ErrInvalidCard = errors.New("invalid card")

// Situation describes a fixed starting position to analyze.
type Situation struct {
	// PlayerCards is a comma-separated rank list, e.g. "10,6" or "A,8".
	PlayerCards string
	// DealerCard is the dealer up-card rank label.
	DealerCard  string
	AllowDouble bool
	AllowSplit  bool
}

// ActionEV is the estimated outcome of always taking one action in the
// analyzed situation.
type ActionEV struct {
	Action     strategy.Action
	EV         float64
	WinRate    float64
	ReturnRate float64
	Hands      int
}

// Analysis holds per-action estimates for a situation and the best
// action found.
type Analysis struct {
	PlayerCards []deck.Card
	DealerUp    deck.Card
	Best        strategy.Action
	Actions     []ActionEV
	Cancelled   bool
}

// AnalyzeSituation estimates the EV of every available action for a
// specific deal. Known cards are removed from a fresh shoe before each
// trial so the estimate reflects the exact composition. Deals where
// the dealer turns out to hold a natural are redrawn unless the player
// hand is itself a natural; the situation being analyzed presumes the
// player got to act. Card parse failures return an error wrapping
// ErrInvalidCard.
func (s *Simulator) AnalyzeSituation(ctx context.Context, table *strategy.Table, sit Situation, trials int) (*Analysis, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", trials)
	}
	cards, err := deck.ParseCards(sit.PlayerCards)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	if len(cards) < 2 {
		return nil, fmt.Errorf("%w: need at least two player cards, got %d", ErrInvalidCard, len(cards))
	}
	upRank, err := deck.ParseRank(sit.DealerCard)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	up := deck.NewCard(upRank)

	actions := []strategy.Action{strategy.Hit, strategy.Stand}
	if len(cards) == 2 && sit.AllowDouble {
		actions = append(actions, strategy.Double)
	}
	if sit.AllowSplit && game.CanSplit(cards) {
		actions = append(actions, strategy.Split)
	}

	g, err := s.newGame(s.config.Seed)
	if err != nil {
		return nil, err
	}
	shoe := g.Shoe()
	shoe.SetPenetrationThreshold(100)

	analysis := &Analysis{PlayerCards: cards, DealerUp: up}
	playerBJ := game.IsBlackjack(cards)
	for _, action := range actions {
		stats := statistics.New()
		forced := action
		for trial := 0; trial < trials; {
			if trial%s.config.ChunkSize == 0 {
				select {
				case <-ctx.Done():
					analysis.Cancelled = true
					return analysis, nil
				default:
				}
			}
			shoe.Shuffle()
			for _, c := range cards {
				shoe.RemoveRank(c.Rank)
			}
			shoe.RemoveRank(up.Rank)

			res := g.PlayForced(table, s.config.BetSize, game.ForcedPlay{
				PlayerCards: cards,
				DealerUp:    up,
				First:       &forced,
				AllowDouble: sit.AllowDouble,
				AllowSplit:  sit.AllowSplit,
			})
			if !playerBJ && res.DealerBlackjack() {
				continue
			}
			stats.Record(res)
			trial++
		}
		analysis.Actions = append(analysis.Actions, ActionEV{
			Action:     action,
			EV:         stats.ExpectedValue() / s.config.BetSize,
			WinRate:    stats.WinRate(),
			ReturnRate: stats.ReturnRate(),
			Hands:      stats.Games,
		})
	}

	analysis.Best = analysis.Actions[0].Action
	bestEV := analysis.Actions[0].EV
	for _, a := range analysis.Actions[1:] {
		if a.EV > bestEV {
			analysis.Best, bestEV = a.Action, a.EV
		}
	}
	return analysis, nil
}
