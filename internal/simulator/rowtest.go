package simulator

import (
	"context"
	"fmt"

	"github.com/wolfxxx/blackjack/internal/deck"
	"github.com/wolfxxx/blackjack/internal/game"
	"github.com/wolfxxx/blackjack/internal/strategy"
)

// RowResult holds per-action, per-dealer EV estimates for one strategy
// row.
type RowResult struct {
	Label   string
	Actions []strategy.Action

	// EV is keyed by action code, then dealer label.
	EV map[string]map[string]float64

	Trials    int
	Cancelled bool
}

// cardForValue maps a blackjack value to a concrete card: 11 is an
// Ace, 10 a ten.
func cardForValue(v int) deck.Card {
	switch v {
	case 11:
		return deck.NewCard(deck.Ace)
	case 10:
		return deck.NewCard(deck.Ten)
	default:
		return deck.NewCard(deck.Rank(v))
	}
}

// representativeHand synthesizes a fixed starting hand for a row. Hard
// totals 10-20 use a near-balanced unequal split so the hand is not
// accidentally a pair; smaller totals fall back to halves, and hard 21
// needs three cards since no two non-Ace cards reach it.
func representativeHand(key strategy.HandKey) []deck.Card {
	switch key.Kind {
	case strategy.KindPair:
		return []deck.Card{cardForValue(key.Total), cardForValue(key.Total)}
	case strategy.KindSoft:
		return []deck.Card{deck.NewCard(deck.Ace), cardForValue(key.Total - 11)}
	default:
		if key.Total == 21 {
			return []deck.Card{cardForValue(10), cardForValue(9), cardForValue(2)}
		}
		a := key.Total / 2
		b := key.Total - a
		if key.Total >= 10 {
			if a == b {
				a--
				b++
			}
			if b > 10 {
				b = 10
				a = key.Total - 10
			}
		}
		return []deck.Card{cardForValue(a), cardForValue(b)}
	}
}

// candidateActions returns the structurally valid actions for a row:
// Hit and Stand always, Double on any fresh two-card hand except a
// pair of Aces, Split only on pair rows.
func candidateActions(key strategy.HandKey, hand []deck.Card) []strategy.Action {
	actions := []strategy.Action{strategy.Hit, strategy.Stand}
	if len(hand) == 2 && !(key.Kind == strategy.KindPair && key.Total == 11) {
		actions = append(actions, strategy.Double)
	}
	if key.Kind == strategy.KindPair {
		actions = append(actions, strategy.Split)
	}
	return actions
}

// TestRowActions estimates the EV of every structurally valid action
// for one row against each listed dealer card. Each estimate runs
// trials independent fresh-shoe hands with the action forced first and
// subsequent play following the table, the tested cell overridden.
// Deals where the dealer turns out to hold a natural are redrawn: the
// hand would settle before the tested decision is ever reached, so the
// estimate conditions on the decision point. countLevel, when non-nil
// and non-zero, targets that count layer instead of the base table.
// Cancellation returns the partial result.
func (s *Simulator) TestRowActions(ctx context.Context, table *strategy.Table, label string, dealers []string, countLevel *int, trials int) (*RowResult, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", trials)
	}
	key, err := strategy.ParseKey(label)
	if err != nil {
		return nil, fmt.Errorf("row label: %w", err)
	}
	hand := representativeHand(key)
	actions := candidateActions(key, hand)

	result := &RowResult{
		Label:   key.Label(),
		Actions: actions,
		EV:      make(map[string]map[string]float64),
		Trials:  trials,
	}
	for _, a := range actions {
		result.EV[a.Code()] = make(map[string]float64)
	}

	g, err := s.newGame(s.config.Seed)
	if err != nil {
		return nil, err
	}
	shoe := g.Shoe()
	shoe.SetPenetrationThreshold(100)

	for _, dealer := range dealers {
		upRank, err := deck.ParseRank(dealer)
		if err != nil {
			return nil, fmt.Errorf("dealer label: %w", err)
		}
		up := deck.NewCard(upRank)

		for _, action := range actions {
			select {
			case <-ctx.Done():
				result.Cancelled = true
				return result, nil
			default:
			}

			working := table.Clone()
			if countLevel != nil && *countLevel != 0 {
				working.SetCountAction(*countLevel, key, dealer, action)
			} else {
				working.SetAction(key, dealer, action)
			}

			forced := action
			total := 0.0
			playerBJ := game.IsBlackjack(hand)
			for trial := 0; trial < trials; {
				if trial%s.config.ChunkSize == 0 && trial > 0 {
					select {
					case <-ctx.Done():
						result.Cancelled = true
						return result, nil
					default:
					}
				}
				shoe.Shuffle()
				for _, c := range hand {
					shoe.RemoveRank(c.Rank)
				}
				shoe.RemoveRank(up.Rank)

				res := g.PlayForced(working, s.config.BetSize, game.ForcedPlay{
					PlayerCards: hand,
					DealerUp:    up,
					First:       &forced,
					AllowDouble: len(hand) == 2,
					AllowSplit:  key.Kind == strategy.KindPair,
				})
				if !playerBJ && res.DealerBlackjack() {
					continue
				}
				total += res.Winnings
				trial++
			}
			result.EV[action.Code()][dealer] = total / (float64(trials) * s.config.BetSize)
		}
	}
	return result, nil
}
