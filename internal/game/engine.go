package game

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/wolfxxx/blackjack/internal/counter"
	"github.com/wolfxxx/blackjack/internal/deck"
	"github.com/wolfxxx/blackjack/internal/strategy"
)

// Game is one blackjack session: a shoe, an optional card counter, and
// a rule set. A Game is not safe for concurrent use; parallel runs each
// get their own Game.
type Game struct {
	shoe    *deck.Shoe
	counter *counter.Counter
	rules   Rules
	logger  *log.Logger
}

// New creates a session around the given shoe. The counter may be nil
// for non-counting play; when present it is attached to the shoe so
// every drawn card updates the running count.
func New(shoe *deck.Shoe, ctr *counter.Counter, rules Rules, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if ctr != nil {
		shoe.SetCounter(ctr)
	}
	return &Game{shoe: shoe, counter: ctr, rules: rules, logger: logger}
}

// Shoe returns the session's shoe.
func (g *Game) Shoe() *deck.Shoe { return g.shoe }

// Rules returns the session's rule set.
func (g *Game) Rules() Rules { return g.rules }

// Count returns the rounded true count, or 0 with no counter attached.
func (g *Game) Count() int {
	if g.counter == nil {
		return 0
	}
	return g.counter.CountRange(g.shoe.Remaining(), g.shoe.NumDecks())
}

// TrueCount returns the exact true count, or 0 with no counter attached.
func (g *Game) TrueCount() float64 {
	if g.counter == nil {
		return 0
	}
	return g.counter.TrueCount(g.shoe.Remaining(), g.shoe.NumDecks())
}

// ForcedPlay describes a hand to resolve from a known starting position
// instead of a fresh deal. The caller is responsible for removing the
// known cards from the shoe beforehand.
type ForcedPlay struct {
	PlayerCards []deck.Card
	DealerUp    deck.Card

	// First, when non-nil, is taken as the first decision instead of
	// consulting the strategy table. Subsequent decisions follow the
	// table as usual.
	First *strategy.Action

	AllowDouble bool
	AllowSplit  bool
}

// PlayHand deals and resolves one complete hand against the strategy
// table, reshuffling first if the shoe has reached its penetration
// threshold.
func (g *Game) PlayHand(table *strategy.Table, betSize float64) Result {
	if g.shoe.ShouldReshuffle() {
		g.shoe.Shuffle()
		g.logger.Debug("reshuffled shoe", "penetration", g.shoe.Penetration())
	}
	count := g.Count()
	player := []deck.Card{g.shoe.Draw(), g.shoe.Draw()}
	dealer := []deck.Card{g.shoe.Draw(), g.shoe.Draw()}
	return g.resolve(table, betSize, player, dealer, count, playOptions{
		allowDouble: true,
		allowSplit:  true,
	})
}

// PlayForced resolves one hand from a fixed starting position, drawing
// only the dealer hole card and any hit cards from the shoe. It is the
// primitive behind row testing and situation analysis.
func (g *Game) PlayForced(table *strategy.Table, betSize float64, fp ForcedPlay) Result {
	count := g.Count()
	dealer := []deck.Card{fp.DealerUp, g.shoe.Draw()}
	return g.resolve(table, betSize, slices.Clone(fp.PlayerCards), dealer, count, playOptions{
		allowDouble: fp.AllowDouble,
		allowSplit:  fp.AllowSplit,
		forced:      fp.First,
	})
}

type playOptions struct {
	allowDouble bool
	allowSplit  bool
	forced      *strategy.Action
}

func (g *Game) resolve(table *strategy.Table, betSize float64, player, dealer []deck.Card, count int, opts playOptions) Result {
	res := Result{
		InitialCards: slices.Clone(player),
		DealerUp:     dealer[0],
		Count:        count,
	}

	playerBJ := IsBlackjack(player)
	dealerBJ := IsBlackjack(dealer)
	if playerBJ || dealerBJ {
		res.Hands = []Hand{{Cards: player, Bet: 1}}
		res.DealerCards = dealer
		res.TotalBet = betSize
		switch {
		case playerBJ && dealerBJ:
			res.Outcome = OutcomePush
		case playerBJ:
			res.Outcome = OutcomeBlackjack
			res.Winnings = betSize * g.rules.BlackjackPayout.Multiplier()
		default:
			res.Outcome = OutcomeLose
			res.Winnings = -betSize
		}
		return res
	}

	hands, units := g.playHands(table, player, dealer[0], opts, &res)
	res.Hands = hands
	res.TotalBet = betSize * units

	dealer = g.playDealer(dealer)
	res.DealerCards = dealer

	dealerTotal, _ := HandValue(dealer)
	dealerBust := dealerTotal > 21
	net := 0.0
	for i := range hands {
		h := &hands[i]
		wager := betSize * h.Bet
		total, _ := HandValue(h.Cards)
		switch {
		case h.Lost || total > 21:
			net -= wager
		case dealerBust || total > dealerTotal:
			net += wager
		case total < dealerTotal:
			net -= wager
		}
	}
	res.Winnings = net
	switch {
	case net > 0:
		res.Outcome = OutcomeWin
	case net < 0:
		res.Outcome = OutcomeLose
	default:
		res.Outcome = OutcomePush
	}
	return res
}

// playHands runs the player worklist: the initial hand plus any hands
// spawned by splits, each played to completion in order. Returns the
// finished hands and the total bet units wagered.
func (g *Game) playHands(table *strategy.Table, initial []deck.Card, up deck.Card, opts playOptions, res *Result) ([]Hand, float64) {
	hands := []Hand{{Cards: initial, Bet: 1}}
	units := 1.0
	upLabel := up.ValueLabel()
	forced := opts.forced

	for i := 0; i < len(hands); i++ {
	play:
		for {
			h := &hands[i]
			total, _ := HandValue(h.Cards)
			if total >= 21 {
				if total > 21 {
					h.Lost = true
				}
				break
			}

			hasSplit := len(hands) > 1
			fresh := len(h.Cards) == 2
			canDouble := fresh && opts.allowDouble
			if hasSplit {
				canDouble = canDouble && g.rules.DoubleAfterSplit
			}
			canSplit := fresh && opts.allowSplit && CanSplit(h.Cards)
			if canSplit && hasSplit {
				if h.Cards[0].IsAce() {
					canSplit = g.rules.ResplitAces
				} else {
					canSplit = g.rules.Resplit
				}
			}

			var action strategy.Action
			if forced != nil {
				action = *forced
				forced = nil
				if action == strategy.Double && !canDouble {
					action = strategy.Hit
				}
				if action == strategy.Split && !canSplit {
					action = strategy.Hit
				}
			} else {
				action = table.Lookup(Key(h.Cards, canSplit), upLabel, canDouble, canSplit, g.Count())
			}
			if !res.HasFirstAction {
				res.FirstAction = action
				res.HasFirstAction = true
			}

			switch action {
			case strategy.Stand:
				break play
			case strategy.Hit:
				h.Cards = append(h.Cards, g.shoe.Draw())
			case strategy.Double:
				units += h.Bet
				h.Bet *= 2
				h.Cards = append(h.Cards, g.shoe.Draw())
				if IsBust(h.Cards) {
					h.Lost = true
				}
				break play
			case strategy.Split:
				moved := h.Cards[1]
				next := Hand{Cards: []deck.Card{moved, g.shoe.Draw()}, Bet: h.Bet}
				h.Cards = []deck.Card{h.Cards[0], g.shoe.Draw()}
				units += next.Bet
				hands = append(hands, next)
			default:
				break play
			}
		}
	}
	return hands, units
}

// playDealer draws to the dealer hand until it stands or busts. The
// stand threshold is 17, raised to 18 while the hand is a soft 17 under
// the hit-soft-17 rule.
func (g *Game) playDealer(cards []deck.Card) []deck.Card {
	for {
		total, soft := HandValue(cards)
		if total > 21 {
			return cards
		}
		stand := 17
		if g.rules.DealerHitsSoft17 && soft && total == 17 {
			stand = 18
		}
		if total >= stand {
			return cards
		}
		cards = append(cards, g.shoe.Draw())
	}
}
