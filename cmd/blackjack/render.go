package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wolfxxx/blackjack/internal/game"
	"github.com/wolfxxx/blackjack/internal/simulator"
	"github.com/wolfxxx/blackjack/internal/statistics"
	"github.com/wolfxxx/blackjack/internal/strategy"
)

// Styles holds the lipgloss styles for terminal output.
type Styles struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Hit     lipgloss.Style
	Stand   lipgloss.Style
	Double  lipgloss.Style
	Split   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// NewStyles builds the default color scheme.
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Hit: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Stand: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Double: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Split: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

func (s *Styles) action(a strategy.Action) lipgloss.Style {
	switch a {
	case strategy.Stand:
		return s.Stand
	case strategy.Double:
		return s.Double
	case strategy.Split:
		return s.Split
	default:
		return s.Hit
	}
}

// strategyRows lists table rows in display order.
func strategyRows() []strategy.HandKey {
	var rows []strategy.HandKey
	for total := 5; total <= 21; total++ {
		rows = append(rows, strategy.Hard(total))
	}
	for total := 13; total <= 21; total++ {
		rows = append(rows, strategy.Soft(total))
	}
	for value := 2; value <= 11; value++ {
		rows = append(rows, strategy.Pair(value))
	}
	return rows
}

// RenderStrategyTable renders the full action grid, one row per hand
// label and one column per dealer card.
func (s *Styles) RenderStrategyTable(t *strategy.Table, title string) string {
	var b strings.Builder
	b.WriteString(s.Header.Render(title))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%-6s", ""))
	for _, dealer := range strategy.DealerLabels {
		b.WriteString(fmt.Sprintf("%3s", dealer))
	}
	b.WriteString("\n")

	for _, key := range strategyRows() {
		b.WriteString(s.Label.Render(fmt.Sprintf("%-6s", key.Label())))
		for _, dealer := range strategy.DealerLabels {
			action := t.Lookup(key, dealer, true, key.Kind == strategy.KindPair, 0)
			cell := fmt.Sprintf("%3s", action.Code())
			b.WriteString(s.action(action).Render(cell))
		}
		b.WriteString("\n")
	}

	for _, level := range t.CountLevels() {
		b.WriteString("\n")
		b.WriteString(s.Header.Render(fmt.Sprintf("Count %+d overrides", level)))
		b.WriteString("\n")
		for _, key := range strategyRows() {
			var cells []string
			for _, dealer := range strategy.DealerLabels {
				if action, ok := t.GetCount(level, key, dealer); ok {
					cells = append(cells, fmt.Sprintf("%s vs %s: %s",
						key.Label(), dealer, s.action(action).Render(action.String())))
				}
			}
			if len(cells) > 0 {
				b.WriteString("  " + strings.Join(cells, ", ") + "\n")
			}
		}
	}
	return b.String()
}

// RenderStats renders the aggregate summary of a simulation run.
func (s *Styles) RenderStats(stats *statistics.Stats) string {
	var b strings.Builder
	b.WriteString(s.Header.Render("Simulation results"))
	b.WriteString("\n\n")
	if stats.Cancelled {
		b.WriteString(s.Error.Render("cancelled early, partial results") + "\n\n")
	}

	b.WriteString(fmt.Sprintf("Hands:       %d\n", stats.Games))
	b.WriteString(fmt.Sprintf("Wins:        %d (%.2f%%)\n", stats.Wins+stats.Blackjacks, stats.WinRate()))
	b.WriteString(fmt.Sprintf("Losses:      %d\n", stats.Losses))
	b.WriteString(fmt.Sprintf("Pushes:      %d\n", stats.Pushes))
	b.WriteString(fmt.Sprintf("Blackjacks:  %d\n", stats.Blackjacks))
	b.WriteString(fmt.Sprintf("Net:         %+.2f (wagered %.2f)\n", stats.TotalWinnings, stats.TotalBet))

	ev := stats.ExpectedValue()
	evStyle := s.Success
	if ev < 0 {
		evStyle = s.Error
	}
	low, high := stats.ConfidenceInterval()
	b.WriteString(fmt.Sprintf("EV/hand:     %s (95%% CI [%.4f, %.4f])\n",
		evStyle.Render(fmt.Sprintf("%+.4f", ev)), low, high))
	b.WriteString(fmt.Sprintf("Return rate: %+.3f%%\n", stats.ReturnRate()))

	if len(stats.Counts) > 1 {
		b.WriteString("\n" + s.Header.Render("EV by count") + "\n")
		for _, level := range sortedCountLevels(stats) {
			bucket := stats.Counts[level]
			b.WriteString(fmt.Sprintf("  %+3d: %8d hands, EV %+.4f\n", level, bucket.Hands, bucket.EV()))
		}
	}
	return b.String()
}

func sortedCountLevels(stats *statistics.Stats) []int {
	levels := make([]int, 0, len(stats.Counts))
	for level := range stats.Counts {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

// RenderAnalysis renders per-action EV estimates for one situation.
func (s *Styles) RenderAnalysis(a *simulator.Analysis) string {
	var b strings.Builder
	b.WriteString(s.Header.Render(fmt.Sprintf("%s vs %s", game.Label(a.PlayerCards), a.DealerUp)))
	b.WriteString("\n\n")
	if a.Cancelled {
		b.WriteString(s.Error.Render("cancelled early, partial results") + "\n\n")
	}

	for _, ae := range a.Actions {
		marker := "  "
		if ae.Action == a.Best {
			marker = s.Success.Render("→ ")
		}
		b.WriteString(fmt.Sprintf("%s%-7s EV %+.4f  win %.2f%%  return %+.2f%%  (%d hands)\n",
			marker, s.action(ae.Action).Render(ae.Action.String()),
			ae.EV, ae.WinRate, ae.ReturnRate, ae.Hands))
	}
	if !a.Cancelled {
		b.WriteString("\nBest: " + s.action(a.Best).Render(a.Best.String()) + "\n")
	}
	return b.String()
}

// RenderHand renders one played hand for interactive display.
func (s *Styles) RenderHand(res game.Result) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Dealer: %s (up %s)\n",
		game.Label(res.DealerCards), res.DealerUp))
	for i, h := range res.Hands {
		total, soft := game.HandValue(h.Cards)
		label := fmt.Sprintf("%d", total)
		if soft {
			label = "soft " + label
		}
		b.WriteString(fmt.Sprintf("Hand %d: %s (%s)", i+1, game.Label(h.Cards), label))
		if h.Lost {
			b.WriteString(" " + s.Error.Render("bust"))
		}
		b.WriteString("\n")
	}
	if res.HasFirstAction {
		b.WriteString(fmt.Sprintf("First action: %s\n", s.action(res.FirstAction).Render(res.FirstAction.String())))
	}

	outcome := s.Info.Render(string(res.Outcome))
	switch res.Outcome {
	case game.OutcomeWin, game.OutcomeBlackjack:
		outcome = s.Success.Render(string(res.Outcome))
	case game.OutcomeLose:
		outcome = s.Error.Render(string(res.Outcome))
	}
	b.WriteString(fmt.Sprintf("Outcome: %s (%+.2f on %.2f wagered)\n", outcome, res.Winnings, res.TotalBet))
	return b.String()
}
