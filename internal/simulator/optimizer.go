package simulator

import (
	"context"

	"github.com/wolfxxx/blackjack/internal/strategy"
)

// Change records one strategy cell the optimizer rewrote.
type Change struct {
	Label  string
	Dealer string
	From   strategy.Action
	To     strategy.Action
	EV     float64
}

// OptimizeResult summarizes an optimization sweep.
type OptimizeResult struct {
	Changes    []Change
	CellsDone  int
	CellsTotal int
	Cancelled  bool
}

// optimizerRows returns every strategy row in sweep order: hard totals
// 21 down to 5, soft totals 21 down to 13, pairs A,A down to 2,2.
func optimizerRows() []strategy.HandKey {
	var rows []strategy.HandKey
	for total := 21; total >= 5; total-- {
		rows = append(rows, strategy.Hard(total))
	}
	for total := 21; total >= 13; total-- {
		rows = append(rows, strategy.Soft(total))
	}
	for value := 11; value >= 2; value-- {
		rows = append(rows, strategy.Pair(value))
	}
	return rows
}

// Optimize sweeps every row of the strategy table, estimates per-cell
// EV for each structurally valid action via TestRowActions, and writes
// the best action into the table (or the given count layer) wherever
// it differs from the current one. The sweep is interruptible between
// rows and action batches; a cancelled sweep returns the changes made
// so far.
func (s *Simulator) Optimize(ctx context.Context, table *strategy.Table, countLevel *int, trials int, progress func(Progress)) (*OptimizeResult, error) {
	rows := optimizerRows()
	dealers := strategy.DealerLabels
	result := &OptimizeResult{CellsTotal: len(rows) * len(dealers)}

	report := func() {
		if progress == nil {
			return
		}
		progress(Progress{
			Completed: result.CellsDone,
			Total:     result.CellsTotal,
			Percent:   float64(result.CellsDone) / float64(result.CellsTotal) * 100,
		})
	}

	for _, key := range rows {
		select {
		case <-ctx.Done():
			result.Cancelled = true
			return result, nil
		default:
		}

		row, err := s.TestRowActions(ctx, table, key.Label(), dealers, countLevel, trials)
		if err != nil {
			return nil, err
		}
		if row.Cancelled {
			result.Cancelled = true
			return result, nil
		}

		for _, dealer := range dealers {
			best, bestEV := s.bestAction(row, dealer)
			current := s.currentAction(table, countLevel, key, dealer)
			if best != current {
				if countLevel != nil && *countLevel != 0 {
					table.SetCountAction(*countLevel, key, dealer, best)
				} else {
					table.SetAction(key, dealer, best)
				}
				result.Changes = append(result.Changes, Change{
					Label:  key.Label(),
					Dealer: dealer,
					From:   current,
					To:     best,
					EV:     bestEV,
				})
				s.config.Logger.Debug("strategy cell updated",
					"row", key.Label(), "dealer", dealer,
					"from", current, "to", best, "ev", bestEV)
			}
			result.CellsDone++
		}
		report()
	}
	return result, nil
}

func (s *Simulator) bestAction(row *RowResult, dealer string) (strategy.Action, float64) {
	best := row.Actions[0]
	bestEV := row.EV[best.Code()][dealer]
	for _, a := range row.Actions[1:] {
		if ev := row.EV[a.Code()][dealer]; ev > bestEV {
			best, bestEV = a, ev
		}
	}
	return best, bestEV
}

// currentAction is the action the table presently plays for the cell,
// honoring the count layer under optimization and falling back through
// the base layer to the default heuristics.
func (s *Simulator) currentAction(table *strategy.Table, countLevel *int, key strategy.HandKey, dealer string) strategy.Action {
	if countLevel != nil && *countLevel != 0 {
		if a, ok := table.GetCount(*countLevel, key, dealer); ok {
			return a
		}
	}
	if a, ok := table.Get(key, dealer); ok {
		return a
	}
	return table.Lookup(key, dealer, true, key.Kind == strategy.KindPair, 0)
}
