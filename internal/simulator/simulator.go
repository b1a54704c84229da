// Package simulator drives the game engine over large batches of
// hands: Monte Carlo EV estimation, per-row action testing, full-table
// strategy optimization, and one-off situation analysis.
package simulator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/wolfxxx/blackjack/internal/counter"
	"github.com/wolfxxx/blackjack/internal/deck"
	"github.com/wolfxxx/blackjack/internal/game"
	"github.com/wolfxxx/blackjack/internal/statistics"
	"github.com/wolfxxx/blackjack/internal/strategy"
)

const defaultChunkSize = 1000

// workerSeedStride separates per-worker RNG streams.
const workerSeedStride = 0x9e3779b9

// Config holds configuration for a simulation run.
type Config struct {
	NumDecks    int
	Penetration int
	Rules       game.Rules

	// Counting selects the card counting system; empty disables
	// counting. CustomWeights applies only to counter.Custom.
	Counting      counter.System
	CustomWeights counter.Weights

	BetSize   float64
	Hands     int
	ChunkSize int
	Seed      int64
	Workers   int

	Logger *log.Logger
	Clock  quartz.Clock
}

// Validate checks the configuration ranges.
func (c Config) Validate() error {
	if c.NumDecks < 1 || c.NumDecks > 8 {
		return fmt.Errorf("num decks must be 1-8, got %d", c.NumDecks)
	}
	if c.Penetration != 0 && (c.Penetration < 50 || c.Penetration > 100) {
		return fmt.Errorf("penetration must be 50-100, got %d", c.Penetration)
	}
	if c.Hands < 0 {
		return fmt.Errorf("hands must be non-negative, got %d", c.Hands)
	}
	if c.BetSize < 0 {
		return fmt.Errorf("bet size must be non-negative, got %v", c.BetSize)
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if c.Counting != "" {
		if _, err := counter.New(c.Counting, c.CustomWeights); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Penetration == 0 {
		c.Penetration = deck.DefaultPenetration
	}
	if c.BetSize == 0 {
		c.BetSize = 1
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = defaultChunkSize
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	if c.Clock == nil {
		c.Clock = quartz.NewReal()
	}
	return c
}

// Progress reports simulation advancement between chunks.
type Progress struct {
	Completed int
	Total     int
	Percent   float64
	EV        float64
	Elapsed   time.Duration
}

// Simulator runs blackjack hand simulations against a strategy table.
type Simulator struct {
	config  Config
	session *game.Game
}

// New creates a simulator with the given configuration.
func New(config Config) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{config: config.withDefaults()}, nil
}

// Config returns the effective configuration, defaults applied.
func (s *Simulator) Config() Config { return s.config }

func (s *Simulator) newGame(seed int64) (*game.Game, error) {
	shoe := deck.NewShoe(s.config.NumDecks, s.config.Penetration, seed)
	var ctr *counter.Counter
	if s.config.Counting != "" {
		c, err := counter.New(s.config.Counting, s.config.CustomWeights)
		if err != nil {
			return nil, err
		}
		ctr = c
	}
	return game.New(shoe, ctr, s.config.Rules, s.config.Logger), nil
}

// Run executes the configured number of hands sequentially through one
// shared shoe, reporting progress between chunks. Cancellation returns
// the partial aggregate with its Cancelled flag set rather than an
// error.
func (s *Simulator) Run(ctx context.Context, table *strategy.Table, progress func(Progress)) (*statistics.Stats, error) {
	start := s.config.Clock.Now()
	report := func(completed int, stats *statistics.Stats) {
		if progress == nil {
			return
		}
		progress(Progress{
			Completed: completed,
			Total:     s.config.Hands,
			Percent:   float64(completed) / float64(s.config.Hands) * 100,
			EV:        stats.ExpectedValue(),
			Elapsed:   s.config.Clock.Since(start),
		})
	}

	stats, err := s.run(ctx, table, s.config.Hands, s.config.Seed, report)
	if err != nil {
		return nil, err
	}
	s.config.Logger.Info("simulation finished",
		"hands", stats.Games,
		"ev", stats.ExpectedValue(),
		"cancelled", stats.Cancelled,
		"elapsed", s.config.Clock.Since(start))
	return stats, nil
}

// run is the chunked simulation loop shared by sequential and parallel
// runs. onChunk receives the cumulative completed hand count and the
// aggregate so far.
func (s *Simulator) run(ctx context.Context, table *strategy.Table, hands int, seed int64, onChunk func(completed int, stats *statistics.Stats)) (*statistics.Stats, error) {
	g, err := s.newGame(seed)
	if err != nil {
		return nil, err
	}
	stats := statistics.New()
	for done := 0; done < hands; {
		select {
		case <-ctx.Done():
			stats.Cancelled = true
			return stats, nil
		default:
		}
		n := min(s.config.ChunkSize, hands-done)
		for i := 0; i < n; i++ {
			stats.Record(g.PlayHand(table, s.config.BetSize))
		}
		done += n
		if onChunk != nil {
			onChunk(done, stats)
		}
	}
	return stats, nil
}

// RunParallel splits the run across Workers goroutines, each with its
// own shoe, counter, and copy of the strategy table, and merges the
// per-worker aggregates. Falls back to Run for a single worker.
func (s *Simulator) RunParallel(ctx context.Context, table *strategy.Table, progress func(Progress)) (*statistics.Stats, error) {
	workers := s.config.Workers
	if workers <= 1 {
		return s.Run(ctx, table, progress)
	}

	start := s.config.Clock.Now()
	per := s.config.Hands / workers
	rem := s.config.Hands % workers

	eg, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Stats, workers)
	completions := make(chan int, workers*4)

	for w := 0; w < workers; w++ {
		hands := per
		if w < rem {
			hands++
		}
		seed := s.config.Seed + int64(w)*workerSeedStride
		workerTable := table.Clone()
		eg.Go(func() error {
			last := 0
			stats, err := s.run(ctx, workerTable, hands, seed, func(completed int, _ *statistics.Stats) {
				completions <- completed - last
				last = completed
			})
			if err != nil {
				return err
			}
			results <- stats
			return nil
		})
	}

	collectorDone := make(chan struct{})
	go func() {
		defer close(collectorDone)
		completed := 0
		for n := range completions {
			completed += n
			if progress == nil {
				continue
			}
			progress(Progress{
				Completed: completed,
				Total:     s.config.Hands,
				Percent:   float64(completed) / float64(s.config.Hands) * 100,
				Elapsed:   s.config.Clock.Since(start),
			})
		}
	}()

	err := eg.Wait()
	close(completions)
	<-collectorDone
	close(results)
	if err != nil {
		return nil, err
	}

	merged := statistics.New()
	for stats := range results {
		merged.Merge(stats)
	}
	s.config.Logger.Info("parallel simulation finished",
		"hands", merged.Games,
		"workers", workers,
		"ev", merged.ExpectedValue(),
		"cancelled", merged.Cancelled,
		"elapsed", s.config.Clock.Since(start))
	return merged, nil
}

// PlaySingleHand plays exactly one hand against the live table,
// keeping the shoe and count across calls for interactive play.
func (s *Simulator) PlaySingleHand(table *strategy.Table) (game.Result, error) {
	if s.session == nil {
		g, err := s.newGame(s.config.Seed)
		if err != nil {
			return game.Result{}, err
		}
		s.session = g
	}
	return s.session.PlayHand(table, s.config.BetSize), nil
}
