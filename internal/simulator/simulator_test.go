package simulator

import (
	"context"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfxxx/blackjack/internal/counter"
	"github.com/wolfxxx/blackjack/internal/game"
	"github.com/wolfxxx/blackjack/internal/strategy"
)

func testConfig(hands int) Config {
	return Config{
		NumDecks:    6,
		Penetration: 75,
		Rules:       game.DefaultRules(),
		BetSize:     1,
		Hands:       hands,
		Seed:        42,
	}
}

func newTestSimulator(t *testing.T, cfg Config) *Simulator {
	t.Helper()
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults ok", func(c *Config) {}, false},
		{"zero decks", func(c *Config) { c.NumDecks = 0 }, true},
		{"too many decks", func(c *Config) { c.NumDecks = 9 }, true},
		{"penetration too low", func(c *Config) { c.Penetration = 40 }, true},
		{"penetration too high", func(c *Config) { c.Penetration = 101 }, true},
		{"unset penetration ok", func(c *Config) { c.Penetration = 0 }, false},
		{"negative bet", func(c *Config) { c.BetSize = -1 }, true},
		{"bad payout", func(c *Config) { c.Rules.BlackjackPayout = "2:1" }, true},
		{"unknown counting system", func(c *Config) { c.Counting = "Zen" }, true},
		{"custom counting needs weights", func(c *Config) { c.Counting = counter.Custom }, true},
		{"hi-lo ok", func(c *Config) { c.Counting = counter.HiLo }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(100)
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunHandCountAndProgress(t *testing.T) {
	cfg := testConfig(2500)
	cfg.ChunkSize = 1000
	cfg.Clock = quartz.NewMock(t)
	s := newTestSimulator(t, cfg)

	var completions []int
	stats, err := s.Run(context.Background(), strategy.Basic(), func(p Progress) {
		completions = append(completions, p.Completed)
		assert.Equal(t, 2500, p.Total)
		assert.Zero(t, p.Elapsed, "mock clock never advanced")
	})
	require.NoError(t, err)

	assert.Equal(t, 2500, stats.Games)
	assert.False(t, stats.Cancelled)
	assert.Equal(t, []int{1000, 2000, 2500}, completions)
}

func TestRunDeterministicForSeed(t *testing.T) {
	a, err := newTestSimulator(t, testConfig(5000)).Run(context.Background(), strategy.Basic(), nil)
	require.NoError(t, err)
	b, err := newTestSimulator(t, testConfig(5000)).Run(context.Background(), strategy.Basic(), nil)
	require.NoError(t, err)

	assert.Equal(t, a.Games, b.Games)
	assert.Equal(t, a.Wins, b.Wins)
	assert.InDelta(t, a.TotalWinnings, b.TotalWinnings, 1e-9)
}

func TestRunCancelledReturnsPartial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newTestSimulator(t, testConfig(10000))
	stats, err := s.Run(ctx, strategy.Basic(), nil)
	require.NoError(t, err)

	assert.True(t, stats.Cancelled)
	assert.Zero(t, stats.Games)
}

func TestRunBasicStrategyEV(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Monte Carlo EV check in short mode")
	}
	cfg := testConfig(50000)
	s := newTestSimulator(t, cfg)

	stats, err := s.Run(context.Background(), strategy.Basic(), nil)
	require.NoError(t, err)

	// Basic strategy plays close to even; the house edge is well
	// under 1% per hand.
	ev := stats.ExpectedValue()
	assert.Greater(t, ev, -0.05)
	assert.Less(t, ev, 0.03)
	assert.Greater(t, stats.Blackjacks, 0)
	assert.NotEmpty(t, stats.Cells)
}

func TestRunWithCountingRecordsBuckets(t *testing.T) {
	cfg := testConfig(5000)
	cfg.Counting = counter.HiLo
	s := newTestSimulator(t, cfg)

	stats, err := s.Run(context.Background(), strategy.Basic(), nil)
	require.NoError(t, err)

	assert.Greater(t, len(stats.Counts), 1, "a depleting shoe visits multiple count levels")
}

func TestRunParallelMergesWorkers(t *testing.T) {
	cfg := testConfig(1000)
	cfg.Workers = 4
	s := newTestSimulator(t, cfg)

	last := 0
	stats, err := s.RunParallel(context.Background(), strategy.Basic(), func(p Progress) {
		assert.GreaterOrEqual(t, p.Completed, last)
		last = p.Completed
	})
	require.NoError(t, err)

	assert.Equal(t, 1000, stats.Games)
	assert.False(t, stats.Cancelled)
	assert.Equal(t, 1000, last)
}

func TestPlaySingleHand(t *testing.T) {
	s := newTestSimulator(t, testConfig(0))

	res, err := s.PlaySingleHand(strategy.Basic())
	require.NoError(t, err)

	assert.NotEmpty(t, res.Hands)
	assert.Len(t, res.InitialCards, 2)
	assert.GreaterOrEqual(t, len(res.DealerCards), 2)
	assert.Greater(t, res.TotalBet, 0.0)

	before := s.session.Shoe().Remaining()
	_, err = s.PlaySingleHand(strategy.Basic())
	require.NoError(t, err)
	assert.Less(t, s.session.Shoe().Remaining(), before, "shoe persists across hands")
}
