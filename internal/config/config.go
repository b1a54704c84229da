// Package config loads simulator configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/wolfxxx/blackjack/internal/counter"
	"github.com/wolfxxx/blackjack/internal/deck"
	"github.com/wolfxxx/blackjack/internal/game"
)

// Config represents the complete simulator configuration.
type Config struct {
	Table      TableSettings      `hcl:"table,block"`
	Counting   CountingSettings   `hcl:"counting,block"`
	Simulation SimulationSettings `hcl:"simulation,block"`
	Strategy   StrategySettings   `hcl:"strategy,block"`
}

// TableSettings contains shoe composition and house rules. The rule
// booleans are pointers so an omitted setting falls back to the
// default rather than reading as false.
type TableSettings struct {
	NumDecks         int    `hcl:"num_decks,optional"`
	Penetration      int    `hcl:"penetration,optional"`
	DealerHitsSoft17 *bool  `hcl:"dealer_hits_soft_17,optional"`
	DoubleAfterSplit *bool  `hcl:"double_after_split,optional"`
	Resplit          *bool  `hcl:"resplit,optional"`
	ResplitAces      *bool  `hcl:"resplit_aces,optional"`
	BlackjackPayout  string `hcl:"blackjack_payout,optional"`
}

// CountingSettings selects the card counting system.
type CountingSettings struct {
	System string `hcl:"system,optional"`
	// Weights supplies per-rank point values for the custom system,
	// keyed by rank label ("2"-"10", "J", "Q", "K", "A").
	Weights map[string]int `hcl:"weights,optional"`
}

// SimulationSettings contains run parameters.
type SimulationSettings struct {
	Hands     int     `hcl:"hands,optional"`
	BetSize   float64 `hcl:"bet_size,optional"`
	ChunkSize int     `hcl:"chunk_size,optional"`
	Seed      int64   `hcl:"seed,optional"`
	Workers   int     `hcl:"workers,optional"`
	LogLevel  string  `hcl:"log_level,optional"`
}

// StrategySettings points at the strategy table to play.
type StrategySettings struct {
	// File is a saved strategy table; empty plays basic strategy.
	File       string `hcl:"file,optional"`
	CountBased bool   `hcl:"count_based,optional"`
}

// DefaultConfig returns the default configuration: a six-deck shoe
// with common house rules and no counting.
func DefaultConfig() *Config {
	yes, no := true, false
	return &Config{
		Table: TableSettings{
			NumDecks:         6,
			Penetration:      deck.DefaultPenetration,
			DealerHitsSoft17: &yes,
			DoubleAfterSplit: &yes,
			Resplit:          &yes,
			ResplitAces:      &no,
			BlackjackPayout:  string(game.PayThreeToTwo),
		},
		Counting: CountingSettings{},
		Simulation: SimulationSettings{
			Hands:     100000,
			BetSize:   1,
			ChunkSize: 1000,
			Workers:   1,
			LogLevel:  "info",
		},
		Strategy: StrategySettings{},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()

	if config.Table.NumDecks == 0 {
		config.Table.NumDecks = defaults.Table.NumDecks
	}
	if config.Table.Penetration == 0 {
		config.Table.Penetration = defaults.Table.Penetration
	}
	if config.Table.DealerHitsSoft17 == nil {
		config.Table.DealerHitsSoft17 = defaults.Table.DealerHitsSoft17
	}
	if config.Table.DoubleAfterSplit == nil {
		config.Table.DoubleAfterSplit = defaults.Table.DoubleAfterSplit
	}
	if config.Table.Resplit == nil {
		config.Table.Resplit = defaults.Table.Resplit
	}
	if config.Table.ResplitAces == nil {
		config.Table.ResplitAces = defaults.Table.ResplitAces
	}
	if config.Table.BlackjackPayout == "" {
		config.Table.BlackjackPayout = defaults.Table.BlackjackPayout
	}

	if config.Simulation.Hands == 0 {
		config.Simulation.Hands = defaults.Simulation.Hands
	}
	if config.Simulation.BetSize == 0 {
		config.Simulation.BetSize = defaults.Simulation.BetSize
	}
	if config.Simulation.ChunkSize == 0 {
		config.Simulation.ChunkSize = defaults.Simulation.ChunkSize
	}
	if config.Simulation.Workers == 0 {
		config.Simulation.Workers = defaults.Simulation.Workers
	}
	if config.Simulation.LogLevel == "" {
		config.Simulation.LogLevel = defaults.Simulation.LogLevel
	}

	return &config, nil
}

// Validate checks ranges and cross-field consistency.
func (c *Config) Validate() error {
	if c.Table.NumDecks < 1 || c.Table.NumDecks > 8 {
		return fmt.Errorf("num_decks must be 1-8, got %d", c.Table.NumDecks)
	}
	if c.Table.Penetration < 50 || c.Table.Penetration > 100 {
		return fmt.Errorf("penetration must be 50-100, got %d", c.Table.Penetration)
	}
	if err := c.Rules().Validate(); err != nil {
		return err
	}
	if c.Simulation.Hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", c.Simulation.Hands)
	}
	if c.Simulation.BetSize <= 0 {
		return fmt.Errorf("bet_size must be positive, got %v", c.Simulation.BetSize)
	}
	if c.Simulation.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Simulation.Workers)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Simulation.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.Simulation.LogLevel)
	}

	if c.Counting.System != "" {
		weights, err := c.CountingWeights()
		if err != nil {
			return err
		}
		if _, err := counter.New(counter.System(c.Counting.System), weights); err != nil {
			return err
		}
	}
	return nil
}

// Rules converts the table settings into engine rules.
func (c *Config) Rules() game.Rules {
	rules := game.DefaultRules()
	if c.Table.DealerHitsSoft17 != nil {
		rules.DealerHitsSoft17 = *c.Table.DealerHitsSoft17
	}
	if c.Table.DoubleAfterSplit != nil {
		rules.DoubleAfterSplit = *c.Table.DoubleAfterSplit
	}
	if c.Table.Resplit != nil {
		rules.Resplit = *c.Table.Resplit
	}
	if c.Table.ResplitAces != nil {
		rules.ResplitAces = *c.Table.ResplitAces
	}
	if c.Table.BlackjackPayout != "" {
		rules.BlackjackPayout = game.Payout(c.Table.BlackjackPayout)
	}
	return rules
}

// CountingWeights converts the configured custom weight map, keyed by
// rank label, into counter weights.
func (c *Config) CountingWeights() (counter.Weights, error) {
	if len(c.Counting.Weights) == 0 {
		return nil, nil
	}
	weights := make(counter.Weights, len(c.Counting.Weights))
	for label, weight := range c.Counting.Weights {
		rank, err := deck.ParseRank(label)
		if err != nil {
			return nil, fmt.Errorf("counting weights: %w", err)
		}
		weights[rank] = weight
	}
	return weights, nil
}
