package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/wolfxxx/blackjack/cmd/blackjack/shared"
	"github.com/wolfxxx/blackjack/internal/config"
	"github.com/wolfxxx/blackjack/internal/counter"
	"github.com/wolfxxx/blackjack/internal/simulator"
	"github.com/wolfxxx/blackjack/internal/strategy"
)

// GameFlags are shared by every command that runs the engine. Flags
// override the corresponding config file settings.
type GameFlags struct {
	Config      string  `kong:"default='blackjack.hcl',help='HCL configuration file'"`
	Decks       int     `kong:"help='Number of decks (1-8)'"`
	Penetration int     `kong:"help='Reshuffle penetration percentage (50-100)'"`
	Counting    string  `kong:"help='Card counting system (Hi-Lo, Hi-Opt I, Hi-Opt II, Omega II, KO, Ace-Five)'"`
	BetSize     float64 `kong:"help='Flat bet per hand'"`
	Seed        int64   `kong:"help='Deterministic RNG seed (0 for random)'"`
	Strategy    string  `kong:"help='Strategy table JSON file (default: built-in basic strategy)'"`
	Debug       bool    `kong:"help='Enable debug logging'"`
}

// setup resolves config file plus flag overrides into a simulator
// config, a strategy table, and a logger. hands, when positive,
// overrides the configured hand count.
func (f *GameFlags) setup(hands int) (simulator.Config, *strategy.Table, *log.Logger, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return simulator.Config{}, nil, nil, err
	}

	if f.Decks != 0 {
		cfg.Table.NumDecks = f.Decks
	}
	if f.Penetration != 0 {
		cfg.Table.Penetration = f.Penetration
	}
	if f.Counting != "" {
		cfg.Counting.System = f.Counting
	}
	if f.BetSize != 0 {
		cfg.Simulation.BetSize = f.BetSize
	}
	if f.Seed != 0 {
		cfg.Simulation.Seed = f.Seed
	}
	if f.Strategy != "" {
		cfg.Strategy.File = f.Strategy
	}
	if f.Debug {
		cfg.Simulation.LogLevel = "debug"
	}
	if hands > 0 {
		cfg.Simulation.Hands = hands
	}

	if err := cfg.Validate(); err != nil {
		return simulator.Config{}, nil, nil, err
	}

	logger := shared.SetupLogger(cfg.Simulation.LogLevel)

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Debug("using random seed", "seed", seed)
	}

	weights, err := cfg.CountingWeights()
	if err != nil {
		return simulator.Config{}, nil, nil, err
	}

	simCfg := simulator.Config{
		NumDecks:      cfg.Table.NumDecks,
		Penetration:   cfg.Table.Penetration,
		Rules:         cfg.Rules(),
		Counting:      counter.System(cfg.Counting.System),
		CustomWeights: weights,
		BetSize:       cfg.Simulation.BetSize,
		Hands:         cfg.Simulation.Hands,
		ChunkSize:     cfg.Simulation.ChunkSize,
		Seed:          seed,
		Workers:       cfg.Simulation.Workers,
		Logger:        logger,
		Clock:         quartz.NewReal(),
	}

	table := strategy.Basic()
	if cfg.Strategy.File != "" {
		table, err = strategy.Load(cfg.Strategy.File)
		if err != nil {
			return simulator.Config{}, nil, nil, fmt.Errorf("loading strategy table: %w", err)
		}
	}
	if cfg.Strategy.CountBased {
		table.SetCountBased(true)
	}

	return simCfg, table, logger, nil
}
