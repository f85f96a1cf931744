package config

import (
	"fmt"

	"github.com/peterkuimelis/datadeck/internal/game"
)

// This file defines the configuration structures used by viper_config.go.

// Config is the simulation configuration shared by the CLI and MCP server.
type Config struct {
	Engine     EngineSettings     `mapstructure:"engine"`
	Simulation SimulationSettings `mapstructure:"simulation"`
	Decks      DeckSettings       `mapstructure:"decks"`
}

// EngineSettings selects the engine's policy objects.
type EngineSettings struct {
	Factory  string `mapstructure:"factory"`  // "fantasy" or "catalog"
	Strategy string `mapstructure:"strategy"` // "aggressive"
	Turns    int    `mapstructure:"turns"`
}

// SimulationSettings controls randomness and the starting board.
type SimulationSettings struct {
	Seed         uint64 `mapstructure:"seed"` // 0 picks a random seed
	StartingMana int    `mapstructure:"startingMana"`
	DeckSize     int    `mapstructure:"deckSize"`
}

// DeckSettings points at the YAML deck file.
type DeckSettings struct {
	File   string `mapstructure:"file"`
	Number int    `mapstructure:"number"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineSettings{
			Factory:  "fantasy",
			Strategy: "aggressive",
			Turns:    1,
		},
		Simulation: SimulationSettings{
			StartingMana: 10,
			DeckSize:     10,
		},
		Decks: DeckSettings{
			File:   "decks.yaml",
			Number: 1,
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := game.NewFactory(c.Engine.Factory, nil); err != nil {
		return fmt.Errorf("engine.factory: %w", err)
	}
	if _, err := game.NewStrategy(c.Engine.Strategy); err != nil {
		return fmt.Errorf("engine.strategy: %w", err)
	}
	if c.Engine.Turns < 0 {
		return fmt.Errorf("engine.turns must not be negative")
	}
	if c.Simulation.StartingMana < 0 {
		return fmt.Errorf("simulation.startingMana must not be negative")
	}
	if c.Simulation.DeckSize < 0 {
		return fmt.Errorf("simulation.deckSize must not be negative")
	}
	if c.Decks.Number < 1 {
		return fmt.Errorf("decks.number must be at least 1")
	}
	return nil
}
