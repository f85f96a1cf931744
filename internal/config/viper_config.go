package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. DATADECK_ENGINE_TURNS.
const EnvPrefix = "DATADECK"

// LoadConfig loads configuration using Viper.
// Priority order: Environment variables > Config file > Defaults.
// A missing config file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("datadeck")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can see it during Unmarshal.
	def := DefaultConfig()
	v.SetDefault("engine.factory", def.Engine.Factory)
	v.SetDefault("engine.strategy", def.Engine.Strategy)
	v.SetDefault("engine.turns", def.Engine.Turns)
	v.SetDefault("simulation.seed", def.Simulation.Seed)
	v.SetDefault("simulation.startingmana", def.Simulation.StartingMana)
	v.SetDefault("simulation.decksize", def.Simulation.DeckSize)
	v.SetDefault("decks.file", def.Decks.File)
	v.SetDefault("decks.number", def.Decks.Number)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
