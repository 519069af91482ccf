// Package config provides YAML-based rules configuration loading, environment
// overrides and difficulty presets for the puzzle.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MaxGridSize bounds both grid dimensions.
const MaxGridSize = 10

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// T2048Config contains all configuration for a play.
type T2048Config struct {
	Grid       GridConfig      `yaml:"grid"`
	Rules      RulesConfig     `yaml:"rules"`
	Highscores HighscoreConfig `yaml:"highscores"`
}

// GridConfig defines the board shape.
type GridConfig struct {
	Width        int `yaml:"width" env:"T2048_GRID_WIDTH"`
	Height       int `yaml:"height" env:"T2048_GRID_HEIGHT"`
	StarterTiles int `yaml:"starter_tiles" env:"T2048_STARTER_TILES"`
}

// RulesConfig defines goal, lives, undo depth and spawn values.
type RulesConfig struct {
	Goal               int   `yaml:"goal" env:"T2048_GOAL"`
	MaxLives           int   `yaml:"max_lives" env:"T2048_MAX_LIVES"`
	MaxUndos           int   `yaml:"max_undos" env:"T2048_MAX_UNDOS"`
	AcceptedSpawnables []int `yaml:"accepted_spawnables,flow" env:"T2048_SPAWNABLES" envSeparator:","`
}

// HighscoreConfig sizes the highscore board.
type HighscoreConfig struct {
	MaxEntries int `yaml:"max_entries" env:"T2048_MAX_HIGHSCORES"`
}

// Validate rejects configurations no play could start with.
func (c T2048Config) Validate() error {
	g, r := c.Grid, c.Rules
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, g.Width, g.Height)
	case g.Width > MaxGridSize || g.Height > MaxGridSize:
		return fmt.Errorf("%w: grid %dx%d exceeds %dx%d", ErrInvalidConfig, g.Width, g.Height, MaxGridSize, MaxGridSize)
	case g.StarterTiles < 0 || g.StarterTiles > g.Width*g.Height:
		return fmt.Errorf("%w: %d starter tiles do not fit a %dx%d grid", ErrInvalidConfig, g.StarterTiles, g.Width, g.Height)
	case r.Goal <= 0:
		return fmt.Errorf("%w: goal must be positive", ErrInvalidConfig)
	case r.MaxLives <= 0:
		return fmt.Errorf("%w: max_lives must be positive", ErrInvalidConfig)
	case r.MaxUndos < 0:
		return fmt.Errorf("%w: max_undos must not be negative", ErrInvalidConfig)
	case len(r.AcceptedSpawnables) == 0:
		return fmt.Errorf("%w: accepted_spawnables is empty", ErrInvalidConfig)
	case c.Highscores.MaxEntries <= 0:
		return fmt.Errorf("%w: highscores.max_entries must be positive", ErrInvalidConfig)
	}
	for _, v := range r.AcceptedSpawnables {
		if v <= 0 {
			return fmt.Errorf("%w: spawnable %d is not positive", ErrInvalidConfig, v)
		}
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c T2048Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
