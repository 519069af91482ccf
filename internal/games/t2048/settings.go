package t2048

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// MaxGridSize bounds both grid dimensions.
const MaxGridSize = config.MaxGridSize

// Settings is the explicit rules configuration for one play.
type Settings struct {
	AcceptedSpawnables []int
	Goal               int
	MaxLives           int
	MaxUndos           int
	GridHeight         int
	GridWidth          int
	StarterTiles       int
}

// DefaultSettings returns the classic rules: 4x4, goal 2048, three lives, five undos.
func DefaultSettings() Settings {
	return Settings{
		AcceptedSpawnables: []int{2, 4},
		Goal:               2048,
		MaxLives:           3,
		MaxUndos:           5,
		GridHeight:         4,
		GridWidth:          4,
		StarterTiles:       2,
	}
}

// SettingsFromConfig converts the loaded YAML configuration into Settings.
func SettingsFromConfig(cfg config.T2048Config) Settings {
	return Settings{
		AcceptedSpawnables: slices.Clone(cfg.Rules.AcceptedSpawnables),
		Goal:               cfg.Rules.Goal,
		MaxLives:           cfg.Rules.MaxLives,
		MaxUndos:           cfg.Rules.MaxUndos,
		GridHeight:         cfg.Grid.Height,
		GridWidth:          cfg.Grid.Width,
		StarterTiles:       cfg.Grid.StarterTiles,
	}
}

// Validate checks that a play can start with these settings.
func (s Settings) Validate() error {
	switch {
	case s.GridHeight <= 0 || s.GridWidth <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidSettings, s.GridWidth, s.GridHeight)
	case s.GridHeight > MaxGridSize || s.GridWidth > MaxGridSize:
		return fmt.Errorf("%w: grid larger than %dx%d", ErrInvalidSettings, MaxGridSize, MaxGridSize)
	case s.StarterTiles < 0 || s.StarterTiles > s.GridHeight*s.GridWidth:
		return fmt.Errorf("%w: %d starter tiles on a %dx%d grid", ErrInvalidSettings, s.StarterTiles, s.GridWidth, s.GridHeight)
	case s.MaxLives <= 0:
		return fmt.Errorf("%w: max lives must be positive", ErrInvalidSettings)
	case s.MaxUndos < 0:
		return fmt.Errorf("%w: max undos must not be negative", ErrInvalidSettings)
	case s.Goal <= 0:
		return fmt.Errorf("%w: goal must be positive", ErrInvalidSettings)
	}
	return validateSpawnables(s.AcceptedSpawnables)
}

func validateSpawnables(values []int) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: no accepted spawnables", ErrInvalidSettings)
	}
	for _, v := range values {
		if v <= 0 {
			return fmt.Errorf("%w: spawnable %d is not positive", ErrInvalidSettings, v)
		}
	}
	return nil
}
