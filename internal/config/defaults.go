package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the classic rules: 4x4, goal 2048, three lives, five undos.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Grid: GridConfig{
			Width:        4,
			Height:       4,
			StarterTiles: 2,
		},
		Rules: RulesConfig{
			Goal:               2048,
			MaxLives:           3,
			MaxUndos:           5,
			AcceptedSpawnables: []int{2, 4},
		},
		Highscores: HighscoreConfig{
			MaxEntries: 10,
		},
	}
}
