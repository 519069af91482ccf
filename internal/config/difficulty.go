package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyT2048Preset adjusts lives and undo depth for a difficulty preset.
// Normal keeps whatever the loaded configuration says.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.MaxLives = 5
		cfg.Rules.MaxUndos = 10
	case DifficultyHard:
		cfg.Rules.MaxLives = 1
		cfg.Rules.MaxUndos = 1
		cfg.Rules.AcceptedSpawnables = []int{2, 4, 8}
	}
}
