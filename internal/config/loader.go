package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory name under $HOME.
const AppDir = ".t2048"

// LoadT2048 loads the rules configuration and applies T2048_* environment overrides.
// Search order: customPath -> ~/.t2048/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
func LoadT2048(customPath string) (T2048Config, error) {
	cfg, err := loadT2048File(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadT2048File(customPath string) (T2048Config, error) {
	// Files are decoded over the defaults so partial configs keep sane values.
	cfg := DefaultT2048Config()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath("t2048.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			fromFile := DefaultT2048Config()
			if err := yaml.Unmarshal(data, &fromFile); err == nil {
				return fromFile, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "t2048.yaml")); err == nil {
		fromFile := DefaultT2048Config()
		if err := yaml.Unmarshal(data, &fromFile); err == nil {
			return fromFile, nil
		}
	}

	if err := yaml.Unmarshal(defaultT2048YAML, &cfg); err != nil {
		return DefaultT2048Config(), nil
	}
	return cfg, nil
}

// ApplyEnv overrides fields from T2048_* environment variables.
// Unset variables leave the current values alone.
func ApplyEnv(cfg *T2048Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home := UserDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, "configs", filename)
}

// UserDir returns ~/.t2048, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir)
}
