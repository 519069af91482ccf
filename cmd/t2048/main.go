// t2048 is a terminal sliding-tile merge puzzle with lives, undo and highscores.
//
// Usage:
//
//	t2048 play               - Play in the terminal
//	t2048 scores             - Show the highscore board
//	t2048 serve              - Start SSH server for remote play
//	t2048 levels             - List goal presets
//	t2048 config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible spawns
//	--db <path>          - Set database path (default: ~/.t2048/scores.db)
//	--config <path>      - Load rules from a YAML file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is a terminal take on the sliding-tile merge puzzle.

Slide the board, merge equal tiles and reach the goal tile. A stuck board
costs a life instead of ending the play, and a bounded number of moves can
be undone.

Available commands:
  play     - Play in the terminal
  scores   - View high scores
  serve    - Start SSH server for remote play
  levels   - List goal presets
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 play --difficulty hard --level 3
  t2048 serve --address :2222
  t2048 scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "t2048",
	}), nil
}

// openLogFile opens the log file used while the terminal is owned by the UI.
func openLogFile() (*os.File, error) {
	dir := config.UserDir()
	if dir == "" {
		return nil, fmt.Errorf("cannot determine home directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "t2048.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadConfig reads the rules configuration and applies a difficulty preset.
func loadConfig(difficulty string) (config.T2048Config, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.T2048Config{}, err
	}
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyT2048Preset(&cfg, preset)
	return cfg, cfg.Validate()
}
