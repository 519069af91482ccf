package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/highscore"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/savegame"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagDifficulty string
	flagLevel      int
	flagName       string
	flagResume     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a play in the terminal.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  U/Z/Backspace     - Undo
  P/Esc             - Pause
  R                 - New play (after game over)
  ?                 - Toggle help
  Q/Ctrl+C          - Quit (an unfinished play is saved)

Difficulty options:
  easy   - 5 lives, 10 undos
  normal - Lives and undos from the configuration
  hard   - 1 life, 1 undo, 8s may spawn

Without --level a picker lets you keep the configured goal or choose a preset.

Examples:
  t2048 play
  t2048 play --level 5
  t2048 play --difficulty easy --name alice
  t2048 play --resume`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Goal preset to play (see 't2048 levels')")
	playCmd.Flags().StringVar(&flagName, "name", defaultPlayerName(), "Name scores are recorded under")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Continue the last unfinished play")
}

func defaultPlayerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := log.New(io.Discard)
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		if l, lerr := newLogger(f); lerr == nil {
			logger = l
		}
	}

	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}
	settings := t2048.SettingsFromConfig(cfg)

	// Get terminal size early for the picker
	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the play still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := tui.PlayOptions{
		Settings: settings,
		Player:   flagName,
		Config:   rc,
		Logger:   logger,
	}
	if store != nil {
		opts.Store = store
		opts.Save = store.Slot(tui.SlotName(flagName))
		opts.Board, err = store.LoadBoard(cfg.Highscores.MaxEntries)
		if err != nil {
			logger.Warn("could not load highscores", "err", err)
		}
	} else {
		opts.Save = savegame.File{Path: filepath.Join(config.UserDir(), "save.yaml")}
	}
	if opts.Board == nil {
		opts.Board, _ = highscore.New(cfg.Highscores.MaxEntries)
	}

	if flagResume {
		state, loadErr := savegame.Load(opts.Save)
		switch {
		case loadErr == nil:
			opts.Resume = &state
		case errors.Is(loadErr, savegame.ErrNoSave):
			fmt.Fprintln(os.Stderr, "No unfinished play found, starting a new one.")
		default:
			fmt.Fprintf(os.Stderr, "Warning: could not load saved play: %v\n", loadErr)
		}
	}

	switch {
	case opts.Resume != nil:
	case flagLevel > 0:
		if !opts.Settings.ApplyLevel(flagLevel) {
			return fmt.Errorf("unknown level %d (1-%d)", flagLevel, t2048.LevelCount())
		}
	default:
		selection, selErr := tui.RunLevelPicker(settings.Goal, rc)
		if selErr != nil {
			return selErr
		}
		// User pressed back or quit
		if selection == nil {
			return nil
		}
		opts.Settings.ApplyLevel(selection.Level)
	}

	final, runErr := tui.Run(opts)
	if runErr != nil {
		return fmt.Errorf("running play: %w", runErr)
	}

	snap := final.Snapshot()
	fmt.Printf("Score %d, max tile %d, goal %d\n", snap.Score, snap.Highest, snap.Goal)
	if snap.State != t2048.StateEnded {
		fmt.Println("Play saved. Continue with 't2048 play --resume'.")
	}
	return nil
}
