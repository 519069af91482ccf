// Package savegame persists an in-progress play through a narrow
// read/write capability, encoding the state as YAML.
package savegame

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// ErrNoSave is returned when there is nothing to load.
var ErrNoSave = errors.New("savegame: no saved play")

// ReadWriter is implemented by whatever owns the bytes of a save.
type ReadWriter interface {
	Read() (string, error)
	Write(data string) error
}

// File stores a save in a single file on disk.
type File struct {
	Path string
}

// Read returns the file contents, or ErrNoSave if the file does not exist.
func (f File) Read() (string, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoSave
	}
	if err != nil {
		return "", fmt.Errorf("savegame: read %s: %w", f.Path, err)
	}
	return string(data), nil
}

// Write replaces the file contents, creating parent directories as needed.
func (f File) Write(data string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("savegame: create directory: %w", err)
	}
	if err := os.WriteFile(f.Path, []byte(data), 0o600); err != nil {
		return fmt.Errorf("savegame: write %s: %w", f.Path, err)
	}
	return nil
}

// Encode renders a saved state as YAML.
func Encode(state t2048.SavedState) (string, error) {
	data, err := yaml.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("savegame: encode: %w", err)
	}
	return string(data), nil
}

// Decode parses a YAML saved state. Blank input means there is no save.
func Decode(data string) (t2048.SavedState, error) {
	var state t2048.SavedState
	if strings.TrimSpace(data) == "" {
		return state, ErrNoSave
	}
	if err := yaml.Unmarshal([]byte(data), &state); err != nil {
		return state, fmt.Errorf("savegame: decode: %w", err)
	}
	return state, nil
}

// Save encodes the play's state and writes it.
func Save(rw ReadWriter, state t2048.SavedState) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}
	return rw.Write(data)
}

// Load reads and decodes a saved state.
func Load(rw ReadWriter) (t2048.SavedState, error) {
	data, err := rw.Read()
	if err != nil {
		return t2048.SavedState{}, err
	}
	return Decode(data)
}

// Clear empties the save so a finished play is not resumed.
func Clear(rw ReadWriter) error {
	return rw.Write("")
}
