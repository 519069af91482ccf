// Package t2048 implements the rules engine of a sliding-tile merge puzzle:
// the pure move engine, a repository owning the bounded undo chain with lives
// and goal bookkeeping, and a controller that turns input actions into an
// ordered list of notifications.
package t2048

// Level is a named goal preset.
type Level struct {
	ID     int
	Name   string
	Target int // Goal tile value
}

// Levels defines the campaign goal presets with increasing difficulty.
// Targets are realistic for a 4x4 grid (8192 is very hard but achievable).
var Levels = []Level{
	{ID: 1, Name: "Warm-up", Target: 128},
	{ID: 2, Name: "Getting Started", Target: 256},
	{ID: 3, Name: "Building Momentum", Target: 512},
	{ID: 4, Name: "The Climb", Target: 1024},
	{ID: 5, Name: "Classic 2048", Target: 2048},
	{ID: 6, Name: "Beyond Limits", Target: 4096},
	{ID: 7, Name: "Master Class", Target: 8192},
}

// LevelCount returns the number of goal presets.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level with the given 1-based ID, or nil if out of range.
func GetLevel(id int) *Level {
	if id < 1 || id > len(Levels) {
		return nil
	}
	return &Levels[id-1]
}

// ApplyLevel sets the goal from a level preset. Unknown IDs leave settings unchanged.
func (s *Settings) ApplyLevel(id int) bool {
	lvl := GetLevel(id)
	if lvl == nil {
		return false
	}
	s.Goal = lvl.Target
	return true
}
