package t2048

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// IntNSource is the subset of *rand.Rand the repository needs.
// Tests substitute a scripted source to control spawns.
type IntNSource interface {
	IntN(n int) int
}

// NewRand returns a seeded random source suitable for a play.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// Repository owns one play: the bounded undo chain plus lives, goal and
// highest-tile bookkeeping. It queues MiscEvents for every counter change;
// callers drain them with Events.
//
// A Repository is not safe for concurrent use.
type Repository struct {
	settings       Settings
	playerName     string
	remainingLives int
	highestNumber  int
	undoChain      []Grid // newest first, never empty
	rng            IntNSource
	events         []MiscEvent
}

// NewRepository starts a play: an empty grid with StarterTiles spawned tiles.
func NewRepository(settings Settings, playerName string, rng IntNSource) (*Repository, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidSettings)
	}
	settings.AcceptedSpawnables = normalizeSpawnables(settings.AcceptedSpawnables)

	r := &Repository{
		settings:       settings,
		playerName:     playerName,
		remainingLives: settings.MaxLives,
		rng:            rng,
	}

	grid := NewGrid(settings.GridHeight, settings.GridWidth)
	for range settings.StarterTiles {
		grid = r.spawn(grid)
	}

	r.undoChain = []Grid{grid}
	r.highestNumber = grid.MaxTile()
	return r, nil
}

// normalizeSpawnables sorts and deduplicates so each value is equally likely.
func normalizeSpawnables(values []int) []int {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

// MoveGrid slides the current grid in dir, spawns a tile and records the result.
//
// If no direction can change the grid a life is spent: the error wraps
// ErrGridStuck, or ErrGameOver when that was the last life. If only dir is
// blocked the error wraps ErrCannotMove and nothing changes.
func (r *Repository) MoveGrid(dir Direction) (Grid, error) {
	if r.IsOver() {
		return r.Current(), ErrGameOver
	}

	head := r.undoChain[0]
	if !CanMove(head) {
		r.remainingLives--
		r.events = append(r.events, newEvent(EventMaxLivesChanged, r.remainingLives))
		if r.remainingLives == 0 {
			return head.Clone(), fmt.Errorf("%w: no lives left", ErrGameOver)
		}
		return head.Clone(), fmt.Errorf("%w: lost a life, %d left", ErrGridStuck, r.remainingLives)
	}

	moved, changed, _ := Move(head, dir)
	if !changed {
		return head.Clone(), fmt.Errorf("%w (%s)", ErrCannotMove, dir)
	}

	moved = r.spawn(moved)
	r.push(moved)

	if top := moved.MaxTile(); top > r.highestNumber {
		r.highestNumber = top
		r.events = append(r.events, newEvent(EventMaxNumberChanged, top))
	}

	return moved.Clone(), nil
}

// Undo drops the newest grid and returns the one before it.
func (r *Repository) Undo() (Grid, error) {
	if r.IsOver() {
		return r.Current(), ErrGameOver
	}
	if len(r.undoChain) <= 1 {
		return r.Current(), ErrUndoImpossible
	}

	r.undoChain = r.undoChain[1:]
	r.events = append(r.events, newEvent(EventUndoCountChanged, r.UndoCount()))
	return r.Current(), nil
}

// push inserts g at the front of the undo chain and evicts the tail past the bound.
// The undo counter only changes, and is only reported, when nothing was evicted.
func (r *Repository) push(g Grid) {
	r.undoChain = slices.Insert(r.undoChain, 0, g)
	if limit := r.settings.MaxUndos + 1; len(r.undoChain) > limit {
		r.undoChain = r.undoChain[:limit]
		return
	}
	r.events = append(r.events, newEvent(EventUndoCountChanged, r.UndoCount()))
}

// spawn places one accepted value on a uniformly chosen empty cell.
// The value is drawn before the cell.
func (r *Repository) spawn(g Grid) Grid {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return g
	}

	value := r.settings.AcceptedSpawnables[r.rng.IntN(len(r.settings.AcceptedSpawnables))]
	cell := empty[r.rng.IntN(len(empty))]
	return g.With(cell, value)
}

// Events drains the queued repository notifications in FIFO order.
func (r *Repository) Events() []MiscEvent {
	events := r.events
	r.events = nil
	return events
}

// Current returns a copy of the newest grid.
func (r *Repository) Current() Grid {
	return r.undoChain[0].Clone()
}

// UndoCount returns how many undos are currently available.
func (r *Repository) UndoCount() int {
	return len(r.undoChain) - 1
}

// RemainingLives returns the lives left in this play.
func (r *Repository) RemainingLives() int {
	return r.remainingLives
}

// HighestNumber returns the highest tile seen in this play.
func (r *Repository) HighestNumber() int {
	return r.highestNumber
}

// Score returns the score of the current grid.
func (r *Repository) Score() int {
	return r.undoChain[0].Score
}

// Goal returns the target tile value.
func (r *Repository) Goal() int {
	return r.settings.Goal
}

// PlayerName returns the name the play is recorded under.
func (r *Repository) PlayerName() string {
	return r.playerName
}

// Settings returns a copy of the rules in force.
func (r *Repository) Settings() Settings {
	s := r.settings
	s.AcceptedSpawnables = slices.Clone(s.AcceptedSpawnables)
	return s
}

// IsOver reports whether every life has been spent.
func (r *Repository) IsOver() bool {
	return r.remainingLives == 0
}
