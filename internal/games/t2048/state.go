package t2048

import (
	"fmt"
	"slices"
)

// SavedState is the persisted record of a play. It carries no knowledge of
// the file format; see the savegame package for encoding.
type SavedState struct {
	RemainingLives     int    `yaml:"remaining_lives" json:"remainingLives"`
	GridWidth          int    `yaml:"grid_width" json:"gridWidth"`
	GridHeight         int    `yaml:"grid_height" json:"gridHeight"`
	PlayerName         string `yaml:"player_name" json:"playerName"`
	Goal               int    `yaml:"goal" json:"goal"`
	AcceptedSpawnables []int  `yaml:"accepted_spawnables" json:"acceptedSpawnables"`
	UndoChain          []Grid `yaml:"undo_chain" json:"undoChain"` // newest first
}

// State exports the persisted record of the play.
func (r *Repository) State() SavedState {
	chain := make([]Grid, len(r.undoChain))
	for i, g := range r.undoChain {
		chain[i] = g.Clone()
	}

	return SavedState{
		RemainingLives:     r.remainingLives,
		GridWidth:          r.settings.GridWidth,
		GridHeight:         r.settings.GridHeight,
		PlayerName:         r.playerName,
		Goal:               r.settings.Goal,
		AcceptedSpawnables: slices.Clone(r.settings.AcceptedSpawnables),
		UndoChain:          chain,
	}
}

// Restore rebuilds a Repository from a persisted record.
// Only MaxLives and MaxUndos are taken from settings; everything else comes
// from the record. A chain longer than MaxUndos+1 is truncated from the tail.
func Restore(state SavedState, settings Settings, rng IntNSource) (*Repository, error) {
	if err := state.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidSettings)
	}
	if settings.MaxUndos < 0 {
		return nil, fmt.Errorf("%w: max undos must not be negative", ErrInvalidSettings)
	}

	maxLives := max(settings.MaxLives, state.RemainingLives)
	restored := Settings{
		AcceptedSpawnables: normalizeSpawnables(state.AcceptedSpawnables),
		Goal:               state.Goal,
		MaxLives:           maxLives,
		MaxUndos:           settings.MaxUndos,
		GridHeight:         state.GridHeight,
		GridWidth:          state.GridWidth,
	}

	chain := make([]Grid, 0, min(len(state.UndoChain), settings.MaxUndos+1))
	for _, g := range state.UndoChain[:min(len(state.UndoChain), settings.MaxUndos+1)] {
		chain = append(chain, g.Clone())
	}

	highest := 0
	for _, g := range chain {
		highest = max(highest, g.MaxTile())
	}

	return &Repository{
		settings:       restored,
		playerName:     state.PlayerName,
		remainingLives: state.RemainingLives,
		highestNumber:  highest,
		undoChain:      chain,
		rng:            rng,
	}, nil
}

func (s SavedState) validate() error {
	switch {
	case s.RemainingLives < 0:
		return fmt.Errorf("%w: negative lives", ErrInvalidState)
	case s.GridHeight <= 0 || s.GridWidth <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidState, s.GridWidth, s.GridHeight)
	case s.GridHeight > MaxGridSize || s.GridWidth > MaxGridSize:
		return fmt.Errorf("%w: grid larger than %dx%d", ErrInvalidState, MaxGridSize, MaxGridSize)
	case s.Goal <= 0:
		return fmt.Errorf("%w: goal must be positive", ErrInvalidState)
	case len(s.UndoChain) == 0:
		return fmt.Errorf("%w: empty undo chain", ErrInvalidState)
	}

	if err := validateSpawnables(s.AcceptedSpawnables); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	for i, g := range s.UndoChain {
		if g.Height() != s.GridHeight || g.Width() != s.GridWidth {
			return fmt.Errorf("%w: snapshot %d is %dx%d, want %dx%d",
				ErrInvalidState, i, g.Width(), g.Height(), s.GridWidth, s.GridHeight)
		}
		for _, row := range g.Cells {
			if len(row) != s.GridWidth {
				return fmt.Errorf("%w: snapshot %d is not rectangular", ErrInvalidState, i)
			}
			for _, v := range row {
				if v < 0 {
					return fmt.Errorf("%w: snapshot %d has negative tile %d", ErrInvalidState, i, v)
				}
			}
		}
		if g.Score < 0 {
			return fmt.Errorf("%w: snapshot %d has negative score", ErrInvalidState, i)
		}
	}
	return nil
}
