package t2048

import "errors"

// Repository and controller failures. Wrap these with fmt.Errorf("%w: ...")
// to add context; classify with errors.Is or IsRecoverable.
var (
	// ErrCannotMove means the requested direction changes nothing while another would.
	ErrCannotMove = errors.New("cannot move in that direction")
	// ErrUndoImpossible means the undo chain holds only the current grid.
	ErrUndoImpossible = errors.New("nothing to undo")
	// ErrGridStuck means no direction changes the grid; a life was spent.
	ErrGridStuck = errors.New("grid is stuck")
	// ErrGameOver means all lives are spent. It is terminal for the play.
	ErrGameOver = errors.New("game over")
	// ErrUnknownInput is a programming error: the adapter sent an invalid symbol.
	ErrUnknownInput = errors.New("unknown input")

	// ErrInvalidSettings is returned when a play cannot start with the given settings.
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrInvalidState is returned when a persisted record cannot be restored.
	ErrInvalidState = errors.New("invalid saved state")
)

// IsRecoverable reports whether err leaves the play running.
// Recoverable failures are surfaced to the player as messages only.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrCannotMove) ||
		errors.Is(err, ErrUndoImpossible) ||
		errors.Is(err, ErrGridStuck)
}
