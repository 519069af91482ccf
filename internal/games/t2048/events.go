package t2048

// Notification is an outward event produced by a turn.
// The concrete types below form a closed set.
type Notification interface {
	notification()
}

// MoveHappened is emitted after a successful move; Grid already includes the spawned tile.
type MoveHappened struct {
	Grid      Grid
	Direction Direction
}

func (MoveHappened) notification() {}

// UndoHappened is emitted after a successful undo.
type UndoHappened struct {
	Grid Grid
}

func (UndoHappened) notification() {}

// ErrorHappened carries a one-line, player-facing reason why an action did not happen.
type ErrorHappened struct {
	Message string
}

func (ErrorHappened) notification() {}

// EventKind identifies a MiscEvent.
type EventKind int

const (
	EventGoalReached      EventKind = iota // goal tile reached for the first time
	EventMaxNumberChanged                  // Arg: new highest tile
	EventUndoCountChanged                  // Arg: undos available
	EventMaxLivesChanged                   // Arg: remaining lives
	EventGameOver                          // lives exhausted
)

func (k EventKind) String() string {
	switch k {
	case EventGoalReached:
		return "GoalReached"
	case EventMaxNumberChanged:
		return "MaxNumberChanged"
	case EventUndoCountChanged:
		return "UndoCountChanged"
	case EventMaxLivesChanged:
		return "MaxLivesChanged"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// MiscEvent is a counter or state change with an optional integer payload.
// The repository queues these; the controller re-emits them unchanged.
type MiscEvent struct {
	Kind   EventKind
	Arg    int
	HasArg bool
}

func (MiscEvent) notification() {}

func newEvent(kind EventKind, arg int) MiscEvent {
	return MiscEvent{Kind: kind, Arg: arg, HasArg: true}
}
