package t2048

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// ControllerState is the play's position in the Ready/Paused/Ended machine.
type ControllerState int

const (
	StateReady ControllerState = iota
	StatePaused
	StateEnded
)

func (s ControllerState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Turn is the outcome of one input: the notifications it produced, in order,
// and the controller state afterwards.
type Turn struct {
	Notifications []Notification
	State         ControllerState
}

func (t *Turn) add(n Notification) {
	t.Notifications = append(t.Notifications, n)
}

// Paused reports whether the turn asked the host to pause.
func (t Turn) Paused() bool {
	return t.State == StatePaused
}

// Controller turns input actions into repository calls and collects the
// resulting notifications.
type Controller struct {
	repo        *Repository
	state       ControllerState
	goalReached bool
	logger      *log.Logger
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger used for turn diagnostics.
func WithLogger(l *log.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController wraps a repository. A repository with no lives left starts Ended.
func NewController(repo *Repository, opts ...ControllerOption) *Controller {
	c := &Controller{
		repo:   repo,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if repo.IsOver() {
		c.state = StateEnded
	}
	return c
}

// HandleInput processes one input action.
//
// Recoverable failures become ErrorHappened notifications and a nil error.
// When the last life is spent the turn carries an ErrorHappened and a
// GameOver event and the returned error wraps ErrGameOver; every later call
// returns ErrGameOver with no notifications. An unknown action returns an
// error wrapping ErrUnknownInput.
func (c *Controller) HandleInput(in core.Action) (Turn, error) {
	if c.state == StateEnded {
		return Turn{State: StateEnded}, ErrGameOver
	}

	var turn Turn
	var err error

	switch {
	case in.IsMove():
		c.state = StateReady
		dir := directionFor(in)
		grid, moveErr := c.repo.MoveGrid(dir)
		if moveErr == nil {
			c.logger.Debug("move", "dir", dir, "score", grid.Score, "highest", c.repo.HighestNumber())
			turn.add(MoveHappened{Grid: grid, Direction: dir})
			c.checkGoal(&turn)
		}
		err = c.classify(&turn, moveErr)

	case in == core.ActionUndo:
		c.state = StateReady
		grid, undoErr := c.repo.Undo()
		if undoErr == nil {
			c.logger.Debug("undo", "undos", c.repo.UndoCount())
			turn.add(UndoHappened{Grid: grid})
		}
		err = c.classify(&turn, undoErr)

	case in == core.ActionPause:
		c.state = StatePaused
		return Turn{State: c.state}, nil

	default:
		return Turn{State: c.state}, fmt.Errorf("%w: %v", ErrUnknownInput, in)
	}

	for _, ev := range c.repo.Events() {
		turn.add(ev)
	}
	turn.State = c.state
	return turn, err
}

// classify turns a repository failure into notifications.
// It returns the error only when the host must react to it.
func (c *Controller) classify(turn *Turn, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrGameOver):
		c.logger.Info("game over", "player", c.repo.PlayerName(), "score", c.repo.Score())
		turn.add(ErrorHappened{Message: err.Error()})
		turn.add(MiscEvent{Kind: EventGameOver})
		c.state = StateEnded
		return err
	case IsRecoverable(err):
		if errors.Is(err, ErrGridStuck) {
			c.logger.Warn("grid stuck", "lives", c.repo.RemainingLives())
		}
		turn.add(ErrorHappened{Message: err.Error()})
		return nil
	default:
		return err
	}
}

// checkGoal emits GoalReached the first time the highest tile meets the goal.
func (c *Controller) checkGoal(turn *Turn) {
	if c.goalReached || c.repo.HighestNumber() < c.repo.Goal() {
		return
	}
	c.goalReached = true
	c.logger.Info("goal reached", "goal", c.repo.Goal())
	turn.add(newEvent(EventGoalReached, c.repo.Goal()))
}

// Resume leaves the paused state. It has no effect otherwise.
func (c *Controller) Resume() {
	if c.state == StatePaused {
		c.state = StateReady
	}
}

// State returns the controller state.
func (c *Controller) State() ControllerState {
	return c.state
}

// GoalReached reports whether the goal latch has fired in this play.
func (c *Controller) GoalReached() bool {
	return c.goalReached
}

// Repository exposes the underlying play, e.g. for saving it.
func (c *Controller) Repository() *Repository {
	return c.repo
}

func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	default:
		return DirRight
	}
}
