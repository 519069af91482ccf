package t2048

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func countKind(ns []Notification, kind EventKind) int {
	n := 0
	for _, note := range ns {
		if ev, ok := note.(MiscEvent); ok && ev.Kind == kind {
			n++
		}
	}
	return n
}

func countErrors(ns []Notification) int {
	n := 0
	for _, note := range ns {
		if _, ok := note.(ErrorHappened); ok {
			n++
		}
	}
	return n
}

func TestControllerMoveNotificationOrder(t *testing.T) {
	start := gridOf(0, append([][]int{{2, 2, 0, 0}}, emptyRows(3, 4)...)...)
	c := NewController(restoreRepo(t, testSettings(), 3, start))

	turn, err := c.HandleInput(core.ActionLeft)
	if err != nil {
		t.Fatalf("HandleInput(left) failed: %v", err)
	}
	if turn.State != StateReady {
		t.Errorf("state = %v, want ready", turn.State)
	}
	if len(turn.Notifications) != 3 {
		t.Fatalf("got %d notifications, want 3: %v", len(turn.Notifications), turn.Notifications)
	}

	moved, ok := turn.Notifications[0].(MoveHappened)
	if !ok {
		t.Fatalf("first notification is %T, want MoveHappened", turn.Notifications[0])
	}
	if moved.Direction != DirLeft || moved.Grid.Cells[0][0] != 4 {
		t.Errorf("MoveHappened = %+v", moved)
	}
	if ev := turn.Notifications[1].(MiscEvent); ev != newEvent(EventUndoCountChanged, 1) {
		t.Errorf("second notification = %v, want undo-count-changed(1)", ev)
	}
	if ev := turn.Notifications[2].(MiscEvent); ev != newEvent(EventMaxNumberChanged, 4) {
		t.Errorf("third notification = %v, want max-number-changed(4)", ev)
	}
}

func TestControllerRecoverableFailures(t *testing.T) {
	start := gridOf(0, append([][]int{{2, 0, 0, 0}}, emptyRows(3, 4)...)...)

	tests := []struct {
		name  string
		input core.Action
	}{
		{"cannot move left", core.ActionLeft},
		{"cannot move up", core.ActionUp},
		{"undo impossible", core.ActionUndo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(restoreRepo(t, testSettings(), 3, start))
			turn, err := c.HandleInput(tt.input)
			if err != nil {
				t.Fatalf("recoverable failure returned error: %v", err)
			}
			if len(turn.Notifications) != 1 {
				t.Fatalf("got %v, want a single error notification", turn.Notifications)
			}
			msg, ok := turn.Notifications[0].(ErrorHappened)
			if !ok || msg.Message == "" {
				t.Errorf("notification = %#v, want ErrorHappened with a message", turn.Notifications[0])
			}
			if turn.State != StateReady {
				t.Errorf("state = %v, want ready", turn.State)
			}
		})
	}
}

func TestControllerStuckGridCostsLife(t *testing.T) {
	c := NewController(restoreRepo(t, testSettings(), 2, stuckGrid()))

	turn, err := c.HandleInput(core.ActionDown)
	if err != nil {
		t.Fatalf("stuck move with lives left returned error: %v", err)
	}
	if countErrors(turn.Notifications) != 1 {
		t.Errorf("want one error notification, got %v", turn.Notifications)
	}
	if countKind(turn.Notifications, EventMaxLivesChanged) != 1 {
		t.Errorf("want one lives-changed notification, got %v", turn.Notifications)
	}
	if countKind(turn.Notifications, EventGameOver) != 0 {
		t.Error("game over emitted with a life left")
	}
	if c.Repository().RemainingLives() != 1 {
		t.Errorf("lives = %d, want 1", c.Repository().RemainingLives())
	}
}

func TestControllerGameOver(t *testing.T) {
	c := NewController(restoreRepo(t, testSettings(), 1, stuckGrid()))

	turn, err := c.HandleInput(core.ActionRight)
	if !errors.Is(err, ErrGameOver) {
		t.Fatalf("HandleInput() error = %v, want ErrGameOver", err)
	}
	if turn.State != StateEnded || c.State() != StateEnded {
		t.Errorf("state = %v, want ended", turn.State)
	}
	if countKind(turn.Notifications, EventGameOver) != 1 {
		t.Errorf("want exactly one game-over notification, got %v", turn.Notifications)
	}
	if countErrors(turn.Notifications) != 1 {
		t.Errorf("want exactly one error notification, got %v", turn.Notifications)
	}
	if _, ok := turn.Notifications[0].(ErrorHappened); !ok {
		t.Errorf("first notification is %T, want ErrorHappened", turn.Notifications[0])
	}
	if ev, ok := turn.Notifications[1].(MiscEvent); !ok || ev.Kind != EventGameOver || ev.HasArg {
		t.Errorf("second notification = %#v, want argless game-over", turn.Notifications[1])
	}

	for _, in := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionUndo, core.ActionPause} {
		turn, err := c.HandleInput(in)
		if !errors.Is(err, ErrGameOver) {
			t.Errorf("HandleInput(%v) after game over: error = %v, want ErrGameOver", in, err)
		}
		if len(turn.Notifications) != 0 {
			t.Errorf("HandleInput(%v) after game over produced %v", in, turn.Notifications)
		}
	}
}

func TestControllerStartsEndedWithoutLives(t *testing.T) {
	c := NewController(restoreRepo(t, testSettings(), 0, stuckGrid()))
	if c.State() != StateEnded {
		t.Errorf("state = %v, want ended", c.State())
	}
}

func TestControllerGoalLatch(t *testing.T) {
	s := testSettings()
	s.Goal = 128
	start := gridOf(0, append([][]int{{64, 64, 0, 0}}, emptyRows(3, 4)...)...)
	c := NewController(restoreRepo(t, s, 3, start))

	turn, err := c.HandleInput(core.ActionLeft)
	if err != nil {
		t.Fatalf("HandleInput(left) failed: %v", err)
	}
	if got := countKind(turn.Notifications, EventGoalReached); got != 1 {
		t.Fatalf("goal-reached count = %d, want 1 (%v)", got, turn.Notifications)
	}
	if ev := turn.Notifications[1].(MiscEvent); ev != newEvent(EventGoalReached, 128) {
		t.Errorf("goal notification = %v, want goal-reached(128) right after the move", ev)
	}
	if !c.GoalReached() {
		t.Error("GoalReached() = false after reaching the goal")
	}

	// undo and reach 128 again; the latch holds
	script := []core.Action{core.ActionUndo, core.ActionLeft, core.ActionDown, core.ActionRight, core.ActionUp, core.ActionLeft}
	for _, in := range script {
		turn, err := c.HandleInput(in)
		if err != nil {
			t.Fatalf("HandleInput(%v) failed: %v", in, err)
		}
		if n := countKind(turn.Notifications, EventGoalReached); n != 0 {
			t.Errorf("HandleInput(%v) re-fired goal-reached", in)
		}
	}
}

func TestControllerPause(t *testing.T) {
	start := gridOf(0, append([][]int{{2, 2, 0, 0}}, emptyRows(3, 4)...)...)
	c := NewController(restoreRepo(t, testSettings(), 3, start))

	turn, err := c.HandleInput(core.ActionPause)
	if err != nil {
		t.Fatalf("HandleInput(pause) failed: %v", err)
	}
	if !turn.Paused() || c.State() != StatePaused {
		t.Errorf("state = %v, want paused", c.State())
	}
	if len(turn.Notifications) != 0 {
		t.Errorf("pause produced notifications: %v", turn.Notifications)
	}
	if !c.Repository().Current().Equal(start) || c.Repository().UndoCount() != 0 {
		t.Error("pause touched the repository")
	}

	c.Resume()
	if c.State() != StateReady {
		t.Errorf("after Resume() state = %v, want ready", c.State())
	}

	if _, err := c.HandleInput(core.ActionPause); err != nil {
		t.Fatal(err)
	}
	turn, err = c.HandleInput(core.ActionLeft)
	if err != nil {
		t.Fatalf("move while paused failed: %v", err)
	}
	if turn.State != StateReady {
		t.Errorf("move while paused left state %v, want ready", turn.State)
	}
}

func TestControllerUnknownInput(t *testing.T) {
	start := gridOf(0, append([][]int{{2, 2, 0, 0}}, emptyRows(3, 4)...)...)
	c := NewController(restoreRepo(t, testSettings(), 3, start))

	for _, in := range []core.Action{core.ActionUnknown, core.Action(99)} {
		turn, err := c.HandleInput(in)
		if !errors.Is(err, ErrUnknownInput) {
			t.Errorf("HandleInput(%v) error = %v, want ErrUnknownInput", in, err)
		}
		if len(turn.Notifications) != 0 {
			t.Errorf("unknown input produced notifications: %v", turn.Notifications)
		}
	}
	if c.Repository().UndoCount() != 0 {
		t.Error("unknown input touched the repository")
	}
}

func TestControllerUndoHappened(t *testing.T) {
	start := gridOf(0, append([][]int{{2, 2, 0, 0}}, emptyRows(3, 4)...)...)
	c := NewController(restoreRepo(t, testSettings(), 3, start))

	if _, err := c.HandleInput(core.ActionLeft); err != nil {
		t.Fatal(err)
	}
	turn, err := c.HandleInput(core.ActionUndo)
	if err != nil {
		t.Fatalf("HandleInput(undo) failed: %v", err)
	}
	if len(turn.Notifications) != 2 {
		t.Fatalf("got %v, want undo-happened and undo-count-changed", turn.Notifications)
	}
	undone, ok := turn.Notifications[0].(UndoHappened)
	if !ok || !undone.Grid.Equal(start) {
		t.Errorf("first notification = %#v, want UndoHappened with the start grid", turn.Notifications[0])
	}
	if ev := turn.Notifications[1].(MiscEvent); ev != newEvent(EventUndoCountChanged, 0) {
		t.Errorf("second notification = %v, want undo-count-changed(0)", ev)
	}
}

func TestControllerSnapshot(t *testing.T) {
	start := gridOf(10, append([][]int{{2, 8, 0, 0}}, emptyRows(3, 4)...)...)
	c := NewController(restoreRepo(t, testSettings(), 2, start))

	snap := c.Snapshot()
	if snap.Player != "tester" || snap.Score != 10 || snap.Lives != 2 || snap.MaxLives != 3 {
		t.Errorf("Snapshot() = %+v", snap)
	}
	if snap.Highest != 8 || snap.Goal != 2048 || snap.GoalReached || snap.State != StateReady {
		t.Errorf("Snapshot() = %+v", snap)
	}
}
