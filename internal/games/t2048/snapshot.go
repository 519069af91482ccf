package t2048

// Snapshot is a read-only summary of a play for rendering and replay checks.
type Snapshot struct {
	Player      string
	Grid        Grid
	Score       int
	Lives       int
	MaxLives    int
	Undos       int
	MaxUndos    int
	Highest     int
	Goal        int
	GoalReached bool
	State       ControllerState
}

// Snapshot returns the current play summary.
func (c *Controller) Snapshot() Snapshot {
	r := c.repo
	return Snapshot{
		Player:      r.PlayerName(),
		Grid:        r.Current(),
		Score:       r.Score(),
		Lives:       r.RemainingLives(),
		MaxLives:    r.settings.MaxLives,
		Undos:       r.UndoCount(),
		MaxUndos:    r.settings.MaxUndos,
		Highest:     r.HighestNumber(),
		Goal:        r.Goal(),
		GoalReached: c.goalReached,
		State:       c.state,
	}
}
