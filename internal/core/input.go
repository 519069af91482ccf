package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// Adapters translate raw keys into actions; the rules engine only ever sees actions.
type Action int

const (
	ActionUnknown Action = iota // never a valid input
	ActionUp                    // W, Up arrow, K
	ActionDown                  // S, Down arrow, J
	ActionLeft                  // A, Left arrow, H
	ActionRight                 // D, Right arrow, L
	ActionUndo                  // U, Z, Backspace
	ActionPause                 // P, Escape
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUndo:
		return "Undo"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action slides the grid.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// ParseAction converts a textual symbol ("up", "left", "undo", ...) into an Action.
// Anything unrecognized yields ActionUnknown.
func ParseAction(s string) Action {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w":
		return ActionUp
	case "down", "s":
		return ActionDown
	case "left", "a":
		return ActionLeft
	case "right", "d":
		return ActionRight
	case "undo", "u", "z":
		return ActionUndo
	case "pause", "p":
		return ActionPause
	default:
		return ActionUnknown
	}
}

// Actions returns every valid input action in declaration order.
func Actions() []Action {
	return []Action{ActionUp, ActionDown, ActionLeft, ActionRight, ActionUndo, ActionPause}
}
