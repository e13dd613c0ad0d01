// Package touch defines the virtual multi-touch event vocabulary shared
// by the planner, timeline builder, cache and post-processors.
package touch

import "fmt"

// Action is a touch-event kind. Its ordinal values are wire-format
// significant (see internal/cache) and must not be reordered.
type Action uint8

const (
	Down Action = iota
	Up
	Move
	Cancel
	Outside
	PointerDown
	PointerUp
	HoverMove
)

func (a Action) String() string {
	switch a {
	case Down:
		return "DOWN"
	case Up:
		return "UP"
	case Move:
		return "MOVE"
	case Cancel:
		return "CANCEL"
	case Outside:
		return "OUTSIDE"
	case PointerDown:
		return "POINTER_DOWN"
	case PointerUp:
		return "POINTER_UP"
	case HoverMove:
		return "HOVER_MOVE"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// Valid reports whether a falls within the closed 0..=7 wire range.
func (a Action) Valid() bool { return a <= HoverMove }
