package touch

import (
	"fmt"

	"github.com/qwe28256/phiauto/internal/geometry"
)

// Event is one pointer-level touch event: a position, an action, and
// the pointer id it applies to.
type Event struct {
	Pos       geometry.Vec2
	Action    Action
	PointerID uint32
}

func (e Event) String() string {
	return fmt.Sprintf("TouchEvent<%d %s @ (%.2f, %.2f)>", e.PointerID, e.Action, e.Pos.X, e.Pos.Y)
}

// Frame is every event sharing one integer-millisecond timestamp in
// the output timeline.
type Frame struct {
	TimeMs int32
	Events []Event
}
