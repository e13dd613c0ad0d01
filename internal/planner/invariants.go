package planner

import (
	"fmt"

	"github.com/qwe28256/phiauto/internal/screen"
	"github.com/qwe28256/phiauto/internal/touch"
)

// CheckInvariants verifies the testable properties a planned timeline
// must satisfy regardless of which planner produced it: time
// monotonicity, per-pointer DOWN/UP balance, the concurrent-pointer
// cap, and screen containment of every event position.
func CheckInvariants(frames []touch.Frame, scr screen.Util, maxPointers int) error {
	down := make(map[uint32]bool)
	activeCount := 0

	lastMs := int32(-1 << 31)
	for _, frame := range frames {
		if frame.TimeMs < lastMs {
			return fmt.Errorf("planner: frame at %d ms precedes previous frame at %d ms", frame.TimeMs, lastMs)
		}
		lastMs = frame.TimeMs

		for _, ev := range frame.Events {
			if !scr.Visible(ev.Pos) {
				return fmt.Errorf("planner: pointer %d at %d ms lands off-screen at %+v", ev.PointerID, frame.TimeMs, ev.Pos)
			}

			switch ev.Action {
			case touch.Down, touch.PointerDown:
				if down[ev.PointerID] {
					return fmt.Errorf("planner: pointer %d DOWN at %d ms while already down", ev.PointerID, frame.TimeMs)
				}
				down[ev.PointerID] = true
				activeCount++
				if activeCount > maxPointers {
					return fmt.Errorf("planner: %d pointers concurrently down at %d ms exceeds cap %d", activeCount, frame.TimeMs, maxPointers)
				}

			case touch.Up, touch.PointerUp, touch.Cancel:
				if !down[ev.PointerID] {
					return fmt.Errorf("planner: pointer %d %s at %d ms while not down", ev.PointerID, ev.Action, frame.TimeMs)
				}
				down[ev.PointerID] = false
				activeCount--

			case touch.Move, touch.HoverMove:
				if !down[ev.PointerID] {
					return fmt.Errorf("planner: pointer %d MOVE at %d ms without a preceding DOWN", ev.PointerID, frame.TimeMs)
				}
			}
		}
	}

	for id, isDown := range down {
		if isDown {
			return fmt.Errorf("planner: pointer %d left down at end of timeline", id)
		}
	}

	return nil
}
