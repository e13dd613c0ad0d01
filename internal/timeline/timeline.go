// Package timeline batches the planner's per-pointer micro-events
// into integer-millisecond frames suitable for serialization or
// device replay.
package timeline

import (
	"math"
	"sort"

	"github.com/qwe28256/phiauto/internal/planner"
	"github.com/qwe28256/phiauto/internal/touch"
)

// Build quantizes each event's time to an integer millisecond,
// batches same-ms events into frames ordered UP-then-DOWN-then-MOVE,
// and drops redundant same-position MOVEs within a frame.
func Build(events []planner.Event) []touch.Frame {
	sorted := make([]planner.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	var frames []touch.Frame
	i := 0
	for i < len(sorted) {
		ms := quantizeMs(sorted[i].Time)
		j := i
		for j < len(sorted) && quantizeMs(sorted[j].Time) == ms {
			j++
		}

		frames = append(frames, touch.Frame{TimeMs: ms, Events: buildFrameEvents(sorted[i:j])})
		i = j
	}

	return frames
}

// quantizeMs floors rather than rounds, after adding a tolerance far
// below one millisecond, so a value that lands a hair below an exact
// millisecond boundary due to binary floating-point representation
// (e.g. 1.017*1000 == 1016.9999999999999) quantizes to that boundary
// (1017) rather than the millisecond below it.
func quantizeMs(t float64) int32 {
	return int32(math.Floor(t*1000 + 1e-6))
}

func actionPriority(a touch.Action) int {
	switch a {
	case touch.Up, touch.PointerUp, touch.Cancel:
		return 0
	case touch.Down, touch.PointerDown, touch.Outside:
		return 1
	default: // Move, HoverMove
		return 2
	}
}

func buildFrameEvents(group []planner.Event) []touch.Event {
	ordered := make([]planner.Event, len(group))
	copy(ordered, group)
	sort.SliceStable(ordered, func(i, j int) bool {
		return actionPriority(ordered[i].Action) < actionPriority(ordered[j].Action)
	})

	type moveKey struct {
		pointer int
		x, y    int64
	}
	seenMove := make(map[moveKey]bool)

	events := make([]touch.Event, 0, len(ordered))
	for _, ev := range ordered {
		if ev.Action == touch.Move || ev.Action == touch.HoverMove {
			key := moveKey{ev.PointerID, int64(math.Round(ev.Pos.X)), int64(math.Round(ev.Pos.Y))}
			if seenMove[key] {
				continue
			}
			seenMove[key] = true
		}
		events = append(events, touch.Event{
			Pos:       ev.Pos,
			Action:    ev.Action,
			PointerID: uint32(ev.PointerID),
		})
	}
	return events
}
