package planner

import (
	"context"
	"math"

	"github.com/qwe28256/phiauto/internal/chart"
	"github.com/qwe28256/phiauto/internal/config"
	"github.com/qwe28256/phiauto/internal/screen"
)

// PlanConservative implements the per-line pointer-recycling planner:
// lines are processed independently, and a pointer id is reused
// across a chain of DRAG/HOLD notes on the same line without
// releasing in between. ctx is checked once per note and may be nil.
func PlanConservative(ctx context.Context, c *chart.Chart, scr screen.Util, cfg config.Config) ([]Event, error) {
	pool := NewConservativePool(cfg.MaxPointers)
	var events []Event
	globalIdx := 0

	for lineID, line := range c.Lines {
		if err := validateNotes(line, lineID); err != nil {
			return nil, err
		}

		heldPointer := -1
		for noteIdx, n := range line.Notes {
			if err := checkContext(ctx); err != nil {
				return nil, err
			}

			continuing := heldPointer >= 0
			pointerID := heldPointer
			if pointerID < 0 {
				start, _ := occupancyInterval(n, cfg)
				id, ok := pool.Acquire(start)
				if !ok {
					return nil, &PointerExhaustedError{NoteIndex: globalIdx, LineID: lineID}
				}
				pointerID = id
			}

			chained := (n.Type == chart.Drag || n.Type == chart.Hold) && continuesChain(line.Notes, noteIdx)
			events = append(events, emitEvents(line, scr, cfg, n, pointerID, continuing, chained)...)
			_, releaseAt := occupancyInterval(n, cfg)
			globalIdx++

			if chained {
				heldPointer = pointerID
				continue
			}

			pool.Release(pointerID, releaseAt)
			heldPointer = -1
		}
	}

	return events, nil
}

// continuesChain reports whether the note immediately following
// line.Notes[idx] is itself a DRAG or HOLD, meaning the current
// pointer should stay down rather than release.
func continuesChain(notes []chart.Note, idx int) bool {
	if idx+1 >= len(notes) {
		return false
	}
	next := notes[idx+1]
	return next.Type == chart.Drag || next.Type == chart.Hold
}

func checkContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func validateNotes(line *chart.JudgeLine, lineID int) error {
	for i, n := range line.Notes {
		if math.IsNaN(n.Time) || math.IsInf(n.Time, 0) {
			return &ChartIllFormedError{NoteIndex: i, LineID: lineID, Reason: "note time is not finite"}
		}
		if n.Duration < 0 {
			return &ChartIllFormedError{NoteIndex: i, LineID: lineID, Reason: "note duration is negative"}
		}
	}
	return nil
}
