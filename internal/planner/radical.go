package planner

import (
	"context"
	"sort"

	"github.com/qwe28256/phiauto/internal/chart"
	"github.com/qwe28256/phiauto/internal/config"
	"github.com/qwe28256/phiauto/internal/logging"
	"github.com/qwe28256/phiauto/internal/screen"
)

type scheduledNote struct {
	lineID  int
	noteIdx int
	line    *chart.JudgeLine
	note    chart.Note
}

// PlanRadical implements the global pointer-pool planner: every note
// from every line is considered independently, in time order, and
// draws from one shared pool keyed by release time and position
// rather than by line identity.
func PlanRadical(ctx context.Context, c *chart.Chart, scr screen.Util, cfg config.Config) ([]Event, error) {
	var scheduled []scheduledNote
	for lineID, line := range c.Lines {
		if err := validateNotes(line, lineID); err != nil {
			return nil, err
		}
		for noteIdx, n := range line.Notes {
			scheduled = append(scheduled, scheduledNote{lineID, noteIdx, line, n})
		}
	}

	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].note.Time < scheduled[j].note.Time
	})

	pool := NewRadicalPool(cfg.MaxPointers, cfg.PointerReuseDistance)
	var events []Event

	for _, sn := range scheduled {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}

		noteEvents := emitEvents(sn.line, scr, cfg, sn.note, -1, false, false)
		start, end := occupancyInterval(sn.note, cfg)

		id, ok := pool.Acquire(start, noteEvents[0].Pos)
		if !ok {
			if cfg.ContinueWhenFailed {
				logging.Warn("pointer pool exhausted, dropping note", logging.Fields{"line": sn.lineID, "note": sn.noteIdx})
				continue
			}
			return nil, &PointerExhaustedError{NoteIndex: sn.noteIdx, LineID: sn.lineID}
		}

		for i := range noteEvents {
			noteEvents[i].PointerID = id
		}
		events = append(events, noteEvents...)

		pool.Release(id, end, noteEvents[len(noteEvents)-1].Pos)
	}

	return events, nil
}
