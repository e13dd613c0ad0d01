package planner

import (
	"errors"
	"fmt"
)

// ErrPointerExhausted is the sentinel wrapped by PointerExhaustedError,
// for errors.Is checks that don't need the note/line detail.
var ErrPointerExhausted = errors.New("planner: no free pointer id")

// ErrChartIllFormed is the sentinel wrapped by ChartIllFormedError.
var ErrChartIllFormed = errors.New("planner: chart is ill-formed")

// ErrTrackOutOfDomain indicates a bug: a track was queried in a way
// that bypassed its clamping guarantee. It should never surface from
// correct usage of internal/track.
var ErrTrackOutOfDomain = errors.New("planner: track queried out of domain")

// PointerExhaustedError reports that no pointer id was available for a
// note. NoteIndex and LineID identify the offending note for the
// caller to present.
type PointerExhaustedError struct {
	NoteIndex int
	LineID    int
}

func (e *PointerExhaustedError) Error() string {
	return fmt.Sprintf("planner: pointer exhausted at note %d on line %d", e.NoteIndex, e.LineID)
}

func (e *PointerExhaustedError) Unwrap() error { return ErrPointerExhausted }

// ChartIllFormedError reports a note whose time or duration makes
// planning impossible (non-finite time, negative duration).
type ChartIllFormedError struct {
	NoteIndex int
	LineID    int
	Reason    string
}

func (e *ChartIllFormedError) Error() string {
	return fmt.Sprintf("planner: chart ill-formed at note %d on line %d: %s", e.NoteIndex, e.LineID, e.Reason)
}

func (e *ChartIllFormedError) Unwrap() error { return ErrChartIllFormed }
