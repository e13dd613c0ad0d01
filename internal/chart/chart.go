// Package chart is the in-memory chart model: judge lines with keyframe
// position/rotation tracks, and the notes timed against them. It is the
// whole boundary between dialect parsers (out of this module's scope)
// and the planner.
package chart

import (
	"github.com/qwe28256/phiauto/internal/geometry"
	"github.com/qwe28256/phiauto/internal/track"
)

// NoteType distinguishes the four gesture families a note can demand.
type NoteType int

const (
	Unknown NoteType = iota
	Tap
	Hold
	Drag
	Flick
)

func (nt NoteType) String() string {
	switch nt {
	case Tap:
		return "tap"
	case Hold:
		return "hold"
	case Drag:
		return "drag"
	case Flick:
		return "flick"
	default:
		return "unknown"
	}
}

// Note is one scheduled event on a judge line. Duration is zero for
// Tap/Drag/Flick and positive for Hold. Above flags which side of the
// line the note sits on; a false value mirrors the note's y-offset in
// line-local coordinates at the call site that builds the offset.
type Note struct {
	Type     NoteType
	Time     float64
	Duration float64
	XOffset  float64
	Above    bool
}

// defaultBeatDuration is the fallback used when a line carries no BPM
// information of its own (1.875/175 s, i.e. 60/175/32: one thirty-second
// of a beat at 175 bpm, the same constant the PEC dialect falls back to
// when its bpm list is empty).
const defaultBeatDuration = 1.875 / 175

// JudgeLine is an animated line segment: a position track, a rotation
// track (radians), and its ordered notes.
type JudgeLine struct {
	Position track.Track[geometry.Vec2]
	Rotation track.Track[track.Scalar]
	Notes    []Note

	// BeatDurationAt returns the beat length in seconds effective at t.
	// Nil defaults to a constant tempo.
	BeatDurationAt func(t float64) float64
}

// Pos returns the on-screen striking position of a point offset from
// the line's origin by offset, rotated by the line's current angle:
// position@t + rotate(offset, rotation@t).
func (jl *JudgeLine) Pos(t float64, offset geometry.Vec2) geometry.Vec2 {
	angle := float64(jl.Rotation.Evaluate(t))
	pos := jl.Position.Evaluate(t)
	return pos.Add(offset.Rotated(angle))
}

// BeatDuration is the current beat length in seconds, used to space
// hold/drag MOVE samples at musically meaningful intervals when a
// caller chooses to snap sample spacing to the beat.
func (jl *JudgeLine) BeatDuration(t float64) float64 {
	if jl.BeatDurationAt != nil {
		return jl.BeatDurationAt(t)
	}
	return defaultBeatDuration
}

// Chart is a logical resolution and its judge lines, built once by a
// parser collaborator and read-only for the rest of its lifetime.
type Chart struct {
	Width, Height int
	Lines         []*JudgeLine
}
