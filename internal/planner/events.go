package planner

import (
	"github.com/qwe28256/phiauto/internal/chart"
	"github.com/qwe28256/phiauto/internal/config"
	"github.com/qwe28256/phiauto/internal/geometry"
	"github.com/qwe28256/phiauto/internal/screen"
	"github.com/qwe28256/phiauto/internal/touch"
)

// Event is a touch event still in seconds, before the timeline
// builder quantizes it to an integer millisecond and batches it into
// frames.
type Event struct {
	Time      float64
	PointerID int
	Action    touch.Action
	Pos       geometry.Vec2
}

// noteOffset is the note's position offset from its line's origin,
// before rotation. Above mirrors the (currently always-zero) y
// component in line-local coordinates, preserved from the source
// dialect's convention for notes that may gain a y offset later.
func noteOffset(n chart.Note) geometry.Vec2 {
	off := geometry.Vec2{X: n.XOffset, Y: 0}
	if !n.Above {
		off.Y = -off.Y
	}
	return off
}

// occupancyInterval is the time span during which a note holds its
// pointer, used by the radical planner's allocator to decide whether
// a released id may be reused.
func occupancyInterval(n chart.Note, cfg config.Config) (start, end float64) {
	switch n.Type {
	case chart.Flick:
		return n.Time + float64(cfg.FlickStartMs)/1000, n.Time + float64(cfg.FlickEndMs)/1000
	case chart.Hold, chart.Drag:
		return n.Time, n.Time + n.Duration
	default: // Tap
		return n.Time, n.Time + float64(cfg.TapHoldMs)/1000
	}
}

// lineTangent is the line's local x-axis at t, used both as the
// flick travel axis and as ScreenUtil.Remap's clipping direction.
func lineTangent(line *chart.JudgeLine, t float64) geometry.Vec2 {
	angle := float64(line.Rotation.Evaluate(t))
	return geometry.Vec2{X: 1, Y: 0}.Rotated(angle)
}

func sampleSpacingSeconds(line *chart.JudgeLine, t float64, cfg config.Config) float64 {
	if cfg.SnapSamplesToBeat {
		return line.BeatDuration(t)
	}
	return float64(cfg.SampleDelayMs) / 1000
}

// sampledSpanEvents builds the DOWN, periodic MOVE and UP events for a
// HOLD/DRAG note. Sample times are derived from an integer millisecond
// counter rather than repeated float addition, so the frame at the
// note's exact end ms is never missed to accumulated rounding error.
//
// continuing is true when this note picks up a pointer already held
// down by the previous note in a DRAG/HOLD chain, in which case the
// leading DOWN is skipped. chained is true when the pointer is to stay
// down into the next note in the chain, in which case the trailing UP
// is skipped instead; it is emitted only by the chain's last note.
func sampledSpanEvents(line *chart.JudgeLine, cfg config.Config, n chart.Note, offset geometry.Vec2, pointerID int, clip func(geometry.Vec2) geometry.Vec2, continuing, chained bool) []Event {
	var events []Event
	if !continuing {
		events = append(events, Event{Time: n.Time, PointerID: pointerID, Action: touch.Down, Pos: clip(line.Pos(n.Time, offset))})
	}

	spacingMs := cfg.SampleDelayMs
	if cfg.SnapSamplesToBeat {
		spacingMs = int(sampleSpacingSeconds(line, n.Time, cfg) * 1000)
	}
	if spacingMs <= 0 {
		spacingMs = 1
	}
	durationMs := int(n.Duration*1000 + 0.5)

	for ms := spacingMs; ms < durationMs; ms += spacingMs {
		s := n.Time + float64(ms)/1000
		events = append(events, Event{Time: s, PointerID: pointerID, Action: touch.Move, Pos: clip(line.Pos(s, offset))})
	}

	if !chained {
		events = append(events, Event{Time: n.Time + n.Duration, PointerID: pointerID, Action: touch.Up, Pos: clip(line.Pos(n.Time+n.Duration, offset))})
	}
	return events
}

// emitEvents produces the micro-events for one note in isolation,
// already clipped to the screen via remap. This is the ~70% of
// per-note logic shared between the conservative and radical
// planners; what differs between them is only how pointerID was
// chosen and, for DRAG/HOLD chains, whether the leading DOWN/trailing
// UP are actually emitted. Callers outside a chain (radical mode,
// and TAP/FLICK in either mode) pass continuing=chained=false.
func emitEvents(line *chart.JudgeLine, scr screen.Util, cfg config.Config, n chart.Note, pointerID int, continuing, chained bool) []Event {
	tangent := lineTangent(line, n.Time)
	clip := func(p geometry.Vec2) geometry.Vec2 { return scr.Remap(p, tangent) }

	offset := noteOffset(n)

	switch n.Type {
	case chart.Flick:
		base := line.Pos(n.Time, offset)
		var dir geometry.Vec2
		if cfg.FlickDirection == 1 {
			dir = tangent
		} else {
			dir = tangent.Perp()
		}
		radius := scr.FlickRadius()
		start, end := occupancyInterval(n, cfg)
		return []Event{
			{Time: start, PointerID: pointerID, Action: touch.Down, Pos: clip(base.Sub(dir.Mul(radius)))},
			{Time: end, PointerID: pointerID, Action: touch.Up, Pos: clip(base.Add(dir.Mul(radius)))},
		}

	case chart.Hold, chart.Drag:
		return sampledSpanEvents(line, cfg, n, offset, pointerID, clip, continuing, chained)

	default: // Tap
		p := clip(line.Pos(n.Time, offset))
		return []Event{
			{Time: n.Time, PointerID: pointerID, Action: touch.Down, Pos: p},
			{Time: n.Time + float64(cfg.TapHoldMs)/1000, PointerID: pointerID, Action: touch.Up, Pos: p},
		}
	}
}
