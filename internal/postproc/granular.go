// Package postproc turns a planned timeline into the two output
// flavors a transport can consume: granular (the per-touch-event
// frames themselves) and viscous (per-frame HID-ready pointer-slot
// snapshots).
package postproc

import "github.com/qwe28256/phiauto/internal/touch"

// GranularFrame is the direct, ungrouped per-touch-event view of a
// frame: exactly what the timeline builder produced, with no further
// transformation. It exists as its own name so callers depending on
// the granular flavor don't couple to the timeline package.
type GranularFrame = touch.Frame

// Granular returns frames unchanged. The transformation is the
// identity; it is named and exported so both post-processing flavors
// are reached through this package rather than one going around it.
func Granular(frames []touch.Frame) []GranularFrame {
	return frames
}
