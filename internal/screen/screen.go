// Package screen implements the logical-resolution visibility test and
// off-screen remap policy used to materialize notes that scroll in from
// outside the visible area.
package screen

import "github.com/qwe28256/phiauto/internal/geometry"

// Util describes a logical screen resolution and derives the flick
// amplitude used by the planner (0.1 of the screen height).
type Util struct {
	Width, Height int
}

// New returns a Util for the given logical resolution.
func New(width, height int) Util {
	return Util{Width: width, Height: height}
}

// FlickRadius is the configured amplitude of a flick gesture's
// perpendicular/parallel displacement: 0.1 of the screen height.
func (u Util) FlickRadius() float64 { return float64(u.Height) * 0.1 }

// Center is the screen's logical midpoint.
func (u Util) Center() geometry.Vec2 {
	return geometry.Vec2{X: float64(u.Width) / 2, Y: float64(u.Height) / 2}
}

// Visible reports whether p lies within [0,W]x[0,H].
func (u Util) Visible(p geometry.Vec2) bool {
	return p.X >= 0 && p.X <= float64(u.Width) && p.Y >= 0 && p.Y <= float64(u.Height)
}

// Remap returns p unchanged if it is on screen. Otherwise it builds the
// line through p with direction dir rotated 90 degrees, intersects that
// line with all four screen edges, and averages whichever intersections
// fall within their edge's parameter range. If none do, it returns the
// screen center.
func (u Util) Remap(p geometry.Vec2, dir geometry.Vec2) geometry.Vec2 {
	if u.Visible(p) {
		return p
	}

	q := p.Add(dir.Perp())
	probe := geometry.Line{P1: p, P2: q}

	w, h := float64(u.Width), float64(u.Height)
	top := geometry.Line{P1: geometry.Vec2{X: 0, Y: 0}, P2: geometry.Vec2{X: w, Y: 0}}
	left := geometry.Line{P1: geometry.Vec2{X: 0, Y: 0}, P2: geometry.Vec2{X: 0, Y: h}}
	right := geometry.Line{P1: geometry.Vec2{X: w, Y: 0}, P2: geometry.Vec2{X: w, Y: h}}
	bottom := geometry.Line{P1: geometry.Vec2{X: 0, Y: h}, P2: geometry.Vec2{X: w, Y: h}}

	sum := geometry.Zero
	count := 0

	if j, ok := geometry.Intersect(probe, top); ok && j.X >= 0 && j.X <= w {
		sum = sum.Add(j)
		count++
	}
	if j, ok := geometry.Intersect(probe, left); ok && j.Y >= 0 && j.Y <= h {
		sum = sum.Add(j)
		count++
	}
	if j, ok := geometry.Intersect(probe, right); ok && j.Y >= 0 && j.Y <= h {
		sum = sum.Add(j)
		count++
	}
	if j, ok := geometry.Intersect(probe, bottom); ok && j.X >= 0 && j.X <= w {
		sum = sum.Add(j)
		count++
	}

	if count == 0 {
		return u.Center()
	}
	return sum.Mul(1 / float64(count))
}
