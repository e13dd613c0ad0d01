// Package geometry provides the 2-D position/vector arithmetic shared by
// the track, chart, screen and planner packages.
package geometry

import "math"

// Vec2 is a point or a direction in chart logical space. Position and
// Vector in the spec share this representation; which one a value means
// is a matter of call-site convention, not of type.
type Vec2 struct {
	X, Y float64
}

// Zero is the additive identity, used as the fold seed for Track sums.
var Zero = Vec2{}

func (a Vec2) Add(b Vec2) Vec2    { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2    { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Mul(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float64       { return math.Hypot(a.X, a.Y) }

func (a Vec2) Norm() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Perp rotates a by +90 degrees, i.e. multiplication by i.
func (a Vec2) Perp() Vec2 { return Vec2{-a.Y, a.X} }

// Rotated returns a rotated by theta radians about the origin, i.e.
// multiplication by e^{i*theta}.
func (a Vec2) Rotated(theta float64) Vec2 {
	s, c := math.Sincos(theta)
	return Vec2{a.X*c - a.Y*s, a.X*s + a.Y*c}
}

// Conj mirrors across the X axis (the 2-D analogue of complex conjugate).
func (a Vec2) Conj() Vec2 { return Vec2{a.X, -a.Y} }

// Distance is |a-b|.
func Distance(a, b Vec2) float64 { return a.Sub(b).Len() }

// UnitMul multiplies components independently: (a.X*b.X, a.Y*b.Y).
func UnitMul(a, b Vec2) Vec2 { return Vec2{a.X * b.X, a.Y * b.Y} }

// Det is the Z component of the 3-D cross product of a and b,
// a.X*b.Y - a.Y*b.X. Under the complex-number reading of Vec2 that is
// Im(conj(a) * b), the negative of Im(a * conj(b)). Intersect relies on
// this sign.
func Det(a, b Vec2) float64 { return a.X*b.Y - a.Y*b.X }

// Line is a pair of points defining an infinite line through them.
type Line struct{ P1, P2 Vec2 }

// Intersect returns the intersection point of two infinite lines, or
// false if the lines are parallel (including coincident).
func Intersect(l1, l2 Line) (Vec2, bool) {
	d1 := l1.P1.Sub(l1.P2)
	d2 := l2.P1.Sub(l2.P2)
	xd := Vec2{d1.X, d2.X}
	yd := Vec2{d1.Y, d2.Y}
	denom := Det(xd, yd)
	if denom == 0 {
		return Vec2{}, false
	}
	d := Vec2{Det(l1.P1, l1.P2), Det(l2.P1, l2.P2)}
	return Vec2{Det(d, xd) / denom, Det(d, yd) / denom}, true
}
