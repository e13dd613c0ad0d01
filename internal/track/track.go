// Package track implements keyframe tracks ("living bamboo"): lazy
// time-to-value interpolation with insertion and segment-insertion,
// over any value type that supports addition, subtraction and scalar
// multiplication.
package track

import (
	"math"

	"github.com/qwe28256/phiauto/internal/geometry"
)

// Interpable is the constraint a track's value type must satisfy: it
// can be added to and subtracted from itself, and scaled by a float64,
// all yielding the same type back.
type Interpable[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(float64) T
}

// Scalar is float64 lifted to satisfy Interpable, for tracks of plain
// numbers (e.g. a judge line's rotation in radians).
type Scalar float64

func (a Scalar) Add(b Scalar) Scalar  { return a + b }
func (a Scalar) Sub(b Scalar) Scalar  { return a - b }
func (a Scalar) Mul(s float64) Scalar { return Scalar(float64(a) * s) }

// VecValue adapts geometry.Vec2 to Interpable.
type VecValue = geometry.Vec2

// Track is a time-varying value of type T. Evaluate must be total: any
// finite time, including times outside the track's defined extremes,
// returns a defined, finite value by clamping to the nearest extreme.
type Track[T Interpable[T]] interface {
	Evaluate(t float64) T
}

// equal reports whether a and b are close enough that a joint at one
// should be treated as occupying the other's slot, mirroring Python's
// math.isclose with its default tolerances (rel_tol=1e-9, abs_tol=0).
func equal(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	return diff <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}
