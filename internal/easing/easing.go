// Package easing implements the closed set of named interpolation
// functions used by keyframe tracks. Every Func is total on [0,1] and
// monotone wherever the named easing is conventionally monotone.
package easing

import "math"

// Func maps a normalized progress in [0,1] to an eased progress in [0,1].
type Func func(t float64) float64

const back1_70158 = 1.70158

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// LVALUE holds the previous joint's value until the next joint is
// reached: 0 for all t<1, 1 at t=1. Used to express "step" motion (the
// track's output snaps to the new value only once fully arrived).
func LVALUE(t float64) float64 {
	if t < 1 {
		return 0
	}
	return 1
}

func QuadIn(t float64) float64  { return t * t }
func QuadOut(t float64) float64 { return t * (2 - t) }
func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func CubicIn(t float64) float64  { return t * t * t }
func CubicOut(t float64) float64 { u := t - 1; return u*u*u + 1 }
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

func QuartIn(t float64) float64  { return t * t * t * t }
func QuartOut(t float64) float64 { u := t - 1; return 1 - u*u*u*u }
func QuartInOut(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u*u/2
}

func QuintIn(t float64) float64  { return t * t * t * t * t }
func QuintOut(t float64) float64 { u := t - 1; return 1 + u*u*u*u*u }
func QuintInOut(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u*u*u/2
}

func SineIn(t float64) float64  { return 1 - math.Cos(t*math.Pi/2) }
func SineOut(t float64) float64 { return math.Sin(t * math.Pi / 2) }
func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

func ExpoIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}
func ExpoOut(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}
func ExpoInOut(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

func CircIn(t float64) float64  { return 1 - math.Sqrt(1-t*t) }
func CircOut(t float64) float64 { u := t - 1; return math.Sqrt(1 - u*u) }
func CircInOut(t float64) float64 {
	if t < 0.5 {
		u := 2 * t
		return (1 - math.Sqrt(1-u*u)) / 2
	}
	u := -2*t + 2
	return (math.Sqrt(1-u*u) + 1) / 2
}

func BackIn(t float64) float64 {
	c3 := back1_70158 + 1
	return c3*t*t*t - back1_70158*t*t
}
func BackOut(t float64) float64 {
	c3 := back1_70158 + 1
	u := t - 1
	return 1 + c3*u*u*u + back1_70158*u*u
}
func BackInOut(t float64) float64 {
	c2 := back1_70158 * 1.525
	if t < 0.5 {
		u := 2 * t
		return (u * u * ((c2+1)*u - c2)) / 2
	}
	u := 2*t - 2
	return (u*u*((c2+1)*u+c2) + 2) / 2
}

func ElasticIn(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	c4 := 2 * math.Pi / 3
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*c4)
}
func ElasticOut(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	c4 := 2 * math.Pi / 3
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}
func ElasticInOut(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	c5 := 2 * math.Pi / 4.5
	if t < 0.5 {
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*c5)) / 2
	}
	return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*c5))/2 + 1
}

const (
	bounceN1 = 7.5625
	bounceD1 = 2.75
)

func bounceOutRaw(t float64) float64 {
	switch {
	case t < 1/bounceD1:
		return bounceN1 * t * t
	case t < 2/bounceD1:
		t -= 1.5 / bounceD1
		return bounceN1*t*t + 0.75
	case t < 2.5/bounceD1:
		t -= 2.25 / bounceD1
		return bounceN1*t*t + 0.9375
	default:
		t -= 2.625 / bounceD1
		return bounceN1*t*t + 0.984375
	}
}

func BounceOut(t float64) float64 { return bounceOutRaw(t) }
func BounceIn(t float64) float64  { return 1 - bounceOutRaw(1-t) }
func BounceInOut(t float64) float64 {
	if t < 0.5 {
		return (1 - bounceOutRaw(1-2*t)) / 2
	}
	return (1 + bounceOutRaw(2*t-1)) / 2
}

// RPEIndex maps the integer easing ids used by the RPE chart dialect to
// their Func; this id-to-function mapping is fixed and must not be
// reordered. Index 0 is deliberately unused (dialects index easings
// starting at 1) and maps to Linear so an out-of-range lookup degrades
// safely rather than panicking.
var RPEIndex = [...]Func{
	0:  Linear,
	1:  Linear,
	2:  SineOut,
	3:  SineIn,
	4:  QuadOut,
	5:  QuadIn,
	6:  SineInOut,
	7:  QuadInOut,
	8:  CubicOut,
	9:  CubicIn,
	10: CubicInOut,
	11: QuartOut,
	12: QuartIn,
	13: QuartInOut,
	14: QuintOut,
	15: QuintIn,
	16: QuintInOut,
	17: ExpoOut,
	18: ExpoIn,
	19: CircOut,
	20: CircIn,
	21: BackOut,
	22: BackIn,
	23: BackInOut,
	24: ElasticOut,
	25: ElasticIn,
	26: BounceOut,
	27: BounceIn,
	28: BounceInOut,
}

// ByRPEID looks up an easing by its chart-dialect integer id. The zero
// value and any id past the end of RPEIndex both resolve to Linear.
func ByRPEID(id int) Func {
	if id < 0 || id >= len(RPEIndex) {
		return Linear
	}
	return RPEIndex[id]
}
