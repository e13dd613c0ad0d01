package track

import "github.com/qwe28256/phiauto/internal/geometry"

// TwinBamboo glues two Scalar tracks into a single geometry.Vec2 track,
// optionally post-composed with a rigid transform. One chart dialect
// (whose parser is out of this module's scope) uses the transform to
// flip a coordinate axis on intake.
type TwinBamboo struct {
	Xs, Ys  Track[Scalar]
	Convert func(geometry.Vec2) geometry.Vec2
}

// Evaluate returns (Xs@t, Ys@t), transformed by Convert if set.
func (tb *TwinBamboo) Evaluate(t float64) geometry.Vec2 {
	p := geometry.Vec2{X: float64(tb.Xs.Evaluate(t)), Y: float64(tb.Ys.Evaluate(t))}
	if tb.Convert != nil {
		return tb.Convert(p)
	}
	return p
}
