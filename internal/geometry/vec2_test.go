package geometry

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}

	if got := a.Add(b); got != (Vec2{4, 6}) {
		t.Fatalf("Add = %+v", got)
	}
	if got := b.Sub(a); got != (Vec2{2, 2}) {
		t.Fatalf("Sub = %+v", got)
	}
	if got := a.Mul(2); got != (Vec2{2, 4}) {
		t.Fatalf("Mul = %+v", got)
	}
	if got := a.Dot(b); got != 11 {
		t.Fatalf("Dot = %v, want 11", got)
	}
}

func TestVec2Rotated(t *testing.T) {
	v := Vec2{1, 0}
	got := v.Rotated(math.Pi / 2)
	if !almostEqual(got.X, 0) || !almostEqual(got.Y, 1) {
		t.Fatalf("Rotated(pi/2) = %+v, want (0,1)", got)
	}
}

func TestVec2Perp(t *testing.T) {
	v := Vec2{1, 0}
	if got := v.Perp(); got != (Vec2{0, 1}) {
		t.Fatalf("Perp = %+v, want (0,1)", got)
	}
}

func TestDet(t *testing.T) {
	a := Vec2{1, 0}
	b := Vec2{0, 1}
	if got := Det(a, b); got != 1 {
		t.Fatalf("Det = %v, want 1", got)
	}
}

func TestIntersectParallelLines(t *testing.T) {
	l1 := Line{Vec2{0, 0}, Vec2{1, 0}}
	l2 := Line{Vec2{0, 1}, Vec2{1, 1}}
	if _, ok := Intersect(l1, l2); ok {
		t.Fatal("Intersect of parallel lines should report false")
	}
}

func TestIntersectCrossingLines(t *testing.T) {
	l1 := Line{Vec2{0, 0}, Vec2{10, 10}}
	l2 := Line{Vec2{0, 10}, Vec2{10, 0}}
	got, ok := Intersect(l1, l2)
	if !ok {
		t.Fatal("Intersect should succeed")
	}
	if !almostEqual(got.X, 5) || !almostEqual(got.Y, 5) {
		t.Fatalf("Intersect = %+v, want (5,5)", got)
	}
}
