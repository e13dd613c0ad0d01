package easing

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBoundaryValues(t *testing.T) {
	fns := []Func{
		Linear, QuadIn, QuadOut, QuadInOut,
		CubicIn, CubicOut, CubicInOut,
		QuartIn, QuartOut, QuartInOut,
		QuintIn, QuintOut, QuintInOut,
		SineIn, SineOut, SineInOut,
		ExpoIn, ExpoOut, ExpoInOut,
		CircIn, CircOut, CircInOut,
		BackIn, BackOut, BackInOut,
		ElasticIn, ElasticOut, ElasticInOut,
		BounceIn, BounceOut, BounceInOut,
	}
	for i, fn := range fns {
		if got := fn(0); !almostEqual(got, 0) {
			t.Errorf("fns[%d](0) = %v, want 0", i, got)
		}
		if got := fn(1); !almostEqual(got, 1) {
			t.Errorf("fns[%d](1) = %v, want 1", i, got)
		}
	}
}

func TestLValue(t *testing.T) {
	if LVALUE(0) != 0 || LVALUE(0.999) != 0 || LVALUE(1) != 1 {
		t.Fatal("LVALUE should hold 0 until t=1")
	}
}

func TestLinearMidpoint(t *testing.T) {
	if Linear(0.5) != 0.5 {
		t.Fatalf("Linear(0.5) = %v, want 0.5", Linear(0.5))
	}
}

func TestBounceOutKnownPoints(t *testing.T) {
	// The bounce-out curve starts at 0 and ends at 1.
	if got := BounceOut(1); !almostEqual(got, 1) {
		t.Fatalf("BounceOut(1) = %v", got)
	}
	if got := BounceOut(0); !almostEqual(got, 0) {
		t.Fatalf("BounceOut(0) = %v", got)
	}
}

func TestByRPEID(t *testing.T) {
	if got := ByRPEID(1); got(0.25) != Linear(0.25) {
		t.Fatal("ByRPEID(1) should be Linear")
	}
	if got := ByRPEID(-1); got(0.3) != Linear(0.3) {
		t.Fatal("ByRPEID(-1) should default to Linear")
	}
	if got := ByRPEID(999); got(0.3) != Linear(0.3) {
		t.Fatal("ByRPEID(999) should default to Linear")
	}
	if got := ByRPEID(26); got(0.4) != BounceOut(0.4) {
		t.Fatal("ByRPEID(26) should be BounceOut")
	}
}
