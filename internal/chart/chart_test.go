package chart

import (
	"math"
	"testing"

	"github.com/qwe28256/phiauto/internal/easing"
	"github.com/qwe28256/phiauto/internal/geometry"
	"github.com/qwe28256/phiauto/internal/track"
)

func TestJudgeLinePosAppliesRotation(t *testing.T) {
	pos := track.NewLivingBamboo[geometry.Vec2]()
	pos.Cut(0, geometry.Vec2{X: 100, Y: 100}, easing.Linear)

	rot := track.NewLivingBamboo[track.Scalar]()
	rot.Cut(0, track.Scalar(math.Pi/2), easing.Linear)

	jl := &JudgeLine{Position: pos, Rotation: rot}

	got := jl.Pos(0, geometry.Vec2{X: 10, Y: 0})
	if math.Abs(got.X-100) > 1e-9 || math.Abs(got.Y-110) > 1e-9 {
		t.Fatalf("Pos = %+v, want {100 110}", got)
	}
}

func TestJudgeLineBeatDurationDefault(t *testing.T) {
	jl := &JudgeLine{}
	if got := jl.BeatDuration(0); got != defaultBeatDuration {
		t.Fatalf("BeatDuration = %v, want %v", got, defaultBeatDuration)
	}
}

func TestJudgeLineBeatDurationCustom(t *testing.T) {
	jl := &JudgeLine{BeatDurationAt: func(t float64) float64 {
		if t < 10 {
			return 0.5
		}
		return 0.25
	}}
	if got := jl.BeatDuration(5); got != 0.5 {
		t.Fatalf("BeatDuration(5) = %v, want 0.5", got)
	}
	if got := jl.BeatDuration(15); got != 0.25 {
		t.Fatalf("BeatDuration(15) = %v, want 0.25", got)
	}
}

func TestBuilderOrdersLinesById(t *testing.T) {
	b := NewBuilder(1920, 1080)
	l5 := b.Line(5)
	l1 := b.Line(1)
	l3 := b.Line(3)

	c := b.Build()
	if len(c.Lines) != 3 {
		t.Fatalf("Lines len = %d, want 3", len(c.Lines))
	}
	if c.Lines[0] != l1 || c.Lines[1] != l3 || c.Lines[2] != l5 {
		t.Fatal("Build should order lines by ascending id (1, 3, 5)")
	}
	if c.Width != 1920 || c.Height != 1080 {
		t.Fatalf("resolution = %dx%d, want 1920x1080", c.Width, c.Height)
	}
}

func TestBuilderLineIsStable(t *testing.T) {
	b := NewBuilder(1, 1)
	first := b.Line(7)
	first.Notes = append(first.Notes, Note{Type: Tap, Time: 1})

	second := b.Line(7)
	if len(second.Notes) != 1 {
		t.Fatal("Line(id) should return the same JudgeLine on repeated calls")
	}
}
