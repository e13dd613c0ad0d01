package screen

import (
	"math"
	"testing"

	"github.com/qwe28256/phiauto/internal/geometry"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestVisibleInsideScreen(t *testing.T) {
	u := New(1920, 1080)
	if !u.Visible(geometry.Vec2{X: 960, Y: 540}) {
		t.Fatal("center should be visible")
	}
	if u.Visible(geometry.Vec2{X: -1, Y: 540}) {
		t.Fatal("x<0 should not be visible")
	}
}

func TestRemapOnScreenIsIdentity(t *testing.T) {
	u := New(1920, 1080)
	p := geometry.Vec2{X: 500, Y: 500}
	if got := u.Remap(p, geometry.Vec2{X: 1, Y: 0}); got != p {
		t.Fatalf("Remap(on-screen) = %+v, want %+v", got, p)
	}
}

func TestRemapOffScreenHitsEdge(t *testing.T) {
	u := New(100, 100)
	// p is far left of the screen, directly out along the horizontal
	// centerline; dir is vertical so the probe line is horizontal and
	// crosses both the left and right edges at y=50, averaging to the
	// screen center.
	p := geometry.Vec2{X: -50, Y: 50}
	got := u.Remap(p, geometry.Vec2{X: 0, Y: 1})
	if !almostEqual(got.X, 50) || !almostEqual(got.Y, 50) {
		t.Fatalf("Remap = %+v, want {50 50}", got)
	}
}

func TestRemapOffScreenNoEdgeFallsBackToCenter(t *testing.T) {
	u := New(100, 100)
	// p is above and to the left; dir horizontal makes the probe line
	// vertical (x=-50), which is parallel to both the left and right
	// edges and crosses only the top and bottom edges, both outside
	// their [0,100] range, so remap falls back to the screen center.
	p := geometry.Vec2{X: -50, Y: -50}
	got := u.Remap(p, geometry.Vec2{X: 1, Y: 0})
	if !almostEqual(got.X, 50) || !almostEqual(got.Y, 50) {
		t.Fatalf("Remap = %+v, want {50 50} (no valid edge crossing)", got)
	}
}

func TestFlickRadius(t *testing.T) {
	u := New(1920, 1080)
	if got := u.FlickRadius(); !almostEqual(got, 108) {
		t.Fatalf("FlickRadius = %v, want 108", got)
	}
}
