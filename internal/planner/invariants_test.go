package planner

import (
	"testing"

	"github.com/qwe28256/phiauto/internal/geometry"
	"github.com/qwe28256/phiauto/internal/screen"
	"github.com/qwe28256/phiauto/internal/touch"
)

func TestCheckInvariantsAcceptsWellFormedTimeline(t *testing.T) {
	scr := screen.New(1920, 1080)
	frames := []touch.Frame{
		{TimeMs: 1000, Events: []touch.Event{{Pos: geometry.Vec2{X: 960, Y: 540}, Action: touch.Down, PointerID: 0}}},
		{TimeMs: 1001, Events: []touch.Event{{Pos: geometry.Vec2{X: 960, Y: 540}, Action: touch.Up, PointerID: 0}}},
	}
	if err := CheckInvariants(frames, scr, 10); err != nil {
		t.Fatalf("CheckInvariants: %v", err)
	}
}

func TestCheckInvariantsRejectsDoubleDown(t *testing.T) {
	scr := screen.New(1920, 1080)
	frames := []touch.Frame{
		{TimeMs: 1000, Events: []touch.Event{{Action: touch.Down, PointerID: 0}}},
		{TimeMs: 1001, Events: []touch.Event{{Action: touch.Down, PointerID: 0}}},
	}
	if err := CheckInvariants(frames, scr, 10); err == nil {
		t.Fatal("expected an error for a double DOWN")
	}
}

func TestCheckInvariantsRejectsMoveWithoutDown(t *testing.T) {
	scr := screen.New(1920, 1080)
	frames := []touch.Frame{
		{TimeMs: 1000, Events: []touch.Event{{Action: touch.Move, PointerID: 0}}},
	}
	if err := CheckInvariants(frames, scr, 10); err == nil {
		t.Fatal("expected an error for MOVE without DOWN")
	}
}

func TestCheckInvariantsRejectsPointerCapViolation(t *testing.T) {
	scr := screen.New(1920, 1080)
	events := make([]touch.Event, 3)
	for i := range events {
		events[i] = touch.Event{Action: touch.Down, PointerID: uint32(i)}
	}
	frames := []touch.Frame{{TimeMs: 1000, Events: events}}
	if err := CheckInvariants(frames, scr, 2); err == nil {
		t.Fatal("expected an error for exceeding the pointer cap")
	}
}

func TestCheckInvariantsRejectsOffScreen(t *testing.T) {
	scr := screen.New(100, 100)
	frames := []touch.Frame{
		{TimeMs: 1000, Events: []touch.Event{{Pos: geometry.Vec2{X: 500, Y: 500}, Action: touch.Down, PointerID: 0}}},
	}
	if err := CheckInvariants(frames, scr, 10); err == nil {
		t.Fatal("expected an error for an off-screen event")
	}
}

func TestCheckInvariantsRejectsOutOfOrderFrames(t *testing.T) {
	scr := screen.New(1920, 1080)
	frames := []touch.Frame{
		{TimeMs: 2000, Events: nil},
		{TimeMs: 1000, Events: nil},
	}
	if err := CheckInvariants(frames, scr, 10); err == nil {
		t.Fatal("expected an error for out-of-order frames")
	}
}
