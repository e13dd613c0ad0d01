package touch

import "testing"

func TestActionOrdinalsMatchWireFormat(t *testing.T) {
	want := map[Action]uint8{
		Down: 0, Up: 1, Move: 2, Cancel: 3,
		Outside: 4, PointerDown: 5, PointerUp: 6, HoverMove: 7,
	}
	for action, ordinal := range want {
		if uint8(action) != ordinal {
			t.Fatalf("%s = %d, want %d", action, uint8(action), ordinal)
		}
	}
}

func TestActionValid(t *testing.T) {
	if !HoverMove.Valid() {
		t.Fatal("HoverMove should be valid")
	}
	if Action(8).Valid() {
		t.Fatal("Action(8) should be invalid")
	}
}
