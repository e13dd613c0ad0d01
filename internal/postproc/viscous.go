package postproc

import (
	"sort"

	"github.com/qwe28256/phiauto/internal/geometry"
	"github.com/qwe28256/phiauto/internal/touch"
)

// PointerState is one pointer's entry in a viscous frame: its packed
// slot id, whether it is down this frame, and its current position.
// A pointer appears with Active false exactly once, on the frame it
// is released, so the transport can clear that slot; it is absent
// from every frame after.
type PointerState struct {
	PointerID int
	Active    bool
	Pos       geometry.Vec2
}

// ViscousFrame is the per-frame HID-ready snapshot: every pointer
// currently down, plus any pointer released this frame.
type ViscousFrame struct {
	TimeMs   int32
	Pointers []PointerState
}

// SlotTracker assigns each incoming touch pointer id a small,
// contiguous slot id on DOWN and frees it on UP, reusing the lowest
// free slot first. It holds the only state a viscous conversion
// needs, carried from one frame to the next.
type SlotTracker struct {
	slot free
	pos  map[uint32]geometry.Vec2
}

type free struct {
	bySource map[uint32]int
	freeList []int
	next     int
}

// NewSlotTracker returns an empty tracker, ready to consume frames in
// time order from the first one.
func NewSlotTracker() *SlotTracker {
	return &SlotTracker{
		slot: free{bySource: make(map[uint32]int)},
		pos:  make(map[uint32]geometry.Vec2),
	}
}

func (f *free) acquire(source uint32) int {
	if id, ok := f.bySource[source]; ok {
		return id
	}
	var id int
	if n := len(f.freeList); n > 0 {
		low := 0
		for i := 1; i < n; i++ {
			if f.freeList[i] < f.freeList[low] {
				low = i
			}
		}
		id = f.freeList[low]
		f.freeList = append(f.freeList[:low], f.freeList[low+1:]...)
	} else {
		id = f.next
		f.next++
	}
	f.bySource[source] = id
	return id
}

func (f *free) release(source uint32) (int, bool) {
	id, ok := f.bySource[source]
	if !ok {
		return 0, false
	}
	delete(f.bySource, source)
	f.freeList = append(f.freeList, id)
	return id, true
}

// Tick applies one timeline frame's events and returns the
// corresponding viscous snapshot. Frames must be fed in time order.
func (t *SlotTracker) Tick(in touch.Frame) ViscousFrame {
	released := make(map[int]geometry.Vec2)

	for _, e := range in.Events {
		switch e.Action {
		case touch.Down, touch.PointerDown:
			t.slot.acquire(e.PointerID)
			t.pos[e.PointerID] = e.Pos
		case touch.Move, touch.HoverMove:
			t.pos[e.PointerID] = e.Pos
		case touch.Up, touch.PointerUp, touch.Cancel, touch.Outside:
			p := t.pos[e.PointerID]
			if e.Action != touch.Cancel {
				p = e.Pos
			}
			if id, ok := t.slot.release(e.PointerID); ok {
				released[id] = p
			}
			delete(t.pos, e.PointerID)
		}
	}

	sourceBySlot := make(map[int]uint32, len(t.slot.bySource))
	for source, id := range t.slot.bySource {
		sourceBySlot[id] = source
	}
	var active []int
	for id := range sourceBySlot {
		active = append(active, id)
	}
	sort.Ints(active)

	out := ViscousFrame{TimeMs: in.TimeMs}
	for _, id := range active {
		out.Pointers = append(out.Pointers, PointerState{
			PointerID: id,
			Active:    true,
			Pos:       t.pos[sourceBySlot[id]],
		})
	}
	for id, pos := range released {
		out.Pointers = append(out.Pointers, PointerState{PointerID: id, Active: false, Pos: pos})
	}
	sort.Slice(out.Pointers, func(i, j int) bool { return out.Pointers[i].PointerID < out.Pointers[j].PointerID })

	return out
}

// Viscous converts a whole timeline at once, driving a fresh
// SlotTracker across frames in order.
func Viscous(frames []touch.Frame) []ViscousFrame {
	tracker := NewSlotTracker()
	out := make([]ViscousFrame, len(frames))
	for i, f := range frames {
		out[i] = tracker.Tick(f)
	}
	return out
}
