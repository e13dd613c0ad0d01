package track

import "sort"

// Segment is one piece of a BrokenBamboo: a linear-in-easing span from
// (start, startValue) to (end, endValue).
type Segment[T Interpable[T]] struct {
	Start, End           float64
	StartValue, EndValue T
}

// BrokenBamboo is a track built from disjoint, explicitly bounded
// segments rather than a single chain of joints. Unlike LivingBamboo it
// has no notion of "outgoing easing per joint" (each segment's easing
// is linear). A time before its first segment evaluates to that
// segment's start value, and a time past its last segment's end to
// that segment's end value.
type BrokenBamboo[T Interpable[T]] struct {
	segments []Segment[T]
}

// NewBrokenBamboo returns an empty track.
func NewBrokenBamboo[T Interpable[T]]() *BrokenBamboo[T] {
	return &BrokenBamboo[T]{}
}

// Cut inserts a segment, keeping segments ordered by start time.
func (bb *BrokenBamboo[T]) Cut(start, end float64, startValue, endValue T) {
	seg := Segment[T]{start, end, startValue, endValue}
	at := sort.Search(len(bb.segments), func(i int) bool { return bb.segments[i].Start >= start })
	bb.segments = insertSegment(bb.segments, at, seg)
}

func insertSegment[T Interpable[T]](segs []Segment[T], at int, s Segment[T]) []Segment[T] {
	segs = append(segs, Segment[T]{})
	copy(segs[at+1:], segs[at:])
	segs[at] = s
	return segs
}

// Evaluate returns the linear interpolation within the segment
// straddling t. If t lands exactly on a segment's start, that segment's
// start value is returned without interpolating.
func (bb *BrokenBamboo[T]) Evaluate(t float64) T {
	right := sort.Search(len(bb.segments), func(i int) bool { return bb.segments[i].Start >= t })
	if right < len(bb.segments) && equal(bb.segments[right].Start, t) {
		return bb.segments[right].StartValue
	}
	if right == 0 {
		return bb.segments[0].StartValue
	}
	seg := bb.segments[right-1]
	if right == len(bb.segments) && t >= seg.End {
		return seg.EndValue
	}
	progress := (t - seg.Start) / (seg.End - seg.Start)
	return seg.StartValue.Add(seg.EndValue.Sub(seg.StartValue).Mul(progress))
}
