package track

import (
	"errors"
	"fmt"
	"sort"

	"github.com/qwe28256/phiauto/internal/easing"
)

// ErrOverlappingEmbed is returned by LivingBamboo.Embed when the
// [start,end] interval being described already contains a joint
// strictly inside it. The source algorithm left this case undefined
// (commented-out assertions on joint ordering); this implementation
// rejects it outright rather than silently merging or reordering
// joints.
var ErrOverlappingEmbed = errors.New("track: embed interval overlaps an existing joint")

// Joint is one keyframe: a timestamp, the value at that timestamp, and
// the easing used to interpolate from this joint to the next one.
type Joint[T Interpable[T]] struct {
	Time   float64
	Value  T
	Easing easing.Func
}

// LivingBamboo is an ordered sequence of joints with t strictly
// increasing modulo an isclose-style tolerance. It is the primary
// keyframe track implementation: judge-line position and rotation
// tracks are both LivingBamboo instances.
type LivingBamboo[T Interpable[T]] struct {
	joints []Joint[T]
}

// NewLivingBamboo returns an empty track.
func NewLivingBamboo[T Interpable[T]]() *LivingBamboo[T] {
	return &LivingBamboo[T]{}
}

// Len reports the number of joints, exposed mainly for tests asserting
// cut's idempotency.
func (lb *LivingBamboo[T]) Len() int { return len(lb.joints) }

func (lb *LivingBamboo[T]) bisectLeft(t float64) int {
	return sort.Search(len(lb.joints), func(i int) bool { return lb.joints[i].Time >= t })
}

// Cut inserts a joint at t, or overwrites the value and easing of an
// existing joint within tolerance of t. A nil easing defaults to
// easing.LVALUE, matching the source dialect's behavior when a chart
// event carries no interpolation curve.
func (lb *LivingBamboo[T]) Cut(t float64, value T, ease easing.Func) {
	if ease == nil {
		ease = easing.LVALUE
	}

	insertPoint := lb.bisectLeft(t)
	if len(lb.joints) == 0 {
		lb.joints = append(lb.joints, Joint[T]{t, value, ease})
		return
	}

	if insertPoint == len(lb.joints) {
		if equal(lb.joints[insertPoint-1].Time, t) {
			lb.joints[insertPoint-1] = Joint[T]{t, value, ease}
			return
		}
	} else if equal(lb.joints[insertPoint].Time, t) {
		lb.joints[insertPoint] = Joint[T]{t, value, ease}
		return
	} else if insertPoint > 0 && equal(lb.joints[insertPoint-1].Time, t) {
		lb.joints[insertPoint-1] = Joint[T]{t, value, ease}
		return
	}

	lb.joints = insertAt(lb.joints, insertPoint, Joint[T]{t, value, ease})
}

func insertAt[T Interpable[T]](joints []Joint[T], at int, j Joint[T]) []Joint[T] {
	joints = append(joints, Joint[T]{})
	copy(joints[at+1:], joints[at:])
	joints[at] = j
	return joints
}

// hasInteriorJoint reports whether any existing joint's timestamp lies
// strictly between start and end (tolerance-aware at both ends).
func (lb *LivingBamboo[T]) hasInteriorJoint(start, end float64) bool {
	idx := lb.bisectLeft(start)
	for i := idx; i < len(lb.joints); i++ {
		ts := lb.joints[i].Time
		if ts > end && !equal(ts, end) {
			break
		}
		if equal(ts, start) || equal(ts, end) {
			continue
		}
		if ts > start && ts < end {
			return true
		}
	}
	return false
}

// Embed inserts two joints describing a segment (start, value-at-start,
// ease) -> (end, endValue, prev-easing), where the start value is
// whatever the track evaluates to at start before the insertion. If a
// joint already exists at start, only its outgoing easing is
// overwritten (its value is preserved). If end coincides with the next
// joint, that joint's value is overwritten in place.
func (lb *LivingBamboo[T]) Embed(start, end float64, endValue T, ease easing.Func) error {
	if lb.hasInteriorJoint(start, end) {
		return fmt.Errorf("%w: [%g, %g]", ErrOverlappingEmbed, start, end)
	}

	insertPoint := lb.bisectLeft(start)

	switch {
	case insertPoint < len(lb.joints) && equal(lb.joints[insertPoint].Time, start):
		leftEasing := lb.joints[insertPoint].Easing
		lb.joints[insertPoint].Easing = ease
		if insertPoint < len(lb.joints)-1 && equal(lb.joints[insertPoint+1].Time, end) {
			lb.joints[insertPoint+1].Value = endValue
		} else {
			lb.joints = insertAt(lb.joints, insertPoint+1, Joint[T]{end, endValue, leftEasing})
		}

	case insertPoint == len(lb.joints):
		last := lb.joints[len(lb.joints)-1]
		lb.joints = append(lb.joints, Joint[T]{start, last.Value, ease})
		lb.joints = append(lb.joints, Joint[T]{end, endValue, last.Easing})

	default:
		if equal(lb.joints[insertPoint].Time, end) {
			startValue := lb.Evaluate(start)
			lb.joints[insertPoint].Value = endValue
			lb.joints = insertAt(lb.joints, insertPoint, Joint[T]{start, startValue, ease})
		} else {
			startValue := lb.Evaluate(start)
			leftEasing := lb.joints[insertPoint-1].Easing
			lb.joints = insertAt(lb.joints, insertPoint, Joint[T]{end, endValue, leftEasing})
			lb.joints = insertAt(lb.joints, insertPoint, Joint[T]{start, startValue, ease})
		}
	}

	return nil
}

// Evaluate returns the track's value at t: clamped to the first/last
// joint's value outside the track's extremes, otherwise the eased
// interpolation between the straddling joints.
func (lb *LivingBamboo[T]) Evaluate(t float64) T {
	right := lb.bisectLeft(t)
	left := right - 1
	if right == len(lb.joints) {
		return lb.joints[left].Value
	}
	if right == 0 || lb.joints[right].Time == t {
		return lb.joints[right].Value
	}
	start := lb.joints[left]
	end := lb.joints[right]
	progress := start.Easing((t - start.Time) / (end.Time - start.Time))
	return start.Value.Add(end.Value.Sub(start.Value).Mul(progress))
}
