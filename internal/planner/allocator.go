package planner

import "github.com/qwe28256/phiauto/internal/geometry"

// ConservativePool is the pointer allocator used by the conservative
// planner: a fixed id range with a FIFO free list. Ids are minted
// lazily up to max, then only recycled. Release records the time the
// id becomes free so that two notes occupying overlapping time spans
// on different lines never get handed the same id, even though the
// planner visits lines (and therefore releases ids) sequentially.
type ConservativePool struct {
	max  int
	next int

	free        []int
	releaseTime map[int]float64
}

// NewConservativePool returns a pool minting ids in [0, max).
func NewConservativePool(max int) *ConservativePool {
	return &ConservativePool{max: max, releaseTime: make(map[int]float64)}
}

// Acquire returns the oldest released id whose release time is no
// later than minTime, or a freshly minted id if none qualifies. ok is
// false if the pool is exhausted.
func (p *ConservativePool) Acquire(minTime float64) (id int, ok bool) {
	for i, candidate := range p.free {
		if p.releaseTime[candidate] <= minTime {
			p.free = append(p.free[:i:i], p.free[i+1:]...)
			return candidate, true
		}
	}
	if p.next < p.max {
		id = p.next
		p.next++
		return id, true
	}
	return 0, false
}

// Release returns id to the free list, usable again from atTime on.
func (p *ConservativePool) Release(id int, atTime float64) {
	p.releaseTime[id] = atTime
	p.free = append(p.free, id)
}

// RadicalPool is the global, position-aware pointer allocator used by
// the radical planner. A released id is only reused for a note whose
// start time is no earlier than the id's release time and whose start
// position is within reuseDistance of the id's release position;
// otherwise a fresh id is minted. Among eligible released ids,
// selection is FIFO by release order.
type RadicalPool struct {
	max           int
	reuseDistance float64
	minted        int

	freeOrder   []int
	releaseTime map[int]float64
	releasePos  map[int]geometry.Vec2
}

// NewRadicalPool returns a pool minting ids in [0, max) and reusing a
// released id only within reuseDistance of its release position.
func NewRadicalPool(max int, reuseDistance float64) *RadicalPool {
	return &RadicalPool{
		max:           max,
		reuseDistance: reuseDistance,
		releaseTime:   make(map[int]float64),
		releasePos:    make(map[int]geometry.Vec2),
	}
}

// Acquire finds the oldest-released free id eligible for reuse at
// minReleaseTime near nearPosition; failing that, mints a new id if
// under the cap. ok is false only when the cap has been reached with
// no eligible id.
func (p *RadicalPool) Acquire(minReleaseTime float64, nearPosition geometry.Vec2) (id int, ok bool) {
	for i, candidate := range p.freeOrder {
		if p.releaseTime[candidate] > minReleaseTime {
			continue
		}
		if geometry.Distance(p.releasePos[candidate], nearPosition) > p.reuseDistance {
			continue
		}
		p.freeOrder = append(p.freeOrder[:i:i], p.freeOrder[i+1:]...)
		return candidate, true
	}

	if p.minted < p.max {
		id = p.minted
		p.minted++
		return id, true
	}
	return 0, false
}

// Release marks id free as of atTime, at atPosition, eligible for
// future reuse.
func (p *RadicalPool) Release(id int, atTime float64, atPosition geometry.Vec2) {
	p.releaseTime[id] = atTime
	p.releasePos[id] = atPosition
	p.freeOrder = append(p.freeOrder, id)
}
