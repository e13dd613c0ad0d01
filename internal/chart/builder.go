package chart

import "sort"

// Builder accumulates judge lines keyed by a dialect's numeric line id,
// lazily creating a line the first time it is referenced (mirroring how
// a source dialect can emit events for line N before line N's own
// declaration appears). Build freezes the accumulated lines into a
// stable array ordered by id.
type Builder struct {
	width, height int
	lines         map[int]*JudgeLine
}

// NewBuilder starts a chart builder for the given logical resolution.
func NewBuilder(width, height int) *Builder {
	return &Builder{width: width, height: height, lines: make(map[int]*JudgeLine)}
}

// Line returns the JudgeLine for id, creating an empty one on first
// reference.
func (b *Builder) Line(id int) *JudgeLine {
	jl, ok := b.lines[id]
	if !ok {
		jl = &JudgeLine{}
		b.lines[id] = jl
	}
	return jl
}

// Build freezes the accumulated lines into a Chart, ordered by
// ascending line id.
func (b *Builder) Build() *Chart {
	ids := make([]int, 0, len(b.lines))
	for id := range b.lines {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	lines := make([]*JudgeLine, len(ids))
	for i, id := range ids {
		lines[i] = b.lines[id]
	}

	return &Chart{Width: b.width, Height: b.height, Lines: lines}
}
