// Package fixture loads a minimal JSON chart fixture into the
// in-memory chart model, for the CLI and tests. It is deliberately not
// a dialect parser: lines carry a single constant position/rotation
// rather than keyframe tracks, which is enough to exercise every
// planner code path without reimplementing a chart format.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/qwe28256/phiauto/internal/chart"
	"github.com/qwe28256/phiauto/internal/geometry"
	"github.com/qwe28256/phiauto/internal/track"
)

type document struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Lines  []line   `json:"lines"`
}

type line struct {
	ID       int      `json:"id"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Rotation float64  `json:"rotation_radians"`
	Notes    []note   `json:"notes"`
}

type note struct {
	Type     string  `json:"type"`
	Time     float64 `json:"time"`
	Duration float64 `json:"duration"`
	XOffset  float64 `json:"x_offset"`
	Above    bool    `json:"above"`
}

var noteTypes = map[string]chart.NoteType{
	"tap":   chart.Tap,
	"hold":  chart.Hold,
	"drag":  chart.Drag,
	"flick": chart.Flick,
}

// Load reads a fixture file and builds a *chart.Chart from it.
func Load(path string) (*chart.Chart, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	return Parse(raw)
}

// Parse builds a *chart.Chart from fixture JSON already in memory.
func Parse(raw []byte) (*chart.Chart, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("fixture: invalid JSON: %w", err)
	}

	b := chart.NewBuilder(doc.Width, doc.Height)
	for _, l := range doc.Lines {
		jl := b.Line(l.ID)
		jl.Position = track.BambooShoot[geometry.Vec2]{Const: geometry.Vec2{X: l.X, Y: l.Y}}
		jl.Rotation = track.BambooShoot[track.Scalar]{Const: track.Scalar(l.Rotation)}

		for i, n := range l.Notes {
			nt, ok := noteTypes[n.Type]
			if !ok {
				return nil, fmt.Errorf("fixture: line %d note %d: unknown note type %q", l.ID, i, n.Type)
			}
			jl.Notes = append(jl.Notes, chart.Note{
				Type:     nt,
				Time:     n.Time,
				Duration: n.Duration,
				XOffset:  n.XOffset,
				Above:    n.Above,
			})
		}
	}

	return b.Build(), nil
}
