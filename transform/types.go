// SPDX-License-Identifier: MIT
// Package: hyperpath/transform
//
// types.go — raw points, path steps and the transformed path.

package transform

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/hyperspace"
	"github.com/katalvlaran/hyperpath/vector"
)

// RawPoint is one input tuple: X (time), Y, Z, then D4, D5, … in order.
type RawPoint struct {
	Label  string
	Coords []float64
}

// NewPoint builds a RawPoint. The coordinates are used as given; Transform
// copies what it keeps, so callers may reuse the slice afterwards.
func NewPoint(label string, coords ...float64) RawPoint {
	return RawPoint{Label: label, Coords: coords}
}

// Step is one accumulated position of a path.
//
// Fields:
//   - Dim          — 3 for the base placement, otherwise the extra dimension index.
//   - Pos          — running position after this step.
//   - Displacement — offset added by this step (zero for the base step).
//   - Input        — the raw coordinate that produced the step (0 for the base).
//   - Radius       — shell radius the input was clamped against (0 for the base).
//   - Clamped      — true when |Input| exceeded Radius.
type Step struct {
	Dim          int
	Pos          vector.Vec3
	Displacement vector.Vec3
	Input        float64
	Radius       float64
	Clamped      bool
}

// IsBase reports whether s is the 3-axis placement.
func (s Step) IsBase() bool { return s.Dim == hyperspace.BaseDims }

// Name renders the step the way renderers label it:
// "<label> (3D)" for the base, "D5" or "D5 (Clamped)" for extra dimensions.
func (s Step) Name(label string) string {
	switch {
	case s.IsBase():
		return fmt.Sprintf("%s (3D)", label)
	case s.Clamped:
		return fmt.Sprintf("D%d (Clamped)", s.Dim)
	default:
		return fmt.Sprintf("D%d", s.Dim)
	}
}

// Segment is the vector line drawn for one extra dimension.
type Segment struct {
	Dim        int
	Start, End vector.Vec3
	Clamped    bool
}

// Path is the immutable result of transforming one RawPoint.
//
// Steps[0] is the base placement; Steps[i] for i ≥ 1 is the running position
// after dimension i+3. Truncated is set when coordinates beyond the
// configured limit were discarded; DroppedCoords counts them.
type Path struct {
	Label         string
	Steps         []Step
	Truncated     bool
	DroppedCoords int
}

// Origin is the start of every path's polyline.
func (p Path) Origin() vector.Vec3 { return vector.Vec3{} }

// Base returns the 3-axis placement.
func (p Path) Base() vector.Vec3 {
	if len(p.Steps) == 0 {
		return vector.Vec3{}
	}

	return p.Steps[0].Pos
}

// Final returns the terminal position of the path.
func (p Path) Final() vector.Vec3 {
	if len(p.Steps) == 0 {
		return vector.Vec3{}
	}

	return p.Steps[len(p.Steps)-1].Pos
}

// ExtraDims is the number of extra dimensions that contributed a step.
func (p Path) ExtraDims() int {
	if len(p.Steps) == 0 {
		return 0
	}

	return len(p.Steps) - 1
}

// ClampedCount returns how many steps were clamped.
func (p Path) ClampedCount() int {
	n := 0
	for _, s := range p.Steps {
		if s.Clamped {
			n++
		}
	}

	return n
}

// Polyline returns origin, base placement and every accumulated position.
func (p Path) Polyline() []vector.Vec3 {
	out := make([]vector.Vec3, 0, len(p.Steps)+1)
	out = append(out, p.Origin())
	for _, s := range p.Steps {
		out = append(out, s.Pos)
	}

	return out
}

// Segments returns one line per extra dimension, from the previous running
// position to the new one.
func (p Path) Segments() []Segment {
	if len(p.Steps) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(p.Steps)-1)
	for i := 1; i < len(p.Steps); i++ {
		out = append(out, Segment{
			Dim:     p.Steps[i].Dim,
			Start:   p.Steps[i-1].Pos,
			End:     p.Steps[i].Pos,
			Clamped: p.Steps[i].Clamped,
		})
	}

	return out
}
