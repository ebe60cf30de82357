// SPDX-License-Identifier: MIT

// Package transform folds one high-dimensional point into a bounded 3D path.
//
// Algorithm (per point):
//  1. Validate: at least three coordinates, all finite.
//  2. Truncate: keep the first LimitDimensions coordinates, flag the rest.
//  3. Seed the path with (x0·SystemLength, x1, x2).
//  4. For d = 4..n in ascending order:
//     r       = shell.Radius(d)
//     v, hit  = shell.Clamp(x[d-1], r)
//     pos    += vector.Project(d, v, AngleStep)
//     append (pos, hit)
//  5. Return the labelled path.
//
// Each step moves at most r(d) away from the previous position. The bound is
// local: it limits the increment, not the distance from the origin.
//
// The fold is an explicit loop, so the number of dimensions is bounded only
// by LimitDimensions, not by stack depth.
//
// Complexity: O(n) time and space for n kept coordinates.
package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hyperpath/hyperspace"
	"github.com/katalvlaran/hyperpath/shell"
	"github.com/katalvlaran/hyperpath/vector"
)

// Transform maps p onto a path under cfg.
//
// Errors:
//   - ErrConfiguration — cfg was not built by hyperspace.New/NewConfig.
//   - ErrInvalidPoint  — fewer than three coordinates or a non-finite entry.
//
// On error no partial path is returned.
func Transform(p RawPoint, cfg hyperspace.Config) (Path, error) {
	if err := cfg.Validate(); err != nil {
		return Path{}, err
	}
	if err := validatePoint(p); err != nil {
		return Path{}, err
	}

	coords := p.Coords
	dropped := 0
	if limit := cfg.LimitDimensions(); len(coords) > limit {
		dropped = len(coords) - limit
		coords = coords[:limit]
	}

	x := coords[0]
	if cfg.ScaleTime() {
		x *= cfg.SystemLength()
	}
	pos := vector.NewVec3(x, coords[1], coords[2])

	steps := make([]Step, 0, len(coords)-hyperspace.BaseDims+1)
	steps = append(steps, Step{Dim: hyperspace.BaseDims, Pos: pos})

	for d := hyperspace.FirstExtraDim; d <= len(coords); d++ {
		r, err := shell.Radius(cfg, d)
		if err != nil {
			return Path{}, err
		}
		in := coords[d-1]
		v, clamped := shell.Clamp(in, r)
		disp := vector.Project(d, v, cfg.AngleStep())
		pos = pos.Add(disp)

		steps = append(steps, Step{
			Dim:          d,
			Pos:          pos,
			Displacement: disp,
			Input:        in,
			Radius:       r,
			Clamped:      clamped,
		})
	}

	return Path{
		Label:         p.Label,
		Steps:         steps,
		Truncated:     dropped > 0,
		DroppedCoords: dropped,
	}, nil
}

// validatePoint checks the length and that every coordinate is a finite number,
// including those that truncation will later discard.
func validatePoint(p RawPoint) error {
	if len(p.Coords) < hyperspace.BaseDims {
		return fmt.Errorf("%w: %q has %d coordinates, need at least %d (x, y, z)",
			hyperspace.ErrInvalidPoint, p.Label, len(p.Coords), hyperspace.BaseDims)
	}
	for i, c := range p.Coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: %q coordinate %d (D%d) is not a finite number",
				hyperspace.ErrInvalidPoint, p.Label, i, i+1)
		}
	}

	return nil
}
