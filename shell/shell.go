// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hyperpath/hyperspace"
)

// Shell pairs a dimension index with its radius.
type Shell struct {
	Dim    int
	Radius float64
}

// Radius returns the shell radius of dimension d under cfg.
//
// Contract:
//   - d ≥ 4; the three base axes have no shell and yield ErrConfiguration.
//   - Monotone non-decreasing in d, strictly increasing iff SlopeGrowth > 0.
//
// Complexity: O(1).
func Radius(cfg hyperspace.Config, d int) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if d < hyperspace.FirstExtraDim {
		return 0, fmt.Errorf("%w: dimension %d has no shell (shells start at D%d)",
			hyperspace.ErrConfiguration, d, hyperspace.FirstExtraDim)
	}

	return cfg.BaseSlope() + cfg.SlopeGrowth()*float64(d-hyperspace.FirstExtraDim), nil
}

// Radii lists the shells of D4..maxDim in ascending order.
// An empty slice is returned when maxDim < 4.
//
// Complexity: O(maxDim) time and space.
func Radii(cfg hyperspace.Config, maxDim int) ([]Shell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if maxDim < hyperspace.FirstExtraDim {
		return []Shell{}, nil
	}

	out := make([]Shell, 0, maxDim-hyperspace.BaseDims)
	for d := hyperspace.FirstExtraDim; d <= maxDim; d++ {
		r, err := Radius(cfg, d)
		if err != nil {
			return nil, err
		}
		out = append(out, Shell{Dim: d, Radius: r})
	}

	return out, nil
}

// Clamp bounds the displacement magnitude x to the shell radius r.
//
// If |x| ≤ r, x is returned unchanged with clamped=false; otherwise
// sign(x)·r is returned with clamped=true. ±Inf clamps to ±r. The radius is
// taken as a magnitude, so a negative r behaves like |r|.
//
// Clamp is idempotent: Clamp(Clamp(x, r)) == Clamp(x, r).
// NaN never reaches Clamp in the engine; point validation rejects it.
func Clamp(x, r float64) (value float64, clamped bool) {
	r = math.Abs(r)
	if math.Abs(x) <= r {
		return x, false
	}
	if x < 0 {
		return -r, true
	}

	return r, true
}
