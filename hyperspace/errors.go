// SPDX-License-Identifier: MIT
// Package: hyperpath/hyperspace
//
// errors.go — sentinel errors for the whole engine.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with fmt.Errorf("...: %w", ErrX), never baked
//     into the sentinel text.
//   • Truncation and clamping are NOT errors; they are flags on the result.

package hyperspace

import "errors"

// ErrConfiguration indicates an invalid engine configuration: a non-positive
// limit, length or base slope, a negative slope growth, an angle step outside
// (0, 360], or a shell requested for one of the three base axes.
// It is fatal: no transform proceeds with a configuration that fails Validate.
var ErrConfiguration = errors.New("hyperspace: invalid configuration")

// ErrInvalidPoint indicates a raw point with fewer than three coordinates or
// with a coordinate that is not a finite number (NaN, ±Inf).
// A batch records it against the offending index and keeps going.
var ErrInvalidPoint = errors.New("hyperspace: invalid point")
