// SPDX-License-Identifier: MIT
// Package: hyperpath/hyperspace
//
// config.go — the immutable engine configuration and its validation.
//
// Design:
//   • Params is plain data (what a YAML file or a flag set produces).
//   • Config is a validated Params; fields are unexported, so a Config that
//     passed NewConfig can only be read, never mutated.
//   • The zero Config is NOT usable: Validate reports ErrConfiguration.

package hyperspace

import (
	"fmt"
	"math"
)

// Axis layout shared by shells, projectors and transforms.
const (
	// BaseDims is the number of literal axes (X, Y, Z) every point must carry.
	BaseDims = 3
	// FirstExtraDim is the 1-based index of the first dimension that owns a shell.
	FirstExtraDim = BaseDims + 1
	// FullTurn is the angular period, in degrees, of extra-dimension directions.
	FullTurn = 360.0
)

// Defaults of the reference construction.
const (
	DefaultLimitDimensions = 6
	DefaultSystemLength    = 12.0
	DefaultBaseSlope       = 0.25
	DefaultSlopeGrowth     = 0.15
	DefaultAngleStep       = 45.0
	DefaultScaleTime       = true
)

// Params is the raw, unvalidated form of a Config.
type Params struct {
	// LimitDimensions caps the number of coordinates a point may contribute.
	// Must be at least BaseDims.
	LimitDimensions int
	// SystemLength is the length of the base time/X axis (>0).
	SystemLength float64
	// BaseSlope is the shell radius at D4 (>0).
	BaseSlope float64
	// SlopeGrowth is the radius increment per additional dimension (>=0).
	SlopeGrowth float64
	// AngleStep is the angular spacing in degrees, within (0, 360].
	AngleStep float64
	// ScaleTime multiplies the time coordinate by SystemLength when true.
	ScaleTime bool
}

// DefaultParams returns the reference parameters:
// limit 6, length 12, base slope 0.25, growth 0.15, step 45°, time scaling on.
func DefaultParams() Params {
	return Params{
		LimitDimensions: DefaultLimitDimensions,
		SystemLength:    DefaultSystemLength,
		BaseSlope:       DefaultBaseSlope,
		SlopeGrowth:     DefaultSlopeGrowth,
		AngleStep:       DefaultAngleStep,
		ScaleTime:       DefaultScaleTime,
	}
}

// Validate reports the first violated constraint, wrapped in ErrConfiguration.
// Check order: limit → length → base slope → growth → angle step.
func (p Params) Validate() error {
	if p.LimitDimensions < BaseDims {
		return fmt.Errorf("%w: limit_dimensions=%d, need at least %d",
			ErrConfiguration, p.LimitDimensions, BaseDims)
	}
	if !isFinite(p.SystemLength) || p.SystemLength <= 0 {
		return fmt.Errorf("%w: system_length=%g must be a positive number", ErrConfiguration, p.SystemLength)
	}
	if !isFinite(p.BaseSlope) || p.BaseSlope <= 0 {
		return fmt.Errorf("%w: base_slope=%g must be a positive number", ErrConfiguration, p.BaseSlope)
	}
	if !isFinite(p.SlopeGrowth) || p.SlopeGrowth < 0 {
		return fmt.Errorf("%w: slope_growth=%g must be a non-negative number", ErrConfiguration, p.SlopeGrowth)
	}
	if !isFinite(p.AngleStep) || p.AngleStep <= 0 || p.AngleStep > FullTurn {
		return fmt.Errorf("%w: angle_step=%g must lie in (0, %g]", ErrConfiguration, p.AngleStep, FullTurn)
	}

	return nil
}

// Config is a validated, read-only engine configuration.
type Config struct {
	p     Params
	valid bool
}

// NewConfig validates p and freezes it into a Config.
// Returns ErrConfiguration (wrapped) when any parameter is out of range.
func NewConfig(p Params) (Config, error) {
	if err := p.Validate(); err != nil {
		return Config{}, err
	}

	return Config{p: p, valid: true}, nil
}

// New starts from DefaultParams, applies opts in order (last wins) and
// validates the result.
func New(opts ...Option) (Config, error) {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	return NewConfig(p)
}

// Default returns the reference configuration. It cannot fail.
func Default() Config {
	return Config{p: DefaultParams(), valid: true}
}

// Validate reports ErrConfiguration for a Config that was not produced by
// New, NewConfig or Default (e.g. the zero value).
func (c Config) Validate() error {
	if !c.valid {
		return fmt.Errorf("%w: config was not built with hyperspace.New", ErrConfiguration)
	}

	return nil
}

// Params returns a copy of the underlying parameters.
func (c Config) Params() Params { return c.p }

// LimitDimensions is the maximum number of coordinates a point contributes.
func (c Config) LimitDimensions() int { return c.p.LimitDimensions }

// SystemLength is the length of the base time axis.
func (c Config) SystemLength() float64 { return c.p.SystemLength }

// BaseSlope is the radius of the D4 shell.
func (c Config) BaseSlope() float64 { return c.p.BaseSlope }

// SlopeGrowth is the radius increment per additional dimension.
func (c Config) SlopeGrowth() float64 { return c.p.SlopeGrowth }

// AngleStep is the angular spacing between extra dimensions, in degrees.
func (c Config) AngleStep() float64 { return c.p.AngleStep }

// ScaleTime reports whether the time coordinate is multiplied by SystemLength.
func (c Config) ScaleTime() bool { return c.p.ScaleTime }

// MaxExtraDims is the number of shells a point can traverse under this config.
func (c Config) MaxExtraDims() int { return c.p.LimitDimensions - BaseDims }

// String renders the configuration in a stable, log-friendly form.
func (c Config) String() string {
	return fmt.Sprintf("hyperspace{limit=%d length=%g base=%g growth=%g step=%g° scale_time=%t}",
		c.p.LimitDimensions, c.p.SystemLength, c.p.BaseSlope, c.p.SlopeGrowth, c.p.AngleStep, c.p.ScaleTime)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
