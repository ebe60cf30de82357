// SPDX-License-Identifier: MIT
// Package: hyperpath/hyperspace
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless literals
//     (programmer error). Values that arrive at runtime (files, flags)
//     go through NewConfig, which returns ErrConfiguration instead.
//   • Options are applied in order; later options override earlier ones.

package hyperspace

// Option customizes Params before New validates them.
type Option func(*Params)

// WithLimitDimensions sets the coordinate cap. Panics if n < BaseDims.
func WithLimitDimensions(n int) Option {
	if n < BaseDims {
		panic("hyperspace: WithLimitDimensions(n<3)")
	}
	return func(p *Params) {
		p.LimitDimensions = n
	}
}

// WithSystemLength sets the base time-axis length. Panics if h <= 0.
func WithSystemLength(h float64) Option {
	if !(h > 0) {
		panic("hyperspace: WithSystemLength(h<=0)")
	}
	return func(p *Params) {
		p.SystemLength = h
	}
}

// WithBaseSlope sets the D4 shell radius. Panics if s <= 0.
func WithBaseSlope(s float64) Option {
	if !(s > 0) {
		panic("hyperspace: WithBaseSlope(s<=0)")
	}
	return func(p *Params) {
		p.BaseSlope = s
	}
}

// WithSlopeGrowth sets the per-dimension radius increment. Panics if g < 0.
// Zero is allowed and yields shells of equal radius.
func WithSlopeGrowth(g float64) Option {
	if !(g >= 0) {
		panic("hyperspace: WithSlopeGrowth(g<0)")
	}
	return func(p *Params) {
		p.SlopeGrowth = g
	}
}

// WithAngleStep sets the angular spacing in degrees. Panics outside (0, 360].
// A step that does not divide 360 evenly may alias directions; that is
// accepted, not detected.
func WithAngleStep(deg float64) Option {
	if !(deg > 0 && deg <= FullTurn) {
		panic("hyperspace: WithAngleStep(deg∉(0,360])")
	}
	return func(p *Params) {
		p.AngleStep = deg
	}
}

// WithoutTimeScaling keeps the time coordinate as X instead of X·SystemLength.
func WithoutTimeScaling() Option {
	return func(p *Params) {
		p.ScaleTime = false
	}
}
