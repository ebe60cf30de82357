// SPDX-License-Identifier: MIT

// Package vector provides the 3D vector type of hyperpath and the projector
// that turns one extra-dimension coordinate into a displacement.
//
// Plane convention: every extra dimension displaces inside the Y–Z plane,
// orthogonal to the time (X) axis. Dimension d points at
//
//	θ(d) = ((d − 4)·AngleStep) mod 360°
//
// measured from +Y towards +Z, so with the default 45° step D4 moves along +Y,
// D6 along +Z, D8 along −Y. Steps that do not divide 360° may make two
// dimensions share a direction; that is a configuration choice, not an error.
package vector

import (
	"math"

	"github.com/katalvlaran/hyperpath/hyperspace"
)

// Vec3 is a position or displacement in render space (X = time axis).
type Vec3 struct{ X, Y, Z float64 }

// NewVec3 creates a new 3D vector with the given components.
func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v − o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns k·v.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Dist returns the Euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float64 { return v.Sub(o).Norm() }

// ApproxEqual reports whether every component of v and o differs by at most eps.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps && math.Abs(v.Z-o.Z) <= eps
}

// Angle returns the direction of dimension d in degrees, within [0, 360).
func Angle(d int, stepDeg float64) float64 {
	a := math.Mod(float64(d-hyperspace.FirstExtraDim)*stepDeg, hyperspace.FullTurn)
	if a < 0 {
		a += hyperspace.FullTurn
	}

	return a
}

// Direction returns the unit vector of dimension d in the Y–Z plane.
// Quarter turns are exact: 0°, 90°, 180° and 270° map to ±Y / ±Z with no
// floating-point residue in the other component.
func Direction(d int, stepDeg float64) Vec3 {
	c, s := unitCircle(Angle(d, stepDeg))

	return Vec3{X: 0, Y: c, Z: s}
}

// Project converts a (clamped) coordinate value of dimension d into its
// displacement: value · Direction(d, stepDeg). The X component is always 0.
//
// Complexity: O(1).
func Project(d int, value, stepDeg float64) Vec3 {
	return Direction(d, stepDeg).Scale(value)
}

// unitCircle returns (cos, sin) of deg, snapping quarter turns.
func unitCircle(deg float64) (float64, float64) {
	if q := deg / 90; q == math.Trunc(q) {
		switch int(q) % 4 {
		case 0:
			return 1, 0
		case 1:
			return 0, 1
		case 2:
			return -1, 0
		default:
			return 0, -1
		}
	}
	s, c := math.Sincos(deg * math.Pi / 180)

	return c, s
}
