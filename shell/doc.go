// SPDX-License-Identifier: MIT

// Package shell implements the nested shell geometry and the dimensional
// clamp of the hyperpath engine.
//
// Every dimension d ≥ 4 owns a shell of radius
//
//	r(d) = BaseSlope + SlopeGrowth·(d − 4)
//
// so r(4) = BaseSlope and the sequence never shrinks. Clamp bounds a single
// coordinate's displacement to its shell's radius while keeping its sign.
//
// Both functions are pure: no allocation, no logging, no shared state.
package shell
