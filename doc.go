// Package hyperpath maps arbitrary-length numeric tuples onto bounded 3D
// paths, so points with 4, 5, 6 … dimensions can be drawn without the clutter
// of hypercube projections.
//
// 🚀 How does it work?
//
//	X, Y and Z place the point. Every further coordinate D4, D5, … becomes a
//	displacement in the Y–Z plane at its own angle, clamped to that
//	dimension's shell and added to the running position:
//		• hyperspace/ — immutable engine configuration & sentinel errors
//		• shell/      — nested shell radii and the dimensional clamp
//		• vector/     — Vec3 and the per-dimension projector
//		• transform/  — one point → one path (validate, truncate, fold)
//		• batch/      — many points, order-preserving, failure-tolerant, parallel
//		• config/     — YAML configuration with HYPERPATH_* overrides
//		• dataset/    — CSV / YAML / JSON readers and the JSON result writer
//		• cmd/hyperpath — the command-line front end
//
// ✨ Guarantees:
//
//   - Deterministic – a fixed geometric rule, no fitting, no randomness
//   - Bounded – no step moves further than its shell's radius
//   - Observable – truncation and clamping are flags on the result, never silent
//   - Shareable – a Config is a value; transforms hold no shared state
//
// Quick ASCII example (angle step 90°, looking down the X axis):
//
//	          +Z (D5)
//	            │
//	(D6) −Y ────┼──── +Y (D4)
//	            │
//	          −Z (D7)
//
//	go get github.com/katalvlaran/hyperpath
package hyperpath
