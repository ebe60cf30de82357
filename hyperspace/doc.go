// SPDX-License-Identifier: MIT

// Package hyperspace holds the immutable engine configuration shared by every
// hyperpath transform, together with the sentinel errors of the engine.
//
// 🚀 What is a hyperspace configuration?
//
//	The first three coordinates of a point are the literal X/Y/Z axes.
//	Every coordinate after that (D4, D5, D6, …) owns a "shell": a bound on
//	how far that single coordinate may move the running position. Config
//	describes those shells and the angular spacing of their directions:
//	  • LimitDimensions — hard cap on accepted coordinates (extra ones are dropped)
//	  • SystemLength    — length of the base time/X axis
//	  • BaseSlope       — shell radius at D4
//	  • SlopeGrowth     — radius increment per further dimension
//	  • AngleStep       — angular spacing (degrees) between extra dimensions
//
// ⚙️ Usage:
//
//	cfg, err := hyperspace.New(
//	  hyperspace.WithLimitDimensions(5),
//	  hyperspace.WithSystemLength(10),
//	  hyperspace.WithBaseSlope(2),
//	  hyperspace.WithSlopeGrowth(1),
//	  hyperspace.WithAngleStep(90),
//	)
//
// A Config is a value: once New or NewConfig validated it, nothing can change
// it, so one Config may be shared by any number of concurrent transforms.
package hyperspace
