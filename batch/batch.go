// SPDX-License-Identifier: MIT

// Package batch applies the point transform to a collection of raw points.
//
// Guarantees:
//   - Order: Paths keep the relative input order of successful points,
//     regardless of which worker finished first.
//   - Resilience: a malformed point is skipped and reported as a Failure
//     carrying its input index; it never stops its siblings.
//   - Fatality: only an invalid configuration aborts the whole run.
//
// Concurrency: the input is split into contiguous chunks, one per worker
// (golang.org/x/sync/errgroup). Every worker writes only to the result slots
// of its own indices, so no locking is needed; results are assembled by index
// after all workers return. Logging and metrics happen during assembly, in
// input order.
package batch

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hyperpath/hyperspace"
	"github.com/katalvlaran/hyperpath/shell"
	"github.com/katalvlaran/hyperpath/transform"
)

// Failure records one point that could not be transformed.
type Failure struct {
	Index int    // position in the input slice
	Label string // label of the point (defaulted when empty)
	Err   error  // wraps hyperspace.ErrInvalidPoint
}

// Error implements error.
func (f Failure) Error() string {
	return fmt.Sprintf("point %d (%s): %v", f.Index, f.Label, f.Err)
}

// Unwrap exposes the underlying cause to errors.Is.
func (f Failure) Unwrap() error { return f.Err }

// Result is the outcome of TransformAll.
type Result struct {
	// Paths holds one path per valid input point, in input order.
	Paths []transform.Path
	// Failures lists the skipped points, in input order.
	Failures []Failure
	// MaxExtraDims is the largest number of extra dimensions any path used;
	// a renderer draws that many shells.
	MaxExtraDims int
}

// Err joins all failures into a single error, or returns nil.
func (r Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}

	return errors.Join(errs...)
}

// Shells returns the shells traversed by at least one path of r.
func (r Result) Shells(cfg hyperspace.Config) ([]shell.Shell, error) {
	return shell.Radii(cfg, hyperspace.BaseDims+r.MaxExtraDims)
}

// DefaultLabel names the i-th (0-based) unlabeled point of a batch.
func DefaultLabel(i int) string {
	return fmt.Sprintf("BatchPoint_%d", i+1)
}

// TransformAll transforms every point under cfg.
//
// Errors: only ErrConfiguration is returned, before any point is touched.
// Per-point problems land in Result.Failures.
//
// Complexity: O(Σ len(points[i].Coords)) time, spread over the workers.
func TransformAll(points []transform.RawPoint, cfg hyperspace.Config, opts ...Option) (Result, error) {
	o := newOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	paths := make([]transform.Path, len(points))
	errs := make([]error, len(points))
	work := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			p := points[i]
			if p.Label == "" {
				p.Label = DefaultLabel(i)
			}
			paths[i], errs[i] = transform.Transform(p, cfg)
		}
	}

	workers := min(o.workers, len(points))
	if workers <= 1 {
		work(0, len(points))
	} else {
		var g errgroup.Group
		chunk := (len(points) + workers - 1) / workers
		for lo := 0; lo < len(points); lo += chunk {
			lo, hi := lo, min(lo+chunk, len(points))
			g.Go(func() error {
				work(lo, hi)
				return nil
			})
		}
		_ = g.Wait() // workers never fail; per-point errors live in errs
	}

	res := Result{Paths: make([]transform.Path, 0, len(points))}
	for i := range points {
		if errs[i] != nil {
			label := points[i].Label
			if label == "" {
				label = DefaultLabel(i)
			}
			res.Failures = append(res.Failures, Failure{Index: i, Label: label, Err: errs[i]})
			o.metrics.recordFailure()
			o.logger.Warn("skipping invalid point",
				zap.Int("index", i),
				zap.String("label", label),
				zap.Error(errs[i]))

			continue
		}

		p := paths[i]
		if p.Truncated {
			o.logger.Warn("point exceeds dimension limit, extra coordinates truncated",
				zap.Int("index", i),
				zap.String("label", p.Label),
				zap.Int("dimensions", len(points[i].Coords)),
				zap.Int("limit", cfg.LimitDimensions()),
				zap.Int("dropped", p.DroppedCoords))
		}
		res.MaxExtraDims = max(res.MaxExtraDims, p.ExtraDims())
		res.Paths = append(res.Paths, p)
		o.metrics.recordPath(p)
	}

	o.logger.Debug("batch transformed",
		zap.Int("points", len(points)),
		zap.Int("paths", len(res.Paths)),
		zap.Int("failures", len(res.Failures)),
		zap.Int("max_extra_dims", res.MaxExtraDims),
		zap.Int("workers", max(workers, 1)),
		zap.Stringer("config", cfg))

	return res, nil
}
