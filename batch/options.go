// SPDX-License-Identifier: MIT
// Package: hyperpath/batch
//
// options.go — functional options for TransformAll.
//
// Deterministic defaults:
//   • workers = runtime.GOMAXPROCS(0)
//   • logger  = zap.NewNop()
//   • metrics = nil (nothing recorded)

package batch

import (
	"runtime"

	"go.uber.org/zap"
)

// Option customizes a batch run.
type Option func(*options)

type options struct {
	workers int
	logger  *zap.Logger
	metrics *Metrics
}

func newOptions(opts ...Option) options {
	o := options{
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithWorkers bounds the number of goroutines transforming points.
// n == 1 runs sequentially in the caller goroutine. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers(n<1)")
	}
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger reports truncations, failures and a run summary to l.
// Panics on nil; use zap.NewNop() to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics records per-run counters into m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("batch: WithMetrics(nil)")
	}
	return func(o *options) {
		o.metrics = m
	}
}
