// SPDX-License-Identifier: MIT

package batch

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/hyperpath/transform"
)

// Metrics holds the Prometheus collectors of batch runs.
// Each Metrics owns a private registry, so several engines never collide.
type Metrics struct {
	pointsTotal    *prometheus.CounterVec
	truncatedTotal prometheus.Counter
	clampedSteps   *prometheus.CounterVec
	extraDims      prometheus.Histogram

	registry *prometheus.Registry
}

// Point outcome labels of hyperpath_points_total.
const (
	statusOK     = "ok"
	statusFailed = "failed"
)

// NewMetrics creates and registers every batch collector.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		pointsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hyperpath_points_total",
				Help: "Total number of points processed by outcome",
			},
			[]string{"status"},
		),
		truncatedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hyperpath_truncated_points_total",
				Help: "Total number of points that exceeded the dimension limit",
			},
		),
		clampedSteps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hyperpath_clamped_steps_total",
				Help: "Total number of displacements bounded by their shell, by dimension",
			},
			[]string{"dim"},
		),
		extraDims: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "hyperpath_path_extra_dimensions",
				Help:    "Number of extra dimensions folded into each path",
				Buckets: []float64{0, 1, 2, 3, 4, 6, 8, 12, 16, 32, 64},
			},
		),
		registry: registry,
	}

	registry.MustRegister(m.pointsTotal, m.truncatedTotal, m.clampedSteps, m.extraDims)

	return m
}

// Registry exposes the registry for scraping or text export.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) recordPath(p transform.Path) {
	if m == nil {
		return
	}
	m.pointsTotal.WithLabelValues(statusOK).Inc()
	if p.Truncated {
		m.truncatedTotal.Inc()
	}
	for _, s := range p.Steps {
		if s.Clamped {
			m.clampedSteps.WithLabelValues(strconv.Itoa(s.Dim)).Inc()
		}
	}
	m.extraDims.Observe(float64(p.ExtraDims()))
}

func (m *Metrics) recordFailure() {
	if m == nil {
		return
	}
	m.pointsTotal.WithLabelValues(statusFailed).Inc()
}
