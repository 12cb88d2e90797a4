// SPDX-License-Identifier: MIT

package audit

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the collectors of one Auditor. Each Auditor owns its
// registry so several audits can run in one process.
type metrics struct {
	reg *prometheus.Registry

	// steps counts executed operations by op name and selected ladder rung.
	steps *prometheus.CounterVec

	// violations counts failed checks by kind (under_claim, cross_check).
	violations *prometheus.CounterVec

	// relErr tracks the relative difference between engine and reference.
	relErr prometheus.Histogram

	// resets counts sequences restarted after leaving the finite range.
	resets prometheus.Counter
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &metrics{
		reg: reg,
		steps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvgeom_audit_steps_total",
			Help: "Operations executed by the audit, by operation and dispatch path",
		}, []string{"op", "path"}),
		violations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvgeom_audit_violations_total",
			Help: "Failed audit checks by kind",
		}, []string{"kind"}),
		relErr: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvgeom_audit_relative_error",
			Help:    "Relative entry-wise difference between engine and dense reference",
			Buckets: prometheus.ExponentialBuckets(1e-16, 10, 12), // 1e-16 to 1e-5
		}),
		resets: f.NewCounter(prometheus.CounterOpts{
			Name: "lvgeom_audit_resets_total",
			Help: "Sequences reset to the identity after leaving the well-conditioned range",
		}),
	}
}

// Registry exposes the auditor's collectors, for example to serve them.
func (a *Auditor) Registry() *prometheus.Registry { return a.m.reg }

// WriteMetrics writes the collected metrics to path in the Prometheus text
// format (node_exporter textfile collector layout).
func (a *Auditor) WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, a.m.reg); err != nil {
		return fmt.Errorf("audit: write metrics: %w", err)
	}

	return nil
}
