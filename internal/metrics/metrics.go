// Package metrics counts design check outcomes on a private Prometheus
// registry.
package metrics

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alexiusacademia/acibeam/internal/beam"
	"github.com/alexiusacademia/acibeam/internal/trace"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Recorder holds the check counters. It is safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	ChecksTotal       *prometheus.CounterVec
	FlexureIterations prometheus.Histogram
	ReportsTotal      prometheus.Counter
}

// NewRecorder creates the metrics and registers them on a new registry.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.ChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acibeam_checks_total",
			Help: "Total number of design checks by mechanism and status",
		},
		[]string{"mechanism", "status"},
	)

	r.FlexureIterations = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "acibeam_flexure_iterations",
			Help:    "Phi iterations per flexure design",
			Buckets: prometheus.LinearBuckets(1, 1, beam.MaxPhiIterations),
		},
	)

	r.ReportsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "acibeam_reports_total",
			Help: "Total number of design reports built",
		},
	)

	r.registry.MustRegister(r.ChecksTotal, r.FlexureIterations, r.ReportsTotal)
	return r
}

// RecordCheck counts one check outcome.
func (r *Recorder) RecordCheck(mechanism string, status trace.Status) {
	r.ChecksTotal.WithLabelValues(mechanism, string(status)).Inc()
}

// ObserveFlexureIterations records the iteration count of a flexure design.
// Results that needed no iteration are not observed.
func (r *Recorder) ObserveFlexureIterations(n int) {
	if n <= 0 {
		return
	}
	r.FlexureIterations.Observe(float64(n))
}

// RecordReport counts a built report.
func (r *Recorder) RecordReport() {
	r.ReportsTotal.Inc()
}

// WriteText dumps every metric in the Prometheus text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Count returns the current value of a check counter.
func (r *Recorder) Count(mechanism string, status trace.Status) float64 {
	families, err := r.registry.Gather()
	if err != nil {
		return 0
	}
	for _, mf := range families {
		if mf.GetName() != "acibeam_checks_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["mechanism"] == mechanism && labels["status"] == string(status) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

// Summary renders the check counters as "mechanism status=count" lines.
func (r *Recorder) Summary() []string {
	families, err := r.registry.Gather()
	if err != nil {
		return nil
	}
	var lines []string
	for _, mf := range families {
		if mf.GetName() != "acibeam_checks_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var mech, status string
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "mechanism":
					mech = lp.GetValue()
				case "status":
					status = lp.GetValue()
				}
			}
			lines = append(lines, mech+" "+status+"="+strconv.FormatFloat(m.GetCounter().GetValue(), 'f', -1, 64))
		}
	}
	return lines
}
