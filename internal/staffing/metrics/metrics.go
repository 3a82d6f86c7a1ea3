package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"staffplan/internal/staffing/models"
)

// Outcome labels for assignment runs and moves.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var durationBuckets = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25}

// Metrics provides observability for the staffing module.
// Tracks assignment runs, quota violations, manual moves, exports and the
// engine's duration. A nil *Metrics is valid and records nothing.
type Metrics struct {
	AssignmentRuns  *prometheus.CounterVec
	QuotaViolations *prometheus.CounterVec
	Moves           *prometheus.CounterVec
	Exports         *prometheus.CounterVec
	AssignDuration  prometheus.Histogram
	RosterSize      prometheus.Gauge
	BondCount       prometheus.Gauge
}

// New registers the staffing metrics with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		AssignmentRuns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "staffplan_assignment_runs_total",
			Help: "Automatic assignment runs by outcome",
		}, []string{"outcome"}),
		QuotaViolations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "staffplan_quota_violations_total",
			Help: "Quota and bonding violations reported by assignment runs",
		}, []string{"kind"}),
		Moves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "staffplan_manual_moves_total",
			Help: "Manual moves by outcome",
		}, []string{"outcome"}),
		Exports: f.NewCounterVec(prometheus.CounterOpts{
			Name: "staffplan_exports_total",
			Help: "Rendered export documents by format",
		}, []string{"format"}),
		AssignDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "staffplan_assign_duration_seconds",
			Help:    "Duration of validation plus the assignment engine",
			Buckets: durationBuckets,
		}),
		RosterSize: f.NewGauge(prometheus.GaugeOpts{
			Name: "staffplan_roster_size",
			Help: "People currently on the roster",
		}),
		BondCount: f.NewGauge(prometheus.GaugeOpts{
			Name: "staffplan_bonds",
			Help: "Resolved bonded pairs",
		}),
	}
}

// ObserveAssign records a run's outcome, its violations and duration.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveAssign(start time.Time, outcome string, violations []models.Violation) {
	if m == nil {
		return
	}
	m.AssignDuration.Observe(time.Since(start).Seconds())
	m.AssignmentRuns.WithLabelValues(outcome).Inc()
	for _, v := range violations {
		m.QuotaViolations.WithLabelValues(string(v.Kind)).Inc()
	}
}

// IncrementMove records a manual move attempt.
func (m *Metrics) IncrementMove(outcome string) {
	if m == nil {
		return
	}
	m.Moves.WithLabelValues(outcome).Inc()
}

// IncrementExport records a rendered export.
func (m *Metrics) IncrementExport(format string) {
	if m == nil {
		return
	}
	m.Exports.WithLabelValues(format).Inc()
}

// SetRoster records the roster and bond sizes after a membership change.
func (m *Metrics) SetRoster(people, bonds int) {
	if m == nil {
		return
	}
	m.RosterSize.Set(float64(people))
	m.BondCount.Set(float64(bonds))
}
