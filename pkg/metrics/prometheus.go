package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	TripTransitions   *prometheus.CounterVec
	SettlementOps     *prometheus.CounterVec
	EvidenceDecisions *prometheus.CounterVec
	AuditEntries      *prometheus.CounterVec
	AuditSnapshotErrs prometheus.Counter
}

// NewMetrics registers the service metrics on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		TripTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trip_transitions_total",
			Help:      "Trip status changes by target status",
		}, []string{"status"}),
		SettlementOps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_operations_total",
			Help:      "Settlement engine operations by operation and outcome",
		}, []string{"operation", "outcome"}),
		EvidenceDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evidence_decisions_total",
			Help:      "Evidence review decisions by resulting status",
		}, []string{"status"}),
		AuditEntries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_entries_total",
			Help:      "Audit entries written by action",
		}, []string{"action"}),
		AuditSnapshotErrs: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_snapshot_errors_total",
			Help:      "Snapshots that could not be computed and were skipped",
		}),
	}
}

func (m *Metrics) TripTransition(status string) {
	if m == nil {
		return
	}
	m.TripTransitions.WithLabelValues(status).Inc()
}

// SettlementOp records one settlement operation; err decides the outcome label.
func (m *Metrics) SettlementOp(op string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.SettlementOps.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) EvidenceDecision(status string) {
	if m == nil {
		return
	}
	m.EvidenceDecisions.WithLabelValues(status).Inc()
}

func (m *Metrics) AuditEntry(action string) {
	if m == nil {
		return
	}
	m.AuditEntries.WithLabelValues(action).Inc()
}

func (m *Metrics) AuditSnapshotError() {
	if m == nil {
		return
	}
	m.AuditSnapshotErrs.Inc()
}
