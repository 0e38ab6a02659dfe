package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics("reefer", prometheus.NewRegistry())

	m.TripTransition("EN_ORIGEN")
	m.TripTransition("EN_ORIGEN")
	m.SettlementOp("add_line", nil)
	m.SettlementOp("add_line", errors.New("boom"))
	m.AuditEntry("update")
	m.AuditSnapshotError()
	m.EvidenceDecision("APPROVED")

	if got := testutil.ToFloat64(m.TripTransitions.WithLabelValues("EN_ORIGEN")); got != 2 {
		t.Fatalf("trip transitions = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.SettlementOps.WithLabelValues("add_line", "ok")); got != 1 {
		t.Fatalf("settlement ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.SettlementOps.WithLabelValues("add_line", "error")); got != 1 {
		t.Fatalf("settlement error = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.AuditSnapshotErrs); got != 1 {
		t.Fatalf("snapshot errors = %v, want 1", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.TripTransition("EN_CURSO")
	m.SettlementOp("mark_ready", nil)
	m.AuditEntry("create")
	m.AuditSnapshotError()
	m.EvidenceDecision("REJECTED")
}
