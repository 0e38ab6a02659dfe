package settlement

import (
	"context"
	"testing"
	"time"

	"reefer-backoffice/internal/adapter/repository/mysql"
	"reefer-backoffice/internal/domain/audit"
	domainEvidence "reefer-backoffice/internal/domain/evidence"
	domain "reefer-backoffice/internal/domain/settlement"
	domainTrip "reefer-backoffice/internal/domain/trip"
	"reefer-backoffice/internal/testutil/testdb"
	auditUC "reefer-backoffice/internal/usecase/audit"
	"reefer-backoffice/pkg/logger"
	"reefer-backoffice/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	bg = context.Background()
	rc = audit.RequestContext{IP: "10.1.1.1", Path: "/api/settlements", Method: "POST"}
)

const (
	opA uint64 = 100
	opB uint64 = 200
)

type fixture struct {
	db      *gorm.DB
	uc      *Usecase
	metrics *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	rec := auditUC.NewRecorder(auditUC.DefaultRegistry(), logger.NewNop(), m)
	uc := NewUsecase(
		mysql.NewTripRepository(db),
		mysql.NewSettlementRepository(db),
		mysql.NewGormUoW(db),
		rec, m, logger.NewNop(),
	)
	return &fixture{db: db, uc: uc, metrics: m}
}

func (f *fixture) trip(t *testing.T, operatorID uint64, status domainTrip.Status) *domainTrip.Trip {
	t.Helper()
	tr := &domainTrip.Trip{OperatorID: operatorID, TruckID: 1, BoxID: 2, ClientID: 3, Status: status}
	if err := f.db.Create(tr).Error; err != nil {
		t.Fatalf("seed trip: %v", err)
	}
	return tr
}

func (f *fixture) decide(t *testing.T, tripID uint64, st domainEvidence.Status) {
	t.Helper()
	a := &domainEvidence.Approval{TripID: tripID, Status: st, Reviewer: "rev", DecidedAt: time.Now().UTC()}
	if err := f.db.Create(a).Error; err != nil {
		t.Fatalf("seed decision: %v", err)
	}
}

// approvedDrop seeds a COMPLETADO trip with APPROVED evidence.
func (f *fixture) approvedDrop(t *testing.T, operatorID uint64) *domainTrip.Trip {
	t.Helper()
	tr := f.trip(t, operatorID, domainTrip.StatusCompletado)
	f.decide(t, tr.ID, domainEvidence.StatusApproved)
	return tr
}

func (f *fixture) settlement(t *testing.T, operatorID uint64) *domain.Settlement {
	t.Helper()
	s, err := f.uc.Create(bg, CreateInput{
		OperatorID: operatorID,
		UnitLabel:  "T-14 / CJ-3",
		PeriodFrom: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodTo:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}, rc)
	if err != nil {
		t.Fatalf("create settlement: %v", err)
	}
	return s
}

func (f *fixture) memberships(t *testing.T, s *domain.Settlement) map[domain.Role]uint64 {
	t.Helper()
	var rows []domain.Membership
	if err := f.db.Where("settlement_id = ?", s.ID).Find(&rows).Error; err != nil {
		t.Fatalf("memberships: %v", err)
	}
	out := map[domain.Role]uint64{}
	for _, m := range rows {
		out[m.Role] = m.TripID
	}
	return out
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func u64(v uint64) *uint64 { return &v }
