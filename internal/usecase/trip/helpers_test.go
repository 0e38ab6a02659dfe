package trip

import (
	"context"
	"testing"
	"time"

	"reefer-backoffice/internal/adapter/repository/mysql"
	"reefer-backoffice/internal/domain/audit"
	domainTrip "reefer-backoffice/internal/domain/trip"
	"reefer-backoffice/internal/testutil/testdb"
	auditUC "reefer-backoffice/internal/usecase/audit"
	"reefer-backoffice/pkg/logger"
	"reefer-backoffice/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

var bg = context.Background()

// cdmx is a fixed UTC-6 zone so tests don't depend on the host tz database.
var cdmx = time.FixedZone("CST", -6*60*60)

var rc = audit.RequestContext{IP: "127.0.0.1", Path: "/api/trips", Method: "POST", UserAgent: "test"}

type fixture struct {
	db      *gorm.DB
	uc      *Usecase
	metrics *metrics.Metrics
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	db := testdb.Open(t)
	if opts.Location == nil {
		opts.Location = cdmx
	}
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	rec := auditUC.NewRecorder(auditUC.DefaultRegistry(), logger.NewNop(), m)
	uc := NewUsecase(
		mysql.NewTripRepository(db),
		mysql.NewRouteRepository(db),
		mysql.NewGormUoW(db),
		rec, m, logger.NewNop(), opts,
	)
	return &fixture{db: db, uc: uc, metrics: m}
}

func (f *fixture) seedTrip(t *testing.T, status domainTrip.Status) *domainTrip.Trip {
	t.Helper()
	tr := &domainTrip.Trip{OperatorID: 1, TruckID: 2, BoxID: 3, ClientID: 4, Status: status}
	if err := f.db.Create(tr).Error; err != nil {
		t.Fatalf("seed trip: %v", err)
	}
	return tr
}

func (f *fixture) reload(t *testing.T, id uint64) *domainTrip.Trip {
	t.Helper()
	var out domainTrip.Trip
	if err := f.db.Unscoped().First(&out, id).Error; err != nil {
		t.Fatalf("reload trip %d: %v", id, err)
	}
	return &out
}

func (f *fixture) auditCount(t *testing.T, entityID string) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(&audit.Entry{}).Where("entity_type = ? AND entity_id = ?", "trip", entityID).Count(&n).Error; err != nil {
		t.Fatalf("count audit: %v", err)
	}
	return n
}
