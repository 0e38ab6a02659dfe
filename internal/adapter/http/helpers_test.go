package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"reefer-backoffice/internal/adapter/middleware"
	"reefer-backoffice/internal/adapter/repository/mysql"
	domainTrip "reefer-backoffice/internal/domain/trip"
	"reefer-backoffice/internal/testutil/testdb"
	auditUC "reefer-backoffice/internal/usecase/audit"
	"reefer-backoffice/internal/usecase/evidence"
	"reefer-backoffice/internal/usecase/settlement"
	"reefer-backoffice/internal/usecase/trip"
	"reefer-backoffice/pkg/logger"
	"reefer-backoffice/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// api is the full router over an in-memory database.
type api struct {
	e  *echo.Echo
	db *gorm.DB
}

func newAPI(t *testing.T) *api {
	t.Helper()
	db := testdb.Open(t)
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	log := logger.NewNop()
	rec := auditUC.NewRecorder(auditUC.DefaultRegistry(), log, m)

	trips := mysql.NewTripRepository(db)
	tx := mysql.NewGormUoW(db)
	tripUC := trip.NewUsecase(trips, mysql.NewRouteRepository(db), tx, rec, m, log,
		trip.Options{Location: time.FixedZone("CST", -6*60*60)})
	settlementUC := settlement.NewUsecase(trips, mysql.NewSettlementRepository(db), tx, rec, m, log)
	evidenceUC := evidence.NewUsecase(trips, mysql.NewApprovalRepository(db), tx, rec, m)

	e := newEchoWithValidator()
	RegisterRoutes(e.Group("/api"),
		NewTripHandler(tripUC, settlementUC, log),
		NewEvidenceHandler(evidenceUC, log),
		NewSettlementHandler(settlementUC, log),
		NewAuditHandler(auditUC.NewQuery(mysql.NewAuditRepository(db)), log),
	)
	return &api{e: e, db: db}
}

// do sends a request as actor (empty for anonymous) and returns the recorder.
func (a *api) do(method, path, actor string, body any) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		r = mustJSON(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if actor != "" {
		req.Header.Set(middleware.HeaderActorID, actor)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *api) seedTrip(t *testing.T, operatorID uint64, st domainTrip.Status) *domainTrip.Trip {
	t.Helper()
	tr := &domainTrip.Trip{OperatorID: operatorID, TruckID: 1, BoxID: 2, ClientID: 3, Status: st}
	if err := a.db.Create(tr).Error; err != nil {
		t.Fatalf("seed trip: %v", err)
	}
	return tr
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("bad json: %v; raw=%s", err, rec.Body.String())
	}
	return v
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, code int) {
	t.Helper()
	if rec.Code != code {
		t.Fatalf("status = %d, want %d; body=%s", rec.Code, code, rec.Body.String())
	}
}
