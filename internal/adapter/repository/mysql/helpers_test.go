package mysql

import (
	"context"
	"testing"
	"time"

	"reefer-backoffice/internal/domain/evidence"
	"reefer-backoffice/internal/domain/settlement"
	"reefer-backoffice/internal/domain/trip"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with the full schema.
// A single connection keeps every query on the same in-memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedTrip(t *testing.T, db *gorm.DB, operatorID uint64, status trip.Status) *trip.Trip {
	t.Helper()
	tr := &trip.Trip{
		OperatorID:           operatorID,
		TruckID:              10,
		BoxID:                20,
		ClientID:             30,
		Status:               status,
		PagoOperadorSnapshot: decimal.RequireFromString("1800.00"),
	}
	if err := db.Create(tr).Error; err != nil {
		t.Fatalf("seed trip: %v", err)
	}
	return tr
}

func seedDecision(t *testing.T, db *gorm.DB, tripID uint64, st evidence.Status) {
	t.Helper()
	a := &evidence.Approval{TripID: tripID, Status: st, Reviewer: "rev-1", DecidedAt: time.Now().UTC()}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed decision: %v", err)
	}
}

func seedSettlement(t *testing.T, db *gorm.DB, publicID string, operatorID uint64) *settlement.Settlement {
	t.Helper()
	s := &settlement.Settlement{
		SettlementID: publicID,
		OperatorID:   operatorID,
		UnitLabel:    "T-01 / CJ-07",
		PeriodFrom:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodTo:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:       settlement.StatusDraft,
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("seed settlement: %v", err)
	}
	return s
}

var bg = context.Background()
