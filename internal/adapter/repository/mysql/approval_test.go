package mysql

import (
	"errors"
	"testing"
	"time"

	evidenceDomain "reefer-backoffice/internal/domain/evidence"

	"gorm.io/gorm"
)

func makeDecision(tripID uint64, st evidenceDomain.Status, when time.Time) *evidenceDomain.Approval {
	return &evidenceDomain.Approval{
		TripID:    tripID,
		Status:    st,
		Reviewer:  "EMP-1",
		DecidedAt: when.UTC(),
	}
}

func TestApproval_LatestWins(t *testing.T) {
	db := openTestDB(t)
	repo := NewApprovalRepository(db)
	now := time.Now().UTC()

	if err := repo.Create(bg, makeDecision(777, evidenceDomain.StatusRejected, now)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(bg, makeDecision(777, evidenceDomain.StatusApproved, now.Add(time.Minute))); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetLatestByTripID(bg, 777)
	if err != nil {
		t.Fatalf("GetLatestByTripID: %v", err)
	}
	if got.Status != evidenceDomain.StatusApproved {
		t.Fatalf("latest status = %s, want APPROVED", got.Status)
	}

	hist, err := repo.ListByTripID(bg, 777)
	if err != nil {
		t.Fatalf("ListByTripID: %v", err)
	}
	if len(hist) != 2 || hist[0].Status != evidenceDomain.StatusRejected {
		t.Fatalf("unexpected history: %+v", hist)
	}
}

func TestApproval_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewApprovalRepository(db)

	_, err := repo.GetLatestByTripID(bg, 999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
