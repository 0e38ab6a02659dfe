package mysql

import (
	"errors"
	"testing"

	settlementDomain "reefer-backoffice/internal/domain/settlement"
	tripDomain "reefer-backoffice/internal/domain/trip"
	"reefer-backoffice/internal/domain/uow"

	"gorm.io/gorm"
)

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)
	trips := NewTripRepository(db)
	sentinel := errors.New("boom")

	var id uint64
	_ = guow.WithinTx(bg, func(r uow.Repos) error {
		tr := &tripDomain.Trip{OperatorID: 1, TruckID: 1, BoxID: 1, ClientID: 1, Status: tripDomain.StatusProgramado}
		if err := r.Trips.Create(bg, tr); err != nil {
			return err
		}
		id = tr.ID
		return sentinel // force rollback
	})
	if _, err := trips.GetByID(bg, id); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected trip absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinTripTx_Commit(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)
	seed := seedTrip(t, db, 1, tripDomain.StatusProgramado)

	err := guow.WithinTripTx(bg, seed.ID, func(r uow.Repos, tr *tripDomain.Trip) error {
		if tr.ID != seed.ID || tr.Status != tripDomain.StatusProgramado {
			t.Fatalf("unexpected trip passed to fn: %+v", tr)
		}
		tr.Status = tripDomain.StatusCancelado
		return r.Trips.Save(bg, tr)
	})
	if err != nil {
		t.Fatalf("WithinTripTx: %v", err)
	}
	got, _ := NewTripRepository(db).GetByID(bg, seed.ID)
	if got.Status != tripDomain.StatusCancelado {
		t.Fatalf("status not committed: %s", got.Status)
	}
}

func TestGormUoW_WithinTripTx_NotFound(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinTripTx(bg, 404, func(uow.Repos, *tripDomain.Trip) error {
		t.Fatalf("callback should not be called when trip missing")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestGormUoW_WithinSettlementTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)
	s := seedSettlement(t, db, "cccccccccccccccccccccccccccccccc", 1)
	sentinel := errors.New("stop")

	_ = guow.WithinSettlementTx(bg, s.SettlementID, func(r uow.Repos, locked *settlementDomain.Settlement) error {
		if err := r.Settlements.CreateMembership(bg, &settlementDomain.Membership{
			SettlementID: locked.ID, Role: settlementDomain.RoleLoad, TripID: 9,
		}); err != nil {
			return err
		}
		locked.Status = settlementDomain.StatusReady
		if err := r.Settlements.Save(bg, locked); err != nil {
			return err
		}
		return sentinel
	})

	repo := NewSettlementRepository(db)
	got, err := repo.GetBySettlementID(bg, s.SettlementID)
	if err != nil {
		t.Fatalf("GetBySettlementID: %v", err)
	}
	if got.Status != settlementDomain.StatusDraft {
		t.Fatalf("expected DRAFT after rollback, got %s", got.Status)
	}
	if _, err := repo.GetMembershipByTripID(bg, 9); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("membership must be rolled back, got %v", err)
	}
}
