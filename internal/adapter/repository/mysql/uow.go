package mysql

import (
	"context"

	"reefer-backoffice/internal/domain/settlement"
	"reefer-backoffice/internal/domain/trip"
	"reefer-backoffice/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Trips:       &TripRepository{db: tx},
		Approvals:   &ApprovalRepository{db: tx},
		Settlements: &SettlementRepository{db: tx},
		Audit:       &AuditRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinTripTx(ctx context.Context, tripID uint64, fn func(r uow.Repos, t *trip.Trip) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the trip row up-front to prevent races
		t, err := r.Trips.GetByIDForUpdate(ctx, tripID)
		if err != nil {
			return err
		}
		return fn(r, t)
	})
}

func (u *GormUoW) WithinSettlementTx(ctx context.Context, settlementID string, fn func(r uow.Repos, s *settlement.Settlement) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		s, err := r.Settlements.GetBySettlementIDForUpdate(ctx, settlementID)
		if err != nil {
			return err
		}
		return fn(r, s)
	})
}
