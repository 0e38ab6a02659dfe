package mysql

import (
	"context"

	"reefer-backoffice/internal/domain/evidence"
	tripDomain "reefer-backoffice/internal/domain/trip"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TripRepository struct{ db *gorm.DB }

func NewTripRepository(db *gorm.DB) *TripRepository { return &TripRepository{db: db} }

// AllIncludingDeleted returns a repo whose reads also see soft-deleted trips.
func (r *TripRepository) AllIncludingDeleted() tripDomain.Repository {
	return &TripRepository{db: r.db.Unscoped().Session(&gorm.Session{})}
}

func (r *TripRepository) Create(ctx context.Context, t *tripDomain.Trip) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TripRepository) Save(ctx context.Context, t *tripDomain.Trip) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TripRepository) Delete(ctx context.Context, t *tripDomain.Trip) error {
	return r.db.WithContext(ctx).Delete(t).Error
}

func (r *TripRepository) GetByID(ctx context.Context, id uint64) (*tripDomain.Trip, error) {
	var out tripDomain.Trip
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *TripRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*tripDomain.Trip, error) {
	var out tripDomain.Trip
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

const (
	latestApprovedSQL = "EXISTS (SELECT 1 FROM trip_approvals ta WHERE ta.trip_id = trips.id AND ta.status = ? " +
		"AND ta.id = (SELECT MAX(t2.id) FROM trip_approvals t2 WHERE t2.trip_id = trips.id))"
	notSettledSQL = "NOT EXISTS (SELECT 1 FROM operator_settlement_trips m WHERE m.trip_id = trips.id)"
)

func (r *TripRepository) ListDropCandidates(ctx context.Context, operatorID, excludeTripID uint64) ([]tripDomain.Trip, error) {
	var out []tripDomain.Trip
	err := r.db.WithContext(ctx).
		Where("trips.operator_id = ? AND trips.status = ? AND trips.id <> ?",
			operatorID, tripDomain.StatusCompletado, excludeTripID).
		Where(latestApprovedSQL, evidence.StatusApproved).
		Where(notSettledSQL).
		Order("trips.id ASC").
		Find(&out).Error
	return out, err
}
