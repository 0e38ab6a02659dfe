package mysql

import (
	"context"

	evidenceDomain "reefer-backoffice/internal/domain/evidence"

	"gorm.io/gorm"
)

type ApprovalRepository struct{ db *gorm.DB }

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository { return &ApprovalRepository{db: db} }

func (r *ApprovalRepository) Create(ctx context.Context, a *evidenceDomain.Approval) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApprovalRepository) GetLatestByTripID(ctx context.Context, tripID uint64) (*evidenceDomain.Approval, error) {
	var out evidenceDomain.Approval
	res := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *ApprovalRepository) ListByTripID(ctx context.Context, tripID uint64) ([]evidenceDomain.Approval, error) {
	var out []evidenceDomain.Approval
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}
