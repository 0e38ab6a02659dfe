package mysql

import (
	"context"

	auditDomain "reefer-backoffice/internal/domain/audit"

	"gorm.io/gorm"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Create(ctx context.Context, e *auditDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) ListByEntity(ctx context.Context, entityType, entityID string, limit int) ([]auditDomain.Entry, error) {
	var out []auditDomain.Entry
	q := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}
