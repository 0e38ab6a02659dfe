package mysql

import (
	"context"

	settlementDomain "reefer-backoffice/internal/domain/settlement"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettlementRepository struct{ db *gorm.DB }

func NewSettlementRepository(db *gorm.DB) *SettlementRepository {
	return &SettlementRepository{db: db}
}

func (r *SettlementRepository) Create(ctx context.Context, s *settlementDomain.Settlement) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SettlementRepository) Save(ctx context.Context, s *settlementDomain.Settlement) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SettlementRepository) GetBySettlementID(ctx context.Context, settlementID string) (*settlementDomain.Settlement, error) {
	var out settlementDomain.Settlement
	res := r.db.WithContext(ctx).Where("settlement_id = ?", settlementID).First(&out)
	return &out, res.Error
}

func (r *SettlementRepository) GetBySettlementIDForUpdate(ctx context.Context, settlementID string) (*settlementDomain.Settlement, error) {
	var out settlementDomain.Settlement
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("settlement_id = ?", settlementID).
		First(&out)
	return &out, res.Error
}

func (r *SettlementRepository) ListMemberships(ctx context.Context, settlementPK uint64) ([]settlementDomain.Membership, error) {
	var out []settlementDomain.Membership
	err := r.db.WithContext(ctx).
		Where("settlement_id = ?", settlementPK).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *SettlementRepository) GetMembershipByTripID(ctx context.Context, tripID uint64) (*settlementDomain.Membership, error) {
	var out settlementDomain.Membership
	res := r.db.WithContext(ctx).Where("trip_id = ?", tripID).First(&out)
	return &out, res.Error
}

func (r *SettlementRepository) CreateMembership(ctx context.Context, m *settlementDomain.Membership) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// DeleteMembership removes the row for good so the trip can be settled elsewhere.
func (r *SettlementRepository) DeleteMembership(ctx context.Context, m *settlementDomain.Membership) error {
	return r.db.WithContext(ctx).Delete(m).Error
}

func (r *SettlementRepository) CreateLine(ctx context.Context, l *settlementDomain.Line) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *SettlementRepository) GetLine(ctx context.Context, settlementPK, lineID uint64) (*settlementDomain.Line, error) {
	var out settlementDomain.Line
	res := r.db.WithContext(ctx).
		Where("id = ? AND settlement_id = ?", lineID, settlementPK).
		First(&out)
	return &out, res.Error
}

func (r *SettlementRepository) DeleteLine(ctx context.Context, l *settlementDomain.Line) error {
	return r.db.WithContext(ctx).Delete(l).Error
}

func (r *SettlementRepository) ListLines(ctx context.Context, settlementPK uint64) ([]settlementDomain.Line, error) {
	var out []settlementDomain.Line
	err := r.db.WithContext(ctx).
		Where("settlement_id = ?", settlementPK).
		Order("id ASC").
		Find(&out).Error
	return out, err
}
