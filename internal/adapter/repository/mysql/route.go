package mysql

import (
	"context"

	tripDomain "reefer-backoffice/internal/domain/trip"

	"gorm.io/gorm"
)

type RouteRepository struct{ db *gorm.DB }

func NewRouteRepository(db *gorm.DB) *RouteRepository { return &RouteRepository{db: db} }

func (r *RouteRepository) GetRoute(ctx context.Context, id uint64) (*tripDomain.Route, error) {
	var out tripDomain.Route
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *RouteRepository) Create(ctx context.Context, rt *tripDomain.Route) error {
	return r.db.WithContext(ctx).Create(rt).Error
}
