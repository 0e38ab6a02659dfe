package evidencemock

import (
	"context"

	domain "reefer-backoffice/internal/domain/evidence"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, a *domain.Approval) error
	GetLatestByTripIDFn func(ctx context.Context, tripID uint64) (*domain.Approval, error)
	ListByTripIDFn      func(ctx context.Context, tripID uint64) ([]domain.Approval, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Approval) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetLatestByTripID(ctx context.Context, tripID uint64) (*domain.Approval, error) {
	if m.GetLatestByTripIDFn != nil {
		return m.GetLatestByTripIDFn(ctx, tripID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByTripID(ctx context.Context, tripID uint64) ([]domain.Approval, error) {
	if m.ListByTripIDFn != nil {
		return m.ListByTripIDFn(ctx, tripID)
	}
	return nil, context.Canceled
}
