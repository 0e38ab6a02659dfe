package tripmock

import (
	"context"

	domain "reefer-backoffice/internal/domain/trip"
)

var _ domain.Repository = (*Repo)(nil)
var _ domain.RouteSource = (*Routes)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a nil error; reads default to context.Canceled.
type Repo struct {
	CreateFn                func(ctx context.Context, t *domain.Trip) error
	SaveFn                  func(ctx context.Context, t *domain.Trip) error
	DeleteFn                func(ctx context.Context, t *domain.Trip) error
	GetByIDFn               func(ctx context.Context, id uint64) (*domain.Trip, error)
	GetByIDForUpdateFn      func(ctx context.Context, id uint64) (*domain.Trip, error)
	ListDropCandidatesFn    func(ctx context.Context, operatorID, excludeTripID uint64) ([]domain.Trip, error)
	AllIncludingDeletedRepo domain.Repository
}

func (m *Repo) Create(ctx context.Context, t *domain.Trip) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, t *domain.Trip) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, t *domain.Trip) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Trip, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Trip, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListDropCandidates(ctx context.Context, operatorID, excludeTripID uint64) ([]domain.Trip, error) {
	if m.ListDropCandidatesFn != nil {
		return m.ListDropCandidatesFn(ctx, operatorID, excludeTripID)
	}
	return nil, context.Canceled
}

// AllIncludingDeleted returns AllIncludingDeletedRepo when set, else the mock itself.
func (m *Repo) AllIncludingDeleted() domain.Repository {
	if m.AllIncludingDeletedRepo != nil {
		return m.AllIncludingDeletedRepo
	}
	return m
}

// Routes is a function-backed domain.RouteSource.
type Routes struct {
	GetRouteFn func(ctx context.Context, id uint64) (*domain.Route, error)
}

func (m *Routes) GetRoute(ctx context.Context, id uint64) (*domain.Route, error) {
	if m.GetRouteFn != nil {
		return m.GetRouteFn(ctx, id)
	}
	return nil, context.Canceled
}
