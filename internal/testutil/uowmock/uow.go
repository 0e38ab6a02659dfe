package uowmock

import (
	"context"
	"errors"

	"reefer-backoffice/internal/domain/settlement"
	"reefer-backoffice/internal/domain/trip"
	"reefer-backoffice/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn           func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinTripTxFn       func(ctx context.Context, tripID uint64, fn func(r uow.Repos, t *trip.Trip) error) error
	WithinSettlementTxFn func(ctx context.Context, settlementID string, fn func(r uow.Repos, s *settlement.Settlement) error) error
}

// Passthrough runs every body directly against repos. The locked entities are
// looked up through repos, the same way the gorm implementation does.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinTripTxFn: func(ctx context.Context, tripID uint64, fn func(uow.Repos, *trip.Trip) error) error {
			t, err := repos.Trips.GetByIDForUpdate(ctx, tripID)
			if err != nil {
				return err
			}
			return fn(repos, t)
		},
		WithinSettlementTxFn: func(ctx context.Context, settlementID string, fn func(uow.Repos, *settlement.Settlement) error) error {
			s, err := repos.Settlements.GetBySettlementIDForUpdate(ctx, settlementID)
			if err != nil {
				return err
			}
			return fn(repos, s)
		},
	}
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinTripTx(fn func(context.Context, uint64, func(uow.Repos, *trip.Trip) error) error) *UoW {
	m.WithinTripTxFn = fn
	return m
}
func (m *UoW) WithWithinSettlementTx(fn func(context.Context, string, func(uow.Repos, *settlement.Settlement) error) error) *UoW {
	m.WithinSettlementTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinTripTx(ctx context.Context, tripID uint64, fn func(r uow.Repos, t *trip.Trip) error) error {
	if m.WithinTripTxFn != nil {
		return m.WithinTripTxFn(ctx, tripID, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinSettlementTx(ctx context.Context, settlementID string, fn func(r uow.Repos, s *settlement.Settlement) error) error {
	if m.WithinSettlementTxFn != nil {
		return m.WithinSettlementTxFn(ctx, settlementID, fn)
	}
	return errUnimplemented
}
