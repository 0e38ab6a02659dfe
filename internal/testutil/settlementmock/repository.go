package settlementmock

import (
	"context"

	domain "reefer-backoffice/internal/domain/settlement"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a nil error; reads default to context.Canceled.
type Repo struct {
	CreateFn                     func(ctx context.Context, s *domain.Settlement) error
	SaveFn                       func(ctx context.Context, s *domain.Settlement) error
	GetBySettlementIDFn          func(ctx context.Context, settlementID string) (*domain.Settlement, error)
	GetBySettlementIDForUpdateFn func(ctx context.Context, settlementID string) (*domain.Settlement, error)

	ListMembershipsFn       func(ctx context.Context, settlementPK uint64) ([]domain.Membership, error)
	GetMembershipByTripIDFn func(ctx context.Context, tripID uint64) (*domain.Membership, error)
	CreateMembershipFn      func(ctx context.Context, m *domain.Membership) error
	DeleteMembershipFn      func(ctx context.Context, m *domain.Membership) error

	CreateLineFn func(ctx context.Context, l *domain.Line) error
	GetLineFn    func(ctx context.Context, settlementPK, lineID uint64) (*domain.Line, error)
	DeleteLineFn func(ctx context.Context, l *domain.Line) error
	ListLinesFn  func(ctx context.Context, settlementPK uint64) ([]domain.Line, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Settlement) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, s *domain.Settlement) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetBySettlementID(ctx context.Context, settlementID string) (*domain.Settlement, error) {
	if m.GetBySettlementIDFn != nil {
		return m.GetBySettlementIDFn(ctx, settlementID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetBySettlementIDForUpdate(ctx context.Context, settlementID string) (*domain.Settlement, error) {
	if m.GetBySettlementIDForUpdateFn != nil {
		return m.GetBySettlementIDForUpdateFn(ctx, settlementID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListMemberships(ctx context.Context, settlementPK uint64) ([]domain.Membership, error) {
	if m.ListMembershipsFn != nil {
		return m.ListMembershipsFn(ctx, settlementPK)
	}
	return nil, context.Canceled
}

func (m *Repo) GetMembershipByTripID(ctx context.Context, tripID uint64) (*domain.Membership, error) {
	if m.GetMembershipByTripIDFn != nil {
		return m.GetMembershipByTripIDFn(ctx, tripID)
	}
	return nil, context.Canceled
}

func (m *Repo) CreateMembership(ctx context.Context, mb *domain.Membership) error {
	if m.CreateMembershipFn != nil {
		return m.CreateMembershipFn(ctx, mb)
	}
	return nil
}

func (m *Repo) DeleteMembership(ctx context.Context, mb *domain.Membership) error {
	if m.DeleteMembershipFn != nil {
		return m.DeleteMembershipFn(ctx, mb)
	}
	return nil
}

func (m *Repo) CreateLine(ctx context.Context, l *domain.Line) error {
	if m.CreateLineFn != nil {
		return m.CreateLineFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetLine(ctx context.Context, settlementPK, lineID uint64) (*domain.Line, error) {
	if m.GetLineFn != nil {
		return m.GetLineFn(ctx, settlementPK, lineID)
	}
	return nil, context.Canceled
}

func (m *Repo) DeleteLine(ctx context.Context, l *domain.Line) error {
	if m.DeleteLineFn != nil {
		return m.DeleteLineFn(ctx, l)
	}
	return nil
}

func (m *Repo) ListLines(ctx context.Context, settlementPK uint64) ([]domain.Line, error) {
	if m.ListLinesFn != nil {
		return m.ListLinesFn(ctx, settlementPK)
	}
	return nil, context.Canceled
}
