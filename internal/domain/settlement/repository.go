package settlement

import "context"

type Repository interface {
	Create(ctx context.Context, s *Settlement) error
	Save(ctx context.Context, s *Settlement) error
	GetBySettlementID(ctx context.Context, settlementID string) (*Settlement, error)
	GetBySettlementIDForUpdate(ctx context.Context, settlementID string) (*Settlement, error)

	// Memberships are keyed by the numeric settlement id
	ListMemberships(ctx context.Context, settlementPK uint64) ([]Membership, error)
	GetMembershipByTripID(ctx context.Context, tripID uint64) (*Membership, error)
	CreateMembership(ctx context.Context, m *Membership) error
	DeleteMembership(ctx context.Context, m *Membership) error

	CreateLine(ctx context.Context, l *Line) error
	GetLine(ctx context.Context, settlementPK, lineID uint64) (*Line, error)
	// Soft delete
	DeleteLine(ctx context.Context, l *Line) error
	// Non-deleted lines, ordered by id
	ListLines(ctx context.Context, settlementPK uint64) ([]Line, error)
}
