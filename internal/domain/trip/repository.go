package trip

import "context"

// Repository reads only active (not soft-deleted) trips unless obtained through AllIncludingDeleted.
type Repository interface {
	Create(ctx context.Context, t *Trip) error
	Save(ctx context.Context, t *Trip) error
	// Soft delete
	Delete(ctx context.Context, t *Trip) error

	GetByID(ctx context.Context, id uint64) (*Trip, error)
	// Row-locks the trip for the rest of the transaction
	GetByIDForUpdate(ctx context.Context, id uint64) (*Trip, error)

	// COMPLETADO trips of operatorID, excluding excludeTripID, whose latest evidence decision is
	// APPROVED and that are not a member of any settlement. Ordered by id.
	ListDropCandidates(ctx context.Context, operatorID, excludeTripID uint64) ([]Trip, error)

	AllIncludingDeleted() Repository
}

// RouteSource supplies the rates frozen onto a trip at creation.
type RouteSource interface {
	GetRoute(ctx context.Context, id uint64) (*Route, error)
}
