package evidence

import "context"

type Repository interface {
	Create(ctx context.Context, a *Approval) error

	// Latest decision for the trip; gorm.ErrRecordNotFound when none was recorded.
	GetLatestByTripID(ctx context.Context, tripID uint64) (*Approval, error)

	// All decisions for the trip, oldest first
	ListByTripID(ctx context.Context, tripID uint64) ([]Approval, error)
}
