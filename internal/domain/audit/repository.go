package audit

import "context"

// Repository only appends and reads; entries are never updated or deleted by the service.
type Repository interface {
	Create(ctx context.Context, e *Entry) error

	// Newest first. limit <= 0 means no limit.
	ListByEntity(ctx context.Context, entityType, entityID string, limit int) ([]Entry, error)
}
