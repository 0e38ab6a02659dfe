package auditmock

import (
	"context"
	"sync"

	domain "reefer-backoffice/internal/domain/audit"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// With CreateFn unset it keeps the entries in memory so tests can inspect them.
type Repo struct {
	CreateFn       func(ctx context.Context, e *domain.Entry) error
	ListByEntityFn func(ctx context.Context, entityType, entityID string, limit int) ([]domain.Entry, error)

	mu      sync.Mutex
	entries []domain.Entry
}

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *e)
	return nil
}

func (m *Repo) ListByEntity(ctx context.Context, entityType, entityID string, limit int) ([]domain.Entry, error) {
	if m.ListByEntityFn != nil {
		return m.ListByEntityFn(ctx, entityType, entityID, limit)
	}
	return nil, context.Canceled
}

// Entries returns a copy of what Create stored.
func (m *Repo) Entries() []domain.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
