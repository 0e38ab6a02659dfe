package audit

import (
	"context"
	"strings"

	"reefer-backoffice/internal/domain/apperr"
	auditDomain "reefer-backoffice/internal/domain/audit"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

var ErrMissingTarget = apperr.Validation("missing_field", "entity type and id are required")

// Query reads the audit trail of one entity.
type Query struct{ repo auditDomain.Repository }

func NewQuery(repo auditDomain.Repository) *Query { return &Query{repo: repo} }

// List returns the newest entries first. limit <= 0 selects the default page size.
func (q *Query) List(ctx context.Context, entityType, entityID string, limit int) ([]auditDomain.Entry, error) {
	entityType, entityID = strings.TrimSpace(entityType), strings.TrimSpace(entityID)
	if entityType == "" || entityID == "" {
		return nil, ErrMissingTarget
	}
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}
	entries, err := q.repo.ListByEntity(ctx, entityType, entityID, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if entries == nil {
		entries = []auditDomain.Entry{}
	}
	return entries, nil
}
