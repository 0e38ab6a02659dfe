package uow

import (
	"context"

	"reefer-backoffice/internal/domain/audit"
	"reefer-backoffice/internal/domain/evidence"
	"reefer-backoffice/internal/domain/settlement"
	"reefer-backoffice/internal/domain/trip"
)

// Repos are bound to one transaction.
type Repos struct {
	Trips       trip.Repository
	Approvals   evidence.Repository
	Settlements settlement.Repository
	Audit       audit.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the trip row first, then pass it in
	WithinTripTx(ctx context.Context, tripID uint64, fn func(r Repos, t *trip.Trip) error) error
	// lock the settlement row first, then pass it in
	WithinSettlementTx(ctx context.Context, settlementID string, fn func(r Repos, s *settlement.Settlement) error) error
}
