package evidence

import (
	"context"
	"errors"
	"strings"
	"time"

	"reefer-backoffice/internal/domain/apperr"
	"reefer-backoffice/internal/domain/audit"
	domainEvidence "reefer-backoffice/internal/domain/evidence"
	domainTrip "reefer-backoffice/internal/domain/trip"
	"reefer-backoffice/internal/domain/uow"
	auditUC "reefer-backoffice/internal/usecase/audit"
	"reefer-backoffice/pkg/metrics"

	"gorm.io/gorm"
)

type Usecase struct {
	trips     domainTrip.Repository
	approvals domainEvidence.Repository
	uow       uow.UnitOfWork
	recorder  *auditUC.Recorder
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewUsecase(trips domainTrip.Repository, approvals domainEvidence.Repository, tx uow.UnitOfWork, rec *auditUC.Recorder, m *metrics.Metrics) *Usecase {
	return &Usecase{trips: trips, approvals: approvals, uow: tx, recorder: rec, metrics: m, now: time.Now}
}

// Decide records a review decision. Repeating the latest decision is a no-op.
func (u *Usecase) Decide(ctx context.Context, in DecideInput, rc audit.RequestContext) (*DecisionDTO, error) {
	decision := domainEvidence.Status(strings.TrimSpace(in.Decision))
	if decision != domainEvidence.StatusApproved && decision != domainEvidence.StatusRejected {
		return nil, domainEvidence.ErrInvalidDecision.WithField("decision")
	}
	reviewer := strings.TrimSpace(in.Reviewer)
	if reviewer == "" {
		return nil, domainEvidence.ErrMissingReviewer
	}

	var dto *DecisionDTO
	// The trip row lock serializes concurrent decisions on the same trip.
	err := u.uow.WithinTripTx(ctx, in.TripID, func(r uow.Repos, t *domainTrip.Trip) error {
		latest, err := r.Approvals.GetLatestByTripID(ctx, t.ID)
		switch {
		case err == nil && latest.Status == decision:
			dto = &DecisionDTO{TripID: t.ID, Status: string(latest.Status), Reviewer: latest.Reviewer, DecidedAt: latest.DecidedAt}
			return nil
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		a := &domainEvidence.Approval{
			TripID:    t.ID,
			Status:    decision,
			Reviewer:  reviewer,
			Notes:     strings.TrimSpace(in.Notes),
			DecidedAt: u.now().UTC(),
		}
		if err := r.Approvals.Create(ctx, a); err != nil {
			return err
		}
		if _, err := u.recorder.Created(ctx, r.Audit, u.recorder.Capture(a), rc,
			map[string]string{"operation": "decide_evidence"}); err != nil {
			return err
		}
		dto = &DecisionDTO{TripID: t.ID, Status: string(a.Status), Reviewer: a.Reviewer, DecidedAt: a.DecidedAt, Changed: true}
		return nil
	})
	if err != nil {
		return nil, mapErr(err)
	}
	if dto.Changed {
		u.metrics.EvidenceDecision(dto.Status)
	}
	return dto, nil
}

// StatusOf returns the latest decision, or PENDING when none was recorded.
func (u *Usecase) StatusOf(ctx context.Context, tripID uint64) (*DecisionDTO, error) {
	if _, err := u.trips.GetByID(ctx, tripID); err != nil {
		return nil, mapErr(err)
	}
	latest, err := u.approvals.GetLatestByTripID(ctx, tripID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &DecisionDTO{TripID: tripID, Status: string(domainEvidence.StatusPending)}, nil
	}
	if err != nil {
		return nil, apperr.Ensure(err)
	}
	return &DecisionDTO{TripID: tripID, Status: string(latest.Status), Reviewer: latest.Reviewer, DecidedAt: latest.DecidedAt}, nil
}

// History lists every decision for the trip, oldest first.
func (u *Usecase) History(ctx context.Context, tripID uint64) ([]domainEvidence.Approval, error) {
	if _, err := u.trips.GetByID(ctx, tripID); err != nil {
		return nil, mapErr(err)
	}
	out, err := u.approvals.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, apperr.Ensure(err)
	}
	return out, nil
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainTrip.ErrNotFound
	}
	return apperr.Ensure(err)
}
