package settlement

import (
	"context"
	"errors"

	"reefer-backoffice/internal/domain/audit"
	domainEvidence "reefer-backoffice/internal/domain/evidence"
	domain "reefer-backoffice/internal/domain/settlement"
	domainTrip "reefer-backoffice/internal/domain/trip"
	"reefer-backoffice/internal/domain/uow"

	"gorm.io/gorm"
)

// AssignTrips sets the LOAD trip and optional DROP trip of a DRAFT settlement.
// Every exclusion check runs inside the settlement transaction; the unique index on
// membership trip_id backs it up against concurrent writers.
func (u *Usecase) AssignTrips(ctx context.Context, in AssignInput, rc audit.RequestContext) (dto *MembershipDTO, err error) {
	defer func() { u.metrics.SettlementOp("assign_trips", err) }()

	if in.LoadTripID == 0 {
		return nil, domain.ErrMissingField.WithField("load_trip_id")
	}
	if in.DropTripID != nil && *in.DropTripID == in.LoadTripID {
		return nil, domain.ErrDropNotEligible.WithField("drop_trip_id")
	}

	err = u.uow.WithinSettlementTx(ctx, in.SettlementID, func(r uow.Repos, s *domain.Settlement) error {
		if !s.Editable() {
			return domain.ErrImmutable
		}

		load, err := r.Trips.GetByIDForUpdate(ctx, in.LoadTripID)
		if err != nil {
			return mapErr(err, domainTrip.ErrNotFound.WithField("load_trip_id"))
		}
		if load.OperatorID != s.OperatorID {
			return domain.ErrOperatorMismatch.WithField("load_trip_id")
		}
		if err := notSettledElsewhere(ctx, r, s, load.ID); err != nil {
			return err
		}

		want := map[domain.Role]uint64{domain.RoleLoad: load.ID}
		if in.DropTripID != nil {
			drop, err := r.Trips.GetByIDForUpdate(ctx, *in.DropTripID)
			if err != nil {
				return mapErr(err, domainTrip.ErrNotFound.WithField("drop_trip_id"))
			}
			if err := u.checkDrop(ctx, r, s, load, drop); err != nil {
				return err
			}
			want[domain.RoleDrop] = drop.ID
		}

		changed, err := u.applyMemberships(ctx, r, s, want, rc)
		if err != nil {
			return err
		}

		dto = &MembershipDTO{SettlementID: s.SettlementID, LoadTripID: load.ID, Changed: changed}
		if id, ok := want[domain.RoleDrop]; ok {
			dto.DropTripID = &id
		}
		return nil
	})
	if err != nil {
		return nil, mapErr(err, domain.ErrNotFound)
	}
	return dto, nil
}

// checkDrop applies the DROP eligibility rules to one trip.
func (u *Usecase) checkDrop(ctx context.Context, r uow.Repos, s *domain.Settlement, load, drop *domainTrip.Trip) error {
	if drop.OperatorID != load.OperatorID {
		return domain.ErrOperatorMismatch.WithField("drop_trip_id")
	}
	if drop.Status != domainTrip.StatusCompletado {
		return domain.ErrDropNotEligible.WithField("drop_trip_id")
	}
	latest, err := r.Approvals.GetLatestByTripID(ctx, drop.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrDropNotEligible.WithField("drop_trip_id")
	}
	if err != nil {
		return err
	}
	if latest.Status != domainEvidence.StatusApproved {
		return domain.ErrDropNotEligible.WithField("drop_trip_id")
	}
	return notSettledElsewhere(ctx, r, s, drop.ID)
}

func notSettledElsewhere(ctx context.Context, r uow.Repos, s *domain.Settlement, tripID uint64) error {
	m, err := r.Settlements.GetMembershipByTripID(ctx, tripID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if m.SettlementID != s.ID {
		return domain.ErrAlreadySettled
	}
	return nil
}

// applyMemberships reconciles the stored memberships with want, deleting before
// inserting so a trip can switch roles within the same settlement.
func (u *Usecase) applyMemberships(ctx context.Context, r uow.Repos, s *domain.Settlement, want map[domain.Role]uint64, rc audit.RequestContext) (bool, error) {
	current, err := r.Settlements.ListMemberships(ctx, s.ID)
	if err != nil {
		return false, err
	}

	keep := map[domain.Role]bool{}
	changed := false
	for i := range current {
		m := &current[i]
		if tripID, ok := want[m.Role]; ok && tripID == m.TripID {
			keep[m.Role] = true
			continue
		}
		before := u.recorder.Capture(m)
		if err := r.Settlements.DeleteMembership(ctx, m); err != nil {
			return false, err
		}
		if _, err := u.recorder.Deleted(ctx, r.Audit, before, rc, tags("assign_trips")); err != nil {
			return false, err
		}
		changed = true
	}

	for _, role := range []domain.Role{domain.RoleLoad, domain.RoleDrop} {
		tripID, ok := want[role]
		if !ok || keep[role] {
			continue
		}
		m := &domain.Membership{SettlementID: s.ID, Role: role, TripID: tripID}
		if err := r.Settlements.CreateMembership(ctx, m); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return false, domain.ErrAlreadySettled
			}
			return false, err
		}
		if _, err := u.recorder.Created(ctx, r.Audit, u.recorder.Capture(m), rc, tags("assign_trips")); err != nil {
			return false, err
		}
		changed = true
	}
	return changed, nil
}

// ListDropCandidates returns the trips that could be the DROP leg next to the given LOAD trip.
// Evaluated fresh on every call.
func (u *Usecase) ListDropCandidates(ctx context.Context, loadTripID uint64) ([]domainTrip.Trip, error) {
	load, err := u.trips.GetByID(ctx, loadTripID)
	if err != nil {
		return nil, mapErr(err, domainTrip.ErrNotFound)
	}
	out, err := u.trips.ListDropCandidates(ctx, load.OperatorID, load.ID)
	if err != nil {
		return nil, mapErr(err, domainTrip.ErrNotFound)
	}
	if out == nil {
		out = []domainTrip.Trip{}
	}
	return out, nil
}
