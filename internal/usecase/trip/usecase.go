package trip

import (
	"context"
	"errors"
	"strings"
	"time"

	"reefer-backoffice/internal/domain/apperr"
	"reefer-backoffice/internal/domain/audit"
	domainTrip "reefer-backoffice/internal/domain/trip"
	"reefer-backoffice/internal/domain/uow"
	auditUC "reefer-backoffice/internal/usecase/audit"
	"reefer-backoffice/pkg/logger"
	"reefer-backoffice/pkg/metrics"

	"gorm.io/gorm"
)

type Usecase struct {
	trips    domainTrip.Repository
	routes   domainTrip.RouteSource
	uow      uow.UnitOfWork
	recorder *auditUC.Recorder
	metrics  *metrics.Metrics
	log      logger.Logger

	loc    *time.Location
	strict bool
}

func NewUsecase(
	trips domainTrip.Repository,
	routes domainTrip.RouteSource,
	tx uow.UnitOfWork,
	rec *auditUC.Recorder,
	m *metrics.Metrics,
	log logger.Logger,
	opts Options,
) *Usecase {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Usecase{
		trips: trips, routes: routes, uow: tx, recorder: rec, metrics: m, log: log,
		loc: loc, strict: opts.StrictTransitions,
	}
}

// Create registers a PROGRAMADO trip, freezing the route rates when a route is given.
func (u *Usecase) Create(ctx context.Context, in CreateInput, rc audit.RequestContext) (*domainTrip.Trip, error) {
	for field, v := range map[string]uint64{
		"operator_id": in.OperatorID,
		"truck_id":    in.TruckID,
		"box_id":      in.BoxID,
		"client_id":   in.ClientID,
	} {
		if v == 0 {
			return nil, domainTrip.ErrMissingField.WithField(field)
		}
	}

	t := &domainTrip.Trip{
		OperatorID:         in.OperatorID,
		TruckID:            in.TruckID,
		BoxID:              in.BoxID,
		TransferOperatorID: in.TransferOperatorID,
		ClientID:           in.ClientID,
		RouteID:            in.RouteID,
		Status:             domainTrip.StatusProgramado,
		Notes:              strings.TrimSpace(in.Notes),
	}
	if in.RouteID != nil {
		rt, err := u.ratesFor(ctx, *in.RouteID)
		if err != nil {
			return nil, err
		}
		freeze(t, rt)
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Trips.Create(ctx, t); err != nil {
			return err
		}
		_, err := u.recorder.Created(ctx, r.Audit, u.recorder.Capture(t), rc, map[string]string{"operation": "create_trip"})
		return err
	})
	if err != nil {
		return nil, apperr.Ensure(err)
	}
	return t, nil
}

// Update edits a trip that is still PROGRAMADO and not part of any settlement.
func (u *Usecase) Update(ctx context.Context, tripID uint64, in UpdateInput, rc audit.RequestContext) (*domainTrip.Trip, error) {
	var newRates *rates
	if in.RouteID != nil {
		rt, err := u.ratesFor(ctx, *in.RouteID)
		if err != nil {
			return nil, err
		}
		newRates = &rt
	}

	var out *domainTrip.Trip
	err := u.uow.WithinTripTx(ctx, tripID, func(r uow.Repos, t *domainTrip.Trip) error {
		if !t.Editable() {
			return domainTrip.ErrImmutable
		}
		if err := notSettled(ctx, r, t.ID); err != nil {
			return err
		}
		before := u.recorder.Capture(t)

		setID(&t.OperatorID, in.OperatorID)
		setID(&t.TruckID, in.TruckID)
		setID(&t.BoxID, in.BoxID)
		setID(&t.ClientID, in.ClientID)
		if in.TransferOperatorID != nil {
			t.TransferOperatorID = in.TransferOperatorID
		}
		if in.Notes != nil {
			t.Notes = strings.TrimSpace(*in.Notes)
		}
		if newRates != nil {
			t.RouteID = in.RouteID
			freeze(t, *newRates)
		}

		if err := r.Trips.Save(ctx, t); err != nil {
			return err
		}
		if _, err := u.recorder.Updated(ctx, r.Audit, before, u.recorder.Capture(t), rc,
			map[string]string{"operation": "update_trip"}); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, mapErr(err, domainTrip.ErrNotFound)
	}
	return out, nil
}

// Delete soft-deletes a trip that is still PROGRAMADO and not part of any settlement.
func (u *Usecase) Delete(ctx context.Context, tripID uint64, rc audit.RequestContext) error {
	err := u.uow.WithinTripTx(ctx, tripID, func(r uow.Repos, t *domainTrip.Trip) error {
		if !t.Editable() {
			return domainTrip.ErrImmutable
		}
		if err := notSettled(ctx, r, t.ID); err != nil {
			return err
		}
		before := u.recorder.Capture(t)
		if err := r.Trips.Delete(ctx, t); err != nil {
			return err
		}
		_, err := u.recorder.Deleted(ctx, r.Audit, before, rc, map[string]string{"operation": "delete_trip"})
		return err
	})
	return mapErr(err, domainTrip.ErrNotFound)
}

func (u *Usecase) Get(ctx context.Context, tripID uint64) (*domainTrip.Trip, error) {
	t, err := u.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, mapErr(err, domainTrip.ErrNotFound)
	}
	return t, nil
}

// GetIncludingDeleted also resolves soft-deleted trips, so audit history stays navigable.
func (u *Usecase) GetIncludingDeleted(ctx context.Context, tripID uint64) (*domainTrip.Trip, error) {
	t, err := u.trips.AllIncludingDeleted().GetByID(ctx, tripID)
	if err != nil {
		return nil, mapErr(err, domainTrip.ErrNotFound)
	}
	return t, nil
}

func (u *Usecase) ratesFor(ctx context.Context, routeID uint64) (rates, error) {
	if u.routes == nil {
		return rates{}, domainTrip.ErrRouteNotFound
	}
	rt, err := u.routes.GetRoute(ctx, routeID)
	if err != nil {
		return rates{}, mapErr(err, domainTrip.ErrRouteNotFound)
	}
	return rates{
		tarifaCliente: rt.TarifaCliente,
		pagoOperador:  rt.PagoOperador,
		pagoTransfer:  rt.PagoTransfer,
		pagoTransfer2: rt.PagoTransfer2,
	}, nil
}

func freeze(t *domainTrip.Trip, r rates) {
	t.TarifaClienteSnapshot = r.tarifaCliente
	t.PagoOperadorSnapshot = r.pagoOperador
	t.PagoTransferSnapshot = r.pagoTransfer
	t.PagoTransfer2Snapshot = r.pagoTransfer2
}

func setID(dst *uint64, v *uint64) {
	if v != nil && *v != 0 {
		*dst = *v
	}
}

// notSettled fails with ErrSettled once the trip is a LOAD or DROP of some settlement.
func notSettled(ctx context.Context, r uow.Repos, tripID uint64) error {
	_, err := r.Settlements.GetMembershipByTripID(ctx, tripID)
	switch {
	case err == nil:
		return domainTrip.ErrSettled
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}

// mapErr turns a missing row into notFound and anything unexpected into an internal error.
func mapErr(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperr.Ensure(err)
}
