package trip

import (
	"context"
	"strings"
	"time"

	"reefer-backoffice/internal/domain/audit"
	domainTrip "reefer-backoffice/internal/domain/trip"
	"reefer-backoffice/internal/domain/uow"
)

const (
	fieldArrivalOrigin      = "arrival_origin_at"
	fieldDepartureOrigin    = "departure_origin_at"
	fieldArrivalDestination = "arrival_destination_at"
)

// requiredField maps a target status to the timestamp it writes.
var requiredField = map[domainTrip.Status]string{
	domainTrip.StatusEnOrigen:  fieldArrivalOrigin,
	domainTrip.StatusEnCurso:   fieldDepartureOrigin,
	domainTrip.StatusEnDestino: fieldArrivalDestination,
}

var order = map[domainTrip.Status]int{
	domainTrip.StatusProgramado: 0,
	domainTrip.StatusEnOrigen:   1,
	domainTrip.StatusEnCurso:    2,
	domainTrip.StatusEnDestino:  3,
	domainTrip.StatusCompletado: 4,
}

// Offset-less layouts, read in the configured zone.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ChangeStatus moves a trip to target, writing the timestamp that target requires.
// Re-entering the current status overwrites the same field.
func (u *Usecase) ChangeStatus(ctx context.Context, in ChangeStatusInput, rc audit.RequestContext) (*StatusDTO, error) {
	target, ok := domainTrip.ParseStatus(strings.TrimSpace(in.Target))
	if !ok {
		return nil, domainTrip.ErrUnknownState.WithField("status")
	}

	field, needsTS := requiredField[target]
	var ts time.Time
	if needsTS {
		raw := strings.TrimSpace(map[string]string{
			fieldArrivalOrigin:      in.ArrivalOriginAt,
			fieldDepartureOrigin:    in.DepartureOriginAt,
			fieldArrivalDestination: in.ArrivalDestinationAt,
		}[field])
		if raw == "" {
			return nil, domainTrip.ErrMissingField.WithField(field)
		}
		var err error
		if ts, err = u.parseTimestamp(raw); err != nil {
			return nil, domainTrip.ErrInvalidTimestamp.WithField(field).Wrap(err)
		}
	}

	var dto *StatusDTO
	err := u.uow.WithinTripTx(ctx, in.TripID, func(r uow.Repos, t *domainTrip.Trip) error {
		if u.strict && !transitionAllowed(t.Status, target) {
			return domainTrip.ErrInvalidTransition
		}

		before := u.recorder.Capture(t)
		t.Status = target
		switch field {
		case fieldArrivalOrigin:
			t.ArrivalOriginAt = &ts
		case fieldDepartureOrigin:
			t.DepartureOriginAt = &ts
		case fieldArrivalDestination:
			t.ArrivalDestinationAt = &ts
		}
		if err := r.Trips.Save(ctx, t); err != nil {
			return err
		}
		if _, err := u.recorder.Updated(ctx, r.Audit, before, u.recorder.Capture(t), rc,
			map[string]string{"operation": "change_status"}); err != nil {
			return err
		}

		dto = &StatusDTO{TripID: t.ID, Status: string(t.Status), Timestamps: map[string]time.Time{}}
		if needsTS {
			dto.Timestamps[field] = ts
		}
		return nil
	})
	if err != nil {
		return nil, mapErr(err, domainTrip.ErrNotFound)
	}

	u.metrics.TripTransition(string(target))
	u.log.Info("trip status changed", "trip_id", in.TripID, "status", target)
	return dto, nil
}

// parseTimestamp accepts RFC 3339 or a naive datetime in the reference zone, returning UTC.
func (u *Usecase) parseTimestamp(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	var firstErr error
	for _, layout := range naiveLayouts {
		t, err := time.ParseInLocation(layout, raw, u.loc)
		if err == nil {
			return t.UTC(), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// transitionAllowed is the strict ordering: one step forward, same-state
// re-entry, or CANCELADO from any non-terminal state.
func transitionAllowed(from, to domainTrip.Status) bool {
	if from == to {
		return true
	}
	if from.Terminal() {
		return false
	}
	if to == domainTrip.StatusCancelado {
		return true
	}
	return order[to] == order[from]+1
}
