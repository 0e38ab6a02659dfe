package trip

import "reefer-backoffice/internal/domain/apperr"

const (
	ReasonMissingField      = "missing_field"
	ReasonInvalidTimestamp  = "invalid_timestamp"
	ReasonUnknownState      = "unknown_state"
	ReasonImmutable         = "immutable"
	ReasonInvalidTransition = "invalid_transition"
	ReasonSettled           = "trip_settled"
)

var (
	ErrNotFound          = apperr.NotFound("trip_not_found", "trip not found")
	ErrRouteNotFound     = apperr.NotFound("route_not_found", "route not found")
	ErrMissingField      = apperr.Validation(ReasonMissingField, "missing required field")
	ErrInvalidTimestamp  = apperr.Validation(ReasonInvalidTimestamp, "invalid timestamp")
	ErrUnknownState      = apperr.Validation(ReasonUnknownState, "unknown trip status")
	ErrImmutable         = apperr.Conflict(ReasonImmutable, "trip can only be changed while PROGRAMADO")
	ErrInvalidTransition = apperr.Conflict(ReasonInvalidTransition, "transition not allowed")
	ErrSettled           = apperr.Conflict(ReasonSettled, "trip belongs to a settlement")
)
