package settlement

import "reefer-backoffice/internal/domain/apperr"

var (
	ErrNotFound     = apperr.NotFound("settlement_not_found", "settlement not found")
	ErrLineNotFound = apperr.NotFound("line_not_found", "settlement line not found")

	ErrImmutable       = apperr.Conflict("immutable", "settlement is no longer editable")
	ErrNoLoadTrip      = apperr.Conflict("no_load_trip", "settlement has no LOAD trip assigned")
	ErrAlreadySettled  = apperr.Conflict("already_settled", "trip already belongs to another settlement")
	ErrDropNotEligible = apperr.Conflict("drop_not_eligible", "trip is not eligible as DROP")

	ErrOperatorMismatch   = apperr.Validation("operator_mismatch", "trips belong to different operators")
	ErrNegativeAmount     = apperr.Validation("negative_amount", "amount must not be negative")
	ErrInvalidCategory    = apperr.Validation("invalid_category", "unknown line category")
	ErrInvalidPaymentType = apperr.Validation("invalid_payment_type", "unknown payment type")
	ErrInvalidPeriod      = apperr.Validation("invalid_period", "period_from must not be after period_to")
	ErrMissingField       = apperr.Validation("missing_field", "missing required field")
)
