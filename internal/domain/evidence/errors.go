package evidence

import "reefer-backoffice/internal/domain/apperr"

var (
	ErrInvalidDecision = apperr.Validation("invalid_decision", "decision must be APPROVED or REJECTED")
	ErrMissingReviewer = apperr.Validation("missing_field", "missing required field").WithField("reviewer")
)
