package evidence

import "time"

type DecideInput struct {
	TripID   uint64
	Decision string
	Reviewer string
	Notes    string
}

type DecisionDTO struct {
	TripID    uint64    `json:"trip_id"`
	Status    string    `json:"status"`
	Reviewer  string    `json:"reviewer,omitempty"`
	DecidedAt time.Time `json:"decided_at,omitempty"`
	// false when the decision repeated the current status
	Changed bool `json:"changed"`
}
