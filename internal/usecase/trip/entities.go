package trip

import (
	"time"

	"github.com/shopspring/decimal"
)

// Options tune the state machine.
type Options struct {
	// Naive timestamps are read in this zone. Defaults to UTC.
	Location *time.Location
	// Reject out-of-order transitions; see transitionAllowed.
	StrictTransitions bool
}

type CreateInput struct {
	OperatorID         uint64
	TruckID            uint64
	BoxID              uint64
	TransferOperatorID *uint64
	ClientID           uint64
	RouteID            *uint64
	Notes              string
}

// UpdateInput: nil fields are left untouched.
type UpdateInput struct {
	OperatorID         *uint64
	TruckID            *uint64
	BoxID              *uint64
	TransferOperatorID *uint64
	ClientID           *uint64
	RouteID            *uint64
	Notes              *string
}

// ChangeStatusInput carries the raw timestamps as received; only the one
// required by Target is read.
type ChangeStatusInput struct {
	TripID               uint64
	Target               string
	ArrivalOriginAt      string
	DepartureOriginAt    string
	ArrivalDestinationAt string
}

type StatusDTO struct {
	TripID     uint64               `json:"trip_id"`
	Status     string               `json:"status"`
	Timestamps map[string]time.Time `json:"timestamps"`
}

type rates struct {
	tarifaCliente, pagoOperador, pagoTransfer, pagoTransfer2 decimal.Decimal
}
