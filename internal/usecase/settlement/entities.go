package settlement

import (
	"time"

	domain "reefer-backoffice/internal/domain/settlement"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	OperatorID  uint64
	UnitLabel   string
	PeriodFrom  time.Time
	PeriodTo    time.Time
	DepositDate *time.Time
	Notes       string
}

type AssignInput struct {
	SettlementID string
	LoadTripID   uint64
	// nil clears any DROP trip
	DropTripID *uint64
}

type AddLineInput struct {
	SettlementID string
	Category     string
	Concept      string
	PaymentType  string
	Amount       decimal.Decimal
	Notes        string
}

type MembershipDTO struct {
	SettlementID string  `json:"settlement_id"`
	LoadTripID   uint64  `json:"load_trip_id"`
	DropTripID   *uint64 `json:"drop_trip_id"`
	Changed      bool    `json:"changed"`
}

type StatusDTO struct {
	SettlementID string `json:"settlement_id"`
	Status       string `json:"status"`
}

type TotalDTO struct {
	SettlementID string          `json:"settlement_id"`
	Total        decimal.Decimal `json:"total"`
}

// DetailDTO is the full read model of one settlement.
type DetailDTO struct {
	*domain.Settlement
	LoadTripID *uint64                             `json:"load_trip_id"`
	DropTripID *uint64                             `json:"drop_trip_id"`
	Lines      []domain.Line                       `json:"lines"`
	Subtotals  map[domain.Category]decimal.Decimal `json:"subtotals"`
	Total      decimal.Decimal                     `json:"total"`
}
