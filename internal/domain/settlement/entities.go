package settlement

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft Status = "DRAFT"
	StatusReady Status = "READY"
	StatusPaid  Status = "PAID"
)

type Role string

const (
	RoleLoad Role = "LOAD"
	RoleDrop Role = "DROP"
)

type Category string

const (
	CategoryFixed         Category = "FIXED"
	CategoryVariable      Category = "VARIABLE"
	CategoryBonus         Category = "BONUS"
	CategoryReimbursement Category = "REIMBURSEMENT"
	CategoryDeduction     Category = "DEDUCTION"
	CategoryAdvance       Category = "ADVANCE"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFixed, CategoryVariable, CategoryBonus, CategoryReimbursement, CategoryDeduction, CategoryAdvance:
		return true
	}
	return false
}

type PaymentType string

const (
	PaymentTransfer PaymentType = "TRANSFER"
	PaymentCash     PaymentType = "CASH"
	PaymentCheck    PaymentType = "CHECK"
)

func (p PaymentType) Valid() bool {
	switch p {
	case PaymentTransfer, PaymentCash, PaymentCheck:
		return true
	}
	return false
}

// Table: operator_settlements
type Settlement struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	SettlementID string `gorm:"column:settlement_id;type:char(32);not null;uniqueIndex:ux_operator_settlements_settlement_id" json:"settlement_id"`
	OperatorID   uint64 `gorm:"column:operator_id;not null;index" json:"operator_id"`
	// Truck/box label captured when the settlement is created; not a live reference.
	UnitLabel   string         `gorm:"column:unit_label;type:varchar(64)" json:"unit_label"`
	PeriodFrom  time.Time      `gorm:"column:period_from;type:date;not null" json:"period_from"`
	PeriodTo    time.Time      `gorm:"column:period_to;type:date;not null" json:"period_to"`
	DepositDate *time.Time     `gorm:"column:deposit_date;type:date" json:"deposit_date"`
	Status      Status         `gorm:"column:status;type:varchar(16);not null;default:'DRAFT'" json:"status"`
	Notes       string         `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Settlement) TableName() string { return "operator_settlements" }

func (s *Settlement) AuditType() string { return "operator_settlement" }
func (s *Settlement) AuditKey() string  { return s.SettlementID }
func (s *Settlement) AuditRepr() string {
	return fmt.Sprintf("Settlement %s operator #%d (%s)", s.SettlementID, s.OperatorID, s.Status)
}

func (s *Settlement) Editable() bool { return s.Status == StatusDraft }

// Table: operator_settlement_trips. A trip belongs to at most one settlement (ux on trip_id),
// and a settlement has at most one trip per role.
type Membership struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// FK to operator_settlements.id (numeric)
	SettlementID uint64    `gorm:"column:settlement_id;not null;uniqueIndex:ux_settlement_trips_role" json:"-"`
	Role         Role      `gorm:"column:role;type:varchar(8);not null;uniqueIndex:ux_settlement_trips_role" json:"role"`
	TripID       uint64    `gorm:"column:trip_id;not null;uniqueIndex:ux_settlement_trips_trip" json:"trip_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Membership) TableName() string { return "operator_settlement_trips" }

func (m *Membership) AuditType() string { return "operator_settlement_trip" }
func (m *Membership) AuditKey() string  { return strconv.FormatUint(m.ID, 10) }
func (m *Membership) AuditRepr() string {
	return fmt.Sprintf("%s trip #%d in settlement #%d", m.Role, m.TripID, m.SettlementID)
}

// Table: operator_settlement_lines
type Line struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// FK to operator_settlements.id (numeric)
	SettlementID uint64          `gorm:"column:settlement_id;not null;index" json:"-"`
	Category     Category        `gorm:"column:category;type:varchar(20);not null" json:"category"`
	Concept      string          `gorm:"column:concept;type:varchar(255);not null" json:"concept"`
	PaymentType  PaymentType     `gorm:"column:payment_type;type:varchar(16);not null" json:"payment_type"`
	Amount       decimal.Decimal `gorm:"column:amount;type:decimal(14,2);not null" json:"amount"`
	Notes        string          `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"column:deleted_at;index" json:"-"`
}

func (Line) TableName() string { return "operator_settlement_lines" }

func (l *Line) AuditType() string { return "operator_settlement_line" }
func (l *Line) AuditKey() string  { return strconv.FormatUint(l.ID, 10) }
func (l *Line) AuditRepr() string {
	return fmt.Sprintf("%s %s %s", l.Category, l.Concept, l.Amount.StringFixed(2))
}

// Sum adds line amounts exactly.
func Sum(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}
