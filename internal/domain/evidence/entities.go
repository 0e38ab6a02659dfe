package evidence

import (
	"fmt"
	"strconv"
	"time"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Table: trip_approvals. One row per decision; the latest row (highest id) is the trip's status.
type Approval struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TripID    uint64    `gorm:"column:trip_id;not null;index:idx_trip_approvals_trip" json:"trip_id"`
	Status    Status    `gorm:"column:status;type:varchar(16);not null" json:"status"`
	Reviewer  string    `gorm:"column:reviewer;type:varchar(64);not null" json:"reviewer"`
	Notes     string    `gorm:"column:notes;type:text" json:"notes"`
	DecidedAt time.Time `gorm:"column:decided_at;not null" json:"decided_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Approval) TableName() string { return "trip_approvals" }

func (a *Approval) AuditType() string { return "trip_approval" }
func (a *Approval) AuditKey() string  { return strconv.FormatUint(a.ID, 10) }
func (a *Approval) AuditRepr() string {
	return fmt.Sprintf("Evidence of trip #%d: %s", a.TripID, a.Status)
}
