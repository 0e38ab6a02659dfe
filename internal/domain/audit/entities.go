package audit

import "time"

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// RequestContext describes the inbound request that caused a tracked write.
// Actor is nil for anonymous actions.
type RequestContext struct {
	Actor     *string
	IP        string
	Path      string
	Method    string
	UserAgent string
}

// Tracked is implemented by every entity the change recorder can snapshot.
type Tracked interface {
	AuditType() string
	AuditKey() string
	AuditRepr() string
}

// FieldChange is one entry of an update diff.
type FieldChange struct {
	Before any `json:"before"`
	After  any `json:"after"`
}

// Column widths of the bounded audit_logs text columns, in characters.
const (
	ReprMaxLen      = 255
	IPMaxLen        = 64
	PathMaxLen      = 255
	MethodMaxLen    = 16
	UserAgentMaxLen = 255
)

// Table: audit_logs. Rows are write-once.
type Entry struct {
	ID         uint64            `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	EntryID    string            `gorm:"column:entry_id;type:char(32);not null;uniqueIndex:ux_audit_logs_entry_id" json:"entry_id"`
	Actor      *string           `gorm:"column:actor;type:varchar(64)" json:"actor"`
	Action     Action            `gorm:"column:action;type:varchar(16);not null" json:"action"`
	EntityType string            `gorm:"column:entity_type;type:varchar(64);not null;index:idx_audit_logs_target" json:"entity_type"`
	EntityID   string            `gorm:"column:entity_id;type:varchar(64);not null;index:idx_audit_logs_target" json:"entity_id"`
	Repr       string            `gorm:"column:repr;type:varchar(255)" json:"repr"`
	Changes    map[string]any    `gorm:"column:changes;type:text;serializer:json" json:"changes"`
	IP         string            `gorm:"column:ip;type:varchar(64)" json:"ip"`
	Path       string            `gorm:"column:path;type:varchar(255)" json:"path"`
	Method     string            `gorm:"column:method;type:varchar(16)" json:"method"`
	UserAgent  string            `gorm:"column:user_agent;type:varchar(255)" json:"user_agent"`
	Tags       map[string]string `gorm:"column:tags;type:text;serializer:json" json:"tags,omitempty"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "audit_logs" }
