package trip

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusProgramado Status = "PROGRAMADO"
	StatusEnOrigen   Status = "EN_ORIGEN"
	StatusEnCurso    Status = "EN_CURSO"
	StatusEnDestino  Status = "EN_DESTINO"
	StatusCompletado Status = "COMPLETADO"
	StatusCancelado  Status = "CANCELADO"
)

var statuses = map[Status]struct{}{
	StatusProgramado: {},
	StatusEnOrigen:   {},
	StatusEnCurso:    {},
	StatusEnDestino:  {},
	StatusCompletado: {},
	StatusCancelado:  {},
}

// ParseStatus accepts only the exact upper-case names.
func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	_, ok := statuses[st]
	return st, ok
}

func (s Status) Terminal() bool { return s == StatusCompletado || s == StatusCancelado }

// Table: trips
type Trip struct {
	ID                 uint64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OperatorID         uint64  `gorm:"column:operator_id;not null;index:idx_trips_operator_status" json:"operator_id"`
	TruckID            uint64  `gorm:"column:truck_id;not null" json:"truck_id"`
	BoxID              uint64  `gorm:"column:box_id;not null" json:"box_id"`
	TransferOperatorID *uint64 `gorm:"column:transfer_operator_id" json:"transfer_operator_id"`
	ClientID           uint64  `gorm:"column:client_id;not null" json:"client_id"`
	RouteID            *uint64 `gorm:"column:route_id" json:"route_id"`
	Status             Status  `gorm:"column:status;type:varchar(20);not null;default:'PROGRAMADO';index:idx_trips_operator_status" json:"status"`

	ArrivalOriginAt      *time.Time `gorm:"column:arrival_origin_at" json:"arrival_origin_at"`
	DepartureOriginAt    *time.Time `gorm:"column:departure_origin_at" json:"departure_origin_at"`
	ArrivalDestinationAt *time.Time `gorm:"column:arrival_destination_at" json:"arrival_destination_at"`

	// Frozen from the route when the trip is created.
	TarifaClienteSnapshot decimal.Decimal `gorm:"column:tarifa_cliente_snapshot;type:decimal(14,2);not null;default:0" json:"tarifa_cliente_snapshot"`
	PagoOperadorSnapshot  decimal.Decimal `gorm:"column:pago_operador_snapshot;type:decimal(14,2);not null;default:0" json:"pago_operador_snapshot"`
	PagoTransferSnapshot  decimal.Decimal `gorm:"column:pago_transfer_snapshot;type:decimal(14,2);not null;default:0" json:"pago_transfer_snapshot"`
	PagoTransfer2Snapshot decimal.Decimal `gorm:"column:pago_transfer2_snapshot;type:decimal(14,2);not null;default:0" json:"pago_transfer2_snapshot"`

	Notes     string         `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Trip) TableName() string { return "trips" }

func (t *Trip) AuditType() string { return "trip" }
func (t *Trip) AuditKey() string  { return strconv.FormatUint(t.ID, 10) }
func (t *Trip) AuditRepr() string { return fmt.Sprintf("Trip #%d (%s)", t.ID, t.Status) }

// Editable reports whether the trip may still be edited or deleted.
func (t *Trip) Editable() bool { return t.Status == StatusProgramado }

// Table: routes (pricing master data)
type Route struct {
	ID            uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Origin        string          `gorm:"column:origin;type:varchar(120);not null" json:"origin"`
	Destination   string          `gorm:"column:destination;type:varchar(120);not null" json:"destination"`
	TarifaCliente decimal.Decimal `gorm:"column:tarifa_cliente;type:decimal(14,2);not null;default:0" json:"tarifa_cliente"`
	PagoOperador  decimal.Decimal `gorm:"column:pago_operador;type:decimal(14,2);not null;default:0" json:"pago_operador"`
	PagoTransfer  decimal.Decimal `gorm:"column:pago_transfer;type:decimal(14,2);not null;default:0" json:"pago_transfer"`
	PagoTransfer2 decimal.Decimal `gorm:"column:pago_transfer2;type:decimal(14,2);not null;default:0" json:"pago_transfer2"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"column:deleted_at;index" json:"-"`
}

func (Route) TableName() string { return "routes" }
