package mysql

import (
	"reefer-backoffice/internal/domain/audit"
	"reefer-backoffice/internal/domain/evidence"
	"reefer-backoffice/internal/domain/settlement"
	"reefer-backoffice/internal/domain/trip"

	"gorm.io/gorm"
)

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&trip.Route{},
		&trip.Trip{},
		&evidence.Approval{},
		&settlement.Settlement{},
		&settlement.Membership{},
		&settlement.Line{},
		&audit.Entry{},
	}
}

// AutoMigrate creates/updates the schema, including the unique index on
// operator_settlement_trips.trip_id that backs the one-settlement-per-trip rule.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
