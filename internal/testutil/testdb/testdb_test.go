package testdb

import "testing"

func TestOpen_MigratesSchema(t *testing.T) {
	db := Open(t)
	for _, table := range []string{"trips", "routes", "trip_approvals", "operator_settlements",
		"operator_settlement_trips", "operator_settlement_lines", "audit_logs"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("table %s missing", table)
		}
	}
}
