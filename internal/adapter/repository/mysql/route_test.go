package mysql

import (
	"errors"
	"testing"

	tripDomain "reefer-backoffice/internal/domain/trip"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestRoute_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewRouteRepository(db)

	rt := &tripDomain.Route{
		Origin:        "Culiacán",
		Destination:   "CDMX",
		TarifaCliente: decimal.RequireFromString("42000.00"),
		PagoOperador:  decimal.RequireFromString("3500.00"),
	}
	if err := repo.Create(bg, rt); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetRoute(bg, rt.ID)
	if err != nil {
		t.Fatalf("GetRoute: %v", err)
	}
	if !got.TarifaCliente.Equal(rt.TarifaCliente) || got.Destination != "CDMX" {
		t.Fatalf("unexpected route: %+v", got)
	}
	if _, err := repo.GetRoute(bg, 999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
