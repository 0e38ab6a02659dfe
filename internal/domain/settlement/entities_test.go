package settlement

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSum_IsExact(t *testing.T) {
	lines := []Line{
		{Amount: decimal.RequireFromString("0.10")},
		{Amount: decimal.RequireFromString("0.20")},
		{Amount: decimal.RequireFromString("1500.00")},
	}
	if got := Sum(lines); !got.Equal(decimal.RequireFromString("1500.30")) {
		t.Fatalf("Sum = %s, want 1500.30", got)
	}
	if !Sum(nil).IsZero() {
		t.Fatalf("Sum(nil) must be zero")
	}
}

func TestCategoryAndPaymentType(t *testing.T) {
	if !CategoryFixed.Valid() || !CategoryDeduction.Valid() {
		t.Fatalf("known categories must be valid")
	}
	if Category("SALARY").Valid() {
		t.Fatalf("unknown category accepted")
	}
	if !PaymentTransfer.Valid() || PaymentType("CRYPTO").Valid() {
		t.Fatalf("payment type validation wrong")
	}
}
