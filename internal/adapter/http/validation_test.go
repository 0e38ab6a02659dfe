package http

import (
	"errors"
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		SettlementID string `json:"settlement_id" validate:"hex32"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{SettlementID: strings.Repeat("a", 32)}); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	for _, s := range []string{
		"",
		strings.Repeat("A", 32),
		"deadbeef",
		strings.Repeat("g", 32),
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 chars
	} {
		err := cv.Validate(P{SettlementID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "settlement_id", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestMoneyValidation(t *testing.T) {
	type P struct {
		Amount string `json:"amount" validate:"money"`
	}
	cv := NewValidator()

	// sign is left to the use case
	for _, v := range []string{"0", "1500.00", "0.1", "5200.25", "-1"} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("expected money OK for %q, got %v", v, err)
		}
	}
	for _, v := range []string{"", "abc", "1.234", "1,50", "12.5.1"} {
		err := cv.Validate(P{Amount: v})
		if err == nil {
			t.Fatalf("expected money error for %q", v)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "amount", "at most 2 decimal places") {
			t.Fatalf("expected money message for %q, got %+v", v, fe)
		}
	}
}

func TestFieldNamesFollowJSONTags(t *testing.T) {
	type P struct {
		OperatorID uint64 `json:"operator_id" validate:"required"`
		PeriodFrom string `json:"period_from" validate:"required,datetime=2006-01-02"`
		Decision   string `json:"decision" validate:"oneof=APPROVED REJECTED"`
		Concept    string `json:"concept,omitempty" validate:"max=3"`
	}
	cv := NewValidator()

	err := cv.Validate(P{PeriodFrom: "01/03/2024", Decision: "MAYBE", Concept: "diesel"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)
	for _, want := range []struct{ field, msg string }{
		{"operator_id", "is required"},
		{"period_from", "2006-01-02"},
		{"decision", "APPROVED REJECTED"},
		{"concept", "at most 3"},
	} {
		if !containsFieldMsg(fe, want.field, want.msg) {
			t.Fatalf("missing %q for %s: %+v", want.msg, want.field, fe)
		}
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
