// ABOUTME: Tests for the contract form draft
// ABOUTME: Covers tenant validation, masking and the months ride-along
package forms

import (
	"errors"
	"testing"
)

func TestContractFormRequiresTenant(t *testing.T) {
	f := NewContractForm("p1")
	f.SetField(ContractFieldRentValue, "150000")
	f.SetField(ContractFieldStartDate, "01/02/2025")

	if _, err := f.Payload(); !errors.Is(err, ErrNoTenant) {
		t.Errorf("expected ErrNoTenant, got %v", err)
	}

	f.SelectTenant("t1", "Maria Souza")
	payload, err := f.Payload()
	if err != nil {
		t.Fatalf("Payload failed after tenant selection: %v", err)
	}
	if payload.TenantID != "t1" || payload.PropertyID != "p1" {
		t.Errorf("payload ids wrong: %+v", payload)
	}
}

func TestContractFormMasksAndMonths(t *testing.T) {
	f := NewContractForm("p1")
	f.SelectTenant("t1", "Maria Souza")

	f.SetField(ContractFieldRentValue, "150075")
	f.SetField(ContractFieldStartDate, "01022025")
	f.SetField(ContractFieldEndDate, "31012026")

	payload, err := f.Payload()
	if err != nil {
		t.Fatalf("Payload failed: %v", err)
	}
	if payload.RentValue != "R$ 1.500,75" {
		t.Errorf("expected formatted rent, got %q", payload.RentValue)
	}
	if payload.StartDate != "01/02/2025" || payload.EndDate != "31/01/2026" {
		t.Errorf("expected masked dates, got %q / %q", payload.StartDate, payload.EndDate)
	}
	if payload.MonthsInContract != "12" {
		t.Errorf("expected 12 months, got %q", payload.MonthsInContract)
	}
	if payload.PaymentDay != "05" {
		t.Errorf("expected default payment day, got %q", payload.PaymentDay)
	}
}
