// ABOUTME: Tests for the property form draft
// ABOUTME: Covers masking on input, overlay rules, months recompute and payload shape
package forms

import (
	"encoding/json"
	"strings"
	"testing"

	"imovia/models"
)

func TestNewPropertyFormDefaults(t *testing.T) {
	f := NewPropertyForm()

	if f.Values[FieldType] != "Casa" {
		t.Errorf("expected default type Casa, got %q", f.Values[FieldType])
	}
	if f.Values[FieldStatus] != models.PropertyAvailable {
		t.Errorf("expected default status %q, got %q", models.PropertyAvailable, f.Values[FieldStatus])
	}
	if f.Values[FieldIptuStatus] != models.IptuPaid {
		t.Errorf("expected default IPTU status %q, got %q", models.IptuPaid, f.Values[FieldIptuStatus])
	}
	if f.Values[FieldRentDueDay] != "05" {
		t.Errorf("expected default due day 05, got %q", f.Values[FieldRentDueDay])
	}
}

func TestSetFieldAppliesMasks(t *testing.T) {
	f := NewPropertyForm()

	f.SetField(FieldStartDate, "01032025")
	if got := f.Values[FieldStartDate]; got != "01/03/2025" {
		t.Errorf("expected masked date 01/03/2025, got %q", got)
	}

	f.SetField(FieldRentValue, "150075")
	if got := f.Values[FieldRentValue]; got != "R$ 1.500,75" {
		t.Errorf("expected formatted currency, got %q", got)
	}

	f.SetField(FieldTenantPhone, "85988776655")
	if got := f.Values[FieldTenantPhone]; got != "(85) 98877-6655" {
		t.Errorf("expected masked phone, got %q", got)
	}

	if !f.Touched(FieldStartDate) || !f.Touched(FieldRentValue) {
		t.Error("expected edited fields to be marked touched")
	}
	if f.Touched(FieldName) {
		t.Error("untouched field reported as touched")
	}
}

func TestMonthsRecomputeOnDateChange(t *testing.T) {
	f := NewPropertyForm()

	f.SetField(FieldStartDate, "01/01/2025")
	if f.Months != "" {
		t.Errorf("expected no months with open end, got %q", f.Months)
	}

	f.SetField(FieldDueDate, "31/03/2025")
	if f.Months != "3" {
		t.Errorf("expected 3 months, got %q", f.Months)
	}

	f.SetField(FieldDueDate, "31/03/2024")
	if f.Months != "" {
		t.Errorf("expected empty months when end precedes start, got %q", f.Months)
	}
}

func TestPropertyFormFromListSeedsDisplayFields(t *testing.T) {
	f := PropertyFormFromList(&models.PropertyListItem{
		ID: "p1", Name: "Casa Aldeota", Type: "Casa",
		Status:                 models.PropertyRented,
		CurrentTenant:          "Maria Souza",
		CurrentRentValue:       "150000",
		CurrentContractEndDate: "31/01/2026",
		Lat:                    -3.7318, Lng: -38.5267,
	})

	if got := f.Values[FieldName]; got != "Casa Aldeota" {
		t.Errorf("expected seeded name, got %q", got)
	}
	if got := f.Values[FieldTenantName]; got != "Maria Souza" {
		t.Errorf("expected seeded tenant, got %q", got)
	}
	if got := f.Values[FieldRentValue]; got != "R$ 1.500,00" {
		t.Errorf("expected formatted rent, got %q", got)
	}
	if f.Lat != -3.7318 || f.Lng != -38.5267 {
		t.Errorf("expected seeded coordinates, got %f, %f", f.Lat, f.Lng)
	}
	if f.Touched(FieldName) {
		t.Error("seeding must not mark fields touched")
	}
}

func TestMergeRecordSkipsTouchedFields(t *testing.T) {
	f := PropertyFormFromList(&models.PropertyListItem{ID: "p1", Name: "Casa Aldeota"})
	f.SetField(FieldName, "Casa Aldeota II")

	f.MergeRecord(&models.Property{
		ID: "p1", Name: "Nome do Servidor",
		Matricula: "12345",
		RentValue: "150000",
	})

	if got := f.Values[FieldName]; got != "Casa Aldeota II" {
		t.Errorf("edited name was clobbered by the record: %q", got)
	}
	if !f.Touched(FieldName) {
		t.Error("touched state must survive the merge")
	}
	if got := f.Values[FieldMatricula]; got != "12345" {
		t.Errorf("expected untouched field filled from record, got %q", got)
	}
	if got := f.Values[FieldRentValue]; got != "R$ 1.500,00" {
		t.Errorf("expected formatted rent from record, got %q", got)
	}
}

func TestValidateEnumeratedFields(t *testing.T) {
	f := NewPropertyForm()
	if err := f.Validate(); err != nil {
		t.Errorf("defaults must validate, got %v", err)
	}

	f.SetField(FieldType, "Castelo")
	if err := f.Validate(); err == nil {
		t.Error("expected an error for an unknown property type")
	}

	f.SetField(FieldType, "Comercial")
	f.SetField(FieldRentDueDay, "07")
	if err := f.Validate(); err == nil {
		t.Error("expected an error for a due day outside the selectable list")
	}

	f.SetField(FieldRentDueDay, "10")
	if err := f.Validate(); err != nil {
		t.Errorf("expected valid draft, got %v", err)
	}
}

func TestApplyActiveContractOverlay(t *testing.T) {
	f := NewPropertyForm()
	f.MergeRecord(&models.Property{
		ID: "p1", Name: "Casa Aldeota",
		RentValue:  "R$ 1.000,00",
		ClientName: "Antigo Inquilino",
	})

	history := []models.ContractHistoryItem{
		{ID: "c1", TenantName: "Antigo", Status: models.ContractFinished, RentValue: "R$ 900,00"},
		{
			ID: "c2", TenantName: "Maria Souza", Status: models.ContractActive,
			RentValue: "150000", StartDate: "01/02/2025", EndDate: "31/01/2026",
		},
	}
	f.ApplyActiveContract(history)

	if got := f.Values[FieldTenantName]; got != "Maria Souza" {
		t.Errorf("expected active tenant overlay, got %q", got)
	}
	if got := f.Values[FieldRentValue]; got != "R$ 1.500,00" {
		t.Errorf("expected formatted active rent, got %q", got)
	}
	if got := f.Values[FieldStartDate]; got != "01/02/2025" {
		t.Errorf("expected start overlay, got %q", got)
	}
	if f.Months != "12" {
		t.Errorf("expected 12 months after overlay, got %q", f.Months)
	}
}

func TestApplyActiveContractSkipsTouchedAndEmpty(t *testing.T) {
	f := NewPropertyForm()
	f.SetField(FieldRentValue, "200000")

	f.ApplyActiveContract([]models.ContractHistoryItem{
		{
			ID: "c1", Status: models.ContractActive,
			TenantName: "Maria Souza", RentValue: "150000",
			StartDate: "01/02/2025",
		},
	})

	if got := f.Values[FieldRentValue]; got != "R$ 2.000,00" {
		t.Errorf("touched rent value was clobbered: %q", got)
	}
	if got := f.Values[FieldTenantName]; got != "Maria Souza" {
		t.Errorf("expected untouched tenant name to be overlaid, got %q", got)
	}
	if _, ok := f.Values[FieldDueDate]; ok {
		t.Error("empty contract end date must not land on the draft")
	}
}

func TestApplyActiveContractNoActive(t *testing.T) {
	f := NewPropertyForm()
	f.SetField(FieldName, "Sala Centro")

	before := len(f.Values)
	f.ApplyActiveContract([]models.ContractHistoryItem{
		{ID: "c1", TenantName: "Antigo", Status: models.ContractRescinded},
	})

	if len(f.Values) != before {
		t.Error("history without an active contract must not change the draft")
	}
}

func TestPayloadExcludesContractFields(t *testing.T) {
	f := NewPropertyForm()
	f.SetField(FieldName, "Casa Aldeota")
	f.SetField(FieldTenantName, "Maria Souza")
	f.SetField(FieldRentValue, "150000")
	f.SetField(FieldStartDate, "01/02/2025")
	f.SetLocation(-3.7318, -38.5267)

	raw, err := json.Marshal(f.Payload())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(raw)

	for _, forbidden := range []string{"clientName", "rentValue", "contractStartDate", "contractDueDate", "tenant"} {
		if strings.Contains(body, forbidden) {
			t.Errorf("payload leaked %q: %s", forbidden, body)
		}
	}
	if !strings.Contains(body, `"name":"Casa Aldeota"`) {
		t.Errorf("payload missing property fields: %s", body)
	}
	if !strings.Contains(body, `"lat":-3.7318`) {
		t.Errorf("payload missing coordinates: %s", body)
	}
}
