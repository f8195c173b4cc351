// ABOUTME: Tests for the tenant and employee form drafts
// ABOUTME: Covers PF/PJ switching, document masks and property snapshot merge
package forms

import (
	"testing"

	"imovia/models"
)

func TestClientFormMasks(t *testing.T) {
	f := NewClientForm()

	f.SetField(ClientFieldCPF, "12345678901")
	if got := f.Values[ClientFieldCPF]; got != "123.456.789-01" {
		t.Errorf("expected masked CPF, got %q", got)
	}

	f.SetField(ClientFieldPhone, "85988776655")
	if got := f.Values[ClientFieldPhone]; got != "(85) 98877-6655" {
		t.Errorf("expected masked phone, got %q", got)
	}

	f.SetType(models.TenantPJ)
	f.SetField(ClientFieldCNPJ, "12345678000195")
	if got := f.Values[ClientFieldCNPJ]; got != "12.345.678/0001-95" {
		t.Errorf("expected masked CNPJ, got %q", got)
	}
}

func TestClientFormTypeSwitchKeepsInput(t *testing.T) {
	f := NewClientForm()
	f.SetField(ClientFieldCPF, "12345678901")

	f.SetType(models.TenantPJ)
	f.SetType(models.TenantPF)

	if got := f.Values[ClientFieldCPF]; got != "123.456.789-01" {
		t.Errorf("CPF lost on type toggle: %q", got)
	}

	f.SetType("INVALID")
	if f.Type != models.TenantPF {
		t.Errorf("unknown type accepted: %q", f.Type)
	}
}

func TestClientFormProfileEmitsOneGroup(t *testing.T) {
	f := NewClientForm()
	f.SetField(ClientFieldName, "Maria Souza")
	f.SetField(ClientFieldCPF, "12345678901")
	f.SetField(ClientFieldCompanyName, "Souza Ltda")

	pf := f.Profile()
	if pf.Person == nil || pf.Person.CPF != "123.456.789-01" {
		t.Errorf("expected person profile, got %+v", pf.Person)
	}
	if pf.Company != nil {
		t.Error("PF profile must not carry company fields")
	}

	f.SetType(models.TenantPJ)
	pj := f.Profile()
	if pj.Company == nil || pj.Company.CompanyName != "Souza Ltda" {
		t.Errorf("expected company profile, got %+v", pj.Company)
	}
	if pj.Person != nil {
		t.Error("PJ profile must not carry person fields")
	}
}

func TestApplyToPropertyUsesDisplayName(t *testing.T) {
	f := NewClientForm()
	f.SetType(models.TenantPJ)
	f.SetField(ClientFieldName, "João Rep")
	f.SetField(ClientFieldCompanyName, "Imobiliária Sol")
	f.SetField(ClientFieldPhone, "85988776655")

	var p models.Property
	f.ApplyToProperty(&p)

	if p.ClientName != "Imobiliária Sol" {
		t.Errorf("PJ snapshot should show company name, got %q", p.ClientName)
	}
	if p.ClientPhone != "(85) 98877-6655" {
		t.Errorf("expected masked snapshot phone, got %q", p.ClientPhone)
	}
	if p.Tenant == nil || p.Tenant.Type != models.TenantPJ {
		t.Errorf("expected embedded tenant profile, got %+v", p.Tenant)
	}
}

func TestClientFormFromRoundTrip(t *testing.T) {
	src := &models.TenantProfile{
		Type: models.TenantPJ, Name: "João Rep", Phone: "(85) 98877-6655",
		Company: &models.CompanyProfile{CompanyName: "Imobiliária Sol", CNPJ: "12.345.678/0001-95"},
	}

	f := ClientFormFrom(src)
	got := f.Profile()

	if got.Type != models.TenantPJ || got.Company == nil {
		t.Fatalf("round trip lost type or company: %+v", got)
	}
	if got.Company.CNPJ != "12.345.678/0001-95" {
		t.Errorf("round trip lost CNPJ: %q", got.Company.CNPJ)
	}
}

func TestEmployeeFormMasksAndPassword(t *testing.T) {
	f := EmployeeFormFrom(models.Employee{
		ID: "e1", Name: "Ana Lima", CPF: "123.456.789-01", Salary: "250000",
	})

	if got := f.Values[EmployeeFieldSalary]; got != "R$ 2.500,00" {
		t.Errorf("expected re-formatted salary, got %q", got)
	}
	if f.Values[EmployeeFieldPassword] != "" {
		t.Error("password must start empty when editing")
	}

	if got := f.Employee().Password; got != "" {
		t.Errorf("unset password must stay empty in the record, got %q", got)
	}

	f.SetField(EmployeeFieldPassword, "s3cret")
	if got := f.Employee().Password; got != "s3cret" {
		t.Errorf("expected set password to ride along, got %q", got)
	}

	f.SetField(EmployeeFieldPhone, "8533224455")
	if got := f.Values[EmployeeFieldPhone]; got != "(85) 3322-4455" {
		t.Errorf("expected masked phone, got %q", got)
	}
}
