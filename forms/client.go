// ABOUTME: Tenant (client) form draft controller for PF and PJ profiles
// ABOUTME: Masks documents and phones, merges the snapshot into a property
package forms

import (
	"imovia/masks"
	"imovia/models"
)

// Tenant form field keys.
const (
	ClientFieldName        = "name"
	ClientFieldEmail       = "email"
	ClientFieldPhone       = "phone"
	ClientFieldPhone2      = "phone2"
	ClientFieldSocial      = "social"
	ClientFieldCPF         = "cpf"
	ClientFieldRG          = "rg"
	ClientFieldBirthDate   = "birthDate"
	ClientFieldMarital     = "maritalStatus"
	ClientFieldProfession  = "profession"
	ClientFieldCompanyName = "companyName"
	ClientFieldCNPJ        = "cnpj"
	ClientFieldLegalRep    = "legalRepName"
	ClientFieldLegalRepCPF = "legalRepCpf"
)

// ClientForm is the draft for a tenant profile. Type selects which of the
// PF and PJ field groups is in play; switching type keeps both groups so no
// typed input is lost on an accidental toggle.
type ClientForm struct {
	Type   string
	Values map[string]string
}

// NewClientForm returns an individual (PF) draft.
func NewClientForm() *ClientForm {
	return &ClientForm{Type: models.TenantPF, Values: make(map[string]string)}
}

// ClientFormFrom seeds a draft from an existing tenant profile.
func ClientFormFrom(t *models.TenantProfile) *ClientForm {
	f := NewClientForm()
	if t == nil {
		return f
	}
	if t.Type != "" {
		f.Type = t.Type
	}
	f.Values[ClientFieldName] = t.Name
	f.Values[ClientFieldEmail] = t.Email
	f.Values[ClientFieldPhone] = t.Phone
	f.Values[ClientFieldPhone2] = t.Phone2
	f.Values[ClientFieldSocial] = t.Social
	if t.Person != nil {
		f.Values[ClientFieldCPF] = t.Person.CPF
		f.Values[ClientFieldRG] = t.Person.RG
		f.Values[ClientFieldBirthDate] = t.Person.BirthDate
		f.Values[ClientFieldMarital] = t.Person.MaritalStatus
		f.Values[ClientFieldProfession] = t.Person.Profession
	}
	if t.Company != nil {
		f.Values[ClientFieldCompanyName] = t.Company.CompanyName
		f.Values[ClientFieldCNPJ] = t.Company.CNPJ
		f.Values[ClientFieldLegalRep] = t.Company.LegalRep
		f.Values[ClientFieldLegalRepCPF] = t.Company.LegalRepCPF
	}
	return f
}

// SetType switches between PF and PJ.
func (f *ClientForm) SetType(t string) {
	if t == models.TenantPF || t == models.TenantPJ {
		f.Type = t
	}
}

// SetField records input with the mask that belongs to the field.
func (f *ClientForm) SetField(key, value string) {
	switch key {
	case ClientFieldCPF, ClientFieldLegalRepCPF:
		value = masks.MaskCPF(value)
	case ClientFieldCNPJ:
		value = masks.MaskCNPJ(value)
	case ClientFieldPhone, ClientFieldPhone2:
		value = masks.MaskCellphone(value)
	case ClientFieldBirthDate:
		value = masks.MaskDate(value)
	}
	f.Values[key] = value
}

// Profile builds the tenant record from the draft. Only the profile group
// matching the selected type is emitted.
func (f *ClientForm) Profile() models.TenantProfile {
	t := models.TenantProfile{
		Type:   f.Type,
		Name:   f.Values[ClientFieldName],
		Email:  f.Values[ClientFieldEmail],
		Phone:  f.Values[ClientFieldPhone],
		Phone2: f.Values[ClientFieldPhone2],
		Social: f.Values[ClientFieldSocial],
	}
	switch f.Type {
	case models.TenantPJ:
		t.Company = &models.CompanyProfile{
			CompanyName: f.Values[ClientFieldCompanyName],
			CNPJ:        f.Values[ClientFieldCNPJ],
			LegalRep:    f.Values[ClientFieldLegalRep],
			LegalRepCPF: f.Values[ClientFieldLegalRepCPF],
		}
	default:
		t.Person = &models.PersonProfile{
			CPF:           f.Values[ClientFieldCPF],
			RG:            f.Values[ClientFieldRG],
			BirthDate:     f.Values[ClientFieldBirthDate],
			MaritalStatus: f.Values[ClientFieldMarital],
			Profession:    f.Values[ClientFieldProfession],
		}
	}
	return t
}

// ApplyToProperty writes the tenant snapshot into a property record: display
// name and primary phone. PJ tenants show their company name on cards.
func (f *ClientForm) ApplyToProperty(p *models.Property) {
	profile := f.Profile()
	p.Tenant = &profile
	p.ClientName = profile.DisplayName()
	p.ClientPhone = profile.Phone
}
