// ABOUTME: Contract form draft controller
// ABOUTME: Builds the linking payload and validates that a tenant is selected
package forms

import (
	"errors"

	"imovia/api"
	"imovia/masks"
)

// ErrNoTenant is returned by Payload when no tenant has been selected.
var ErrNoTenant = errors.New("selecione um inquilino para vincular o contrato")

// Contract form field keys.
const (
	ContractFieldRentValue    = "rentValue"
	ContractFieldCondoValue   = "condoValue"
	ContractFieldDepositValue = "depositValue"
	ContractFieldPaymentDay   = "paymentDay"
	ContractFieldStartDate    = "startDate"
	ContractFieldEndDate      = "endDate"
	ContractFieldNotes        = "notes"
)

// ContractForm is the draft for linking a tenant to a property.
type ContractForm struct {
	PropertyID string
	TenantID   string
	TenantName string
	Values     map[string]string
	Months     string
}

// NewContractForm returns a draft for the given property with the default
// payment day.
func NewContractForm(propertyID string) *ContractForm {
	return &ContractForm{
		PropertyID: propertyID,
		Values:     map[string]string{ContractFieldPaymentDay: "05"},
	}
}

// SelectTenant records the dropdown choice.
func (f *ContractForm) SelectTenant(id, name string) {
	f.TenantID = id
	f.TenantName = name
}

// SetField records input with the mask that belongs to the field.
func (f *ContractForm) SetField(key, value string) {
	switch key {
	case ContractFieldStartDate, ContractFieldEndDate:
		value = masks.MaskDate(value)
	case ContractFieldRentValue, ContractFieldCondoValue, ContractFieldDepositValue:
		value = masks.FormatCurrency(value)
	}
	f.Values[key] = value

	if key == ContractFieldStartDate || key == ContractFieldEndDate {
		f.Months = masks.MonthsInContract(
			f.Values[ContractFieldStartDate], f.Values[ContractFieldEndDate])
	}
}

// Payload builds the request body. A contract without a tenant is the one
// thing the client refuses to send.
func (f *ContractForm) Payload() (api.ContractPayload, error) {
	if f.TenantID == "" {
		return api.ContractPayload{}, ErrNoTenant
	}
	return api.ContractPayload{
		PropertyID:       f.PropertyID,
		TenantID:         f.TenantID,
		RentValue:        f.Values[ContractFieldRentValue],
		PaymentDay:       f.Values[ContractFieldPaymentDay],
		StartDate:        f.Values[ContractFieldStartDate],
		EndDate:          f.Values[ContractFieldEndDate],
		Notes:            f.Values[ContractFieldNotes],
		CondoValue:       f.Values[ContractFieldCondoValue],
		DepositValue:     f.Values[ContractFieldDepositValue],
		MonthsInContract: f.Months,
	}, nil
}
