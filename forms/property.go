// ABOUTME: Property form draft controller
// ABOUTME: Applies input masks, tracks touched fields and overlays contract data
package forms

import (
	"fmt"
	"slices"

	"imovia/api"
	"imovia/masks"
	"imovia/models"
)

// Property form field keys.
const (
	FieldName           = "name"
	FieldType           = "propertyType"
	FieldDescription    = "description"
	FieldStatus         = "propertyStatus"
	FieldMatricula      = "matricula"
	FieldCagece         = "cagece"
	FieldEnel           = "enel"
	FieldLastRenovation = "lastRenovation"
	FieldRentValue      = "rentValue"
	FieldCondoValue     = "condoValue"
	FieldDepositValue   = "depositValue"
	FieldIptuStatus     = "iptuStatus"
	FieldRentDueDay     = "rentDueDate"
	FieldStartDate      = "contractStartDate"
	FieldDueDate        = "contractDueDate"
	FieldTenantName     = "clientName"
	FieldTenantPhone    = "clientPhone"
	FieldNotes          = "notes"
)

// PropertyForm holds an in-progress property draft. Values are kept in
// display form (masked); Payload converts back out. The touched map records
// which fields the user has edited so background contract reconciliation
// never clobbers live input.
type PropertyForm struct {
	Values  map[string]string
	Lat     float64
	Lng     float64
	Months  string
	touched map[string]bool
}

// NewPropertyForm returns a draft seeded with the defaults for a brand-new
// property.
func NewPropertyForm() *PropertyForm {
	return &PropertyForm{
		Values: map[string]string{
			FieldType:       "Casa",
			FieldStatus:     models.PropertyAvailable,
			FieldIptuStatus: models.IptuPaid,
			FieldRentDueDay: "05",
		},
		touched: make(map[string]bool),
	}
}

// PropertyFormFromList seeds a draft from a list entry so the editor opens
// populated immediately, before the full record arrives.
func PropertyFormFromList(p *models.PropertyListItem) *PropertyForm {
	f := NewPropertyForm()
	f.Lat = p.Lat
	f.Lng = p.Lng

	seed := map[string]string{
		FieldName:        p.Name,
		FieldType:        p.Type,
		FieldDescription: p.Description,
		FieldStatus:      p.Status,
		FieldMatricula:   p.Matricula,
		FieldIptuStatus:  p.IptuStatus,
		FieldTenantName:  p.CurrentTenant,
		FieldRentValue:   masks.FormatCurrency(p.CurrentRentValue),
		FieldDueDate:     p.CurrentContractEndDate,
	}
	for k, v := range seed {
		if v != "" {
			f.Values[k] = v
		}
	}
	f.recomputeMonths()
	return f
}

// MergeRecord fills the draft from the full record. Only non-empty record
// fields land, and never on a field the user has already touched, the same
// rule ApplyActiveContract follows.
func (f *PropertyForm) MergeRecord(p *models.Property) {
	f.Lat = p.Lat
	f.Lng = p.Lng

	record := map[string]string{
		FieldName:           p.Name,
		FieldType:           p.Type,
		FieldDescription:    p.Description,
		FieldStatus:         p.Status,
		FieldMatricula:      p.Matricula,
		FieldCagece:         p.Cagece,
		FieldEnel:           p.Enel,
		FieldLastRenovation: p.LastRenovation,
		FieldRentValue:      masks.FormatCurrency(p.RentValue),
		FieldCondoValue:     masks.FormatCurrency(p.CondoValue),
		FieldDepositValue:   masks.FormatCurrency(p.DepositValue),
		FieldIptuStatus:     p.IptuStatus,
		FieldRentDueDay:     p.RentDueDay,
		FieldStartDate:      p.ContractStartDate,
		FieldDueDate:        p.ContractDueDate,
		FieldTenantName:     p.ClientName,
		FieldTenantPhone:    p.ClientPhone,
		FieldNotes:          p.Notes,
	}
	for k, v := range record {
		if v == "" || f.touched[k] {
			continue
		}
		f.Values[k] = v
	}
	f.recomputeMonths()
}

// SetField records user input, applying the mask that belongs to the field.
// The field is marked touched even when the masked value is unchanged.
func (f *PropertyForm) SetField(key, value string) {
	switch key {
	case FieldStartDate, FieldDueDate, FieldLastRenovation:
		value = masks.MaskDate(value)
	case FieldRentValue, FieldCondoValue, FieldDepositValue:
		value = masks.FormatCurrency(value)
	case FieldTenantPhone:
		value = masks.MaskCellphone(value)
	}
	f.Values[key] = value
	f.touched[key] = true

	if key == FieldStartDate || key == FieldDueDate {
		f.recomputeMonths()
	}
}

// Validate checks the enumerated fields against the selectable lists before
// the draft leaves the client.
func (f *PropertyForm) Validate() error {
	if !slices.Contains(models.PropertyTypes, f.Values[FieldType]) {
		return fmt.Errorf("tipo de imóvel inválido: %q", f.Values[FieldType])
	}
	if day := f.Values[FieldRentDueDay]; day != "" && !slices.Contains(models.PaymentDays, day) {
		return fmt.Errorf("dia de vencimento inválido: %q", day)
	}
	return nil
}

// Touched reports whether the user has edited the field in this session.
func (f *PropertyForm) Touched(key string) bool {
	return f.touched[key]
}

// SetLocation updates the coordinates, typically from a map pick.
func (f *PropertyForm) SetLocation(lat, lng float64) {
	f.Lat = lat
	f.Lng = lng
}

func (f *PropertyForm) recomputeMonths() {
	f.Months = masks.MonthsInContract(f.Values[FieldStartDate], f.Values[FieldDueDate])
}

// ApplyActiveContract overlays the active contract's data onto the draft.
// Only non-empty contract fields land, and never on a field the user has
// already touched; a property without an active contract changes nothing.
func (f *PropertyForm) ApplyActiveContract(history []models.ContractHistoryItem) {
	var active *models.ContractHistoryItem
	for i := range history {
		if history[i].Active() {
			active = &history[i]
			break
		}
	}
	if active == nil {
		return
	}

	overlay := map[string]string{
		FieldTenantName: active.TenantName,
		FieldRentValue:  masks.FormatCurrency(active.RentValue),
		FieldStartDate:  active.StartDate,
		FieldDueDate:    active.EndDate,
	}
	for k, v := range overlay {
		if v == "" || f.touched[k] {
			continue
		}
		f.Values[k] = v
	}
	f.recomputeMonths()
}

// Payload converts the draft to the property-only request body. Contract and
// tenant fields never leave through here.
func (f *PropertyForm) Payload() api.PropertyPayload {
	return api.PropertyPayload{
		Name:           f.Values[FieldName],
		Type:           f.Values[FieldType],
		Description:    f.Values[FieldDescription],
		Matricula:      f.Values[FieldMatricula],
		Cagece:         f.Values[FieldCagece],
		Enel:           f.Values[FieldEnel],
		LastRenovation: f.Values[FieldLastRenovation],
		Status:         f.Values[FieldStatus],
		IptuStatus:     f.Values[FieldIptuStatus],
		Notes:          f.Values[FieldNotes],
		Lat:            f.Lat,
		Lng:            f.Lng,
	}
}
