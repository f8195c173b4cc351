// ABOUTME: Employee form draft controller
// ABOUTME: Masks CPF/phone/dates and keeps the password write-only
package forms

import (
	"imovia/masks"
	"imovia/models"
)

// Employee form field keys.
const (
	EmployeeFieldName      = "name"
	EmployeeFieldCPF       = "cpf"
	EmployeeFieldEmail     = "email"
	EmployeeFieldRole      = "role"
	EmployeeFieldPhone     = "phone"
	EmployeeFieldLocation  = "location"
	EmployeeFieldBirthDate = "birthDate"
	EmployeeFieldPixKey    = "pixKey"
	EmployeeFieldSocial    = "socialLinks"
	EmployeeFieldSalary    = "salary"
	EmployeeFieldPassword  = "password"
)

// EmployeeForm is the draft for a staff record.
type EmployeeForm struct {
	ID     string
	Values map[string]string
}

// NewEmployeeForm returns an empty draft for a new employee.
func NewEmployeeForm() *EmployeeForm {
	return &EmployeeForm{Values: make(map[string]string)}
}

// EmployeeFormFrom seeds a draft from an existing record. The password field
// starts empty: the backend never returns it and an empty field means "keep".
func EmployeeFormFrom(e models.Employee) *EmployeeForm {
	f := NewEmployeeForm()
	f.ID = e.ID
	f.Values[EmployeeFieldName] = e.Name
	f.Values[EmployeeFieldCPF] = e.CPF
	f.Values[EmployeeFieldEmail] = e.Email
	f.Values[EmployeeFieldRole] = e.Role
	f.Values[EmployeeFieldPhone] = e.Phone
	f.Values[EmployeeFieldLocation] = e.Location
	f.Values[EmployeeFieldBirthDate] = e.BirthDate
	f.Values[EmployeeFieldPixKey] = e.PixKey
	f.Values[EmployeeFieldSocial] = e.SocialLinks
	f.Values[EmployeeFieldSalary] = masks.FormatCurrency(e.Salary)
	return f
}

// SetField records input with the mask that belongs to the field.
func (f *EmployeeForm) SetField(key, value string) {
	switch key {
	case EmployeeFieldCPF:
		value = masks.MaskCPF(value)
	case EmployeeFieldPhone:
		value = masks.MaskCellphone(value)
	case EmployeeFieldBirthDate:
		value = masks.MaskDate(value)
	case EmployeeFieldSalary:
		value = masks.FormatCurrency(value)
	}
	f.Values[key] = value
}

// Employee builds the record to send. Password rides along only when set.
func (f *EmployeeForm) Employee() models.Employee {
	return models.Employee{
		ID:          f.ID,
		Name:        f.Values[EmployeeFieldName],
		CPF:         f.Values[EmployeeFieldCPF],
		Email:       f.Values[EmployeeFieldEmail],
		Role:        f.Values[EmployeeFieldRole],
		Phone:       f.Values[EmployeeFieldPhone],
		Location:    f.Values[EmployeeFieldLocation],
		BirthDate:   f.Values[EmployeeFieldBirthDate],
		PixKey:      f.Values[EmployeeFieldPixKey],
		SocialLinks: f.Values[EmployeeFieldSocial],
		Salary:      f.Values[EmployeeFieldSalary],
		Password:    f.Values[EmployeeFieldPassword],
	}
}
