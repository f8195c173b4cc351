// ABOUTME: Data models for back-office entities
// ABOUTME: Defines Property, Contract, Tenant, Employee and derived view structs
package models

// Property status values as the backend stores them.
const (
	PropertyAvailable   = "Disponível"
	PropertyRented      = "Alugado"
	PropertyMaintenance = "Manutenção"
)

// IPTU status values.
const (
	IptuPaid    = "Pago"
	IptuPending = "Pendente"
	IptuExempt  = "Isento"
)

// Contract status tags. Only ContractActive carries behavior on the client;
// the terminated variants are display-only.
const (
	ContractActive    = "ACTIVE"
	ContractFinished  = "FINISHED"
	ContractRescinded = "RESCINDED"
)

// Tenant type discriminator.
const (
	TenantPF = "PF"
	TenantPJ = "PJ"
)

// PropertyTypes are the selectable classifications for a property.
var PropertyTypes = []string{"Casa", "Comercial", "Galpão", "Salas", "Terreno", "Outro"}

// PaymentDays are the selectable rent due days.
var PaymentDays = []string{"05", "10", "15", "20", "25"}

// Property is the full record as returned by GET /properties/{id}.
// Money fields are pre-formatted BRL strings and dates are DD/MM/YYYY;
// that is the backend's wire contract, not a local choice.
type Property struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"propertyType"`
	Description string `json:"description"`
	Status      string `json:"propertyStatus"`

	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	Matricula      string `json:"matricula"`
	Cagece         string `json:"cagece"`
	Enel           string `json:"enel"`
	LastRenovation string `json:"lastRenovation,omitempty"`

	RentValue    string `json:"rentValue,omitempty"`
	CondoValue   string `json:"condoValue,omitempty"`
	DepositValue string `json:"depositValue,omitempty"`
	IptuStatus   string `json:"iptuStatus"`
	RentDueDay   string `json:"rentDueDate,omitempty"`

	ContractStartDate string `json:"contractStartDate,omitempty"`
	ContractDueDate   string `json:"contractDueDate,omitempty"`

	// Snapshot of the active contract's tenant. Display cache only: the
	// active contract is authoritative and overlays these on load.
	ClientName  string `json:"clientName,omitempty"`
	ClientPhone string `json:"clientPhone,omitempty"`

	Tenant *TenantProfile `json:"tenant,omitempty"`

	Notes   string `json:"notes,omitempty"`
	Address string `json:"address,omitempty"`
}

// PropertyListItem is the shape of GET /properties entries.
type PropertyListItem struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Description            string  `json:"description,omitempty"`
	Type                   string  `json:"propertyType"`
	Status                 string  `json:"propertyStatus"`
	Lat                    float64 `json:"lat"`
	Lng                    float64 `json:"lng"`
	Matricula              string  `json:"matricula,omitempty"`
	CurrentTenant          string  `json:"currentTenant,omitempty"`
	CurrentRentValue       string  `json:"currentRentValue,omitempty"`
	CurrentContractEndDate string  `json:"currentContractEndDate,omitempty"`
	CurrentContractStatus  string  `json:"currentContractStatus,omitempty"`
	IptuStatus             string  `json:"iptuStatus,omitempty"`
}

// ContractHistoryItem is one entry of GET /properties/{id}/contracts.
type ContractHistoryItem struct {
	ID         string `json:"id"`
	TenantName string `json:"tenantName"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
	RentValue  string `json:"rentValue"`
	Status     string `json:"status"`
}

// Active reports whether this history entry is the contract in force.
func (c ContractHistoryItem) Active() bool {
	return c.Status == ContractActive
}

// Period renders the entry's interval for tables, open-ended as "start → Atual".
func (c ContractHistoryItem) Period() string {
	return formatPeriod(c.StartDate, c.EndDate)
}

// Contract is the full record returned by the contract endpoints.
type Contract struct {
	ID                string `json:"id"`
	PropertyID        string `json:"propertyId"`
	PropertyName      string `json:"propertyName,omitempty"`
	TenantID          string `json:"tenantId"`
	TenantName        string `json:"tenantName"`
	TenantPhone       string `json:"tenantPhone,omitempty"`
	RentValue         string `json:"rentValue"`
	CondoValue        string `json:"condoValue,omitempty"`
	DepositValue      string `json:"depositValue,omitempty"`
	PaymentDay        string `json:"paymentDay"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate,omitempty"`
	MonthsInContract  *int   `json:"monthsInContract,omitempty"`
	Status            string `json:"status"`
	TerminationReason string `json:"terminationReason,omitempty"`
	Notes             string `json:"notes,omitempty"`
	CreatedAt         string `json:"createdAt,omitempty"`
}

// Period renders the contract interval for tables, open-ended as "start → Atual".
func (c Contract) Period() string {
	return formatPeriod(c.StartDate, c.EndDate)
}

func formatPeriod(start, end string) string {
	if end == "" {
		return start + " → Atual"
	}
	return start + " → " + end
}

// PersonProfile holds the fields that only apply to an individual (PF) tenant.
type PersonProfile struct {
	CPF           string `json:"cpf,omitempty"`
	RG            string `json:"rg,omitempty"`
	BirthDate     string `json:"birthDate,omitempty"`
	MaritalStatus string `json:"maritalStatus,omitempty"`
	Profession    string `json:"profession,omitempty"`
}

// CompanyProfile holds the fields that only apply to a company (PJ) tenant.
type CompanyProfile struct {
	CompanyName string `json:"companyName,omitempty"`
	CNPJ        string `json:"cnpj,omitempty"`
	LegalRep    string `json:"legalRepName,omitempty"`
	LegalRepCPF string `json:"legalRepCpf,omitempty"`
}

// TenantProfile is the discriminated tenant record: Type selects which
// profile pointer is meaningful, the other is ignored by the UI.
type TenantProfile struct {
	Type    string          `json:"tenantType"`
	Name    string          `json:"name"`
	Email   string          `json:"email,omitempty"`
	Phone   string          `json:"phone,omitempty"`
	Phone2  string          `json:"phone2,omitempty"`
	Social  string          `json:"social,omitempty"`
	Person  *PersonProfile  `json:"person,omitempty"`
	Company *CompanyProfile `json:"company,omitempty"`
}

// DisplayName is the name shown on cards: company name for PJ, person name for PF.
func (t TenantProfile) DisplayName() string {
	if t.Type == TenantPJ && t.Company != nil && t.Company.CompanyName != "" {
		return t.Company.CompanyName
	}
	return t.Name
}

// TenantRef is the id/name pair used by the contract-linking dropdown.
type TenantRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Employee is a staff record. Password is write-only: never returned by the
// backend and only sent when the form sets it.
type Employee struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	CPF         string `json:"cpf"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Phone       string `json:"phone"`
	Location    string `json:"location,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
	PixKey      string `json:"pixKey,omitempty"`
	SocialLinks string `json:"socialLinks,omitempty"`
	Salary      string `json:"salary,omitempty"`
	Password    string `json:"password,omitempty"`
}
