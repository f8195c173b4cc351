// ABOUTME: Async commands and their completion messages
// ABOUTME: Every backend call runs as a tea.Cmd and reports back via one message
package tui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"imovia/cache"
	"imovia/models"
	"imovia/reports"
)

type loginDoneMsg struct {
	err error
}

type propertiesLoadedMsg struct {
	items []models.PropertyListItem
	err   error
}

type cachedPropertiesMsg struct {
	items   []models.PropertyListItem
	savedAt time.Time
}

// propertyOpenedMsg and historyLoadedMsg carry the edit-session stamp issued
// when the form was opened so late responses for a closed form are dropped.
type propertyOpenedMsg struct {
	seq      int
	property *models.Property
	err      error
}

type historyLoadedMsg struct {
	seq     int
	history []models.ContractHistoryItem
	err     error
}

type propertySavedMsg struct {
	err error
}

type contractSavedMsg struct {
	err error
}

type tenantsLoadedMsg struct {
	tenants []models.TenantRef
	err     error
}

type tenantHistoryMsg struct {
	seq     int
	history []models.ContractHistoryItem
	err     error
}

type employeesLoadedMsg struct {
	employees []models.Employee
	err       error
}

type employeeSavedMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

type geocodeDoneMsg struct {
	lat     float64
	lng     float64
	address string
}

const requestTimeout = 20 * time.Second

func (m Model) login(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return loginDoneMsg{err: m.client.Login(ctx, email, password)}
	}
}

func (m Model) loadProperties() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		items, err := m.client.ListProperties(ctx)
		if err == nil && m.cache != nil {
			if cerr := cache.ReplaceAll(m.cache, items); cerr != nil {
				m.log.Warn("failed to cache property list", zap.Error(cerr))
			}
		}
		return propertiesLoadedMsg{items: items, err: err}
	}
}

// loadCachedProperties shows the last known list while the fresh one loads.
func (m Model) loadCachedProperties() tea.Cmd {
	return func() tea.Msg {
		if m.cache == nil {
			return cachedPropertiesMsg{}
		}
		items, err := cache.LoadAll(m.cache)
		if err != nil {
			m.log.Warn("failed to read cached property list", zap.Error(err))
			return cachedPropertiesMsg{}
		}
		savedAt, err := cache.SavedAt(m.cache)
		if err != nil {
			m.log.Warn("failed to read snapshot timestamp", zap.Error(err))
		}
		return cachedPropertiesMsg{items: items, savedAt: savedAt}
	}
}

func (m Model) openProperty(id string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		p, err := m.client.GetProperty(ctx, id)
		return propertyOpenedMsg{seq: seq, property: p, err: err}
	}
}

func (m Model) loadHistory(propertyID string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		history, err := m.client.ListContractHistory(ctx, propertyID)
		return historyLoadedMsg{seq: seq, history: history, err: err}
	}
}

func (m Model) saveProperty() tea.Cmd {
	id := m.editingID
	payload := m.form.Payload()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		var err error
		if id == "" {
			_, err = m.client.CreateProperty(ctx, payload)
		} else {
			_, err = m.client.UpdateProperty(ctx, id, payload)
		}
		return propertySavedMsg{err: err}
	}
}

func (m Model) saveContract() tea.Cmd {
	payload, err := m.contractForm.Payload()
	if err != nil {
		return func() tea.Msg { return contractSavedMsg{err: err} }
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := m.client.CreateContract(ctx, payload)
		return contractSavedMsg{err: err}
	}
}

func (m Model) loadTenants() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		tenants, err := m.client.ListTenants(ctx)
		return tenantsLoadedMsg{tenants: tenants, err: err}
	}
}

func (m Model) loadTenantHistory(tenantID string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		history, err := m.client.ListTenantContracts(ctx, tenantID)
		return tenantHistoryMsg{seq: seq, history: history, err: err}
	}
}

func (m Model) loadEmployees() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		employees, err := m.client.ListEmployees(ctx)
		return employeesLoadedMsg{employees: employees, err: err}
	}
}

func (m Model) saveEmployee() tea.Cmd {
	record := m.employeeForm.Employee()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		var err error
		if record.ID == "" {
			_, err = m.client.CreateEmployee(ctx, record)
		} else {
			_, err = m.client.UpdateEmployee(ctx, record.ID, record)
		}
		return employeeSavedMsg{err: err}
	}
}

func (m Model) deleteProperty(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return deleteDoneMsg{err: m.client.DeleteProperty(ctx, id)}
	}
}

type exportDoneMsg struct {
	path  string
	count int
	err   error
}

// exportCSV writes the currently loaded list to a semicolon-separated CSV
// file in the working directory.
func (m Model) exportCSV(items []models.PropertyListItem) tea.Cmd {
	return func() tea.Msg {
		path := "imovia-relatorio.csv"
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer func() { _ = f.Close() }()
		if err := reports.WriteCSV(f, items); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path, count: len(items)}
	}
}

// reverseGeocode resolves a picked coordinate into a short address. Failure
// is not an error state: the fallback label keeps the pick usable.
func (m Model) reverseGeocode(lat, lng float64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		address, err := m.geocoder.ReverseGeocode(ctx, lat, lng)
		if err != nil {
			m.log.Warn("reverse geocode failed", zap.Error(err))
			address = "" // caller substitutes the fallback
		}
		return geocodeDoneMsg{lat: lat, lng: lng, address: address}
	}
}
