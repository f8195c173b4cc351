// ABOUTME: Contract creation screen linking a registered tenant to a property
// ABOUTME: Surfaces the already-has-active-contract conflict with its own message
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"imovia/api"
	"imovia/forms"
)

var contractFields = []struct {
	key         string
	label       string
	placeholder string
}{
	{forms.ContractFieldRentValue, "Aluguel", "R$"},
	{forms.ContractFieldCondoValue, "Condomínio", "R$"},
	{forms.ContractFieldDepositValue, "Caução", "R$"},
	{forms.ContractFieldPaymentDay, "Dia de vencimento", "05, 10, 15, 20, 25"},
	{forms.ContractFieldStartDate, "Início", "DD/MM/AAAA"},
	{forms.ContractFieldEndDate, "Fim", "DD/MM/AAAA"},
	{forms.ContractFieldNotes, "Observações", ""},
}

func (m Model) openContractForm(propertyID string) (tea.Model, tea.Cmd) {
	m.viewMode = ViewContract
	m.contractForm = forms.NewContractForm(propertyID)
	m.contractErr = ""
	m.tenantCursor = 0
	m.pickingTenant = false
	m.initContractInputs()
	return m, m.loadTenants()
}

func (m *Model) initContractInputs() {
	m.contractKeys = m.contractKeys[:0]
	inputs := make([]textinput.Model, len(contractFields))
	for i, f := range contractFields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = f.placeholder
		inputs[i].CharLimit = 120
		inputs[i].SetValue(m.contractForm.Values[f.key])
		m.contractKeys = append(m.contractKeys, f.key)
	}
	m.contractInputs = inputs
	m.contractFocus = 0
	m.updateContractFocus()
}

func (m *Model) updateContractFocus() {
	for i := range m.contractInputs {
		if i == m.contractFocus && !m.pickingTenant {
			m.contractInputs[i].Focus()
		} else {
			m.contractInputs[i].Blur()
		}
	}
}

func (m Model) renderContractView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("NOVO CONTRATO"))
	s.WriteString("\n\n")

	// Tenant dropdown
	tenant := m.contractForm.TenantName
	if tenant == "" {
		tenant = "— selecione —"
	}
	s.WriteString(labelStyle.Render("Inquilino") + tenant)
	s.WriteString("\n")
	if m.pickingTenant {
		for i, t := range m.tenants {
			if i == m.tenantCursor {
				s.WriteString(tabActiveStyle.Render("▶ " + t.Name))
			} else {
				s.WriteString("   " + t.Name)
			}
			s.WriteString("\n")
		}
		if len(m.tenants) == 0 {
			s.WriteString(mutedStyle.Render("  Nenhum inquilino cadastrado."))
			s.WriteString("\n")
		}
	}
	s.WriteString("\n")

	for i, input := range m.contractInputs {
		if i == m.contractFocus && !m.pickingTenant {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(labelStyle.Render(contractFields[i].label))
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.contractForm.Months != "" {
		s.WriteString(mutedStyle.Render("Duração: " + m.contractForm.Months + " meses"))
		s.WriteString("\n")
	}
	if m.contractErr != "" {
		s.WriteString(errorStyle.Render(m.contractErr))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("Tab: Próximo campo • Ctrl+T: Escolher inquilino • Ctrl+S: Salvar • Esc: Voltar"))
	return s.String()
}

func (m Model) handleContractKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pickingTenant {
		switch msg.String() {
		case "up", "k":
			if m.tenantCursor > 0 {
				m.tenantCursor--
			}
		case "down", "j":
			if m.tenantCursor < len(m.tenants)-1 {
				m.tenantCursor++
			}
		case "enter":
			if m.tenantCursor < len(m.tenants) {
				t := m.tenants[m.tenantCursor]
				m.contractForm.SelectTenant(t.ID, t.Name)
			}
			m.pickingTenant = false
			m.updateContractFocus()
		case "esc":
			m.pickingTenant = false
			m.updateContractFocus()
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		return m, nil
	case "tab":
		m.contractFocus = (m.contractFocus + 1) % len(m.contractInputs)
		m.updateContractFocus()
		return m, nil
	case "shift+tab":
		m.contractFocus = (m.contractFocus - 1 + len(m.contractInputs)) % len(m.contractInputs)
		m.updateContractFocus()
		return m, nil
	case "ctrl+t":
		m.pickingTenant = true
		m.updateContractFocus()
		return m, nil
	case "ctrl+s":
		m.contractErr = ""
		return m, m.saveContract()
	}

	var cmd tea.Cmd
	m.contractInputs[m.contractFocus], cmd = m.contractInputs[m.contractFocus].Update(msg)
	m.contractForm.SetField(m.contractKeys[m.contractFocus], m.contractInputs[m.contractFocus].Value())
	if v := m.contractForm.Values[m.contractKeys[m.contractFocus]]; v != m.contractInputs[m.contractFocus].Value() {
		m.contractInputs[m.contractFocus].SetValue(v)
		m.contractInputs[m.contractFocus].CursorEnd()
	}
	return m, cmd
}

func (m Model) handleTenantsLoaded(msg tenantsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		switch m.viewMode {
		case ViewContract:
			m.contractErr = "Falha ao carregar inquilinos."
		case ViewTenants:
			m.err = msg.err
			m.tenantStage = TenantStageIdle
		}
		return m, nil
	}
	m.tenants = msg.tenants
	if m.viewMode == ViewTenants {
		m.tenantStage = TenantStageListLoaded
	}
	return m, nil
}

func (m Model) handleContractSaved(msg contractSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// The conflict gets its own wording; everything else is generic.
		switch {
		case errors.Is(msg.err, api.ErrConflict):
			m.contractErr = "Já existe um contrato ativo para este imóvel."
		case errors.Is(msg.err, forms.ErrNoTenant):
			m.contractErr = "Selecione um inquilino para vincular o contrato."
		default:
			m.contractErr = "Não foi possível salvar o contrato."
		}
		return m, nil
	}
	m.viewMode = ViewList
	m.status = "Contrato criado."
	m.loadingList = true
	return m, m.loadProperties()
}
