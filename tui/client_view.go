// ABOUTME: Tenant profile editor reached from the property form
// ABOUTME: Switches between PF and PJ field sets and writes the snapshot back
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"imovia/forms"
	"imovia/models"
)

type clientField struct {
	key         string
	label       string
	placeholder string
}

var clientCommonFields = []clientField{
	{forms.ClientFieldName, "Nome", ""},
	{forms.ClientFieldEmail, "E-mail", ""},
	{forms.ClientFieldPhone, "Telefone", "(DD) 90000-0000"},
	{forms.ClientFieldPhone2, "Telefone 2", ""},
	{forms.ClientFieldSocial, "Rede social", ""},
}

var clientPFFields = []clientField{
	{forms.ClientFieldCPF, "CPF", "000.000.000-00"},
	{forms.ClientFieldRG, "RG", ""},
	{forms.ClientFieldBirthDate, "Nascimento", "DD/MM/AAAA"},
	{forms.ClientFieldMarital, "Estado civil", ""},
	{forms.ClientFieldProfession, "Profissão", ""},
}

var clientPJFields = []clientField{
	{forms.ClientFieldCompanyName, "Razão social", ""},
	{forms.ClientFieldCNPJ, "CNPJ", "00.000.000/0000-00"},
	{forms.ClientFieldLegalRep, "Representante", ""},
	{forms.ClientFieldLegalRepCPF, "CPF do repr.", "000.000.000-00"},
}

func (m Model) clientFields() []clientField {
	fields := append([]clientField{}, clientCommonFields...)
	if m.clientForm.Type == models.TenantPJ {
		return append(fields, clientPJFields...)
	}
	return append(fields, clientPFFields...)
}

func (m Model) openClientForm() (tea.Model, tea.Cmd) {
	m.viewMode = ViewClient
	if m.clientForm == nil {
		m.clientForm = forms.NewClientForm()
	}
	m.initClientInputs()
	return m, nil
}

func (m *Model) initClientInputs() {
	fields := m.clientFields()
	m.clientKeys = m.clientKeys[:0]
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = f.placeholder
		inputs[i].CharLimit = 120
		inputs[i].SetValue(m.clientForm.Values[f.key])
		m.clientKeys = append(m.clientKeys, f.key)
	}
	m.clientInputs = inputs
	if m.clientFocus >= len(inputs) {
		m.clientFocus = 0
	}
	for i := range m.clientInputs {
		if i == m.clientFocus {
			m.clientInputs[i].Focus()
		} else {
			m.clientInputs[i].Blur()
		}
	}
}

func (m Model) renderClientView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("INQUILINO"))
	s.WriteString("\n\n")

	// Type toggle
	pf, pj := "Pessoa Física", "Pessoa Jurídica"
	if m.clientForm.Type == models.TenantPJ {
		s.WriteString(tabInactiveStyle.Render(pf) + tabActiveStyle.Render(pj))
	} else {
		s.WriteString(tabActiveStyle.Render(pf) + tabInactiveStyle.Render(pj))
	}
	s.WriteString("\n\n")

	fields := m.clientFields()
	for i, input := range m.clientInputs {
		if i == m.clientFocus {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(labelStyle.Render(fields[i].label))
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("Tab: Próximo campo • Ctrl+J: Alternar PF/PJ • Ctrl+S: Aplicar • Esc: Voltar"))
	return s.String()
}

func (m Model) handleClientKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewEdit
		return m, nil
	case "tab":
		m.clientFocus = (m.clientFocus + 1) % len(m.clientInputs)
		m.initClientInputs()
		return m, nil
	case "shift+tab":
		m.clientFocus = (m.clientFocus - 1 + len(m.clientInputs)) % len(m.clientInputs)
		m.initClientInputs()
		return m, nil
	case "ctrl+j":
		if m.clientForm.Type == models.TenantPF {
			m.clientForm.SetType(models.TenantPJ)
		} else {
			m.clientForm.SetType(models.TenantPF)
		}
		m.clientFocus = 0
		m.initClientInputs()
		return m, nil
	case "ctrl+s":
		// Write the snapshot back into the property draft and return.
		profile := m.clientForm.Profile()
		m.form.SetField(forms.FieldTenantName, profile.DisplayName())
		m.form.SetField(forms.FieldTenantPhone, profile.Phone)
		m.syncEditInputs()
		m.viewMode = ViewEdit
		return m, nil
	}

	var cmd tea.Cmd
	m.clientInputs[m.clientFocus], cmd = m.clientInputs[m.clientFocus].Update(msg)
	m.clientForm.SetField(m.clientKeys[m.clientFocus], m.clientInputs[m.clientFocus].Value())
	// Push the masked value back into the widget.
	if v := m.clientForm.Values[m.clientKeys[m.clientFocus]]; v != m.clientInputs[m.clientFocus].Value() {
		m.clientInputs[m.clientFocus].SetValue(v)
		m.clientInputs[m.clientFocus].CursorEnd()
	}
	return m, cmd
}
