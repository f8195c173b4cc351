// ABOUTME: Employee roster and editor screens
// ABOUTME: Listing, creation and editing of staff records
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"imovia/forms"
)

var errSaveEmployee = errors.New("não foi possível salvar o funcionário, tente novamente")

var employeeFields = []struct {
	key         string
	label       string
	placeholder string
}{
	{forms.EmployeeFieldName, "Nome", ""},
	{forms.EmployeeFieldCPF, "CPF", "000.000.000-00"},
	{forms.EmployeeFieldEmail, "E-mail", ""},
	{forms.EmployeeFieldRole, "Cargo", ""},
	{forms.EmployeeFieldPhone, "Telefone", "(DD) 90000-0000"},
	{forms.EmployeeFieldLocation, "Cidade", ""},
	{forms.EmployeeFieldBirthDate, "Nascimento", "DD/MM/AAAA"},
	{forms.EmployeeFieldPixKey, "Chave PIX", ""},
	{forms.EmployeeFieldSocial, "Rede social", ""},
	{forms.EmployeeFieldSalary, "Salário", "R$"},
	{forms.EmployeeFieldPassword, "Senha", "vazio mantém a atual"},
}

func (m Model) openEmployees() (tea.Model, tea.Cmd) {
	m.viewMode = ViewEmployees
	m.editingStaff = false
	m.employeeRow = 0
	m.err = nil
	return m, m.loadEmployees()
}

func (m *Model) initEmployeeInputs() {
	m.employeeKeys = m.employeeKeys[:0]
	inputs := make([]textinput.Model, len(employeeFields))
	for i, f := range employeeFields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = f.placeholder
		inputs[i].CharLimit = 120
		inputs[i].SetValue(m.employeeForm.Values[f.key])
		if f.key == forms.EmployeeFieldPassword {
			inputs[i].EchoMode = textinput.EchoPassword
			inputs[i].EchoCharacter = '•'
		}
		m.employeeKeys = append(m.employeeKeys, f.key)
	}
	m.employeeInputs = inputs
	m.employeeFocus = 0
	m.updateEmployeeFocus()
}

func (m *Model) updateEmployeeFocus() {
	for i := range m.employeeInputs {
		if i == m.employeeFocus {
			m.employeeInputs[i].Focus()
		} else {
			m.employeeInputs[i].Blur()
		}
	}
}

func (m Model) renderEmployeesView() string {
	if m.editingStaff {
		return m.renderEmployeeForm()
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("IMOVIA — Funcionários"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	columns := []table.Column{
		{Title: "Nome", Width: 26},
		{Title: "Cargo", Width: 16},
		{Title: "E-mail", Width: 26},
		{Title: "Telefone", Width: 16},
	}
	var rows []table.Row
	for _, e := range m.employees {
		rows = append(rows, table.Row{e.Name, e.Role, e.Email, e.Phone})
	}

	height := m.height - 12
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	if m.employeeRow < len(rows) {
		t.SetCursor(m.employeeRow)
	}
	s.WriteString(t.View())
	s.WriteString("\n")

	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render("Erro: " + m.err.Error()))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("↑/↓: Navegar • Enter: Editar • n: Novo • Esc: Lista • q: Sair"))
	return s.String()
}

func (m Model) renderEmployeeForm() string {
	var s strings.Builder

	if m.employeeForm.ID == "" {
		s.WriteString(titleStyle.Render("NOVO FUNCIONÁRIO"))
	} else {
		s.WriteString(titleStyle.Render("EDITAR FUNCIONÁRIO"))
	}
	s.WriteString("\n\n")

	for i, input := range m.employeeInputs {
		if i == m.employeeFocus {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(labelStyle.Render(employeeFields[i].label))
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.err != nil {
		s.WriteString(errorStyle.Render("Erro: " + m.err.Error()))
		s.WriteString("\n")
	}
	s.WriteString(helpStyle.Render("Tab: Próximo campo • Ctrl+S: Salvar • Esc: Cancelar"))
	return s.String()
}

func (m Model) handleEmployeesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingStaff {
		return m.handleEmployeeFormKeys(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.viewMode = ViewList
	case "up", "k":
		if m.employeeRow > 0 {
			m.employeeRow--
		}
	case "down", "j":
		if m.employeeRow < len(m.employees)-1 {
			m.employeeRow++
		}
	case "enter":
		if m.employeeRow < len(m.employees) {
			m.employeeForm = forms.EmployeeFormFrom(m.employees[m.employeeRow])
			m.editingStaff = true
			m.err = nil
			m.initEmployeeInputs()
		}
	case "n":
		m.employeeForm = forms.NewEmployeeForm()
		m.editingStaff = true
		m.err = nil
		m.initEmployeeInputs()
	}
	return m, nil
}

func (m Model) handleEmployeeFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editingStaff = false
		return m, nil
	case "tab":
		m.employeeFocus = (m.employeeFocus + 1) % len(m.employeeInputs)
		m.updateEmployeeFocus()
		return m, nil
	case "shift+tab":
		m.employeeFocus = (m.employeeFocus - 1 + len(m.employeeInputs)) % len(m.employeeInputs)
		m.updateEmployeeFocus()
		return m, nil
	case "ctrl+s":
		return m, m.saveEmployee()
	}

	var cmd tea.Cmd
	m.employeeInputs[m.employeeFocus], cmd = m.employeeInputs[m.employeeFocus].Update(msg)
	m.employeeForm.SetField(m.employeeKeys[m.employeeFocus], m.employeeInputs[m.employeeFocus].Value())
	if v := m.employeeForm.Values[m.employeeKeys[m.employeeFocus]]; v != m.employeeInputs[m.employeeFocus].Value() {
		m.employeeInputs[m.employeeFocus].SetValue(v)
		m.employeeInputs[m.employeeFocus].CursorEnd()
	}
	return m, cmd
}

func (m Model) handleEmployeesLoaded(msg employeesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}
	m.err = nil
	m.employees = msg.employees
	if m.employeeRow >= len(msg.employees) {
		m.employeeRow = 0
	}
	return m, nil
}

func (m Model) handleEmployeeSaved(msg employeeSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warn("employee save failed", zap.Error(msg.err))
		m.err = errSaveEmployee
		return m, nil
	}
	// Re-fetch instead of patching the local slice; the backend may have
	// normalized fields.
	m.editingStaff = false
	m.status = "Funcionário salvo."
	return m, m.loadEmployees()
}
