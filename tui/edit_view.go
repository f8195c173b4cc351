// ABOUTME: Property editor screen backed by the masked form draft
// ABOUTME: Reconciles the draft with the active contract in the background
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"imovia/forms"
	"imovia/models"
)

var errSaveProperty = errors.New("não foi possível salvar o imóvel, tente novamente")

// editFields is the on-screen field order.
var editFields = []struct {
	key         string
	label       string
	placeholder string
}{
	{forms.FieldName, "Imóvel", "Nome do imóvel"},
	{forms.FieldType, "Tipo", "Casa, Comercial, Galpão, Salas, Terreno, Outro"},
	{forms.FieldDescription, "Endereço", "Rua, número"},
	{forms.FieldStatus, "Status", "Disponível, Alugado, Manutenção"},
	{forms.FieldMatricula, "Matrícula", ""},
	{forms.FieldCagece, "Cagece", ""},
	{forms.FieldEnel, "Enel", ""},
	{forms.FieldLastRenovation, "Última reforma", "DD/MM/AAAA"},
	{forms.FieldRentValue, "Aluguel", "R$"},
	{forms.FieldCondoValue, "Condomínio", "R$"},
	{forms.FieldDepositValue, "Caução", "R$"},
	{forms.FieldIptuStatus, "IPTU", "Pago, Pendente, Isento"},
	{forms.FieldRentDueDay, "Dia de vencimento", "05, 10, 15, 20, 25"},
	{forms.FieldStartDate, "Início do contrato", "DD/MM/AAAA"},
	{forms.FieldDueDate, "Fim do contrato", "DD/MM/AAAA"},
	{forms.FieldTenantName, "Inquilino", ""},
	{forms.FieldTenantPhone, "Telefone", "(DD) 90000-0000"},
	{forms.FieldNotes, "Observações", ""},
}

// openEditor opens the form for an existing property (item != nil) or a
// blank one. An existing property opens already seeded from the list entry;
// the full record and the contract history refine it in the background.
// Opening stamps a new edit sequence; any reconciliation still in flight for
// a previous form is dropped when it lands.
func (m Model) openEditor(item *models.PropertyListItem) (tea.Model, tea.Cmd) {
	m.viewMode = ViewEdit
	m.editSeq++
	m.err = nil
	m.status = ""

	if item == nil {
		m.editingID = ""
		m.form = forms.NewPropertyForm()
		m.initEditInputs()
		m.reconciling = false
		return m, nil
	}
	m.editingID = item.ID
	m.form = forms.PropertyFormFromList(item)
	m.initEditInputs()
	m.reconciling = true
	return m, m.openProperty(item.ID, m.editSeq)
}

// openEditorAt opens a blank form pre-seeded from a map pick.
func (m Model) openEditorAt(lat, lng float64, address string) (tea.Model, tea.Cmd) {
	model, cmd := m.openEditor(nil)
	next := model.(Model)
	next.form.SetLocation(lat, lng)
	if address != "" {
		next.form.SetField(forms.FieldDescription, address)
		next.syncEditInputs()
	}
	return next, cmd
}

func (m *Model) initEditInputs() {
	m.formKeys = m.formKeys[:0]
	inputs := make([]textinput.Model, len(editFields))
	for i, f := range editFields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = f.placeholder
		inputs[i].CharLimit = 120
		inputs[i].SetValue(m.form.Values[f.key])
		m.formKeys = append(m.formKeys, f.key)
	}
	m.formInputs = inputs
	m.focusIndex = 0
	m.updateFormFocus()
}

// syncEditInputs pushes the form's canonical values back into the widgets,
// used after masking or a contract overlay changed them underneath.
func (m *Model) syncEditInputs() {
	for i, key := range m.formKeys {
		if m.formInputs[i].Value() != m.form.Values[key] {
			m.formInputs[i].SetValue(m.form.Values[key])
			m.formInputs[i].CursorEnd()
		}
	}
}

func (m *Model) updateFormFocus() {
	for i := range m.formInputs {
		if i == m.focusIndex {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}

func (m Model) renderEditView() string {
	var s strings.Builder

	if m.editingID == "" {
		s.WriteString(titleStyle.Render("NOVO IMÓVEL"))
	} else {
		s.WriteString(titleStyle.Render("EDITAR IMÓVEL"))
	}
	s.WriteString("\n\n")

	for i, input := range m.formInputs {
		if i == m.focusIndex {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(labelStyle.Render(editFields[i].label))
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.form.Months != "" {
		s.WriteString(mutedStyle.Render("Duração do contrato: " + m.form.Months + " meses"))
		s.WriteString("\n")
	}
	if m.reconciling {
		s.WriteString(mutedStyle.Render("Carregando dados do contrato ativo..."))
		s.WriteString("\n")
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render("Erro: " + m.err.Error()))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("Tab: Próximo campo • Ctrl+S: Salvar • Ctrl+T: Inquilino • Esc: Cancelar"))
	return s.String()
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		m.editSeq++ // orphan any reconciliation still in flight
		return m, nil
	case "tab":
		m.focusIndex = (m.focusIndex + 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "shift+tab":
		m.focusIndex = (m.focusIndex - 1 + len(m.formInputs)) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "ctrl+s":
		if err := m.form.Validate(); err != nil {
			m.err = err
			return m, nil
		}
		return m, m.saveProperty()
	case "ctrl+t":
		return m.openClientForm()
	}

	// Only a keystroke that changed the text counts as an edit; arrow and
	// enter presses must not mark the field touched.
	before := m.formInputs[m.focusIndex].Value()
	var cmd tea.Cmd
	m.formInputs[m.focusIndex], cmd = m.formInputs[m.focusIndex].Update(msg)
	if v := m.formInputs[m.focusIndex].Value(); v != before {
		m.form.SetField(m.formKeys[m.focusIndex], v)
		m.syncEditInputs()
	}
	return m, cmd
}

func (m Model) handlePropertyOpened(msg propertyOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.editSeq || m.viewMode != ViewEdit {
		return m, nil
	}
	if msg.err != nil {
		m.err = msg.err
		m.reconciling = false
		return m, nil
	}

	// The full record refines the list-entry seed field by field; anything
	// the user typed meanwhile stays. The contract history overlays next.
	m.form.MergeRecord(msg.property)
	m.syncEditInputs()
	return m, m.loadHistory(msg.property.ID, msg.seq)
}

func (m Model) handleHistoryLoaded(msg historyLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.editSeq || m.viewMode != ViewEdit {
		return m, nil
	}
	m.reconciling = false
	if msg.err != nil {
		// The form stays usable on its snapshot data.
		m.err = msg.err
		return m, nil
	}
	m.form.ApplyActiveContract(msg.history)
	m.syncEditInputs()
	return m, nil
}

func (m Model) handlePropertySaved(msg propertySavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Transport detail goes to the log; the user sees a legible message.
		m.log.Warn("property save failed", zap.Error(msg.err))
		m.err = errSaveProperty
		return m, nil
	}
	m.viewMode = ViewList
	m.status = "Imóvel salvo."
	m.loadingList = true
	return m, m.loadProperties()
}
