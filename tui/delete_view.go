// ABOUTME: Delete confirmation screen for properties
// ABOUTME: Requires an explicit yes before the irreversible call goes out
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var deleteWarnStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("9"))

func (m Model) renderConfirmDeleteView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("EXCLUIR IMÓVEL"))
	s.WriteString("\n\n")
	s.WriteString(deleteWarnStyle.Render("Excluir \"" + m.deleteName + "\"?"))
	s.WriteString("\n")
	s.WriteString(mutedStyle.Render("Esta ação não pode ser desfeita."))
	s.WriteString("\n\n")
	if m.err != nil {
		s.WriteString(errorStyle.Render("Erro: " + m.err.Error()))
		s.WriteString("\n")
	}
	s.WriteString(helpStyle.Render("s: Confirmar • n/Esc: Cancelar"))
	return s.String()
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "y":
		return m, m.deleteProperty(m.deleteID)
	case "n", "esc":
		m.viewMode = ViewList
		m.deleteID = ""
		m.deleteName = ""
	}
	return m, nil
}

func (m Model) handleDeleteDone(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}
	m.viewMode = ViewList
	m.status = "Imóvel \"" + m.deleteName + "\" excluído."
	m.deleteID = ""
	m.deleteName = ""
	m.loadingList = true
	return m, m.loadProperties()
}
