// ABOUTME: Tenants master-detail screen
// ABOUTME: Stage machine over list and history loads; reselects drop stale detail
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// TenantStage is the explicit state of the master-detail screen. Each load
// has a distinct stage so the view never renders a half-loaded mix.
type TenantStage int

const (
	TenantStageIdle TenantStage = iota
	TenantStageLoadingList
	TenantStageListLoaded
	TenantStageLoadingHistory
	TenantStageHistoryLoaded
)

func (m Model) openTenants() (tea.Model, tea.Cmd) {
	m.viewMode = ViewTenants
	m.tenantStage = TenantStageLoadingList
	m.tenantRow = 0
	m.tenantHistory = nil
	m.err = nil
	return m, m.loadTenants()
}

func (m Model) renderTenantsView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("IMOVIA — Inquilinos"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.tenantStage {
	case TenantStageIdle:
		if m.err != nil {
			s.WriteString(errorStyle.Render("Erro: " + m.err.Error()))
		} else {
			s.WriteString(mutedStyle.Render("Nada carregado."))
		}
		s.WriteString("\n")
	case TenantStageLoadingList:
		s.WriteString(mutedStyle.Render("Carregando inquilinos..."))
		s.WriteString("\n")
	default:
		s.WriteString(m.renderTenantList())
		s.WriteString("\n")
		switch m.tenantStage {
		case TenantStageLoadingHistory:
			s.WriteString(mutedStyle.Render("Carregando contratos..."))
			s.WriteString("\n")
		case TenantStageHistoryLoaded:
			s.WriteString(m.renderTenantHistory())
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓: Navegar • Enter: Contratos • Esc: Lista • q: Sair"))
	return s.String()
}

func (m Model) renderTenantList() string {
	var s strings.Builder
	for i, t := range m.tenants {
		if i == m.tenantRow {
			s.WriteString(tabActiveStyle.Render("▶ " + t.Name))
		} else {
			s.WriteString("   " + t.Name)
		}
		s.WriteString("\n")
	}
	if len(m.tenants) == 0 {
		s.WriteString(mutedStyle.Render("Nenhum inquilino cadastrado."))
		s.WriteString("\n")
	}
	return s.String()
}

func (m Model) renderTenantHistory() string {
	columns := []table.Column{
		{Title: "Período", Width: 26},
		{Title: "Valor", Width: 14},
		{Title: "Status", Width: 12},
	}

	var rows []table.Row
	for _, c := range m.tenantHistory {
		rows = append(rows, table.Row{c.Period(), c.RentValue, c.Status})
	}
	if len(rows) == 0 {
		return mutedStyle.Render("Sem contratos para este inquilino.")
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	return t.View()
}

func (m Model) handleTenantsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.viewMode = ViewList
		return m, nil
	case "up", "k":
		if m.tenantRow > 0 {
			m.tenantRow--
		}
	case "down", "j":
		if m.tenantRow < len(m.tenants)-1 {
			m.tenantRow++
		}
	case "enter":
		if m.tenantRow < len(m.tenants) {
			// Stamp the selection; an answer for an older selection is stale.
			m.tenantSeq++
			m.tenantStage = TenantStageLoadingHistory
			m.tenantHistory = nil
			return m, m.loadTenantHistory(m.tenants[m.tenantRow].ID, m.tenantSeq)
		}
	}
	return m, nil
}

func (m Model) handleTenantHistory(msg tenantHistoryMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.tenantSeq || m.viewMode != ViewTenants {
		return m, nil
	}
	if msg.err != nil {
		m.err = msg.err
		m.tenantStage = TenantStageListLoaded
		return m, nil
	}
	m.err = nil
	m.tenantHistory = msg.history
	m.tenantStage = TenantStageHistoryLoaded
	return m, nil
}
