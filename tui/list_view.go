// ABOUTME: Property list screen with search filter
// ABOUTME: Table of properties with navigation into the other views
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"imovia/api"
	"imovia/models"
)

func (m Model) renderListView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("IMOVIA — Imóveis"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	if m.searching {
		s.WriteString("Busca: " + m.searchInput.View())
		s.WriteString("\n\n")
	} else if m.searchQuery != "" {
		s.WriteString(mutedStyle.Render("Filtro: " + m.searchQuery + " (esc limpa)"))
		s.WriteString("\n\n")
	}

	s.WriteString(m.renderPropertiesTable())
	s.WriteString("\n")

	if m.loadingList {
		s.WriteString(mutedStyle.Render("Atualizando do servidor..."))
		s.WriteString("\n")
	} else if m.fromCache {
		banner := "Exibindo dados do último acesso (offline)"
		if !m.cacheSavedAt.IsZero() {
			banner = "Exibindo dados de " + m.cacheSavedAt.Format("02/01/2006 15:04") + " (offline)"
		}
		s.WriteString(mutedStyle.Render(banner))
		s.WriteString("\n")
	}
	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render("Erro: " + m.err.Error()))
		s.WriteString("\n")
	}

	s.WriteString(m.renderListHelp())
	return s.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"Imóveis", "Mapa", "Inquilinos", "Funcionários"}
	active := map[ViewMode]int{ViewList: 0, ViewMap: 1, ViewTenants: 2, ViewEmployees: 3}

	var rendered []string
	for i, tab := range tabs {
		if active[m.viewMode] == i {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// filteredProperties applies the search box over name, type, tenant and
// description, case-insensitively.
func (m Model) filteredProperties() []models.PropertyListItem {
	if m.searchQuery == "" {
		return m.properties
	}
	q := strings.ToLower(m.searchQuery)
	var out []models.PropertyListItem
	for _, p := range m.properties {
		haystack := strings.ToLower(p.Name + " " + p.Type + " " + p.CurrentTenant + " " + p.Description)
		if strings.Contains(haystack, q) {
			out = append(out, p)
		}
	}
	return out
}

func (m Model) renderPropertiesTable() string {
	items := m.filteredProperties()

	columns := []table.Column{
		{Title: "Imóvel", Width: 28},
		{Title: "Tipo", Width: 10},
		{Title: "Inquilino", Width: 22},
		{Title: "Valor", Width: 14},
		{Title: "Fim Contrato", Width: 12},
		{Title: "Status", Width: 12},
	}

	var rows []table.Row
	for _, p := range items {
		rows = append(rows, table.Row{
			p.Name,
			p.Type,
			p.CurrentTenant,
			p.CurrentRentValue,
			p.CurrentContractEndDate,
			p.Status,
		})
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
	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}
	return t.View()
}

func (m Model) renderListHelp() string {
	help := []string{
		"↑/↓: Navegar",
		"Enter: Editar",
		"n: Novo",
		"c: Contrato",
		"d: Excluir",
		"/: Buscar",
		"m: Mapa",
		"t: Inquilinos",
		"f: Funcionários",
		"r: Recarregar",
		"e: Exportar CSV",
		"q: Sair",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.searchQuery = m.searchInput.Value()
			m.selectedRow = 0
			return m, nil
		case "esc":
			m.searching = false
			m.searchInput.SetValue("")
			m.searchQuery = ""
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.searchQuery = m.searchInput.Value()
		m.selectedRow = 0
		return m, cmd
	}

	items := m.filteredProperties()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < len(items)-1 {
			m.selectedRow++
		}
	case "enter":
		if m.selectedRow < len(items) {
			return m.openEditor(&items[m.selectedRow])
		}
	case "n":
		return m.openEditor(nil)
	case "c":
		if m.selectedRow < len(items) {
			return m.openContractForm(items[m.selectedRow].ID)
		}
	case "d":
		if m.selectedRow < len(items) {
			m.deleteID = items[m.selectedRow].ID
			m.deleteName = items[m.selectedRow].Name
			m.viewMode = ViewConfirmDelete
		}
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, nil
	case "m":
		return m.openMap()
	case "t":
		return m.openTenants()
	case "f":
		return m.openEmployees()
	case "r":
		m.loadingList = true
		m.err = nil
		m.status = ""
		return m, m.loadProperties()
	case "e":
		return m, m.exportCSV(items)
	case "esc":
		m.searchQuery = ""
		m.searchInput.SetValue("")
	}

	return m, nil
}

func (m Model) handlePropertiesLoaded(msg propertiesLoadedMsg) (tea.Model, tea.Cmd) {
	m.loadingList = false
	if msg.err != nil {
		if errors.Is(msg.err, api.ErrUnauthorized) {
			// Expired token: back to login rather than a dead list.
			m.viewMode = ViewLogin
			m.loginErr = "Sessão expirada. Entre novamente."
			return m, nil
		}
		m.err = msg.err
		// keep whatever the cache gave us
		return m, nil
	}
	m.err = nil
	m.fromCache = false
	m.properties = msg.items
	if m.selectedRow >= len(msg.items) {
		m.selectedRow = 0
	}
	if m.viewMode == ViewMap {
		m.regroup()
	}
	return m, nil
}

func (m Model) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}
	m.status = fmt.Sprintf("%d imóveis exportados para %s", msg.count, msg.path)
	return m, nil
}

func (m Model) handleCachedProperties(msg cachedPropertiesMsg) (tea.Model, tea.Cmd) {
	// The fresh load may already have landed; never shadow it with the cache.
	if len(m.properties) > 0 || len(msg.items) == 0 {
		return m, nil
	}
	m.properties = msg.items
	m.fromCache = true
	m.cacheSavedAt = msg.savedAt
	return m, nil
}
