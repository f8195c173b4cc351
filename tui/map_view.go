// ABOUTME: Map screen listing marker groups and paging co-located properties
// ABOUTME: Also hosts the coordinate pick flow that seeds a new property
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"imovia/geo"
)

const pickStep = 0.001 // ~110m per arrow press

func (m *Model) regroup() {
	m.groups = geo.GroupProperties(m.properties)
	if m.selectedGroup >= len(m.groups) {
		m.selectedGroup = 0
	}
	if len(m.groups) > 0 {
		m.carousel.Clamp(len(m.groups[m.selectedGroup].Properties))
	} else {
		m.carousel.Reset(0)
	}
}

func (m Model) openMap() (tea.Model, tea.Cmd) {
	m.viewMode = ViewMap
	m.picked = false
	m.pickedAddress = ""
	m.regroup()
	return m, nil
}

func (m Model) renderMapView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("IMOVIA — Mapa"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	if m.picked {
		s.WriteString(m.renderPick())
		s.WriteString("\n")
		s.WriteString(helpStyle.Render("←/→/↑/↓: Mover • Enter: Cadastrar aqui • Esc: Cancelar"))
		return s.String()
	}

	if len(m.groups) == 0 {
		s.WriteString(mutedStyle.Render("Nenhum imóvel com coordenadas cadastradas."))
		s.WriteString("\n\n")
		s.WriteString(m.renderMapHelp())
		return s.String()
	}

	for i, g := range m.groups {
		marker := "  "
		if i == m.selectedGroup {
			marker = "▶ "
		}
		label := fmt.Sprintf("%s(%d) %.6f, %.6f", marker, len(g.Properties), g.Lat, g.Lng)
		if i == m.selectedGroup {
			s.WriteString(tabActiveStyle.Render(label))
		} else {
			s.WriteString(label)
		}
		s.WriteString("\n")
	}
	s.WriteString("\n")

	group := m.groups[m.selectedGroup]
	s.WriteString(m.renderMarkerCard(group))
	s.WriteString("\n")

	s.WriteString(m.renderMapHelp())
	return s.String()
}

// renderMarkerCard shows the property currently selected in the marker's
// carousel, with a pager line when the marker holds more than one.
func (m Model) renderMarkerCard(g geo.PropertyGroup) string {
	var s strings.Builder

	p := g.Properties[m.carousel.Index()]
	if len(g.Properties) > 1 {
		s.WriteString(mutedStyle.Render(fmt.Sprintf("Imóvel %d de %d neste local", m.carousel.Index()+1, len(g.Properties))))
		s.WriteString("\n")
	}

	s.WriteString(labelStyle.Render("Imóvel") + p.Name + "\n")
	s.WriteString(labelStyle.Render("Tipo") + p.Type + "\n")
	s.WriteString(labelStyle.Render("Status") + p.Status + "\n")
	if p.CurrentTenant != "" {
		s.WriteString(labelStyle.Render("Inquilino") + p.CurrentTenant + "\n")
	}
	if p.CurrentRentValue != "" {
		s.WriteString(labelStyle.Render("Valor") + p.CurrentRentValue + "\n")
	}
	if p.CurrentContractEndDate != "" {
		s.WriteString(labelStyle.Render("Fim do contrato") + p.CurrentContractEndDate + "\n")
	}
	return s.String()
}

func (m Model) renderPick() string {
	var s strings.Builder
	s.WriteString(labelStyle.Render("Local escolhido") + fmt.Sprintf("%.6f, %.6f", m.pickedLat, m.pickedLng) + "\n")
	address := m.pickedAddress
	if address == "" {
		address = "Resolvendo endereço..."
	}
	s.WriteString(labelStyle.Render("Endereço") + address + "\n")
	return s.String()
}

func (m Model) renderMapHelp() string {
	help := []string{
		"↑/↓: Marcador",
		"←/→: Imóvel no marcador",
		"Enter: Editar",
		"p: Escolher local",
		"Esc: Lista",
		"q: Sair",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleMapKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picked {
		return m.handlePickKeys(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.viewMode = ViewList
	case "up", "k":
		if m.selectedGroup > 0 {
			m.selectedGroup--
			m.carousel.Reset(len(m.groups[m.selectedGroup].Properties))
		}
	case "down", "j":
		if m.selectedGroup < len(m.groups)-1 {
			m.selectedGroup++
			m.carousel.Reset(len(m.groups[m.selectedGroup].Properties))
		}
	case "right", "l":
		m.carousel.Next()
	case "left", "h":
		m.carousel.Prev()
	case "enter":
		if len(m.groups) > 0 {
			g := m.groups[m.selectedGroup]
			return m.openEditor(&g.Properties[m.carousel.Index()])
		}
	case "p":
		m.picked = true
		m.pickedLat = m.cfg.Map.Lat
		m.pickedLng = m.cfg.Map.Lng
		if len(m.groups) > 0 {
			g := m.groups[m.selectedGroup]
			m.pickedLat = g.Lat
			m.pickedLng = g.Lng
		}
		m.pickedAddress = ""
		return m, m.reverseGeocode(m.pickedLat, m.pickedLng)
	}

	return m, nil
}

func (m Model) handlePickKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.picked = false
		return m, nil
	case "up":
		m.pickedLat += pickStep
	case "down":
		m.pickedLat -= pickStep
	case "left":
		m.pickedLng -= pickStep
	case "right":
		m.pickedLng += pickStep
	case "enter":
		// Seed a fresh property at the picked spot.
		address := ""
		if m.pickedAddress != "" && m.pickedAddress != geo.FallbackAddress {
			address = m.pickedAddress
		}
		m.picked = false
		return m.openEditorAt(m.pickedLat, m.pickedLng, address)
	default:
		return m, nil
	}
	m.pickedAddress = ""
	return m, m.reverseGeocode(m.pickedLat, m.pickedLng)
}

func (m Model) handleGeocodeDone(msg geocodeDoneMsg) (tea.Model, tea.Cmd) {
	// The pick may have moved on; only label the coordinate still showing.
	if !m.picked || msg.lat != m.pickedLat || msg.lng != m.pickedLng {
		return m, nil
	}
	if msg.address == "" {
		m.pickedAddress = geo.FallbackAddress
	} else {
		m.pickedAddress = msg.address
	}
	return m, nil
}
