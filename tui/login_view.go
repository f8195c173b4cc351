// ABOUTME: Login screen
// ABOUTME: Email and password inputs feeding the token-persisting auth call
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) initLoginInputs() {
	inputs := make([]textinput.Model, 2)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "E-mail"
	inputs[0].CharLimit = 100
	inputs[0].Focus()

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "Senha"
	inputs[1].CharLimit = 100
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '•'

	m.loginInputs = inputs
	m.loginFocus = 0
}

func (m Model) renderLoginView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("IMOVIA — Painel Administrativo"))
	s.WriteString("\n\n")

	for i, input := range m.loginInputs {
		if i == m.loginFocus {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.loggingIn {
		s.WriteString(mutedStyle.Render("Autenticando..."))
		s.WriteString("\n")
	}
	if m.loginErr != "" {
		s.WriteString(errorStyle.Render(m.loginErr))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("Tab: Próximo campo • Enter: Entrar • Ctrl+C: Sair"))
	return s.String()
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.loginFocus = (m.loginFocus + 1) % len(m.loginInputs)
		for i := range m.loginInputs {
			if i == m.loginFocus {
				m.loginInputs[i].Focus()
			} else {
				m.loginInputs[i].Blur()
			}
		}
		return m, nil
	case "enter":
		if m.loggingIn {
			return m, nil
		}
		email := m.loginInputs[0].Value()
		password := m.loginInputs[1].Value()
		if email == "" || password == "" {
			m.loginErr = "Informe e-mail e senha."
			return m, nil
		}
		m.loggingIn = true
		m.loginErr = ""
		return m, m.login(email, password)
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m Model) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.loggingIn = false
	if msg.err != nil {
		m.loginErr = "Falha no login. Verifique suas credenciais."
		return m, nil
	}
	m.viewMode = ViewList
	m.loadingList = true
	return m, tea.Batch(m.loadCachedProperties(), m.loadProperties())
}
