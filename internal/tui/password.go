package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passwordModel asks for the administrator password twice with masked echo.
// Submitting both fields empty means "generate one for me".
type passwordModel struct {
	inputs []textinput.Model
	focus  int
	errMsg string

	password string
	done     bool
	quit     bool
}

func newPasswordModel() passwordModel {
	password := textinput.New()
	password.Placeholder = "leave empty to generate"
	password.CharLimit = 128
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.Focus()

	repeat := textinput.New()
	repeat.Placeholder = "repeat password"
	repeat.CharLimit = 128
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	return passwordModel{inputs: []textinput.Model{password, repeat}}
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit), key.Matches(keyMsg, keys.esc):
			m.quit = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			return m.setFocus(m.focus + 1), nil
		case key.Matches(keyMsg, keys.backtab):
			return m.setFocus(m.focus - 1), nil
		case key.Matches(keyMsg, keys.enter):
			if m.focus == 0 && m.inputs[0].Value() != "" {
				return m.setFocus(1), nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m passwordModel) submit() (tea.Model, tea.Cmd) {
	password, repeat := m.inputs[0].Value(), m.inputs[1].Value()

	switch {
	case password == "" && repeat == "":
	case len([]rune(password)) < minPasswordLength:
		m.errMsg = messagePasswordTooShort
		return m.setFocus(0), nil
	case password != repeat:
		m.errMsg = messagePasswordMismatch
		m.inputs[1].SetValue("")
		return m.setFocus(1), nil
	}

	m.errMsg = ""
	m.password = password
	m.done = true
	return m, tea.Quit
}

func (m passwordModel) setFocus(i int) passwordModel {
	n := len(m.inputs)
	m.focus = (i%n + n) % n
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return m
}

func (m passwordModel) View() string {
	var b strings.Builder
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Repeat   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ADMIN PASSWORD", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: confirm │ esc: cancel")
}
