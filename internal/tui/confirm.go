package tui

import (
	"fmt"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel asks whether the profile of an existing administrator may be
// overwritten.
type confirmModel struct {
	existing models.User

	answered bool
	yes      bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.answered, m.yes = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.answered, m.yes = true, false
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	return renderPage("ADMIN EXISTS", overlayBoxStyle.Render(confirmQuestion(m.existing)), "y: overwrite profile │ n: keep as is")
}

func confirmQuestion(existing models.User) string {
	return fmt.Sprintf(
		"An administrator already uses %s (%s).\nOverwrite the profile with the configured values?\nThe password is not changed.",
		existing.Email, valueOrDash(existing.Name),
	)
}
