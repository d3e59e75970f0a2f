package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m tea.Model, text string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func press(m tea.Model, keyType tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: keyType})
}

func TestPasswordModel(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		repeat       string
		wantDone     bool
		wantPassword string
		wantErr      string
	}{
		{name: "matching passwords", password: "correct-horse", repeat: "correct-horse", wantDone: true, wantPassword: "correct-horse"},
		{name: "empty means generate", wantDone: true},
		{name: "too short", password: "short", repeat: "short", wantErr: messagePasswordTooShort},
		{name: "mismatch", password: "correct-horse", repeat: "battery-staple", wantErr: messagePasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = newPasswordModel()

			if tt.password != "" {
				m = typeText(m, tt.password)
			}
			m, _ = press(m, tea.KeyTab)
			if tt.repeat != "" {
				m = typeText(m, tt.repeat)
			}
			m, cmd := press(m, tea.KeyEnter)

			pm := m.(passwordModel)
			assert.Equal(t, tt.wantDone, pm.done)
			assert.Equal(t, tt.wantErr, pm.errMsg)
			if tt.wantDone {
				require.NotNil(t, cmd)
				assert.Equal(t, tt.wantPassword, pm.password)
				return
			}
			assert.Nil(t, cmd)
			assert.Contains(t, pm.View(), tt.wantErr)
		})
	}
}

func TestPasswordModel_EnterMovesToRepeat(t *testing.T) {
	var m tea.Model = newPasswordModel()

	m = typeText(m, "correct-horse")
	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, 1, m.(passwordModel).focus)

	m = typeText(m, "correct-horse")
	m, _ = press(m, tea.KeyEnter)
	assert.True(t, m.(passwordModel).done)
}

func TestPasswordModel_MismatchClearsRepeat(t *testing.T) {
	var m tea.Model = newPasswordModel()

	m = typeText(m, "correct-horse")
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "wrong-horse!")
	m, _ = press(m, tea.KeyEnter)

	pm := m.(passwordModel)
	assert.Empty(t, pm.inputs[1].Value())
	assert.Equal(t, 1, pm.focus)
	assert.Equal(t, "correct-horse", pm.inputs[0].Value())
}

func TestPasswordModel_Cancel(t *testing.T) {
	var m tea.Model = newPasswordModel()

	m, cmd := press(m, tea.KeyEsc)

	assert.True(t, m.(passwordModel).quit)
	assert.NotNil(t, cmd)
}

func TestPasswordModel_FocusWraps(t *testing.T) {
	m := newPasswordModel()

	assert.Equal(t, 1, m.setFocus(-1).focus)
	assert.Equal(t, 0, m.setFocus(2).focus)
}

func TestPasswordModel_ViewMasksInput(t *testing.T) {
	var m tea.Model = newPasswordModel()
	m = typeText(m, "topsecret")

	assert.NotContains(t, m.View(), "topsecret")
	assert.Contains(t, m.View(), "ADMIN PASSWORD")
}
