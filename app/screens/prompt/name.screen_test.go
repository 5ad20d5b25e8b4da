package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNameModelSubmit(t *testing.T) {
	var m tea.Model = NewNameModel()
	m = typeText(m, "Auth Login")

	assert.Contains(t, m.View(), "creates")
	assert.Contains(t, m.View(), "auth-login/")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)

	v, ok := m.(NameModel).Value()
	assert.True(t, ok)
	assert.Equal(t, "Auth Login", v)
	assert.Empty(t, m.View())
}

func TestNameModelCancel(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		var m tea.Model = NewNameModel()
		m = typeText(m, "Auth")
		m, _ = m.Update(tea.KeyMsg{Type: key})

		v, ok := m.(NameModel).Value()
		assert.False(t, ok)
		assert.Empty(t, v)
	}
}

func TestNameModelShowsPlaceholder(t *testing.T) {
	view := NewNameModel().View()
	assert.Contains(t, view, "React Feature Name")
	assert.Contains(t, view, "enter: confirm")
}
