package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestFolderModelSelectCurrent(t *testing.T) {
	dir := t.TempDir()
	var m tea.Model = NewFolderModel(dir)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.NotNil(t, cmd)

	got, ok := m.(FolderModel).Selected()
	assert.True(t, ok)
	assert.Equal(t, dir, got)
	assert.Empty(t, m.View())
}

func TestFolderModelCancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		var m tea.Model = NewFolderModel(t.TempDir())
		m, _ = m.Update(msg)

		_, ok := m.(FolderModel).Selected()
		assert.False(t, ok)
	}
}

func TestFolderModelView(t *testing.T) {
	dir := t.TempDir()
	view := NewFolderModel(dir).View()
	assert.Contains(t, view, "Select a folder to create new react feature in")
	assert.Contains(t, view, "q: cancel")
}
