package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Guerrilla-Interactive/featgen/app"
	"github.com/Guerrilla-Interactive/featgen/app/screens/shared"
)

const folderPickerTitle = "Select a folder to create new react feature in"

// FolderModel lets the user pick exactly one directory. Enter on a folder
// selects it, "s" selects the folder being browsed, q or Ctrl+C cancels.
type FolderModel struct {
	picker    filepicker.Model
	selected  string
	cancelled bool
}

// NewFolderModel starts browsing at startDir.
func NewFolderModel(startDir string) FolderModel {
	fp := filepicker.New()
	fp.CurrentDirectory = startDir
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowPermissions = false
	fp.ShowSize = false
	return FolderModel{picker: fp}
}

func (m FolderModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m FolderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "q":
			m.cancelled = true
			return m, tea.Quit
		case "s":
			m.selected = m.picker.CurrentDirectory
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	// The picker sets Path when an allowed entry is chosen; it also steps
	// into the directory, so read Path rather than the current listing.
	if m.picker.Path != "" {
		m.selected = m.picker.Path
		return m, tea.Quit
	}
	return m, cmd
}

func (m FolderModel) View() string {
	if m.selected != "" || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(app.TitleStyle.Render(folderPickerTitle) + "\n")
	b.WriteString(app.PathStyle.Render(m.picker.CurrentDirectory) + "\n\n")
	b.WriteString(m.picker.View() + "\n")
	b.WriteString(shared.Footer("enter: pick folder", "s: pick current", "h: up", "q: cancel"))
	return app.DocStyle.Render(b.String()) + "\n"
}

// Selected returns the chosen directory and whether one was chosen.
func (m FolderModel) Selected() (string, bool) {
	return m.selected, m.selected != ""
}
