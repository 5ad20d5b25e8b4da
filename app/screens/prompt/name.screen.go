package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Guerrilla-Interactive/featgen/app"
	"github.com/Guerrilla-Interactive/featgen/app/casing"
	"github.com/Guerrilla-Interactive/featgen/app/screens/shared"
)

const (
	namePromptTitle = "React Feature Name"
	namePlaceholder = "Auth"
)

// NameModel asks for the feature name on a single line. Enter submits,
// Esc or Ctrl+C cancels.
type NameModel struct {
	input     textinput.Model
	submitted bool
	cancelled bool
}

// NewNameModel returns a focused name prompt.
func NewNameModel() NameModel {
	ti := textinput.New()
	ti.Placeholder = namePlaceholder
	ti.Prompt = "› "
	ti.CharLimit = 120
	ti.Focus()
	return NameModel{input: ti}
}

func (m NameModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m NameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m NameModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(app.TitleStyle.Render(namePromptTitle) + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	if folder := casing.ToParamCase(m.input.Value()); folder != "" {
		b.WriteString(app.PathStyle.Render("creates ") + app.HighlightStyle.Render(folder+"/") + "\n")
	}
	b.WriteString(shared.Footer("enter: confirm", "esc: cancel"))
	return app.DocStyle.Render(b.String()) + "\n"
}

// Value returns the typed name and whether the user submitted it.
func (m NameModel) Value() (string, bool) {
	if !m.submitted {
		return "", false
	}
	return m.input.Value(), true
}
