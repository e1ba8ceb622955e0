package prompt

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/wsbootstrap/ws/internal/ui/styles"
)

type textInputModel struct {
	textInput textinput.Model
	prompt    string
	def       string
	done      bool
	cancelled bool
}

func newTextInputModel(prompt, def string) textInputModel {
	ti := textinput.New()
	ti.Placeholder = def
	ti.Focus()
	ti.CharLimit = 156
	ti.SetWidth(50)
	return textInputModel{textInput: ti, prompt: prompt, def: def}
}

// value returns the trimmed input, or the default when nothing was typed.
func (m textInputModel) value() string {
	if v := strings.TrimSpace(m.textInput.Value()); v != "" {
		return v
	}
	return m.def
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() tea.View {
	if m.done {
		if m.cancelled {
			return tea.NewView("")
		}
		return tea.NewView(fmt.Sprintf("%s %s\n", m.prompt, styles.AccentStyle.Render(m.value())))
	}
	return tea.NewView(fmt.Sprintf("%s\n%s", m.prompt, m.textInput.View()))
}
