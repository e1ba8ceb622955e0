package prompt

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/wsbootstrap/ws/internal/ui/styles"
)

type confirmModel struct {
	prompt    string
	def       bool
	confirmed bool
	done      bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			m.confirmed = m.def
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() tea.View {
	if m.done && m.cancelled {
		return tea.NewView("")
	}
	if m.done {
		// keep the answered question on screen like a transcript
		return tea.NewView(fmt.Sprintf("%s %s\n", m.prompt, styles.AccentStyle.Render(answerLabel(m.confirmed))))
	}
	return tea.NewView(fmt.Sprintf("%s %s ", m.prompt, styles.MutedStyle.Render(hint(m.def))))
}

func hint(def bool) string {
	if def {
		return "[Y/n]"
	}
	return "[y/N]"
}

func answerLabel(yes bool) string {
	if yes {
		return "yes"
	}
	return "no"
}
