package prompt

import (
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
)

// Terminal runs Bubble Tea prompts. Output goes to Out (stderr in ws) so
// stdout stays clean for the plan and script output.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

func (t *Terminal) run(model tea.Model) (tea.Model, error) {
	out := t.Out
	if out == nil {
		out = os.Stderr
	}
	opts := []tea.ProgramOption{
		tea.WithOutput(out),
		tea.WithColorProfile(colorprofile.Detect(out, os.Environ())),
	}
	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}
	return tea.NewProgram(model, opts...).Run()
}

// Confirm implements Prompter.
func (t *Terminal) Confirm(title string, def bool) (bool, error) {
	final, err := t.run(confirmModel{prompt: title, def: def})
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.cancelled {
		return false, ErrCancelled
	}
	return m.confirmed, nil
}

// Select implements Prompter.
func (t *Terminal) Select(title string, options []string, def string) (string, error) {
	if len(options) == 0 {
		return "", ErrCancelled
	}
	final, err := t.run(newSelectModel(title, options, def))
	if err != nil {
		return "", err
	}
	m := final.(selectModel)
	if m.cancelled || m.selected < 0 || m.selected >= len(options) {
		return "", ErrCancelled
	}
	return options[m.selected], nil
}

// Text implements Prompter. An empty answer takes def.
func (t *Terminal) Text(title, def string) (string, error) {
	final, err := t.run(newTextInputModel(title, def))
	if err != nil {
		return "", err
	}
	m := final.(textInputModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.value(), nil
}
