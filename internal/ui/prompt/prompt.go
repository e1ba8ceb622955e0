package prompt

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("prompt cancelled")

// Prompter is implemented by every prompt provider in this package.
type Prompter interface {
	Select(title string, options []string, def string) (string, error)
	Text(title, def string) (string, error)
	Confirm(title string, def bool) (bool, error)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// New returns a Terminal prompter when stdin is a TTY, otherwise a Line
// prompter reading answers from stdin. Prompts are written to out.
// Cancelling ctx aborts a pending line prompt with ErrCancelled.
func New(ctx context.Context, stdin, out *os.File) Prompter {
	if IsTerminal(stdin) {
		return &Terminal{In: stdin, Out: out}
	}
	return NewLine(stdin, out).WithContext(ctx)
}
