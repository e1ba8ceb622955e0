// Package prompttest provides a scripted prompt.Prompter for tests.
package prompttest

import (
	"fmt"

	"github.com/wsbootstrap/ws/internal/ui/prompt"
)

// Call records one prompt shown by Scripted.
type Call struct {
	Kind    string // "select", "text" or "confirm"
	Title   string
	Default string
}

// Cancel as a scripted answer makes the prompt return prompt.ErrCancelled.
const Cancel = "<cancel>"

// Scripted answers prompts from a fixed list, in order, and records every
// call. An empty answer takes the prompt's default. Running out of answers
// is an error, which makes unexpected prompts fail loudly in tests.
type Scripted struct {
	Answers []string
	Calls   []Call
}

func (s *Scripted) next(kind, title, def string) (string, error) {
	s.Calls = append(s.Calls, Call{Kind: kind, Title: title, Default: def})
	if len(s.Answers) == 0 {
		return "", fmt.Errorf("unexpected %s prompt %q", kind, title)
	}
	ans := s.Answers[0]
	s.Answers = s.Answers[1:]
	if ans == Cancel {
		return "", prompt.ErrCancelled
	}
	if ans == "" {
		return def, nil
	}
	return ans, nil
}

// Select implements prompt.Prompter.
func (s *Scripted) Select(title string, options []string, def string) (string, error) {
	return s.next("select", title, def)
}

// Text implements prompt.Prompter.
func (s *Scripted) Text(title, def string) (string, error) {
	return s.next("text", title, def)
}

// Confirm implements prompt.Prompter. Answers are "y" or "n".
func (s *Scripted) Confirm(title string, def bool) (bool, error) {
	ans, err := s.next("confirm", title, fmt.Sprint(def))
	if err != nil {
		return false, err
	}
	switch ans {
	case "y", "true":
		return true, nil
	case "n", "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid scripted confirm answer %q", ans)
}

var _ prompt.Prompter = (*Scripted)(nil)
