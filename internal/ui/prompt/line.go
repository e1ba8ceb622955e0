package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Line prompts on a plain line-oriented stream. It is used when stdin is
// not a terminal, so answers can be piped in one per line. An empty line
// takes the default; an invalid answer re-asks.
//
// Input is read one byte at a time, so whatever follows the last answer is
// left for the scaffolder, which shares stdin.
type Line struct {
	in  io.Reader
	out io.Writer
	ctx context.Context
	err error // sticky once the context was cancelled
}

// NewLine creates a Line prompter reading answers from in and writing
// questions to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: in, out: out}
}

// WithContext makes pending reads return ErrCancelled once ctx is done.
func (l *Line) WithContext(ctx context.Context) *Line {
	l.ctx = ctx
	return l
}

func (l *Line) readLine() (string, error) {
	if l.err != nil {
		return "", l.err
	}
	if l.ctx == nil || l.ctx.Done() == nil {
		return l.scan()
	}

	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := l.scan()
		ch <- result{line, err}
	}()

	select {
	case r := <-ch:
		return r.line, r.err
	case <-l.ctx.Done():
		// The reader goroutine may still be blocked; never read again.
		l.err = ErrCancelled
		return "", l.err
	}
}

// scan reads up to and including the next newline.
func (l *Line) scan() (string, error) {
	var b strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := l.in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return strings.TrimSpace(b.String()), nil
			}
			b.WriteByte(buf[0])
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			if b.Len() > 0 {
				return strings.TrimSpace(b.String()), nil
			}
			return "", fmt.Errorf("no answer on stdin: %w", io.ErrUnexpectedEOF)
		}
		return "", err
	}
}

// Select implements Prompter.
func (l *Line) Select(title string, options []string, def string) (string, error) {
	if len(options) == 0 {
		return "", ErrCancelled
	}
	for {
		fmt.Fprintf(l.out, "%s [%s] (%s): ", title, strings.Join(options, "/"), def)
		ans, err := l.readLine()
		if err != nil {
			return "", err
		}
		if ans == "" {
			ans = def
		}
		if slices.Contains(options, ans) {
			return ans, nil
		}
		fmt.Fprintln(l.out, "Please select one of the available options")
	}
}

// Text implements Prompter.
func (l *Line) Text(title, def string) (string, error) {
	fmt.Fprintf(l.out, "%s (%s): ", title, def)
	ans, err := l.readLine()
	if err != nil {
		return "", err
	}
	if ans == "" {
		return def, nil
	}
	return ans, nil
}

// Confirm implements Prompter.
func (l *Line) Confirm(title string, def bool) (bool, error) {
	for {
		fmt.Fprintf(l.out, "%s %s: ", title, hint(def))
		ans, err := l.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(ans) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(l.out, "Please enter Y or N")
	}
}
