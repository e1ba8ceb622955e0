// Package output provides context-aware output for ws.
// Stdout is used for primary output (panels, plans, config dumps).
// Stderr (via log package) is used for diagnostics and command echoes.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w io.Writer
}

// New creates a new Printer writing to the given writer as-is.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewTerminal creates a Printer that downsamples ANSI styling to what f
// supports (strips it entirely when piped or NO_COLOR is set).
func NewTerminal(f *os.File, environ []string) *Printer {
	return &Printer{w: colorprofile.NewWriter(f, environ)}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns a terminal Printer on os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return NewTerminal(os.Stdout, os.Environ())
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Block writes a pre-rendered block (panel, table) followed by a newline.
func (p *Printer) Block(s string) {
	if s == "" {
		return
	}
	fmt.Fprintln(p.w, s)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
