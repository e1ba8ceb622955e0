// Package log provides context-aware logging for ws.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/wsbootstrap/ws/internal/ui/styles"
)

type ctxKey struct{}

// Logger writes diagnostics (command echoes, warnings, debug lines) to stderr.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger. Quiet wins over verbose.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Warnf writes a warning line. Warnings are shown even in quiet mode.
func (l *Logger) Warnf(format string, args ...any) {
	fmt.Fprintln(l.out, styles.WarningStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// Command echoes an external command before it runs, in the form "$ name args".
// The returned func logs the elapsed time once the command finished; the
// timing line is only printed in verbose mode.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if l.quiet {
		return func(time.Duration) {}
	}

	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	prefix := styles.CommandStyle.Render("$")
	if l.verbose && dir != "" {
		fmt.Fprintf(l.out, "[%s] %s %s\n", dir, prefix, line)
	} else {
		fmt.Fprintf(l.out, "%s %s\n", prefix, line)
	}

	if !l.verbose {
		return func(time.Duration) {}
	}
	return func(d time.Duration) {
		fmt.Fprintln(l.out, styles.MutedStyle.Render(fmt.Sprintf("  (%s finished in %s)", name, d.Round(time.Millisecond))))
	}
}

// Debug writes a message followed by key=value pairs in verbose mode.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.out, styles.MutedStyle.Render(b.String()))
}

// IsVerbose returns true if verbose mode is enabled and not overridden by quiet.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
