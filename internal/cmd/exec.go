package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/wsbootstrap/ws/internal/log"
)

// Runner executes a command vector in a working directory and blocks until it exits.
type Runner interface {
	// Run executes argv[0] with argv[1:] in dir (empty dir inherits the
	// current one). A non-zero exit is returned as *ExitError.
	Run(ctx context.Context, dir string, argv []string) error
}

// ExitError reports a command that ran but exited unsuccessfully.
type ExitError struct {
	Name string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
}

// ExecRunner runs commands as child processes with the given stdio attached.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner wired to the given streams.
func NewExecRunner(stdin io.Reader, stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// Run implements Runner. The command line is echoed through the context logger.
// Cancelling ctx kills the child and returns ctx.Err().
func (r *ExecRunner) Run(ctx context.Context, dir string, argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}

	done := log.FromContext(ctx).Command(dir, argv[0], argv[1:]...)
	start := time.Now()

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Dir = dir
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr

	err := c.Run()
	done(time.Since(start))

	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// killed by a signal
			code = 1
		}
		return &ExitError{Name: filepath.Base(argv[0]), Code: code}
	}
	return fmt.Errorf("run %s: %w", filepath.Base(argv[0]), err)
}
