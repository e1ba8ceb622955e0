// Package cmd runs the external scripts ws delegates to.
//
// Scripts run synchronously with the terminal attached: stdin, stdout and
// stderr are inherited so their output streams live and interactive scripts
// keep working. A non-zero exit is reported as an [*ExitError] carrying the
// child's exit code, which ws propagates verbatim as its own exit status.
//
// # Usage
//
//	var r cmd.Runner = cmd.NewExecRunner(os.Stdin, os.Stdout, os.Stderr)
//	if err := r.Run(ctx, "", []string{"/repo/scripts/verify_workstation.sh"}); err != nil {
//	    var exitErr *cmd.ExitError
//	    if errors.As(err, &exitErr) {
//	        os.Exit(exitErr.Code)
//	    }
//	}
//
// Tests substitute a recording [Runner] instead of invoking real scripts.
package cmd
