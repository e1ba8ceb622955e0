package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/wsbootstrap/ws/internal/bootstrap"
	"github.com/wsbootstrap/ws/internal/cmd"
	"github.com/wsbootstrap/ws/internal/config"
	"github.com/wsbootstrap/ws/internal/log"
	"github.com/wsbootstrap/ws/internal/output"
	"github.com/wsbootstrap/ws/internal/ui/prompt"
	"github.com/wsbootstrap/ws/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// Exit codes besides 0 and 1. Collaborator exit codes are passed through.
const (
	exitMissingScript = 2
	exitInterrupted   = 130
)

// app holds what commands run against. Fields left nil are filled in from
// flags, environment and the terminal before a command runs, so tests can
// inject fakes.
type app struct {
	cfg      *config.Config
	cfgPath  string
	layout   *bootstrap.Layout
	prompter prompt.Prompter
	runner   cmd.Runner
	getenv   func(string) string
	copy     func(string) error

	stdout  io.Writer
	stderr  io.Writer
	environ []string

	// Global flags
	root    string
	verbose bool
	quiet   bool
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ws",
		Short: "Workstation bootstrap helper",
		Long: `ws drives the workstation-bootstrap repository.

It runs the workstation verification report and creates new projects
through the bootstrap repo's scaffolding script.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			if c.Name() == "__complete" || c.Name() == "help" {
				return nil
			}
			ctx, err := a.setup(c.Context())
			if err != nil {
				return err
			}
			c.SetContext(ctx)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.root, "root", "", "Bootstrap repo root (overrides $"+bootstrap.EnvRoot+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Show working directories and timings of external commands")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Suppress log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	_ = rootCmd.MarkPersistentFlagDirname("root")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	rootCmd.AddCommand(newDoctorCmd(a))
	rootCmd.AddCommand(newNewCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// setup fills every unset dependency and attaches the logger and printer
// to ctx.
func (a *app) setup(ctx context.Context) (context.Context, error) {
	if a.getenv == nil {
		a.getenv = os.Getenv
	}
	if a.environ == nil {
		a.environ = os.Environ()
	}
	if a.stdout == nil {
		a.stdout = os.Stdout
	}
	if a.stderr == nil {
		a.stderr = os.Stderr
	}
	if a.copy == nil {
		a.copy = clipboard.WriteAll
	}

	logger := log.New(colorprofile.NewWriter(a.stderr, a.environ), a.verbose, a.quiet)
	ctx = log.WithLogger(ctx, logger)
	ctx = output.WithPrinter(ctx, output.New(colorprofile.NewWriter(a.stdout, a.environ)))

	// Config is optional: without $HOME or with a broken file, defaults apply.
	if a.cfg == nil {
		cfg := config.Default()
		if path, err := config.Path(a.getenv); err != nil {
			logger.Warnf("locate config: %v (using defaults)", err)
		} else {
			a.cfgPath = path
			if cfg, err = config.Load(path); err != nil {
				logger.Warnf("%v", err)
			}
		}
		a.cfg = &cfg
	}
	if a.cfg.Theme != "" {
		styles.Init(a.cfg.Theme)
	}

	if a.layout == nil {
		layout, err := bootstrap.Resolve(bootstrap.ResolveOptions{
			Flag:      a.root,
			Getenv:    a.getenv,
			ConfigDir: a.cfg.BootstrapDir,
		})
		if err != nil {
			return ctx, err
		}
		a.layout = &layout
	}
	logger.Debug("bootstrap root", "path", a.layout.Root, "source", a.layout.Source)

	if a.prompter == nil {
		a.prompter = prompt.New(ctx, os.Stdin, os.Stderr)
	}
	if a.runner == nil {
		a.runner = cmd.NewExecRunner(os.Stdin, os.Stdout, os.Stderr)
	}

	return ctx, nil
}

// Execute runs the ws command line and returns the process exit code.
func Execute() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := &app{}
	return a.execute(ctx, newRootCmd(a), os.Args[1:])
}

func (a *app) execute(ctx context.Context, rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	return a.exitCode(err)
}

// exitCode reports err on stderr and maps it to a process exit code.
func (a *app) exitCode(err error) int {
	if err == nil {
		return 0
	}

	stderr := a.stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var missing *bootstrap.MissingScriptError
	var exitErr *cmd.ExitError
	switch {
	case errors.As(err, &missing):
		fmt.Fprintln(stderr, styles.ErrorStyle.Render(fmt.Sprintf("Missing %s/%s in bootstrap repo.", bootstrap.ScriptsDir, missing.Name)))
		fmt.Fprintf(stderr, "Looked at %s\n", missing.Path)
		return exitMissingScript
	case errors.As(err, &exitErr):
		fmt.Fprintf(stderr, "ws: %v\n", exitErr)
		return exitErr.Code
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "ws: interrupted")
		return exitInterrupted
	}

	fmt.Fprintf(stderr, "ws: %v\n", err)
	fmt.Fprintln(stderr)
	fmt.Fprintln(stderr, "Run 'ws -h' for help")
	return 1
}
