package main

import (
	"context"
	"errors"
	"strings"

	"github.com/wsbootstrap/ws/internal/bootstrap"
	"github.com/wsbootstrap/ws/internal/log"
	"github.com/wsbootstrap/ws/internal/output"
	"github.com/wsbootstrap/ws/internal/project"
	"github.com/wsbootstrap/ws/internal/ui/prompt"
	"github.com/wsbootstrap/ws/internal/ui/static"
	"github.com/wsbootstrap/ws/internal/ui/styles"
)

// newInput is the command line of "ws new".
type newInput struct {
	project.Input
	DryRun bool
	Copy   bool
}

func runNew(ctx context.Context, a *app, in newInput) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	// Fail before asking anything if there is nothing to run.
	script, err := a.layout.Script(bootstrap.ScaffoldScript)
	if err != nil {
		return err
	}

	out.Block(static.Panel("ws new", "Interactive project creator", ""))

	in.Dir, err = a.cfg.ResolveReposDir(in.Dir, a.getenv)
	if err != nil {
		return err
	}
	in.DefaultType = project.Type(a.cfg.DefaultType)

	opts, err := project.Resolve(in.Input, a.prompter)
	if err != nil {
		return cancelled(out, err)
	}
	argv := opts.Args(script)
	l.Debug("scaffold", "dir", a.layout.Root, "argv", strings.Join(argv, " "))

	if in.DryRun {
		out.Block(static.Panel("Plan", renderPlan(opts), "Dry run"))
		out.Println(styles.InfoStyle.Render("$ " + strings.Join(argv, " ")))
		return nil
	}

	out.Block(static.Panel("Plan", renderPlan(opts), "Confirm to execute"))

	ok, err := a.prompter.Confirm(project.PromptProceed, true)
	if err != nil {
		return cancelled(out, err)
	}
	if !ok {
		return cancelled(out, prompt.ErrCancelled)
	}

	if err := a.runner.Run(ctx, a.layout.Root, argv); err != nil {
		return err
	}

	out.Println(styles.SuccessStyle.Render("Done."))

	if in.Copy {
		path := opts.ProjectPath()
		if err := a.copy(path); err != nil {
			l.Warnf("failed to copy to clipboard: %v", err)
		} else {
			l.Println(styles.InfoStyle.Render("Copied " + path + " to clipboard"))
		}
	}
	return nil
}

func renderPlan(opts project.Options) string {
	plan := opts.Plan()
	rows := make([][]string, len(plan))
	for i, r := range plan {
		rows[i] = []string{r.Label, r.Value}
	}
	return static.RenderKeyValues(rows)
}

// cancelled turns a prompt cancellation into a clean exit.
func cancelled(out *output.Printer, err error) error {
	if errors.Is(err, prompt.ErrCancelled) {
		out.Println(styles.WarningStyle.Render("Cancelled."))
		return nil
	}
	return err
}
