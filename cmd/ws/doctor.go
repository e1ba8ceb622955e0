package main

import (
	"context"

	"github.com/wsbootstrap/ws/internal/bootstrap"
	"github.com/wsbootstrap/ws/internal/output"
	"github.com/wsbootstrap/ws/internal/ui/static"
)

func runDoctor(ctx context.Context, a *app) error {
	script, err := a.layout.Script(bootstrap.VerifierScript)
	if err != nil {
		return err
	}

	out := output.FromContext(ctx)
	out.Block(static.Panel("ws doctor", "Running workstation verification...", ""))

	return a.runner.Run(ctx, "", []string{script})
}
