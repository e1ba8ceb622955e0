package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/wsbootstrap/ws/internal/bootstrap"
	"github.com/wsbootstrap/ws/internal/config"
	"github.com/wsbootstrap/ws/internal/ui/prompt/prompttest"
)

// recordingRunner records every command instead of running it.
type recordingRunner struct {
	calls []runCall
	err   error
}

type runCall struct {
	dir  string
	argv []string
}

func (r *recordingRunner) Run(_ context.Context, dir string, argv []string) error {
	r.calls = append(r.calls, runCall{dir: dir, argv: append([]string(nil), argv...)})
	return r.err
}

type testApp struct {
	*app
	rec    *recordingRunner
	script *prompttest.Scripted
	out    *bytes.Buffer
	errOut *bytes.Buffer
	copied []string
}

// newTestApp returns an app rooted at a temp bootstrap repo containing the
// given scripts. Colors are disabled and the environment is empty.
func newTestApp(t *testing.T, scripts ...string) *testApp {
	t.Helper()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, bootstrap.ScriptsDir), 0755); err != nil {
		t.Fatalf("failed to create scripts dir: %v", err)
	}
	for _, name := range scripts {
		path := filepath.Join(root, bootstrap.ScriptsDir, name)
		if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	ta := &testApp{
		rec:    &recordingRunner{},
		script: &prompttest.Scripted{},
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
	}
	cfg := config.Default()
	ta.app = &app{
		cfg:      &cfg,
		cfgPath:  filepath.Join(t.TempDir(), "config.toml"),
		layout:   &bootstrap.Layout{Root: root, Source: bootstrap.SourceFlag},
		prompter: ta.script,
		runner:   ta.rec,
		getenv:   func(string) string { return "" },
		copy: func(s string) error {
			ta.copied = append(ta.copied, s)
			return nil
		},
		stdout:  ta.out,
		stderr:  ta.errOut,
		environ: []string{"NO_COLOR=1"},
	}
	return ta
}

// run executes ws with args and returns the exit code.
func (ta *testApp) run(t *testing.T, args ...string) int {
	t.Helper()
	rootCmd := newRootCmd(ta.app)
	rootCmd.SetOut(ta.out)
	rootCmd.SetErr(ta.errOut)
	return ta.execute(context.Background(), rootCmd, args)
}

func (ta *testApp) scriptPath(name string) string {
	return filepath.Join(ta.layout.Root, bootstrap.ScriptsDir, name)
}
