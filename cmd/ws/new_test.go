package main

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/wsbootstrap/ws/internal/bootstrap"
	"github.com/wsbootstrap/ws/internal/cmd"
	"github.com/wsbootstrap/ws/internal/config"
	"github.com/wsbootstrap/ws/internal/project"
	"github.com/wsbootstrap/ws/internal/ui/prompt/prompttest"
)

func TestNew_AllFlags(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, bootstrap.ScaffoldScript)
	ta.script.Answers = []string{"y"}

	code := ta.run(t, "new", "data", "myproj", "--dir", "/tmp/x", "--devcontainer", "--devstack", "--dbt", "--git")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, ta.errOut)
	}

	// Only the final confirmation is asked.
	if len(ta.script.Calls) != 1 || ta.script.Calls[0].Title != project.PromptProceed || ta.script.Calls[0].Default != "true" {
		t.Errorf("prompts = %+v, want only %q defaulting to yes", ta.script.Calls, project.PromptProceed)
	}

	if len(ta.rec.calls) != 1 {
		t.Fatalf("runner called %d times, want 1", len(ta.rec.calls))
	}
	want := []string{
		ta.scriptPath(bootstrap.ScaffoldScript), "data", "myproj", "--dir", "/tmp/x",
		"--init-git", "--with", "devcontainer", "--with", "devstack", "--with", "dbt",
	}
	if got := ta.rec.calls[0].argv; !slices.Equal(got, want) {
		t.Errorf("argv =\n  %q\nwant\n  %q", got, want)
	}
	if ta.rec.calls[0].dir != ta.layout.Root {
		t.Errorf("dir = %q, want bootstrap root %q", ta.rec.calls[0].dir, ta.layout.Root)
	}

	stdout := ta.out.String()
	for _, s := range []string{"Interactive project creator", "Plan", "Confirm to execute", "myproj", "Done."} {
		if !strings.Contains(stdout, s) {
			t.Errorf("stdout missing %q:\n%s", s, stdout)
		}
	}
}

func TestNew_NegatedFlagsAndNoHooks(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, bootstrap.ScaffoldScript)
	ta.script.Answers = []string{""}

	code := ta.run(t, "new", "next", "web", "--dir", "/r",
		"--no-devcontainer", "--no-devstack", "--no-dbt", "--git", "--no-hooks")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, ta.errOut)
	}
	want := []string{ta.scriptPath(bootstrap.ScaffoldScript), "next", "web", "--dir", "/r", "--init-git", "--no-hooks"}
	if len(ta.rec.calls) != 1 || !slices.Equal(ta.rec.calls[0].argv, want) {
		t.Errorf("calls = %+v, want argv %q", ta.rec.calls, want)
	}
}

func TestNew_PromptsForEverything(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, bootstrap.ScaffoldScript)
	ta.getenv = func(key string) string {
		if key == config.EnvReposDir {
			return "/env/repos"
		}
		return ""
	}
	// type, name, devcontainer, devstack, dbt, git, proceed
	ta.script.Answers = []string{"data", "etl", "", "", "n", "", "y"}

	if code := ta.run(t, "new"); code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, ta.errOut)
	}

	wantPrompts := []prompttest.Call{
		{Kind: "select", Title: project.PromptType, Default: "python"},
		{Kind: "text", Title: project.PromptName, Default: project.DefaultName},
		{Kind: "confirm", Title: project.PromptDevcontainer, Default: "true"},
		{Kind: "confirm", Title: project.PromptDevstack, Default: "true"},
		{Kind: "confirm", Title: project.PromptDBT, Default: "true"},
		{Kind: "confirm", Title: project.PromptInitGit, Default: "true"},
		{Kind: "confirm", Title: project.PromptProceed, Default: "true"},
	}
	if !slices.Equal(ta.script.Calls, wantPrompts) {
		t.Errorf("prompts =\n  %+v\nwant\n  %+v", ta.script.Calls, wantPrompts)
	}

	want := []string{
		ta.scriptPath(bootstrap.ScaffoldScript), "data", "etl", "--dir", "/env/repos",
		"--init-git", "--with", "devcontainer", "--with", "devstack",
	}
	if len(ta.rec.calls) != 1 || !slices.Equal(ta.rec.calls[0].argv, want) {
		t.Errorf("calls = %+v, want argv %q", ta.rec.calls, want)
	}
}

func TestNew_ConfigDefaults(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, bootstrap.ScaffoldScript)
	ta.cfg.DefaultType = "next"
	ta.cfg.ReposDir = "/cfg/repos"
	ta.script.Answers = []string{"", "web", "", "", "", "", "y"}

	if code := ta.run(t, "new"); code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, ta.errOut)
	}
	if ta.script.Calls[0].Default != "next" {
		t.Errorf("type prompt default = %q, want next", ta.script.Calls[0].Default)
	}
	want := []string{ta.scriptPath(bootstrap.ScaffoldScript), "next", "web", "--dir", "/cfg/repos", "--init-git", "--with", "devcontainer"}
	if len(ta.rec.calls) != 1 || !slices.Equal(ta.rec.calls[0].argv, want) {
		t.Errorf("calls = %+v, want argv %q", ta.rec.calls, want)
	}
}

func TestNew_Declined(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, bootstrap.ScaffoldScript)
	ta.script.Answers = []string{"n"}

	code := ta.run(t, "new", "python", "api", "--dir", "/r", "--devcontainer", "--no-devstack", "--no-dbt", "--no-git")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if len(ta.rec.calls) != 0 {
		t.Errorf("runner called %d times, want 0", len(ta.rec.calls))
	}
	if !strings.Contains(ta.out.String(), "Cancelled.") {
		t.Errorf("stdout missing Cancelled.:\n%s", ta.out)
	}
	if strings.Contains(ta.out.String(), "Done.") {
		t.Errorf("stdout reports Done. after declining:\n%s", ta.out)
	}
}

func TestNew_CancelledPrompt(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, bootstrap.ScaffoldScript)
	ta.script.Answers = []string{prompttest.Cancel}

	if code := ta.run(t, "new", "--dir", "/r"); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if len(ta.rec.calls) != 0 {
		t.Errorf("runner called %d times, want 0", len(ta.rec.calls))
	}
	if !strings.Contains(ta.out.String(), "Cancelled.") {
		t.Errorf("stdout missing Cancelled.:\n%s", ta.out)
	}
}

func TestNew_MissingScaffolder(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	if code := ta.run(t, "new", "data", "myproj"); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if len(ta.script.Calls) != 0 {
		t.Errorf("prompted before checking the scaffolder: %+v", ta.script.Calls)
	}
	if len(ta.rec.calls) != 0 {
		t.Errorf("runner called %d times, want 0", len(ta.rec.calls))
	}
	if !strings.Contains(ta.errOut.String(), "Missing scripts/new_project.sh in bootstrap repo.") {
		t.Errorf("stderr = %q, want missing script message", ta.errOut)
	}
}

func TestNew_InvalidType(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, bootstrap.ScaffoldScript)
	if code := ta.run(t, "new", "pyton", "api", "--dir", "/r"); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if len(ta.script.Calls) != 0 || len(ta.rec.calls) != 0 {
		t.Errorf("prompts = %+v, runs = %+v, want none", ta.script.Calls, ta.rec.calls)
	}
	if !strings.Contains(ta.errOut.String(), `did you mean "python"`) {
		t.Errorf("stderr = %q, want suggestion", ta.errOut)
	}
}

func TestNew_ConflictingFlags(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, bootstrap.ScaffoldScript)
	if code := ta.run(t, "new", "data", "x", "--git", "--no-git"); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if len(ta.rec.calls) != 0 {
		t.Errorf("runner called %d times, want 0", len(ta.rec.calls))
	}
}

func TestNew_TooManyArgs(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, bootstrap.ScaffoldScript)
	if code := ta.run(t, "new", "data", "x", "y"); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestNew_DryRun(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, bootstrap.ScaffoldScript)
	code := ta.run(t, "new", "python", "api", "--dir", "/r", "--no-devcontainer", "--no-devstack", "--no-dbt", "--no-git", "--dry-run")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, ta.errOut)
	}
	if len(ta.script.Calls) != 0 {
		t.Errorf("dry run prompted: %+v", ta.script.Calls)
	}
	if len(ta.rec.calls) != 0 {
		t.Errorf("dry run ran %d commands", len(ta.rec.calls))
	}
	wantLine := "$ " + ta.scriptPath(bootstrap.ScaffoldScript) + " python api --dir /r"
	if !strings.Contains(ta.out.String(), wantLine) {
		t.Errorf("stdout missing %q:\n%s", wantLine, ta.out)
	}
}

func TestNew_ScaffolderFails(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, bootstrap.ScaffoldScript)
	ta.rec.err = &cmd.ExitError{Name: bootstrap.ScaffoldScript, Code: 4}
	ta.script.Answers = []string{"y"}

	code := ta.run(t, "new", "python", "api", "--dir", "/r", "--copy",
		"--no-devcontainer", "--no-devstack", "--no-dbt", "--no-git")
	if code != 4 {
		t.Fatalf("exit code = %d, want 4", code)
	}
	if strings.Contains(ta.out.String(), "Done.") {
		t.Errorf("stdout reports Done. after failure:\n%s", ta.out)
	}
	if len(ta.copied) != 0 {
		t.Errorf("copied %q after failure", ta.copied)
	}
}

func TestNew_Copy(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, bootstrap.ScaffoldScript)
	ta.script.Answers = []string{"y"}

	code := ta.run(t, "new", "python", "api", "--dir", "/r", "--copy",
		"--no-devcontainer", "--no-devstack", "--no-dbt", "--no-git")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, ta.errOut)
	}
	if !slices.Equal(ta.copied, []string{"/r/api"}) {
		t.Errorf("copied = %q, want [/r/api]", ta.copied)
	}
}

func TestNew_CopyFailureWarns(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, bootstrap.ScaffoldScript)
	ta.copy = func(string) error { return errors.New("no clipboard") }
	ta.script.Answers = []string{"y"}

	code := ta.run(t, "new", "python", "api", "--dir", "/r", "--copy",
		"--no-devcontainer", "--no-devstack", "--no-dbt", "--no-git")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(ta.errOut.String(), "Warning: failed to copy to clipboard: no clipboard") {
		t.Errorf("stderr = %q, want clipboard warning", ta.errOut)
	}
}

func TestBoolPair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want *bool
	}{
		{nil, nil},
		{[]string{"--git"}, boolPtr(true)},
		{[]string{"--git=false"}, boolPtr(false)},
		{[]string{"--no-git"}, boolPtr(false)},
		{[]string{"--no-git=false"}, boolPtr(true)},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()
			c := newNewCmd(&app{})
			if err := c.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags(%q) error = %v", tt.args, err)
			}
			got := boolPair(c, "git", "no-git")
			switch {
			case got == nil && tt.want == nil:
			case got == nil || tt.want == nil || *got != *tt.want:
				t.Errorf("boolPair(%q) = %v, want %v", tt.args, fmtBool(got), fmtBool(tt.want))
			}
		})
	}
}

func boolPtr(b bool) *bool { return &b }

func fmtBool(b *bool) string {
	if b == nil {
		return "<nil>"
	}
	if *b {
		return "true"
	}
	return "false"
}

func TestNew_PythonAsksFourToggles(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, bootstrap.ScaffoldScript)
	ta.script.Answers = []string{"", "", "", "", "y"}

	if code := ta.run(t, "new", "python", "myproj", "--dir", "/r"); code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, ta.errOut)
	}

	wantPrompts := []prompttest.Call{
		{Kind: "confirm", Title: project.PromptDevcontainer, Default: "true"},
		{Kind: "confirm", Title: project.PromptDevstack, Default: "false"},
		{Kind: "confirm", Title: project.PromptDBT, Default: "false"},
		{Kind: "confirm", Title: project.PromptInitGit, Default: "true"},
		{Kind: "confirm", Title: project.PromptProceed, Default: "true"},
	}
	if !slices.Equal(ta.script.Calls, wantPrompts) {
		t.Errorf("prompts =\n  %+v\nwant\n  %+v", ta.script.Calls, wantPrompts)
	}
	want := []string{ta.scriptPath(bootstrap.ScaffoldScript), "python", "myproj", "--dir", "/r", "--init-git", "--with", "devcontainer"}
	if len(ta.rec.calls) != 1 || !slices.Equal(ta.rec.calls[0].argv, want) {
		t.Errorf("calls = %+v, want argv %q", ta.rec.calls, want)
	}
}
