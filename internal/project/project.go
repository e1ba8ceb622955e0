// Package project models the options of "ws new" and turns them into the
// scaffolder's argument vector.
package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sahilm/fuzzy"
)

// Type is a project kind the scaffolder knows how to create.
type Type string

const (
	TypePython Type = "python"
	TypeNext   Type = "next"
	TypeData   Type = "data"
)

// Types lists the valid project types in prompt order.
var Types = []Type{TypePython, TypeNext, TypeData}

// Defaults for prompts.
const (
	DefaultType = TypePython
	DefaultName = "my-project"
)

// Feature names passed to the scaffolder via --with.
const (
	FeatureDevcontainer = "devcontainer"
	FeatureDevstack     = "devstack"
	FeatureDBT          = "dbt"
)

// TypeNames returns Types as strings.
func TypeNames() []string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return names
}

// ParseType validates s as a project type. Unknown values get a
// "did you mean" hint when a fuzzy match exists.
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	msg := fmt.Sprintf("unknown project type %q (valid: %s)", s, strings.Join(TypeNames(), ", "))
	if hint := Suggest(s); hint != "" {
		msg += fmt.Sprintf("; did you mean %q?", hint)
	}
	return "", fmt.Errorf("%s", msg)
}

// Suggest returns the best fuzzy match for s among the project types, or "".
func Suggest(s string) string {
	if s == "" {
		return ""
	}
	matches := fuzzy.Find(strings.ToLower(s), TypeNames())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// Options is the fully resolved option set of a new project.
type Options struct {
	Type         Type   `validate:"required,oneof=python next data"`
	Name         string `validate:"required"`
	Dir          string `validate:"required"`
	Devcontainer bool
	Devstack     bool
	DBT          bool
	InitGit      bool
	NoHooks      bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the invariants of a resolved option set.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			switch fe.Tag() {
			case "required":
				return fmt.Errorf("project %s must not be empty", strings.ToLower(fe.Field()))
			case "oneof":
				_, perr := ParseType(fmt.Sprint(fe.Value()))
				return perr
			}
		}
		return fmt.Errorf("invalid project options: %w", err)
	}
	return nil
}

// Features returns the enabled features in scaffolder order.
func (o Options) Features() []string {
	var out []string
	if o.Devcontainer {
		out = append(out, FeatureDevcontainer)
	}
	if o.Devstack {
		out = append(out, FeatureDevstack)
	}
	if o.DBT {
		out = append(out, FeatureDBT)
	}
	return out
}

// Args builds the scaffolder argument vector, script path first:
//
//	<script> <type> <name> --dir <dir> [--init-git] [--no-hooks] [--with <feature>]...
func (o Options) Args(script string) []string {
	args := []string{script, string(o.Type), o.Name, "--dir", o.Dir}
	if o.InitGit {
		args = append(args, "--init-git")
	}
	if o.NoHooks {
		args = append(args, "--no-hooks")
	}
	for _, f := range o.Features() {
		args = append(args, "--with", f)
	}
	return args
}

// ProjectPath is where the scaffolder creates the project.
func (o Options) ProjectPath() string {
	return filepath.Join(o.Dir, o.Name)
}

// PlanRow is one labelled line of the plan summary.
type PlanRow struct {
	Label string
	Value string
}

// Plan returns the human-readable summary rows shown before confirmation.
func (o Options) Plan() []PlanRow {
	return []PlanRow{
		{"Type", string(o.Type)},
		{"Name", o.Name},
		{"Dir", o.Dir},
		{"DevContainer", yesNo(o.Devcontainer)},
		{"Devstack", yesNo(o.Devstack)},
		{"dbt", yesNo(o.DBT)},
		{"Init git", yesNo(o.InitGit)},
		{"Install hooks", yesNo(!o.NoHooks)},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
