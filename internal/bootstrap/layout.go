package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Script names inside the bootstrap repo's scripts directory.
const (
	ScriptsDir     = "scripts"
	VerifierScript = "verify_workstation.sh"
	ScaffoldScript = "new_project.sh"
)

// EnvRoot overrides the bootstrap root.
const EnvRoot = "WS_BOOTSTRAP_DIR"

// Source records where the bootstrap root came from.
type Source string

const (
	SourceFlag       Source = "flag"
	SourceEnv        Source = "env"
	SourceConfig     Source = "config"
	SourceExecutable Source = "executable"
)

// Layout is the resolved bootstrap repository.
type Layout struct {
	Root   string // bootstrap repo root, also the scaffolder's working directory
	Source Source
}

// MissingScriptError reports a collaborator script that is not present.
type MissingScriptError struct {
	Name string // script file name, e.g. new_project.sh
	Path string // absolute path that was looked up
}

func (e *MissingScriptError) Error() string {
	return fmt.Sprintf("missing %s/%s in bootstrap repo (looked at %s)", ScriptsDir, e.Name, e.Path)
}

// ResolveOptions are the inputs for Resolve, highest priority first.
type ResolveOptions struct {
	Flag       string              // --root
	Getenv     func(string) string // defaults to os.Getenv
	ConfigDir  string              // bootstrap_dir from config
	Executable func() (string, error)
}

// Resolve determines the bootstrap root. Explicit sources (flag, env,
// config) win in that order; otherwise the nearest ancestor of the running
// executable that contains a scripts directory is used. If none has one, the
// executable's directory is returned and script lookups report missing.
func Resolve(opts ResolveOptions) (Layout, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	if opts.Flag != "" {
		return explicit(opts.Flag, SourceFlag)
	}
	if v := getenv(EnvRoot); v != "" {
		return explicit(v, SourceEnv)
	}
	if opts.ConfigDir != "" {
		return explicit(opts.ConfigDir, SourceConfig)
	}

	executable := opts.Executable
	if executable == nil {
		executable = os.Executable
	}
	exe, err := executable()
	if err != nil {
		return Layout{}, fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	start := filepath.Dir(exe)

	if root, ok := findScriptsAncestor(start); ok {
		return Layout{Root: root, Source: SourceExecutable}, nil
	}
	return Layout{Root: start, Source: SourceExecutable}, nil
}

func explicit(path string, src Source) (Layout, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Layout{}, fmt.Errorf("resolve bootstrap root %q: %w", path, err)
	}
	return Layout{Root: abs, Source: src}, nil
}

// findScriptsAncestor walks from dir up to the filesystem root and returns
// the first directory containing a scripts directory.
func findScriptsAncestor(dir string) (string, bool) {
	for {
		if isDir(filepath.Join(dir, ScriptsDir)) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ScriptPath returns where the named script is expected, without checking it.
func (l Layout) ScriptPath(name string) string {
	return filepath.Join(l.Root, ScriptsDir, name)
}

// Script returns the absolute path of the named script, or a
// *MissingScriptError if it does not exist or is a directory.
func (l Layout) Script(name string) (string, error) {
	path := l.ScriptPath(name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &MissingScriptError{Name: name, Path: path}
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", &MissingScriptError{Name: name, Path: path}
	}
	return path, nil
}
