package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Environment variables read by ws.
const (
	EnvReposDir = "WS_REPOS_DIR"
	EnvConfig   = "WS_CONFIG"
)

// DefaultReposDir is the base directory for new projects, relative to $HOME.
var DefaultReposDir = filepath.Join("dev", "repos")

// Config holds the ws configuration
type Config struct {
	ReposDir     string `toml:"repos_dir" validate:"homepath"`
	BootstrapDir string `toml:"bootstrap_dir" validate:"homepath"`
	DefaultType  string `toml:"default_type" validate:"omitempty,oneof=python next data"`
	Theme        string `toml:"theme" validate:"omitempty,oneof=default dracula nord none"`
}

// Default returns the default configuration
func Default() Config {
	return Config{}
}

// expandPath expands a leading ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the config file location: $WS_CONFIG, else
// ~/.config/ws/config.toml.
func Path(getenv func(string) string) (string, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if p := getenv(EnvConfig); p != "" {
		return expandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ws", "config.toml"), nil
}

// Load reads config from path.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("unknown config key %q", undecoded[0].String())
	}

	if err := cfg.check(); err != nil {
		return Default(), err
	}

	// Expand ~ (shell doesn't expand in config files)
	if cfg.ReposDir, err = expandPath(cfg.ReposDir); err != nil {
		return Default(), fmt.Errorf("expand repos_dir: %w", err)
	}
	if cfg.BootstrapDir, err = expandPath(cfg.BootstrapDir); err != nil {
		return Default(), fmt.Errorf("expand bootstrap_dir: %w", err)
	}

	return cfg, nil
}

// ResolveReposDir resolves the base directory for new projects: the --dir flag,
// else $WS_REPOS_DIR, else repos_dir, else ~/dev/repos. A leading ~ in the
// flag or env value is expanded too.
func (c *Config) ResolveReposDir(flag string, getenv func(string) string) (string, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	switch {
	case flag != "":
		return expandPath(flag)
	case getenv(EnvReposDir) != "":
		return expandPath(getenv(EnvReposDir))
	case c.ReposDir != "":
		return c.ReposDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve default repos dir: %w", err)
	}
	return filepath.Join(home, DefaultReposDir), nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

const defaultConfig = `# ws configuration

# Base directory new projects are created in ("ws new").
# Overridden by $WS_REPOS_DIR and by "ws new --dir".
# Must be an absolute path or start with ~
# repos_dir = "~/dev/repos"

# Location of the workstation-bootstrap checkout (the directory holding
# scripts/verify_workstation.sh and scripts/new_project.sh).
# Overridden by $WS_BOOTSTRAP_DIR and by "ws --root".
# When unset, ws looks upwards from its own executable.
# bootstrap_dir = "~/dev/repos/workstation-bootstrap"

# Project type preselected in the "ws new" prompt: python, next or data
# default_type = "python"

# Color theme: default, dracula, nord or none
# theme = "default"
`

// DefaultFile returns the commented default config file content.
func DefaultFile() string {
	return defaultConfig
}

// Init creates the default config file at path.
// If force is true, overwrites an existing file.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
