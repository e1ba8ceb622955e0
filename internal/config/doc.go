// Package config handles loading and validation of ws configuration.
//
// Configuration is read from ~/.config/ws/config.toml (or the file named by
// WS_CONFIG). The file is optional; every setting has a default.
//
// # Repository base directory (highest priority first)
//
//   - --dir flag of "ws new"
//   - WS_REPOS_DIR env var
//   - repos_dir config setting
//   - ~/dev/repos
//
// # Key Settings
//
//   - repos_dir: base directory new projects are created in
//   - bootstrap_dir: workstation-bootstrap checkout holding scripts/
//   - default_type: preselected project type in the "ws new" prompt
//   - theme: color theme for prompts and panels
//
// Paths must be absolute or start with ~; ~ is expanded on load.
package config
