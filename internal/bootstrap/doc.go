// Package bootstrap locates the workstation-bootstrap repository and the
// scripts ws delegates to.
//
// The repository root is resolved once at startup, highest priority first:
//
//   - --root flag
//   - WS_BOOTSTRAP_DIR environment variable
//   - bootstrap_dir in the config file
//   - the nearest ancestor of the ws executable containing scripts/
//
// Scripts are looked up at a fixed path relative to the root
// (scripts/verify_workstation.sh, scripts/new_project.sh). A missing script
// is reported as [*MissingScriptError], which ws maps to exit status 2.
package bootstrap
