// Package command provides CLI command definitions for mapcell.
//
// This package defines the commands using urfave/cli/v2:
//
//   - root.go: application, global flags, configuration assembly
//   - shell.go: interactive shell (the default action)
//   - eval.go: non-interactive script evaluation
//   - version.go: build information
//
// Commands follow a consistent pattern of loading configuration,
// building a session, and rendering output through the configured
// formatter.
package command
