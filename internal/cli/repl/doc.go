// Package repl provides the interactive shell for mapcell.
//
// This package implements the read-eval-print loop driving the hash
// table:
//
//   - repl.go: prompt loop, line length policing, exit handling
//   - session.go: command dispatch onto the current map instance
//   - completer.go: command name completion and suggestions
//   - history.go: command history persistence
//
// The session owns the shell's single map; `init` discards the old
// instance and starts a fresh one. All table preconditions (missing
// keys, uninitialized map) surface as printed errors, never as panics.
package repl
