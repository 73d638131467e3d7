// Package repl provides the interactive shell for mapcell.
package repl

import "strings"

// Completer provides command completion for the shell.
type Completer struct {
	commands []string
}

// NewCompleter creates a new Completer.
func NewCompleter() *Completer {
	return &Completer{
		commands: []string{
			"contains", "dump", "exit", "get", "help", "init", "ls",
			"print", "quit", "remove", "set", "size", "stats",
		},
	}
}

// Complete returns command names starting with prefix.
func (c *Completer) Complete(prefix string) []string {
	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}
