// Package command provides CLI command definitions for mapcell.
package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/mapcell-go/internal/cli/output"
	"github.com/yndnr/mapcell-go/internal/cli/repl"
	"github.com/yndnr/mapcell-go/internal/telemetry/metric"
)

// EvalCommand returns the non-interactive evaluation command.
func EvalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "Run shell commands non-interactively",
		ArgsUsage: "SCRIPT",
		Description: "Commands are separated by semicolons or newlines:\n" +
			"   mapcell eval 'init; set a 1; get a'",
		Action: runEval,
	}
}

func runEval(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("eval needs a script, e.g. `mapcell eval 'init; set a 1'`")
	}

	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	format, _ := output.ParseFormat(cfg.Output)
	session := repl.NewSession(format, metric.New(), log.With("component", "session"))

	// Errors are reported per command and evaluation continues, the way
	// the interactive shell behaves.
	script := strings.Join(c.Args().Slice(), " ")
	for _, line := range splitScript(script) {
		out, execErr := session.Execute(line)
		if execErr != nil {
			fmt.Fprintf(c.App.Writer, "error; %v\n", execErr)
			continue
		}
		if out != "" {
			fmt.Fprintln(c.App.Writer, out)
		}
	}
	return nil
}

// splitScript splits an eval script on semicolons and newlines.
func splitScript(script string) []string {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ';' || r == '\n'
	})

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			lines = append(lines, f)
		}
	}
	return lines
}
