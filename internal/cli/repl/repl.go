// Package repl provides the interactive shell for mapcell.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/yndnr/mapcell-go/internal/cli/config"
	"github.com/yndnr/mapcell-go/internal/telemetry/logger"
)

// REPL is the interactive read-eval-print loop.
type REPL struct {
	mu      sync.Mutex
	prompt  string
	maxLine int

	input   io.Reader
	output  io.Writer
	history *History
	session *Session
	log     logger.Logger
}

// Option configures the REPL.
type Option func(*REPL)

// WithInput sets the input reader (default os.Stdin).
func WithInput(r io.Reader) Option {
	return func(rp *REPL) { rp.input = r }
}

// WithOutput sets the output writer (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(rp *REPL) { rp.output = w }
}

// WithLogger sets the diagnostic logger.
func WithLogger(log logger.Logger) Option {
	return func(rp *REPL) { rp.log = log }
}

// New creates a REPL driving the given session.
func New(cfg *config.Config, session *Session, opts ...Option) *REPL {
	r := &REPL{
		prompt:  cfg.Prompt,
		maxLine: cfg.MaxLineLen,
		input:   os.Stdin,
		output:  os.Stdout,
		history: NewHistory(cfg.HistoryFile, cfg.HistorySize),
		session: session,
		log:     logger.Noop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Reload applies updated configuration to a running loop. Only the
// prompt and line limit live here; the session handles its own format.
func (r *REPL) Reload(cfg *config.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompt = cfg.Prompt
	r.maxLine = cfg.MaxLineLen
}

func (r *REPL) currentPrompt() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prompt
}

func (r *REPL) currentMaxLine() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maxLine
}

// Run starts the loop. It returns on exit/quit/q, end of input, or a
// read failure.
func (r *REPL) Run() error {
	if err := r.history.Load(); err != nil {
		r.log.Warn("could not load history", "error", err)
	}
	defer func() {
		if err := r.history.Save(); err != nil {
			r.log.Warn("could not save history", "error", err)
		}
	}()

	fmt.Fprintln(r.output, "mapcell; use `help` if you are totally lost.")

	reader := bufio.NewReader(r.input)
	for {
		fmt.Fprint(r.output, r.currentPrompt())

		line, err := reader.ReadString('\n')
		eof := err == io.EOF
		if err != nil && !eof {
			return err
		}

		// The limit applies to the raw line, whitespace included; only
		// the line terminator is exempt.
		raw := strings.TrimSuffix(line, "\n")
		raw = strings.TrimSuffix(raw, "\r")
		if max := r.currentMaxLine(); len(raw) > max {
			fmt.Fprintf(r.output, "    error; line too long (> %d)\n", max)
			if eof {
				return nil
			}
			continue
		}

		line = strings.TrimSpace(raw)
		if line == "" {
			if eof {
				fmt.Fprintln(r.output)
				return nil
			}
			continue
		}

		r.history.Add(line)

		if cmd := strings.Fields(line); isExitCommand(cmd[0]) {
			if len(cmd) > 1 {
				fmt.Fprintf(r.output, "    error; use format `%s`\n", cmd[0])
				if eof {
					return nil
				}
				continue
			}
			return nil
		}

		out, execErr := r.session.Execute(line)
		if execErr != nil {
			fmt.Fprintf(r.output, "    error; %v\n", execErr)
		} else if out != "" {
			r.printIndented(out)
		}

		if eof {
			return nil
		}
	}
}

func isExitCommand(cmd string) bool {
	return cmd == "exit" || cmd == "quit" || cmd == "q"
}

// printIndented prints command output indented under the prompt.
func (r *REPL) printIndented(out string) {
	for _, line := range strings.Split(out, "\n") {
		fmt.Fprintf(r.output, "    %s\n", line)
	}
}
