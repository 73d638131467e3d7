// Package repl provides the interactive shell for mapcell.
package repl

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/yndnr/mapcell-go/internal/cli/output"
	"github.com/yndnr/mapcell-go/internal/telemetry/logger"
	"github.com/yndnr/mapcell-go/internal/telemetry/metric"
	"github.com/yndnr/mapcell-go/pkg/hashmap"
)

// Shell-level errors reported to the user.
var (
	// ErrNotInitialized is returned by map commands issued before `init`.
	ErrNotInitialized = errors.New("use `init` first to initialize a new empty map")

	// ErrKeyNotFound is returned by get/remove on an absent key.
	ErrKeyNotFound = errors.New("key not found")
)

const helpText = `help               List available commands
exit/quit/q        Exit map shell
init               Initialize new empty map
size               Get current map size
ls/print/dump      Get all map contents
contains <key>     Check if map contains <key>
set <key> <value>  Set <value> for <key>
get <key>          Get the value for <key>
remove <key>       Remove the value for <key>
stats              Show session statistics`

// Session owns the shell's single map instance and dispatches commands
// onto it.
//
// The map itself is only touched from Execute, which the shell loop
// calls serially; the mutex guards the pieces a config reload may swap
// underneath a running session (the output format).
type Session struct {
	mu      sync.Mutex
	format  output.Format
	m       *hashmap.Map[string]
	metrics *metric.Metrics
	cmpl    *Completer
	log     logger.Logger
}

// NewSession creates a Session with no map; the user starts one with
// `init`.
func NewSession(format output.Format, metrics *metric.Metrics, log logger.Logger) *Session {
	if metrics == nil {
		metrics = metric.New()
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Session{
		format:  format,
		metrics: metrics,
		cmpl:    NewCompleter(),
		log:     log,
	}
}

// SetFormat changes the listing format. Safe to call while the session
// is running.
func (s *Session) SetFormat(format output.Format) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.format = format
}

func (s *Session) currentFormat() output.Format {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.format
}

// Execute parses one command line and runs it, returning the text to
// print. Errors are user-facing conditions, not internal failures.
func (s *Session) Execute(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		if err := wantArgs(args, 0, "help"); err != nil {
			return "", err
		}
		s.observe("help")
		return helpText, nil

	case "init":
		if err := wantArgs(args, 0, "init"); err != nil {
			return "", err
		}
		return s.doInit()

	case "size":
		if err := wantArgs(args, 0, "size"); err != nil {
			return "", err
		}
		return s.doSize()

	case "ls", "print", "dump":
		if err := wantArgs(args, 0, cmd); err != nil {
			return "", err
		}
		return s.doList()

	case "contains":
		if err := wantArgs(args, 1, "contains <key>"); err != nil {
			return "", err
		}
		return s.doContains(args[0])

	case "set":
		if err := wantArgs(args, 2, "set <key> <value>"); err != nil {
			return "", err
		}
		return s.doSet(args[0], args[1])

	case "get":
		if err := wantArgs(args, 1, "get <key>"); err != nil {
			return "", err
		}
		return s.doGet(args[0])

	case "remove":
		if err := wantArgs(args, 1, "remove <key>"); err != nil {
			return "", err
		}
		return s.doRemove(args[0])

	case "stats":
		if err := wantArgs(args, 0, "stats"); err != nil {
			return "", err
		}
		return s.doStats()

	default:
		return "", s.unknownCommand(cmd)
	}
}

// wantArgs checks the argument count against a command's usage string.
func wantArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return fmt.Errorf("use format `%s`", usage)
	}
	return nil
}

// ensureExists guards commands that need a live map.
func (s *Session) ensureExists() error {
	if s.m == nil {
		return ErrNotInitialized
	}
	return nil
}

func (s *Session) observe(op string) {
	s.metrics.ObserveOp(op)
}

func (s *Session) observeOccupancy() {
	s.metrics.SetOccupancy(s.m.Size(), s.m.Capacity())
}

func (s *Session) doInit() (string, error) {
	// The previous instance, if any, is simply dropped; the table never
	// owned its values anyway.
	s.m = hashmap.New[string]()
	s.observe("init")
	s.observeOccupancy()
	s.log.Debug("map initialized")
	return "m = {}", nil
}

func (s *Session) doSize() (string, error) {
	if err := s.ensureExists(); err != nil {
		return "", err
	}
	s.observe("size")
	return fmt.Sprintf("|m| = %d", s.m.Size()), nil
}

func (s *Session) doContains(key string) (string, error) {
	if err := s.ensureExists(); err != nil {
		return "", err
	}
	s.observe("contains")
	if s.m.Contains(key) {
		return "true", nil
	}
	return "false", nil
}

func (s *Session) doSet(key, value string) (string, error) {
	if err := s.ensureExists(); err != nil {
		return "", err
	}
	s.m.Set(key, value)
	s.observe("set")
	s.observeOccupancy()
	return fmt.Sprintf("m[%s] = %s", key, value), nil
}

func (s *Session) doGet(key string) (string, error) {
	if err := s.ensureExists(); err != nil {
		return "", err
	}
	s.observe("get")
	value, ok := s.m.Get(key)
	if !ok {
		return "", ErrKeyNotFound
	}
	return fmt.Sprintf("m[%s] = %s", key, value), nil
}

func (s *Session) doRemove(key string) (string, error) {
	if err := s.ensureExists(); err != nil {
		return "", err
	}
	s.observe("remove")
	value, ok := s.m.Remove(key)
	if !ok {
		return "", ErrKeyNotFound
	}
	s.observeOccupancy()
	return fmt.Sprintf("# m[%s] = %s", key, value), nil
}

func (s *Session) doList() (string, error) {
	if err := s.ensureExists(); err != nil {
		return "", err
	}
	s.observe("ls")

	// Walk the checked key cursor; the map is not mutated here, so the
	// sequence stays valid start to finish.
	pairs := make([]output.Pair, 0, s.m.Size())
	key, ok := s.m.First()
	for ok {
		value, _ := s.m.Get(key)
		pairs = append(pairs, output.Pair{Key: key, Value: value})

		var err error
		key, ok, err = s.m.Next(key)
		if err != nil {
			return "", err
		}
	}

	return s.render(pairs, "m = ")
}

func (s *Session) doStats() (string, error) {
	s.observe("stats")

	pairs := []output.Pair{}
	if s.m != nil {
		load := float64(s.m.Size()) / float64(s.m.Capacity())
		pairs = append(pairs,
			output.Pair{Key: "size", Value: fmt.Sprintf("%d", s.m.Size())},
			output.Pair{Key: "capacity", Value: fmt.Sprintf("%d", s.m.Capacity())},
			output.Pair{Key: "load_factor", Value: fmt.Sprintf("%.2f", load)},
		)
	}

	counts, err := s.metrics.OpCounts()
	if err != nil {
		return "", err
	}
	for _, c := range counts {
		pairs = append(pairs, output.Pair{
			Key:   "ops." + c.Op,
			Value: fmt.Sprintf("%d", c.Count),
		})
	}

	return s.render(pairs, "")
}

// render formats pairs with the session's formatter. prefix is only
// applied to the compact plain format.
func (s *Session) render(pairs []output.Pair, prefix string) (string, error) {
	format := s.currentFormat()

	var b strings.Builder
	if err := output.NewFormatter(format).Format(&b, pairs); err != nil {
		return "", err
	}

	text := strings.TrimRight(b.String(), "\n")
	if format == output.FormatPlain && prefix != "" {
		return prefix + text, nil
	}
	return text, nil
}

func (s *Session) unknownCommand(cmd string) error {
	if suggestions := s.cmpl.Complete(cmd); len(suggestions) > 0 {
		return fmt.Errorf("unknown command (%s); did you mean %s?",
			cmd, strings.Join(suggestions, ", "))
	}
	return fmt.Errorf("unknown command (%s)", cmd)
}
