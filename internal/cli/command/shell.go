// Package command provides CLI command definitions for mapcell.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/mapcell-go/internal/cli/config"
	"github.com/yndnr/mapcell-go/internal/cli/output"
	"github.com/yndnr/mapcell-go/internal/cli/repl"
	"github.com/yndnr/mapcell-go/internal/telemetry/logger"
	"github.com/yndnr/mapcell-go/internal/telemetry/metric"
)

// ShellCommand returns the interactive shell command. The same action
// runs when the application is invoked with no subcommand.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:   "shell",
		Usage:  "Start the interactive map shell (default)",
		Action: runShell,
	}
}

func runShell(c *cli.Context) error {
	cfg, cfgPath, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	// cfg.Output has been validated by loadConfig.
	format, _ := output.ParseFormat(cfg.Output)
	session := repl.NewSession(format, metric.New(), log.With("component", "session"))

	r := repl.New(cfg, session,
		repl.WithInput(c.App.Reader),
		repl.WithOutput(c.App.Writer),
		repl.WithLogger(log.With("component", "repl")),
	)

	if cfgPath != "" {
		watcher, werr := startConfigWatcher(cfgPath, r, session, log)
		if werr != nil {
			log.Warn("config watcher unavailable", "path", cfgPath, "error", werr)
		} else {
			defer watcher.Stop()
		}
	}

	return r.Run()
}

// startConfigWatcher makes a running shell pick up config file edits:
// prompt, line limit, output format and log level all apply live.
func startConfigWatcher(path string, r *repl.REPL, session *repl.Session, log logger.Logger) (*config.Watcher, error) {
	watcher, err := config.NewWatcher(config.WithWatcherLogger(log.With("component", "watcher")))
	if err != nil {
		return nil, err
	}

	watcher.OnChange(func(changed string) {
		fresh := config.Default()
		if err := config.NewLoader(config.WithConfigFile(changed)).Load(fresh); err != nil {
			log.Warn("config reload failed", "path", changed, "error", err)
			return
		}
		if err := fresh.Validate(); err != nil {
			log.Warn("config reload rejected", "path", changed, "error", err)
			return
		}

		r.Reload(fresh)
		if format, err := output.ParseFormat(fresh.Output); err == nil {
			session.SetFormat(format)
		}
		logger.SetLevel(fresh.Log.Level)
		log.Info("configuration reloaded", "path", changed)
	})

	if err := watcher.Watch(path); err != nil {
		watcher.Stop()
		return nil, err
	}

	watcher.Start()
	return watcher, nil
}
