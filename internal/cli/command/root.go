// Package command provides CLI command definitions for mapcell.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/mapcell-go/internal/cli/config"
	"github.com/yndnr/mapcell-go/internal/infra/buildinfo"
	"github.com/yndnr/mapcell-go/internal/telemetry/logger"
)

// App creates the CLI application. Running it with no subcommand drops
// straight into the interactive shell.
func App() *cli.App {
	return &cli.App{
		Name:    "mapcell",
		Usage:   "interactive string-keyed hash map shell",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ShellCommand(),
			EvalCommand(),
			VersionCommand(),
		},
		Action: runShell,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file path",
			EnvVars: []string{"MAPCELL_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: plain, table, json, yaml",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
	}
}

// loadConfig assembles the effective configuration: defaults, then the
// config file (when one exists), then MAPCELL_* environment variables,
// then flags. It also returns the config file path actually in use, or
// "" when none was found.
func loadConfig(c *cli.Context) (*config.Config, string, error) {
	path := c.String("config")
	explicit := path != ""
	if path == "" {
		path = config.DefaultConfigPath()
	}

	var opts []config.Option
	if _, err := os.Stat(path); err == nil {
		opts = append(opts, config.WithConfigFile(path))
	} else if explicit {
		return nil, "", fmt.Errorf("config file %s: %w", path, err)
	} else {
		path = ""
	}

	cfg := config.Default()
	if err := config.NewLoader(opts...).Load(cfg); err != nil {
		return nil, "", err
	}

	// Flags override file and environment.
	if v := c.String("output"); v != "" {
		cfg.Output = v
	}
	if v := c.String("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v := c.String("log-format"); v != "" {
		cfg.Log.Format = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}
