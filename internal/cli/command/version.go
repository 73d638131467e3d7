// Package command provides CLI command definitions for mapcell.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/mapcell-go/internal/cli/output"
	"github.com/yndnr/mapcell-go/internal/infra/buildinfo"
)

// VersionCommand returns the version subcommand.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			cfg, _, err := loadConfig(c)
			if err != nil {
				return err
			}

			format, _ := output.ParseFormat(cfg.Output)
			info := buildinfo.Get()
			pairs := []output.Pair{
				{Key: "version", Value: info.Version},
				{Key: "commit", Value: info.Commit},
				{Key: "build_time", Value: info.BuildTime},
			}
			return output.NewFormatter(format).Format(c.App.Writer, pairs)
		},
	}
}
