// Package setup implements housekeeping commands for the CLI.
package setup

import (
	"fmt"

	"github.com/nmeilick/ms/config"
	"github.com/urfave/cli/v2"
)

// Commands returns the CLI commands for setup tasks
func Commands() *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Perform setup tasks",
		Subcommands: []*cli.Command{
			{
				Name:   "sample-config",
				Usage:  "Print a sample configuration file to stdout",
				Action: runSampleConfig,
			},
		},
	}
}

func runSampleConfig(c *cli.Context) error {
	if len(config.Sample) == 0 {
		return fmt.Errorf("no embedded sample configuration available")
	}
	fmt.Println(string(config.Sample))
	return nil
}
