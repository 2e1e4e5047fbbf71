package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nmeilick/ms/common"
	"github.com/nmeilick/ms/convert"
	"github.com/nmeilick/ms/setup"
	"github.com/nmeilick/ms/units"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    common.AppName,
		Usage:   "Convert between human-readable durations and milliseconds",
		Version: common.Version,
		Commands: []*cli.Command{
			convert.Commands(),
			units.Commands(),
			setup.Commands(),
		},
	}

	// Check if we're being called via a symlink (msconv)
	execName := filepath.Base(os.Args[0])
	if strings.HasSuffix(execName, "conv") {
		app.Name = execName
		app.Commands = nil
		app.Flags = convert.Commands().Flags
		app.Action = convert.Commands().Action
	}

	if err := app.Run(os.Args); err != nil {
		common.ExitWithError(err)
	}
}
