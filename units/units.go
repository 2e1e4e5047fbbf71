// Package units implements the CLI command listing supported time units.
package units

import (
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nmeilick/ms"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

// Commands returns the CLI commands for the units listing
func Commands() *cli.Command {
	return &cli.Command{
		Name:    "units",
		Aliases: []string{"u"},
		Usage:   "List supported time units and their spellings",
		Action:  run,
	}
}

func run(c *cli.Context) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Unit", "Suffix", "Milliseconds", "Spellings"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, u := range ms.Units() {
		table.Append([]string{
			u.Name,
			u.Suffix,
			humanize.Commaf(u.Millis),
			strings.Join(u.Spellings, ", "),
		})
	}

	table.Render()
	return nil
}
