// Package convert implements the CLI command converting between
// duration strings and millisecond counts.
package convert

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nmeilick/ms"
	"github.com/nmeilick/ms/common"
	"github.com/nmeilick/ms/config"
	"github.com/urfave/cli/v2"
)

// Environment variable names
var (
	envPrefix     = strings.ToUpper(common.AppName) + "_"
	envConfigPath = envPrefix + "CONFIG"
)

// result is the JSON shape emitted per converted value
type result struct {
	Input  string `json:"input"`
	Result string `json:"result"`
}

// Commands returns the CLI commands for the convert functionality
func Commands() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Aliases:   []string{"c"},
		Usage:     "Convert durations to milliseconds and back",
		ArgsUsage: "VALUE...",
		Description: "Each VALUE is converted in the direction implied by its shape: " +
			"numeric values are formatted as a duration string, everything else is " +
			"parsed to milliseconds. Values are read from stdin when none are given.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				EnvVars: []string{envConfigPath},
				Usage:   "Path to config file",
			},
			&cli.BoolFlag{
				Name:    "long",
				Aliases: []string{"l"},
				Usage:   "Use the verbose, pluralized form (e.g. \"2 hours\")",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Emit one JSON object per value",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose logging",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	log := common.NewLogger(c)

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	long := cfg.Output.Long || c.Bool("long")
	asJSON := cfg.Output.JSON || c.Bool("json")

	values := c.Args().Slice()
	if len(values) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				values = append(values, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}
	if len(values) == 0 {
		return fmt.Errorf("no values to convert")
	}

	enc := json.NewEncoder(os.Stdout)
	for _, value := range values {
		out, err := convertOne(value, long)
		if err != nil {
			return err
		}
		log.Debug().Str("input", value).Str("result", out).Msg("converted")

		if asJSON {
			if err := enc.Encode(result{Input: value, Result: out}); err != nil {
				return err
			}
			continue
		}
		fmt.Println(out)
	}

	return nil
}

// convertOne converts a single value in the direction implied by its
// shape: numbers format to a duration string, everything else parses to
// milliseconds.
func convertOne(value string, long bool) (string, error) {
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		if long {
			return ms.FormatLong(n)
		}
		return ms.Format(n)
	}

	v, err := ms.Parse(value)
	if err != nil {
		return "", err
	}
	if math.IsNaN(v) {
		return "", fmt.Errorf("not a duration: %q", value)
	}

	return humanize.Commaf(v), nil
}
