package config

import (
	_ "embed" // Import the embed package
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/nmeilick/ms/common"
)

//go:embed sample.hcl
var Sample []byte

func init() {
	DefaultConfigFile = FindConfigFile()
}

// Config holds the tool configuration
type Config struct {
	Output *OutputConfig `hcl:"output,block"`
}

// OutputConfig controls how the convert command renders results by default
type OutputConfig struct {
	// Long selects the verbose, pluralized output form ("2 hours")
	Long bool `hcl:"long,optional"`

	// JSON emits one JSON object per converted value
	JSON bool `hcl:"json,optional"`
}

// DefaultConfigFile is the first config file found in a standard location
var DefaultConfigFile string

// getConfigLocations returns all standard locations where config files are searched
func getConfigLocations() []string {
	var locations []string

	// User config locations (XDG paths and equivalents)
	userConfigFile, err := xdg.ConfigFile(common.AppName + ".hcl")
	if err == nil {
		locations = append(locations, userConfigFile)
	}

	userConfigDir, err := xdg.ConfigFile(common.AppName)
	if err == nil {
		locations = append(locations, filepath.Join(userConfigDir, "config.hcl"))
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		locations = append(locations, filepath.Join(homeDir, "."+common.AppName+".hcl"))
	}

	// System-wide locations
	locations = append(locations,
		"/etc/"+common.AppName+"/config.hcl",
		"/etc/"+common.AppName+".hcl",
	)

	return locations
}

// FindConfigFile looks for the configuration file in standard locations
func FindConfigFile() string {
	for _, loc := range getConfigLocations() {
		if stat, err := os.Stat(loc); err == nil && stat.Mode().IsRegular() {
			return loc
		}
	}
	return ""
}

// Load reads the configuration from the given path, falling back to the
// default location. No config file at all yields the zero configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	cfg := &Config{}
	if path == "" {
		cfg.Normalize()
		return cfg, nil
	}

	if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", path, err)
	}
	cfg.Normalize()

	return cfg, nil
}

// Normalize sets default values for vital settings that haven't been set
func (cfg *Config) Normalize() {
	if cfg.Output == nil {
		cfg.Output = &OutputConfig{}
	}
}
