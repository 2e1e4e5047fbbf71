package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/nmeilick/ms/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	err := os.WriteFile(path, []byte("output {\n  long = true\n}\n"), 0600)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Output)
	assert.True(t, cfg.Output.Long)
	assert.False(t, cfg.Output.JSON)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}

// TestSampleConfigParses keeps the embedded sample in sync with the
// config schema.
func TestSampleConfigParses(t *testing.T) {
	cfg := &config.Config{}
	err := hclsimple.Decode("sample.hcl", config.Sample, nil, cfg)
	require.NoError(t, err)
	require.NotNil(t, cfg.Output)
}

func TestNormalize(t *testing.T) {
	cfg := &config.Config{}
	cfg.Normalize()
	require.NotNil(t, cfg.Output)
}
