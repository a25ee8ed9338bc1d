package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRunConfig_ValidYAML_OverlaysBase(t *testing.T) {
	// GIVEN a YAML file setting a subset of keys
	path := writeTempYAML(t, `
servers: 4
horizon: 500
trace_level: events
`)

	// WHEN loaded on top of the defaults
	cfg, err := LoadRunConfig(path, defaultRunConfig())

	// THEN set keys are taken from the file and the rest keep their defaults
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Servers)
	assert.Equal(t, int64(500), cfg.Horizon)
	assert.Equal(t, "events", cfg.TraceLevel)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "output.txt", cfg.Output)
	assert.Equal(t, "monotonic", cfg.WorkerIDs)
}

func TestLoadRunConfig_UnknownField_ReturnsError(t *testing.T) {
	// GIVEN a YAML file with a typo in a key
	path := writeTempYAML(t, "serverz: 4\n")

	// WHEN loaded
	_, err := LoadRunConfig(path, defaultRunConfig())

	// THEN strict parsing rejects it
	assert.Error(t, err)
}

func TestLoadRunConfig_MalformedYAML_ReturnsError(t *testing.T) {
	path := writeTempYAML(t, "{{invalid yaml")
	_, err := LoadRunConfig(path, defaultRunConfig())
	assert.Error(t, err)
}

func TestLoadRunConfig_NonexistentFile_ReturnsError(t *testing.T) {
	_, err := LoadRunConfig("/nonexistent/run.yaml", defaultRunConfig())
	assert.Error(t, err)
}

func TestRunConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *RunConfig)
		wantErr bool
	}{
		{"defaults", func(c *RunConfig) {}, false},
		{"empty output", func(c *RunConfig) { c.Output = "" }, true},
		{"zero servers", func(c *RunConfig) { c.Servers = 0 }, true},
		{"negative horizon", func(c *RunConfig) { c.Horizon = -5 }, true},
		{"bad worker ids", func(c *RunConfig) { c.WorkerIDs = "sequential" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultRunConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveRunConfig_ChangedFlagsOverrideFile(t *testing.T) {
	// GIVEN a config file and a command where only --servers is set explicitly
	path := writeTempYAML(t, "servers: 4\nhorizon: 900\n")
	c := &cobra.Command{Use: "run"}
	bindRunFlags(c)
	require.NoError(t, c.Flags().Set("config", path))
	require.NoError(t, c.Flags().Set("servers", "7"))

	// WHEN the effective config is resolved
	cfg, err := resolveRunConfig(c)

	// THEN the explicit flag wins, the file provides the horizon, defaults fill the rest
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Servers)
	assert.Equal(t, int64(900), cfg.Horizon)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestResolveRunConfig_InvalidValue_ReturnsError(t *testing.T) {
	c := &cobra.Command{Use: "run"}
	bindRunFlags(c)
	require.NoError(t, c.Flags().Set("servers", "0"))

	_, err := resolveRunConfig(c)
	assert.Error(t, err)
}
