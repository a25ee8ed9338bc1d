package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sim "github.com/inference-sim/lb-sim/sim"
)

// RunConfig is the full set of run parameters, loadable from a YAML file.
// Every key mirrors a `run` flag of the same meaning.
type RunConfig struct {
	Servers    int    `yaml:"servers"`
	Horizon    int64  `yaml:"horizon"`
	Seed       int64  `yaml:"seed"`
	Output     string `yaml:"output"`
	LogLevel   string `yaml:"log"`
	TraceLevel string `yaml:"trace_level"`
	WorkerIDs  string `yaml:"worker_ids"`
}

// defaultRunConfig holds the flag defaults.
func defaultRunConfig() RunConfig {
	return RunConfig{
		Servers:    10,
		Horizon:    10000,
		Seed:       42,
		Output:     "output.txt",
		LogLevel:   "info",
		TraceLevel: "none",
		WorkerIDs:  "monotonic",
	}
}

// LoadRunConfig parses the YAML file at path on top of base.
// Keys absent from the file keep their value from base.
// Uses strict field checking: unknown keys are an error.
func LoadRunConfig(path string, base RunConfig) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading run config: %w", err)
	}
	cfg := base
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return base, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	return cfg, nil
}

// SimConfig returns the simulation parameters of c.
func (c RunConfig) SimConfig() sim.SimConfig {
	return sim.SimConfig{
		NumWorkers: c.Servers,
		Horizon:    c.Horizon,
		Seed:       c.Seed,
		WorkerIDs:  c.WorkerIDs,
		TraceLevel: c.TraceLevel,
	}
}

// Validate checks c for values the simulation cannot run with.
func (c RunConfig) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return c.SimConfig().Validate()
}

// applyFlagOverrides copies every explicitly set `run` flag into cfg,
// so CLI flags win over values loaded from --config.
func applyFlagOverrides(c *cobra.Command, cfg *RunConfig) {
	flags := c.Flags()
	if flags.Changed("servers") {
		cfg.Servers = numServers
	}
	if flags.Changed("horizon") {
		cfg.Horizon = simulationHorizon
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("output") {
		cfg.Output = outputPath
	}
	if flags.Changed("log") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("trace-level") {
		cfg.TraceLevel = traceLevel
	}
	if flags.Changed("worker-ids") {
		cfg.WorkerIDs = workerIDs
	}
}

// resolveRunConfig builds the effective RunConfig: defaults, then the optional
// --config file, then explicitly set flags.
func resolveRunConfig(c *cobra.Command) (RunConfig, error) {
	cfg := defaultRunConfig()
	if configPath != "" {
		var err error
		cfg, err = LoadRunConfig(configPath, cfg)
		if err != nil {
			return cfg, err
		}
	}
	applyFlagOverrides(c, &cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid run config: %w", err)
	}
	return cfg, nil
}
