package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/lb-sim/sim"
	"github.com/inference-sim/lb-sim/sim/trace"
	"github.com/inference-sim/lb-sim/sim/workload"
)

var (
	// CLI flags for the run command
	seed              int64  // Seed for random request generation and arrivals
	simulationHorizon int64  // Total simulation time (in cycles)
	numServers        int    // Initial number of web servers
	outputPath        string // Event log file
	logLevel          string // Log verbosity level
	configPath        string // Optional YAML run config
	traceLevel        string // Event trace level
	workerIDs         string // Identity scheme for added servers
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "lb-sim",
	Short: "Discrete-event simulator for a load-balancing dispatcher",
}

// runCmd executes the simulation using parameters from CLI flags and the optional config file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the load balancer simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveRunConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		// Set up logging
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", cfg.LogLevel)
		}
		logrus.SetLevel(level)

		logrus.Infof("Starting simulation with %d servers, horizon=%d cycles, seed=%d, output=%s",
			cfg.Servers, cfg.Horizon, cfg.Seed, cfg.Output)

		// The log sink must be available before any tick runs.
		sink, err := NewFileSink(cfg.Output)
		if err != nil {
			logrus.Fatalf("Error opening output file: %v", err)
		}

		startTime := time.Now()
		d, st, _, err := runSimulation(cfg.SimConfig(), sink)
		if closeErr := sink.Close(); closeErr != nil {
			logrus.Errorf("%v", closeErr)
		}
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		d.Metrics.Print(os.Stdout)
		if st != nil {
			printTraceSummary(os.Stdout, trace.Summarize(st))
		}
		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// runSimulation builds the dispatcher, request source and driver for cfg,
// seeds the queue and runs to completion. Every event line goes to sink.
func runSimulation(cfg sim.SimConfig, sink sim.LogSink) (*sim.Dispatcher, *trace.SimulationTrace, sim.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, sim.Result{}, err
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
	logrus.Debugf("Random streams %q and %q derived from key %d", sim.SubsystemWorkload, sim.SubsystemArrivals, rng.Key())
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(cfg.TraceLevel)})

	d, err := sim.NewDispatcher(sim.DispatcherConfig{
		NumWorkers: cfg.NumWorkers,
		WorkerIDs:  sim.WorkerIDScheme(cfg.WorkerIDs),
		Sink:       sink,
		Trace:      st,
	})
	if err != nil {
		return nil, nil, sim.Result{}, fmt.Errorf("creating dispatcher: %w", err)
	}

	s := sim.NewSimulator(cfg.Horizon, d, workload.NewGeneratorFromRNG(rng), rng.ForSubsystem(sim.SubsystemArrivals), sink)
	s.Seed()
	res := s.Run()
	return d, st, res, nil
}

// printTraceSummary writes the per-worker dispatch distribution of a traced run.
func printTraceSummary(w io.Writer, summary *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Trace Summary ===")
	fmt.Fprintf(w, "Total Dispatches     : %d\n", summary.TotalDispatches)
	fmt.Fprintf(w, "Total Cost           : %d cycles\n", summary.TotalCost)
	fmt.Fprintf(w, "Scale Ups / Downs    : %d / %d\n", summary.ScaleUps, summary.ScaleDowns)
	fmt.Fprintf(w, "Peak Pool Size       : %d\n", summary.PeakPoolSize)
	fmt.Fprintf(w, "Unique Workers Used  : %d\n", summary.UniqueWorkers)

	ids := make([]int, 0, len(summary.WorkerDistribution))
	for id := range summary.WorkerDistribution {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "  WebServer %-4d     : %d requests\n", id, summary.WorkerDistribution[id])
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bindRunFlags registers the run flags on c, resetting the bound variables to their defaults.
func bindRunFlags(c *cobra.Command) {
	def := defaultRunConfig()
	c.Flags().Int64Var(&seed, "seed", def.Seed, "Seed for random request generation")
	c.Flags().Int64Var(&simulationHorizon, "horizon", def.Horizon, "Total simulation horizon (in cycles)")
	c.Flags().IntVar(&numServers, "servers", def.Servers, "Initial number of web servers (>= 1)")
	c.Flags().StringVar(&outputPath, "output", def.Output, "Event log output file")
	c.Flags().StringVar(&logLevel, "log", def.LogLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")
	c.Flags().StringVar(&configPath, "config", "", "Optional YAML run config; explicitly set flags override it")
	c.Flags().StringVar(&traceLevel, "trace-level", def.TraceLevel, "Event trace level (none, events)")
	c.Flags().StringVar(&workerIDs, "worker-ids", def.WorkerIDs, "Identity scheme for added servers (monotonic, pool-length)")
}

// init sets up CLI flags and subcommands
func init() {
	bindRunFlags(runCmd)

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
