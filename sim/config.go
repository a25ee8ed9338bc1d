package sim

import (
	"fmt"

	"github.com/inference-sim/lb-sim/sim/trace"
)

// SimConfig groups the parameters of one simulation run.
type SimConfig struct {
	NumWorkers int    // initial pool size (>= 1)
	Horizon    int64  // simulated cycles (>= 0)
	Seed       int64  // master seed for PartitionedRNG
	WorkerIDs  string // "monotonic" (default) or "pool-length"
	TraceLevel string // "none" (default) or "events"
}

// Validate checks that the configuration describes a runnable simulation.
func (c SimConfig) Validate() error {
	if c.NumWorkers < 1 {
		return fmt.Errorf("servers must be >= 1, got %d", c.NumWorkers)
	}
	if c.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %d", c.Horizon)
	}
	if !IsValidWorkerIDScheme(c.WorkerIDs) {
		return fmt.Errorf("unknown worker id scheme %q", c.WorkerIDs)
	}
	if !trace.IsValidTraceLevel(c.TraceLevel) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	return nil
}
