// sim/dispatcher.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/lb-sim/sim/trace"
)

// TickStatus is the outcome of one Dispatcher.Tick.
type TickStatus int

const (
	// TickContinue means the clock is still below the horizon.
	TickContinue TickStatus = iota
	// TickHorizonReached means the run must stop. It is a normal outcome, not an error.
	TickHorizonReached
)

func (s TickStatus) String() string {
	if s == TickHorizonReached {
		return "horizon reached"
	}
	return "continue"
}

// WorkerIDScheme selects how identities are assigned to workers added by Rescale.
type WorkerIDScheme string

const (
	// WorkerIDsMonotonic draws from a counter that never goes back,
	// so a removed worker's identity is never handed out again.
	WorkerIDsMonotonic WorkerIDScheme = "monotonic"
	// WorkerIDsPoolLength uses poolSize+1, which re-issues the identity of
	// a previously removed worker after a shrink/grow cycle.
	WorkerIDsPoolLength WorkerIDScheme = "pool-length"
)

// ValidWorkerIDSchemes is the set of recognized worker identity schemes.
var ValidWorkerIDSchemes = map[string]bool{"": true, "monotonic": true, "pool-length": true}

// IsValidWorkerIDScheme returns true if name is a recognized worker identity scheme.
func IsValidWorkerIDScheme(name string) bool {
	return ValidWorkerIDSchemes[name]
}

// DispatcherConfig groups the parameters for NewDispatcher.
// Zero values select the defaults: 3:1 RatioPolicy, monotonic identities,
// discarded event log, no trace.
type DispatcherConfig struct {
	NumWorkers int                    // initial pool size (must be >= 1)
	Policy     ScalingPolicy          // pool sizing policy
	WorkerIDs  WorkerIDScheme         // identity scheme for added workers
	Sink       LogSink                // event log
	Trace      *trace.SimulationTrace // optional event trace (nil = off)
}

// Dispatcher owns the pending-request queue, the worker pool and the simulated clock.
// Not safe for concurrent use.
type Dispatcher struct {
	WaitQ   *WaitQueue
	Metrics *Metrics

	workers  []*Worker // creation order
	clock    int64
	nextID   int
	policy   ScalingPolicy
	idScheme WorkerIDScheme
	sink     LogSink
	trace    *trace.SimulationTrace
}

// NewDispatcher creates a Dispatcher with cfg.NumWorkers workers identified 1..NumWorkers.
func NewDispatcher(cfg DispatcherConfig) (*Dispatcher, error) {
	if cfg.NumWorkers < 1 {
		return nil, fmt.Errorf("number of workers must be >= 1, got %d", cfg.NumWorkers)
	}
	if !IsValidWorkerIDScheme(string(cfg.WorkerIDs)) {
		return nil, fmt.Errorf("unknown worker id scheme %q", cfg.WorkerIDs)
	}
	if v, ok := cfg.Policy.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("invalid scaling policy %s: %w", cfg.Policy, err)
		}
	}
	d := &Dispatcher{
		WaitQ:    &WaitQueue{},
		Metrics:  NewMetrics(),
		workers:  make([]*Worker, 0, cfg.NumWorkers),
		policy:   cfg.Policy,
		idScheme: cfg.WorkerIDs,
		sink:     cfg.Sink,
		trace:    cfg.Trace,
	}
	if d.policy == nil {
		d.policy = DefaultScalingPolicy()
	}
	if d.idScheme == "" {
		d.idScheme = WorkerIDsMonotonic
	}
	if d.sink == nil {
		d.sink = discardSink{}
	}
	for i := 1; i <= cfg.NumWorkers; i++ {
		d.workers = append(d.workers, NewWorker(i))
	}
	d.nextID = cfg.NumWorkers + 1
	d.Metrics.observePool(len(d.workers))
	d.trace.RecordInitialPool(len(d.workers))
	return d, nil
}

// Enqueue appends r to the tail of the pending queue.
func (d *Dispatcher) Enqueue(r *Request) {
	d.WaitQ.Enqueue(r)
}

// HasPending reports whether any request is waiting.
func (d *Dispatcher) HasPending() bool {
	return d.WaitQ.Len() > 0
}

// Clock returns the simulated clock.
func (d *Dispatcher) Clock() int64 {
	return d.clock
}

// PoolSize returns the number of live workers.
func (d *Dispatcher) PoolSize() int {
	return len(d.workers)
}

// WorkerIDs returns the identities of the live workers in creation order.
func (d *Dispatcher) WorkerIDs() []int {
	ids := make([]int, len(d.workers))
	for i, w := range d.workers {
		ids[i] = w.ID
	}
	return ids
}

// Tick hands at most one queued request to each worker, in creation order,
// advancing the clock by each dispatched request's cost.
//
// If the head request would push the clock past horizon, Tick stops at once and
// returns TickHorizonReached: the request stays queued and the pool is not rescaled.
// Otherwise it logs the cycle status, rescales the pool and reports whether the
// clock is still below horizon.
func (d *Dispatcher) Tick(horizon int64) TickStatus {
	d.Metrics.Ticks++
	logrus.Debugf("[clock %07d] tick with %d workers, %d queued", d.clock, len(d.workers), d.WaitQ.Len())

	for _, w := range d.workers {
		req := d.WaitQ.Peek()
		if req == nil {
			continue
		}
		if d.clock+req.Cost > horizon {
			logrus.Debugf("[clock %07d] request %d (cost %d) would exceed horizon %d", d.clock, req.ID, req.Cost, horizon)
			return TickHorizonReached
		}
		d.WaitQ.Dequeue()
		w.Process(req, d.sink)
		d.clock += req.Cost
		d.Metrics.recordDispatch(req)
		d.trace.RecordDispatch(trace.DispatchRecord{
			RequestID: req.ID,
			WorkerID:  w.ID,
			Clock:     d.clock,
			Cost:      req.Cost,
			Kind:      string(req.Kind),
		})
	}

	d.sink.Write(fmt.Sprintf("Current cycle: %d / %d", d.clock, horizon))
	d.sink.Write(fmt.Sprintf("%d requests in the queue.", d.WaitQ.Len()))

	d.Rescale()

	if d.clock < horizon {
		return TickContinue
	}
	return TickHorizonReached
}

// Rescale resizes the pool to the policy's target for the current queue length,
// clamped to at least one worker. Workers are added at, and removed from, the
// end of the creation-ordered pool.
func (d *Dispatcher) Rescale() {
	target := d.policy.Target(d.WaitQ.Len(), len(d.workers))
	if target < 1 {
		target = 1
	}

	for len(d.workers) < target {
		w := NewWorker(d.nextWorkerID())
		d.workers = append(d.workers, w)
		d.Metrics.ScaleUps++
		d.sink.Write(fmt.Sprintf("Added WebServer %d to maintain %s.", w.ID, d.policy))
		d.trace.RecordScale(trace.ScaleRecord{Clock: d.clock, WorkerID: w.ID, Action: trace.ScaleAdd, PoolSize: len(d.workers)})
	}
	for len(d.workers) > target && len(d.workers) > 1 {
		last := d.workers[len(d.workers)-1]
		d.workers[len(d.workers)-1] = nil
		d.workers = d.workers[:len(d.workers)-1]
		d.Metrics.ScaleDowns++
		d.sink.Write(fmt.Sprintf("Removed WebServer %d to maintain %s.", last.ID, d.policy))
		d.trace.RecordScale(trace.ScaleRecord{Clock: d.clock, WorkerID: last.ID, Action: trace.ScaleRemove, PoolSize: len(d.workers)})
	}

	d.Metrics.observePool(len(d.workers))
}

func (d *Dispatcher) nextWorkerID() int {
	if d.idScheme == WorkerIDsPoolLength {
		return len(d.workers) + 1
	}
	id := d.nextID
	d.nextID++
	return id
}
