// sim/simulator.go
package sim

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

const (
	// InitialRequestsPerWorker is how many requests Seed enqueues per initial worker.
	InitialRequestsPerWorker = 100
	// ArrivalProbability is the chance of one new request arriving after each tick.
	ArrivalProbability = 0.1
)

// RequestSource supplies new requests on demand.
type RequestSource interface {
	Next() *Request
}

// Result is what a finished run reports.
type Result struct {
	Clock    int64 // final clock value
	Horizon  int64
	Pending  int // requests left in the queue (0 if fully drained)
	Ticks    int
	Arrivals int
}

// Simulator is the driver loop: it seeds the dispatcher, ticks it until the
// horizon or an empty queue, and injects sporadic arrivals between ticks.
type Simulator struct {
	Horizon    int64
	Dispatcher *Dispatcher

	source   RequestSource
	arrivals *rand.Rand
	sink     LogSink
}

// NewSimulator wires a driver around d. arrivals drives the per-tick arrival
// coin flip and must be distinct from the RNG behind source.
func NewSimulator(horizon int64, d *Dispatcher, source RequestSource, arrivals *rand.Rand, sink LogSink) *Simulator {
	if d == nil {
		panic("NewSimulator: dispatcher must not be nil")
	}
	if source == nil {
		panic("NewSimulator: source must not be nil")
	}
	if arrivals == nil {
		panic("NewSimulator: arrivals rng must not be nil")
	}
	if sink == nil {
		sink = discardSink{}
	}
	return &Simulator{
		Horizon:    horizon,
		Dispatcher: d,
		source:     source,
		arrivals:   arrivals,
		sink:       sink,
	}
}

// Seed enqueues InitialRequestsPerWorker requests for every worker currently in the pool.
func (s *Simulator) Seed() {
	n := InitialRequestsPerWorker * s.Dispatcher.PoolSize()
	for i := 0; i < n; i++ {
		s.Dispatcher.Enqueue(s.source.Next())
	}
	logrus.Infof("Seeded queue with %d requests for %d workers", n, s.Dispatcher.PoolSize())
}

// Run ticks the dispatcher while it reports TickContinue and the clock is below
// the horizon. After each tick a new request arrives with ArrivalProbability.
// The run also stops once the queue is empty after the arrival step.
// The final statistics block is written to the sink.
func (s *Simulator) Run() Result {
	d := s.Dispatcher
	res := Result{Horizon: s.Horizon}

	status := TickContinue
	for status == TickContinue && d.Clock() < s.Horizon {
		status = d.Tick(s.Horizon)
		res.Ticks++

		if s.arrivals.Float64() < ArrivalProbability {
			d.Enqueue(s.source.Next())
			res.Arrivals++
			s.sink.Write("New request added to the queue.")
			s.sink.Write(fmt.Sprintf("%d requests in the queue.", d.WaitQ.Len()))
		}

		if !d.HasPending() {
			logrus.Debugf("[clock %07d] queue drained", d.Clock())
			break
		}
	}

	res.Clock = d.Clock()
	res.Pending = d.WaitQ.Len()

	d.Metrics.Arrivals = res.Arrivals
	d.Metrics.EndClock = res.Clock
	d.Metrics.Horizon = res.Horizon
	d.Metrics.Pending = res.Pending

	s.writeSummary(res)
	logrus.Infof("[clock %07d] Simulation ended after %d ticks", res.Clock, res.Ticks)
	return res
}

func (s *Simulator) writeSummary(res Result) {
	s.sink.Write("")
	s.sink.Write("Final Statistics:")
	s.sink.Write(fmt.Sprintf("Simulation ended at cycle: %d / %d", res.Clock, res.Horizon))
	if res.Pending > 0 {
		s.sink.Write(fmt.Sprintf("Simulation ended with %d pending requests.", res.Pending))
	} else {
		s.sink.Write("Simulation completed. All requests processed.")
	}
}
