package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inference-sim/lb-sim/sim/trace"
)

// fixedSource yields requests of a single cost with sequential IDs.
type fixedSource struct {
	cost   int64
	nextID int64
}

func (s *fixedSource) Next() *Request {
	s.nextID++
	return NewRequest(s.nextID, "10.0.0.1", "10.0.0.2", s.cost, KindProcessing)
}

// constSource is a rand.Source returning the same value forever.
// v=0 makes Float64() return 0 (always arrive); 1<<62 makes it 0.5 (never arrive).
type constSource struct{ v int64 }

func (s constSource) Int63() int64 { return s.v }
func (s constSource) Seed(int64) {}

func alwaysArrive() *rand.Rand { return rand.New(constSource{v: 0}) }
func neverArrive() *rand.Rand { return rand.New(constSource{v: 1 << 62}) }

// newTestDispatcher builds a traced dispatcher with the given pool size,
// pre-loaded with one request per cost (IDs 1..len(costs)).
func newTestDispatcher(t *testing.T, workers int, costs ...int64) (*Dispatcher, *MemorySink) {
	t.Helper()
	sink := &MemorySink{}
	d, err := NewDispatcher(DispatcherConfig{
		NumWorkers: workers,
		Sink:       sink,
		Trace:      trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelEvents}),
	})
	require.NoError(t, err)
	for i, c := range costs {
		d.Enqueue(NewRequest(int64(i+1), "1.1.1.1", "2.2.2.2", c, KindProcessing))
	}
	return d, sink
}

// fill enqueues n cost-1 requests.
func fill(d *Dispatcher, n int) {
	for i := 0; i < n; i++ {
		d.Enqueue(NewRequest(int64(i+1), "1.1.1.1", "2.2.2.2", 1, KindStreaming))
	}
}
