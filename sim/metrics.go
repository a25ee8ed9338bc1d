// Tracks run-wide dispatch and scaling statistics for the end-of-run report.

package sim

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about the simulation
// for final reporting.
type Metrics struct {
	Dispatched       int             // Number of requests handed to a worker
	DispatchedByKind map[JobKind]int // Dispatch count per job kind
	TotalCost        int64           // Sum of dispatched request costs (== clock advance)
	Costs            []float64       // Cost of every dispatched request, in dispatch order

	Ticks         int // Number of Tick calls
	Arrivals      int // Requests enqueued by the driver after seeding
	ScaleUps      int // Workers added
	ScaleDowns    int // Workers removed
	PeakPoolSize  int // Max pool size observed
	FinalPoolSize int // Pool size at the end of the run

	EndClock int64 // Clock value when the run stopped
	Horizon  int64 // Configured horizon
	Pending  int   // Requests left in the queue
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		DispatchedByKind: make(map[JobKind]int),
		Costs:            make([]float64, 0),
	}
}

func (m *Metrics) recordDispatch(req *Request) {
	m.Dispatched++
	m.DispatchedByKind[req.Kind]++
	m.TotalCost += req.Cost
	m.Costs = append(m.Costs, float64(req.Cost))
}

func (m *Metrics) observePool(size int) {
	if size > m.PeakPoolSize {
		m.PeakPoolSize = size
	}
	m.FinalPoolSize = size
}

// CostSummary describes the distribution of dispatched request costs.
type CostSummary struct {
	Mean   float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
}

// CostSummary computes cost statistics over all dispatched requests.
// Returns zero values when nothing was dispatched.
func (m *Metrics) CostSummary() CostSummary {
	if len(m.Costs) == 0 {
		return CostSummary{}
	}
	sorted := make([]float64, len(m.Costs))
	copy(sorted, m.Costs)
	sort.Float64s(sorted)

	cs := CostSummary{
		Mean: stat.Mean(sorted, nil),
		P50:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.9, stat.Empirical, sorted, nil),
		P99:  stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		cs.StdDev = stat.StdDev(sorted, nil)
	}
	return cs
}

// Print writes the aggregated metrics to w.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Ended At Cycle       : %d / %d\n", m.EndClock, m.Horizon)
	fmt.Fprintf(w, "Ticks                : %d\n", m.Ticks)
	fmt.Fprintf(w, "Dispatched Requests  : %d (processing=%d, streaming=%d)\n",
		m.Dispatched, m.DispatchedByKind[KindProcessing], m.DispatchedByKind[KindStreaming])
	fmt.Fprintf(w, "Pending Requests     : %d\n", m.Pending)
	fmt.Fprintf(w, "New Arrivals         : %d\n", m.Arrivals)
	fmt.Fprintf(w, "Workers Added/Removed: %d / %d\n", m.ScaleUps, m.ScaleDowns)
	fmt.Fprintf(w, "Peak / Final Pool    : %d / %d\n", m.PeakPoolSize, m.FinalPoolSize)
	if m.Dispatched > 0 {
		cs := m.CostSummary()
		fmt.Fprintf(w, "Cost Mean (StdDev)   : %.2f (%.2f) cycles\n", cs.Mean, cs.StdDev)
		fmt.Fprintf(w, "Cost P50/P90/P99     : %.0f / %.0f / %.0f cycles\n", cs.P50, cs.P90, cs.P99)
	}
}
