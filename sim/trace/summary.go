package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches    int
	TotalCost          int64
	ScaleUps           int
	ScaleDowns         int
	PeakPoolSize       int
	UniqueWorkers      int
	WorkerDistribution map[int]int // worker ID → count of requests dispatched to it
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		WorkerDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.PeakPoolSize = st.InitialPoolSize
	summary.TotalDispatches = len(st.Dispatches)
	for _, d := range st.Dispatches {
		summary.WorkerDistribution[d.WorkerID]++
		summary.TotalCost += d.Cost
	}

	for _, s := range st.Scalings {
		switch s.Action {
		case ScaleAdd:
			summary.ScaleUps++
		case ScaleRemove:
			summary.ScaleDowns++
		}
		if s.PoolSize > summary.PeakPoolSize {
			summary.PeakPoolSize = s.PoolSize
		}
	}

	summary.UniqueWorkers = len(summary.WorkerDistribution)

	return summary
}
