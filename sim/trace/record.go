// Package trace provides event-trace recording for dispatcher runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// DispatchRecord captures a single request handed to a worker.
type DispatchRecord struct {
	RequestID int64
	WorkerID  int
	Clock     int64 // clock after the request's cost was added
	Cost      int64
	Kind      string
}

// ScaleAction is the direction of a pool resize step.
type ScaleAction string

const (
	ScaleAdd    ScaleAction = "add"
	ScaleRemove ScaleAction = "remove"
)

// ScaleRecord captures one worker added to or removed from the pool.
type ScaleRecord struct {
	Clock    int64
	WorkerID int
	Action   ScaleAction
	PoolSize int // pool size after the step
}
