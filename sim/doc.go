// Package sim provides the discrete-event dispatch simulation for lb-sim.
//
// # Reading Guide
//
// Start with these files:
//   - request.go: the immutable Request handed from queue to worker
//   - dispatcher.go: Tick (per-worker dispatch + clock advance) and Rescale (pool sizing)
//   - simulator.go: the driver loop that seeds, ticks and injects arrivals
//
// # Architecture
//
// The Dispatcher owns a FIFO WaitQueue, a creation-ordered worker pool and the
// simulated clock. The clock only moves by the cost of a dispatched request.
// After every complete tick the pool is resized by a ScalingPolicy (3:1
// queue-to-worker ratio by default) and never drops below one worker.
//
// Sub-packages:
//   - sim/workload/: seeded RequestSource implementation
//   - sim/trace/: optional dispatch and resize event trace
//
// Everything the run reports goes through a LogSink with a single Write method.
package sim
