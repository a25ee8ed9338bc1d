package sim

import "fmt"

// Worker is a single server in the dispatcher's pool.
// It has no queue of its own; the Dispatcher hands it at most one request per tick.
type Worker struct {
	ID int // unique within the live pool, 1-based
}

// NewWorker creates a worker with the given identity.
func NewWorker(id int) *Worker {
	return &Worker{ID: id}
}

// Process records the dispatch of req to this worker on the sink.
func (w *Worker) Process(req *Request, sink LogSink) {
	sink.Write(fmt.Sprintf("WebServer %d processing request from %s to %s for job type %c taking %d cycles.",
		w.ID, req.Origin, req.Destination, req.Kind.Code(), req.Cost))
}
