// Defines the Request struct that models a single unit of work handed to the dispatcher.
// Requests are immutable once created and are discarded after a worker processes them.

package sim

import (
	"fmt"
)

// JobKind classifies what a request asks a worker to do.
type JobKind string

const (
	KindProcessing JobKind = "processing"
	KindStreaming  JobKind = "streaming"
)

// Code returns the single-letter job code used in event log lines ('P' or 'S').
func (k JobKind) Code() byte {
	if k == KindStreaming {
		return 'S'
	}
	return 'P'
}

// Request models one queued unit of work.
type Request struct {
	ID          int64   // Sequential identifier assigned by the RequestSource (1-based)
	Origin      string  // Dotted-quad address the request came from
	Destination string  // Dotted-quad address the request is going to
	Cost        int64   // Simulated cycles needed to process the request (>= 1)
	Kind        JobKind // processing or streaming
}

// NewRequest creates a Request with all fields set.
// Panics if cost is not positive: every dispatch must advance the clock.
func NewRequest(id int64, origin, destination string, cost int64, kind JobKind) *Request {
	if cost < 1 {
		panic(fmt.Sprintf("NewRequest: cost must be >= 1, got %d", cost))
	}
	return &Request{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		Cost:        cost,
		Kind:        kind,
	}
}

// This method returns a human-readable string representation of a Request.
func (req Request) String() string {
	return fmt.Sprintf("Request: (ID: %d, %s -> %s, Kind: %c, Cost: %d)", req.ID, req.Origin, req.Destination, req.Kind.Code(), req.Cost)
}
