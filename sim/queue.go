// Implements the WaitQueue, which holds all requests waiting to be dispatched.
// Requests are enqueued on arrival and leave strictly in arrival order.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of requests waiting to be handed to a worker.
type WaitQueue struct {
	queue []*Request // FIFO queue of requests
}

// Enqueue adds a request to the back of the wait queue.
func (wq *WaitQueue) Enqueue(r *Request) {
	if r == nil {
		panic("Enqueue: req must not be nil")
	}
	wq.queue = append(wq.queue, r)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of requests in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the request at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Request {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Dequeue removes and returns the request at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *Request {
	if len(wq.queue) == 0 {
		return nil
	}
	head := wq.queue[0]
	wq.queue[0] = nil
	wq.queue = wq.queue[1:]
	return head
}
