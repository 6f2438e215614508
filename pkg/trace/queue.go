// Package trace implements the bounded trace queue and its background writer:
// structured events flow from producers (the worker event listener, memory
// tracing hooks, the executor) through an in-memory channel into
// execution_trace rows and WebSocket frames.
package trace

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultQueueCapacity bounds the in-memory trace queue. On overflow,
// producers drop — observability must never be able to OOM the node.
const DefaultQueueCapacity = 1000

// Event is one structured trace envelope.
type Event struct {
	JobID        string                 `json:"job_id"`
	EventType    string                 `json:"event_type"`
	EventSource  string                 `json:"event_source"`
	EventContext string                 `json:"event_context,omitempty"`
	Output       string                 `json:"output,omitempty"`
	Metadata     map[string]interface{} `json:"trace_metadata,omitempty"`
	GroupID      string                 `json:"group_id"`
	GroupEmail   string                 `json:"group_email,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// Queue is a bounded multi-producer, single-consumer event queue.
// Enqueue never blocks: on a full queue the event is dropped and counted.
type Queue struct {
	ch        chan Event
	dropped   atomic.Int64
	closeOnce sync.Once
	closed    chan struct{}
}

// NewQueue creates a queue with the given capacity (0 → DefaultQueueCapacity).
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{
		ch:     make(chan Event, capacity),
		closed: make(chan struct{}),
	}
}

// Enqueue offers an event without blocking. Returns false when the event was
// dropped (queue full or shut down).
func (q *Queue) Enqueue(ev Event) bool {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}
	select {
	case <-q.closed:
		return false
	default:
	}
	select {
	case q.ch <- ev:
		return true
	default:
		n := q.dropped.Add(1)
		if n == 1 || n%100 == 0 {
			slog.Warn("Trace queue full, dropping event",
				"job_id", ev.JobID, "event_type", ev.EventType, "dropped_total", n)
		}
		return false
	}
}

// Dropped returns the number of events dropped since startup.
func (q *Queue) Dropped() int64 {
	return q.dropped.Load()
}

// Len returns the current queue depth.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Close marks the queue shut down. Events already queued remain available for
// the writer's shutdown drain; subsequent Enqueue calls are dropped.
func (q *Queue) Close() {
	q.closeOnce.Do(func() { close(q.closed) })
}

// receive waits up to timeout for one event. ok is false on timeout.
func (q *Queue) receive(timeout time.Duration) (Event, bool) {
	select {
	case ev := <-q.ch:
		return ev, true
	case <-time.After(timeout):
		return Event{}, false
	}
}

// tryReceive pops one event without waiting.
func (q *Queue) tryReceive() (Event, bool) {
	select {
	case ev := <-q.ch:
		return ev, true
	default:
		return Event{}, false
	}
}
