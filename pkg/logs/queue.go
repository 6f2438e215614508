// Package logs implements the bounded log queue and its background writer.
// Workers never touch the database directly: log lines cross the process
// boundary as envelopes, land on this queue, and a single writer drains them
// into execution_logs rows plus batched WebSocket frames. (Direct subprocess
// writes corrupt SQLite under concurrency; the queue topology holds for
// every backend.)
package logs

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultQueueCapacity bounds the in-memory log queue.
const DefaultQueueCapacity = 2000

// Entry is one unstructured log line forwarded from a worker.
type Entry struct {
	ExecutionID string    `json:"execution_id"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	GroupID     string    `json:"group_id"`
	GroupEmail  string    `json:"group_email,omitempty"`
}

// Queue is a bounded multi-producer, single-consumer log queue.
// Enqueue never blocks; overflow drops and counts.
type Queue struct {
	ch        chan Entry
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
		ch:     make(chan Entry, capacity),
		closed: make(chan struct{}),
	}
}

// Enqueue offers a log line without blocking. Returns false when dropped.
func (q *Queue) Enqueue(e Entry) bool {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	select {
	case <-q.closed:
		return false
	default:
	}
	select {
	case q.ch <- e:
		return true
	default:
		n := q.dropped.Add(1)
		if n == 1 || n%500 == 0 {
			slog.Warn("Log queue full, dropping line",
				"execution_id", e.ExecutionID, "dropped_total", n)
		}
		return false
	}
}

// Dropped returns the number of lines dropped since startup.
func (q *Queue) Dropped() int64 {
	return q.dropped.Load()
}

// Close marks the queue shut down; queued lines remain drainable.
func (q *Queue) Close() {
	q.closeOnce.Do(func() { close(q.closed) })
}

// receive waits up to timeout for one entry.
func (q *Queue) receive(timeout time.Duration) (Entry, bool) {
	select {
	case e := <-q.ch:
		return e, true
	case <-time.After(timeout):
		return Entry{}, false
	}
}

// tryReceive pops one entry without waiting.
func (q *Queue) tryReceive() (Entry, bool) {
	select {
	case e := <-q.ch:
		return e, true
	default:
		return Entry{}, false
	}
}
