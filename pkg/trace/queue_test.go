package trace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_EnqueueAndReceive(t *testing.T) {
	q := NewQueue(10)

	ok := q.Enqueue(Event{JobID: "job-1", EventType: EventTaskStarted})
	assert.True(t, ok)
	assert.Equal(t, 1, q.Len())

	ev, ok := q.tryReceive()
	require.True(t, ok)
	assert.Equal(t, "job-1", ev.JobID)
	assert.False(t, ev.CreatedAt.IsZero(), "enqueue stamps created_at")
}

func TestQueue_DropOnOverflow(t *testing.T) {
	q := NewQueue(2)

	assert.True(t, q.Enqueue(Event{JobID: "a"}))
	assert.True(t, q.Enqueue(Event{JobID: "b"}))

	// Queue full — producer must not block, event is dropped and counted.
	assert.False(t, q.Enqueue(Event{JobID: "c"}))
	assert.False(t, q.Enqueue(Event{JobID: "d"}))
	assert.Equal(t, int64(2), q.Dropped())
	assert.Equal(t, 2, q.Len())
}

func TestQueue_CloseRejectsNewButDrains(t *testing.T) {
	q := NewQueue(4)
	require.True(t, q.Enqueue(Event{JobID: "queued-before-close"}))

	q.Close()
	q.Close() // idempotent

	assert.False(t, q.Enqueue(Event{JobID: "after-close"}))

	// Events queued before shutdown stay available for the drain.
	ev, ok := q.tryReceive()
	require.True(t, ok)
	assert.Equal(t, "queued-before-close", ev.JobID)

	_, ok = q.tryReceive()
	assert.False(t, ok)
}

func TestQueue_ReceiveTimeout(t *testing.T) {
	q := NewQueue(1)

	start := time.Now()
	_, ok := q.receive(20 * time.Millisecond)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestVocabulary(t *testing.T) {
	// Core lifecycle events are always persisted.
	for _, et := range []string{
		EventCrewStarted, EventCrewCompleted,
		EventTaskStarted, EventTaskCompleted, EventTaskFailed,
		EventAgentExecution, EventToolUsage, EventToolError, EventLLMCall,
	} {
		assert.True(t, Persisted(et), et)
		assert.False(t, DebugOnly(et), et)
	}

	// Verbose events exist in the vocabulary but are gated on debug tracing.
	for _, et := range []string{
		EventMemoryWrite, EventMemoryRetrieval,
		EventMemoryWriteStarted, EventMemoryRetrievalStarted,
		EventKnowledgeRetrieval, EventKnowledgeRetrievalStarted,
		EventAgentReasoning, EventAgentReasoningError, EventLLMGuardrail,
	} {
		assert.True(t, Persisted(et), et)
		assert.True(t, DebugOnly(et), et)
	}

	// Anything outside the closed vocabulary is rejected.
	assert.False(t, Persisted("made_up_event"))
	assert.False(t, Persisted(""))
}

func TestTaskLifecycle(t *testing.T) {
	assert.True(t, TaskLifecycle(EventTaskStarted))
	assert.True(t, TaskLifecycle(EventTaskCompleted))
	assert.True(t, TaskLifecycle(EventTaskFailed))
	assert.False(t, TaskLifecycle(EventCrewStarted))
	assert.False(t, TaskLifecycle(EventLLMCall))
}
