package crew

import (
	"testing"

	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/kasal-project/kasal/pkg/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGroup() groupctx.GroupContext {
	return groupctx.GroupContext{
		GroupIDs:   []string{"team-a"},
		GroupEmail: "alice@example.com",
	}
}

func TestListener_TranslatesBusEvents(t *testing.T) {
	var emitted []trace.Event
	l := NewListener("job-1", testGroup(), func(ev trace.Event) {
		emitted = append(emitted, ev)
	})

	bus := &Bus{}
	l.Register(bus)

	bus.Publish(BusEvent{
		Kind:     EventTaskCompleted,
		Source:   "Task[t1]",
		TaskID:   "t1",
		TaskName: "research",
		Output:   "done",
	})

	require.Len(t, emitted, 1)
	ev := emitted[0]
	assert.Equal(t, "job-1", ev.JobID)
	assert.Equal(t, trace.EventTaskCompleted, ev.EventType)
	assert.Equal(t, "Task[t1]", ev.EventSource)
	assert.Equal(t, "done", ev.Output)
	assert.Equal(t, "team-a", ev.GroupID)
	assert.Equal(t, "alice@example.com", ev.GroupEmail)
	assert.Equal(t, "t1", ev.Metadata["task_id"])
	assert.Equal(t, "research", ev.Metadata["task_name"])
}

func TestListener_SkipsUnmappedKinds(t *testing.T) {
	var count int
	l := NewListener("job-1", testGroup(), func(trace.Event) { count++ })

	bus := &Bus{}
	l.Register(bus)

	bus.Publish(BusEvent{Kind: "internal_heartbeat"})
	bus.Publish(BusEvent{Kind: EventCrewStarted, Source: "Crew[c]"})

	assert.Equal(t, 1, count)
}

func TestListener_ErrorBecomesOutput(t *testing.T) {
	var emitted []trace.Event
	l := NewListener("job-1", testGroup(), func(ev trace.Event) {
		emitted = append(emitted, ev)
	})

	bus := &Bus{}
	l.Register(bus)
	bus.Publish(BusEvent{
		Kind:   EventTaskFailed,
		Source: "Task[t1]",
		Error:  "agent exploded",
	})

	require.Len(t, emitted, 1)
	assert.Equal(t, trace.EventTaskFailed, emitted[0].EventType)
	assert.Equal(t, "agent exploded", emitted[0].Output)
}

func TestListener_MemoryKindsMapToVocabulary(t *testing.T) {
	var emitted []trace.Event
	l := NewListener("job-1", testGroup(), func(ev trace.Event) {
		emitted = append(emitted, ev)
	})

	bus := &Bus{}
	l.Register(bus)
	bus.Publish(BusEvent{Kind: EventMemoryWrite, Source: "Memory[short_term]"})
	bus.Publish(BusEvent{Kind: EventMemoryRead, Source: "Memory[short_term]"})

	require.Len(t, emitted, 2)
	assert.Equal(t, trace.EventMemoryWrite, emitted[0].EventType)
	assert.Equal(t, trace.EventMemoryRetrieval, emitted[1].EventType)
}

func TestListener_KnowledgeKindsMapToVocabulary(t *testing.T) {
	var emitted []trace.Event
	l := NewListener("job-1", testGroup(), func(ev trace.Event) {
		emitted = append(emitted, ev)
	})

	bus := &Bus{}
	l.Register(bus)
	bus.Publish(BusEvent{Kind: EventKnowledgeQueryStarted, Source: "Agent[a]"})
	bus.Publish(BusEvent{Kind: EventKnowledgeQuery, Source: "Agent[a]", Output: "loaded 2 of 2 knowledge sources"})

	require.Len(t, emitted, 2)
	assert.Equal(t, trace.EventKnowledgeRetrievalStarted, emitted[0].EventType)
	assert.Equal(t, trace.EventKnowledgeRetrieval, emitted[1].EventType)
	assert.Equal(t, "loaded 2 of 2 knowledge sources", emitted[1].Output)
}
