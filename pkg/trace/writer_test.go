package trace

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/ent/executiontrace"
	"github.com/kasal-project/kasal/pkg/services"
	"github.com/kasal-project/kasal/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBroadcaster records frames instead of fanning them out.
type fakeBroadcaster struct {
	mu     sync.Mutex
	frames map[string][][]byte
}

func (b *fakeBroadcaster) Broadcast(groupID, jobID string, frame []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.frames == nil {
		b.frames = make(map[string][][]byte)
	}
	b.frames[groupID+"/"+jobID] = append(b.frames[groupID+"/"+jobID], frame)
}

func (b *fakeBroadcaster) framesFor(groupID, jobID string) [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frames[groupID+"/"+jobID]
}

func seedJob(t *testing.T, client *ent.Client, jobID, groupID string) {
	t.Helper()
	_, err := client.Execution.Create().
		SetJobID(jobID).
		SetGroupID(groupID).
		SetStatus(execution.StatusPending).
		Save(context.Background())
	require.NoError(t, err)
}

func event(jobID, eventType string) Event {
	return Event{
		JobID:       jobID,
		EventType:   eventType,
		EventSource: "Crew[test]",
		GroupID:     "team-a",
		CreatedAt:   time.Now(),
	}
}

func traceRows(t *testing.T, client *ent.Client, jobID string) []*ent.ExecutionTrace {
	t.Helper()
	rows, err := client.ExecutionTrace.Query().
		Where(executiontrace.JobIDEQ(jobID)).
		Order(ent.Asc(executiontrace.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func TestWriter_PersistsBatch(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	seedJob(t, client, "job-1", "team-a")

	w := NewWriter(NewQueue(0), client, services.NewEngineService(client), nil, DefaultWriterConfig())

	ev := event("job-1", EventTaskCompleted)
	ev.EventSource = "Task[t1]"
	ev.Output = "done"
	ev.Metadata = map[string]interface{}{"task_id": "t1"}
	w.processBatch(ctx, []Event{
		event("job-1", EventCrewStarted),
		ev,
		event("job-1", "not_in_vocabulary"),
	})

	rows := traceRows(t, client, "job-1")
	require.Len(t, rows, 2, "events outside the vocabulary are dropped")
	assert.Equal(t, EventCrewStarted, rows[0].EventType)
	assert.Equal(t, EventTaskCompleted, rows[1].EventType)
	assert.Equal(t, "Task[t1]", rows[1].EventSource)
	assert.Equal(t, "done", rows[1].Output)
	assert.Equal(t, "t1", rows[1].TraceMetadata["task_id"])
	assert.Equal(t, "team-a", rows[1].GroupID)
}

func TestWriter_DebugOnlyEventsGated(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	engines := services.NewEngineService(client)
	seedJob(t, client, "job-1", "team-a")

	t.Run("disabled by default", func(t *testing.T) {
		w := NewWriter(NewQueue(0), client, engines, nil, DefaultWriterConfig())
		w.processBatch(ctx, []Event{
			event("job-1", EventMemoryWrite),
			event("job-1", EventAgentReasoning),
			event("job-1", EventLLMCall),
		})

		rows := traceRows(t, client, "job-1")
		require.Len(t, rows, 1, "verbose events are skipped without the flag")
		assert.Equal(t, EventLLMCall, rows[0].EventType)
	})

	t.Run("enabled via engine setting", func(t *testing.T) {
		require.NoError(t, engines.SetBool(ctx, services.EngineName, services.DebugTracingKey, true))

		// The flag is cached per writer, so a fresh writer picks it up.
		w := NewWriter(NewQueue(0), client, engines, nil, DefaultWriterConfig())
		w.processBatch(ctx, []Event{event("job-1", EventMemoryWrite)})

		rows := traceRows(t, client, "job-1")
		require.Len(t, rows, 2)
		assert.Equal(t, EventMemoryWrite, rows[1].EventType)
	})
}

func TestWriter_OrphanPolicies(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	engines := services.NewEngineService(client)

	t.Run("drop", func(t *testing.T) {
		cfg := DefaultWriterConfig()
		cfg.OrphanPolicy = OrphanDrop
		w := NewWriter(NewQueue(0), client, engines, nil, cfg)

		w.processBatch(ctx, []Event{event("job-orphan-drop", EventCrewStarted)})
		assert.Empty(t, traceRows(t, client, "job-orphan-drop"))
	})

	t.Run("create", func(t *testing.T) {
		cfg := DefaultWriterConfig()
		cfg.OrphanPolicy = OrphanCreate
		w := NewWriter(NewQueue(0), client, engines, nil, cfg)

		ev := event("job-orphan-create", EventCrewStarted)
		ev.GroupEmail = "alice@example.com"
		w.processBatch(ctx, []Event{ev})

		require.Len(t, traceRows(t, client, "job-orphan-create"), 1)

		exec, err := client.Execution.Query().
			Where(execution.JobIDEQ("job-orphan-create")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, execution.StatusPending, exec.Status)
		assert.Equal(t, "team-a", exec.GroupID)
	})

	t.Run("wait sees a late insert", func(t *testing.T) {
		cfg := DefaultWriterConfig()
		cfg.OrphanPolicy = OrphanWait
		cfg.OrphanRetries = 10
		cfg.OrphanRetryDelay = 50 * time.Millisecond
		w := NewWriter(NewQueue(0), client, engines, nil, cfg)

		go func() {
			time.Sleep(100 * time.Millisecond)
			_, _ = client.Execution.Create().
				SetJobID("job-orphan-wait").
				SetGroupID("team-a").
				SetStatus(execution.StatusPending).
				Save(context.Background())
		}()

		w.processBatch(ctx, []Event{event("job-orphan-wait", EventCrewStarted)})
		assert.Len(t, traceRows(t, client, "job-orphan-wait"), 1)
	})

	t.Run("wait gives up after bounded retries", func(t *testing.T) {
		cfg := DefaultWriterConfig()
		cfg.OrphanPolicy = OrphanWait
		cfg.OrphanRetries = 2
		cfg.OrphanRetryDelay = 10 * time.Millisecond
		w := NewWriter(NewQueue(0), client, engines, nil, cfg)

		w.processBatch(ctx, []Event{event("job-never-exists", EventCrewStarted)})
		assert.Empty(t, traceRows(t, client, "job-never-exists"))
	})

	t.Run("another tenant's row does not adopt the event", func(t *testing.T) {
		seedJob(t, client, "job-shared", "team-b")

		cfg := DefaultWriterConfig()
		cfg.OrphanPolicy = OrphanDrop
		w := NewWriter(NewQueue(0), client, engines, nil, cfg)

		// The event carries team-a, which owns no such job; the team-b row
		// with the same id must not satisfy the existence check.
		w.processBatch(ctx, []Event{event("job-shared", EventCrewStarted)})
		assert.Empty(t, traceRows(t, client, "job-shared"))
	})
}

func TestWriter_BroadcastsTaskLifecycle(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	seedJob(t, client, "job-1", "team-a")

	broadcaster := &fakeBroadcaster{}
	w := NewWriter(NewQueue(0), client, services.NewEngineService(client), broadcaster, DefaultWriterConfig())

	started := event("job-1", EventTaskStarted)
	started.EventSource = "Task[t1]"
	started.Metadata = map[string]interface{}{"task_id": "t1", "task_name": "research"}
	w.processBatch(ctx, []Event{
		event("job-1", EventCrewStarted),
		started,
	})

	frames := broadcaster.framesFor("team-a", "job-1")
	require.Len(t, frames, 1, "only task lifecycle events fan out")

	var frame map[string]interface{}
	require.NoError(t, json.Unmarshal(frames[0], &frame))
	assert.Equal(t, "task_status_update", frame["type"])
	assert.Equal(t, EventTaskStarted, frame["event_type"])
	assert.Equal(t, "t1", frame["task_id"])
	assert.Equal(t, "research", frame["task_name"])
}

func TestWriter_DrainsOnStop(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedJob(t, client, "job-1", "team-a")

	queue := NewQueue(0)
	w := NewWriter(queue, client, services.NewEngineService(client), nil, DefaultWriterConfig())
	w.Start(context.Background())

	for i := 0; i < 25; i++ {
		require.True(t, queue.Enqueue(event("job-1", EventLLMCall)))
	}
	queue.Close()
	w.Stop()

	assert.Len(t, traceRows(t, client, "job-1"), 25, "everything queued before shutdown is persisted")
}
