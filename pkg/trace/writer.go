package trace

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/pkg/services"
)

// OrphanPolicy controls what the writer does with an event whose job_id has
// no Execution row yet (typically the API insert has not committed when the
// worker's first event fires).
type OrphanPolicy string

// Orphan policies.
const (
	// OrphanWait retries the existence check a bounded number of times, then
	// drops the event. The default.
	OrphanWait OrphanPolicy = "wait"
	// OrphanCreate auto-creates a minimal Execution row under the event's
	// group. Matches the legacy behavior; accepts events with no
	// client-visible parent.
	OrphanCreate OrphanPolicy = "create"
	// OrphanDrop drops the event immediately.
	OrphanDrop OrphanPolicy = "drop"
)

// Broadcaster fans task lifecycle frames out to WebSocket subscribers.
// Implemented by events.ConnectionManager.
type Broadcaster interface {
	Broadcast(groupID, jobID string, frame []byte)
}

// WriterConfig tunes the trace writer loop.
type WriterConfig struct {
	BatchSize        int
	PollTimeout      time.Duration
	OrphanPolicy     OrphanPolicy
	OrphanRetries    int
	OrphanRetryDelay time.Duration
}

// DefaultWriterConfig returns the built-in writer defaults.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		BatchSize:        10,
		PollTimeout:      100 * time.Millisecond,
		OrphanPolicy:     OrphanWait,
		OrphanRetries:    3,
		OrphanRetryDelay: 200 * time.Millisecond,
	}
}

// Writer is the singleton background task draining the trace queue into
// execution_trace rows and WebSocket broadcasts. Loop failures are logged
// and the loop continues; traces are never retried indefinitely.
type Writer struct {
	queue       *Queue
	client      *ent.Client
	engines     *services.EngineService
	broadcaster Broadcaster
	cfg         WriterConfig

	// knownJobs caches (group, job) pairs confirmed to exist, for the
	// writer's lifetime. job_id alone is ambiguous across tenants.
	knownJobs map[string]struct{}

	// Debug-tracing flag, fetched once and cached.
	debugOnce    sync.Once
	debugEnabled bool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWriter creates a trace writer. broadcaster may be nil (no WebSocket fanout).
func NewWriter(queue *Queue, client *ent.Client, engines *services.EngineService, broadcaster Broadcaster, cfg WriterConfig) *Writer {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 100 * time.Millisecond
	}
	if cfg.OrphanPolicy == "" {
		cfg.OrphanPolicy = OrphanWait
	}
	return &Writer{
		queue:       queue,
		client:      client,
		engines:     engines,
		broadcaster: broadcaster,
		cfg:         cfg,
		knownJobs:   make(map[string]struct{}),
		stopCh:      make(chan struct{}),
	}
}

// Start launches the writer loop.
func (w *Writer) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
	slog.Info("Trace writer started")
}

// Stop signals shutdown and waits for the writer to drain the queue and exit.
func (w *Writer) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
	slog.Info("Trace writer stopped", "dropped_total", w.queue.Dropped())
}

// run is the writer loop: pull up to a batch, persist, repeat. On shutdown it
// drains whatever is queued, then exits.
func (w *Writer) run(ctx context.Context) {
	for {
		select {
		case <-w.stopCh:
			w.drain(ctx)
			return
		case <-ctx.Done():
			w.drain(context.WithoutCancel(ctx))
			return
		default:
		}

		batch := w.collectBatch()
		if len(batch) == 0 {
			continue
		}
		w.processBatch(ctx, batch)
	}
}

// collectBatch pulls up to BatchSize events, waiting at most PollTimeout for
// the first one.
func (w *Writer) collectBatch() []Event {
	first, ok := w.queue.receive(w.cfg.PollTimeout)
	if !ok {
		return nil
	}
	batch := make([]Event, 0, w.cfg.BatchSize)
	batch = append(batch, first)
	for len(batch) < w.cfg.BatchSize {
		ev, ok := w.queue.tryReceive()
		if !ok {
			break
		}
		batch = append(batch, ev)
	}
	return batch
}

// drain empties the queue completely before shutdown.
func (w *Writer) drain(ctx context.Context) {
	for {
		ev, ok := w.queue.tryReceive()
		if !ok {
			return
		}
		batch := []Event{ev}
		for len(batch) < w.cfg.BatchSize {
			next, ok := w.queue.tryReceive()
			if !ok {
				break
			}
			batch = append(batch, next)
		}
		w.processBatch(ctx, batch)
	}
}

// processBatch filters a batch and writes the survivors in one transaction.
// A write failure logs and moves on — the events are lost, not retried.
func (w *Writer) processBatch(ctx context.Context, batch []Event) {
	accepted := make([]Event, 0, len(batch))
	for _, ev := range batch {
		if !Persisted(ev.EventType) {
			slog.Debug("Dropping event outside vocabulary",
				"job_id", ev.JobID, "event_type", ev.EventType)
			continue
		}
		if DebugOnly(ev.EventType) && !w.debugTracingEnabled(ctx) {
			continue
		}
		if !w.ensureJobKnown(ctx, ev) {
			continue
		}
		accepted = append(accepted, ev)
	}
	if len(accepted) == 0 {
		return
	}

	if err := w.insertBatch(ctx, accepted); err != nil {
		slog.Error("Trace batch write failed", "count", len(accepted), "error", err)
		return
	}

	if w.broadcaster != nil {
		for _, ev := range accepted {
			if TaskLifecycle(ev.EventType) {
				w.broadcastTaskFrame(ev)
			}
		}
	}
}

// insertBatch persists accepted events in a single transaction.
func (w *Writer) insertBatch(ctx context.Context, events []Event) error {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	builders := make([]*ent.ExecutionTraceCreate, len(events))
	for i, ev := range events {
		b := tx.ExecutionTrace.Create().
			SetJobID(ev.JobID).
			SetEventSource(ev.EventSource).
			SetEventType(ev.EventType).
			SetGroupID(ev.GroupID).
			SetCreatedAt(ev.CreatedAt)
		if ev.EventContext != "" {
			b.SetEventContext(ev.EventContext)
		}
		if ev.Output != "" {
			b.SetOutput(ev.Output)
		}
		if ev.Metadata != nil {
			b.SetTraceMetadata(ev.Metadata)
		}
		if ev.GroupEmail != "" {
			b.SetGroupEmail(ev.GroupEmail)
		}
		builders[i] = b
	}
	if _, err := tx.ExecutionTrace.CreateBulk(builders...).Save(ctx); err != nil {
		return err
	}
	return tx.Commit()
}

// ensureJobKnown verifies the event's job exists, applying the orphan policy
// when it does not. Returns false when the event must be dropped.
func (w *Writer) ensureJobKnown(ctx context.Context, ev Event) bool {
	key := ev.GroupID + "/" + ev.JobID
	if _, ok := w.knownJobs[key]; ok {
		return true
	}

	exists, err := w.jobExists(ctx, ev.GroupID, ev.JobID)
	if err != nil {
		slog.Error("Trace writer job lookup failed", "job_id", ev.JobID, "error", err)
		return false
	}
	if exists {
		w.knownJobs[key] = struct{}{}
		return true
	}

	switch w.cfg.OrphanPolicy {
	case OrphanCreate:
		if err := w.autoCreateJob(ctx, ev); err != nil {
			slog.Error("Failed to auto-create execution for orphan trace",
				"job_id", ev.JobID, "error", err)
			return false
		}
		w.knownJobs[key] = struct{}{}
		return true

	case OrphanWait:
		for i := 0; i < w.cfg.OrphanRetries; i++ {
			time.Sleep(w.cfg.OrphanRetryDelay)
			exists, err = w.jobExists(ctx, ev.GroupID, ev.JobID)
			if err != nil || !exists {
				continue
			}
			w.knownJobs[key] = struct{}{}
			return true
		}
		slog.Warn("Dropping trace for unknown job after bounded wait",
			"job_id", ev.JobID, "event_type", ev.EventType)
		return false

	default: // OrphanDrop
		return false
	}
}

// jobExists checks for an Execution row owned by the event's group. An event
// whose job_id only matches another tenant's row is an orphan here.
func (w *Writer) jobExists(ctx context.Context, groupID, jobID string) (bool, error) {
	return w.client.Execution.Query().
		Where(
			execution.JobIDEQ(jobID),
			execution.GroupIDEQ(groupID),
		).
		Exist(ctx)
}

// autoCreateJob inserts a minimal Execution row under the event's group.
func (w *Writer) autoCreateJob(ctx context.Context, ev Event) error {
	err := w.client.Execution.Create().
		SetJobID(ev.JobID).
		SetGroupID(ev.GroupID).
		SetGroupEmail(ev.GroupEmail).
		SetStatus(execution.StatusPending).
		Exec(ctx)
	if ent.IsConstraintError(err) {
		// Created concurrently — exactly what we wanted.
		return nil
	}
	return err
}

// debugTracingEnabled fetches the engine flag once and caches it for the
// writer's lifetime.
func (w *Writer) debugTracingEnabled(ctx context.Context) bool {
	w.debugOnce.Do(func() {
		enabled, err := w.engines.GetBool(ctx, services.EngineName, services.DebugTracingKey, false)
		if err != nil {
			slog.Warn("Failed to read debug tracing flag, defaulting to disabled", "error", err)
			enabled = false
		}
		w.debugEnabled = enabled
	})
	return w.debugEnabled
}

// taskStatusFrame is the WebSocket frame shape for task lifecycle events.
type taskStatusFrame struct {
	Type      string `json:"type"`
	EventType string `json:"event_type"`
	TaskID    string `json:"task_id"`
	TaskName  string `json:"task_name,omitempty"`
	Timestamp string `json:"timestamp"`
	Output    string `json:"output,omitempty"`
}

// broadcastTaskFrame publishes a task_status_update frame to the job's
// WebSocket subscribers. Fire-and-forget.
func (w *Writer) broadcastTaskFrame(ev Event) {
	frame := taskStatusFrame{
		Type:      "task_status_update",
		EventType: ev.EventType,
		TaskID:    taskID(ev),
		Timestamp: ev.CreatedAt.Format(time.RFC3339Nano),
		Output:    ev.Output,
	}
	if name, ok := ev.Metadata["task_name"].(string); ok {
		frame.TaskName = name
	}
	data, err := json.Marshal(frame)
	if err != nil {
		slog.Warn("Failed to marshal task status frame", "job_id", ev.JobID, "error", err)
		return
	}
	w.broadcaster.Broadcast(ev.GroupID, ev.JobID, data)
}

// taskID extracts the task identifier from metadata, falling back to the
// "Task[id]" event source form.
func taskID(ev Event) string {
	if id, ok := ev.Metadata["task_id"].(string); ok && id != "" {
		return id
	}
	src := ev.EventSource
	if i := strings.Index(src, "["); i >= 0 && strings.HasSuffix(src, "]") {
		return src[i+1 : len(src)-1]
	}
	return ""
}
