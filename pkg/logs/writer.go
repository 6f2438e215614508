package logs

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/kasal-project/kasal/ent"
)

// Broadcaster fans buffered log frames out to WebSocket subscribers.
type Broadcaster interface {
	Broadcast(groupID, jobID string, frame []byte)
}

// WriterConfig tunes the log writer loop.
type WriterConfig struct {
	BatchSize   int
	PollTimeout time.Duration
}

// DefaultWriterConfig returns the built-in log writer defaults.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		BatchSize:   50,
		PollTimeout: 100 * time.Millisecond,
	}
}

// Writer is the singleton background task draining the log queue into
// execution_logs rows. Insert failures are logged and dropped — a log line
// must never block or fail its job's status updates.
type Writer struct {
	queue       *Queue
	client      *ent.Client
	broadcaster Broadcaster
	cfg         WriterConfig

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWriter creates a log writer. broadcaster may be nil.
func NewWriter(queue *Queue, client *ent.Client, broadcaster Broadcaster, cfg WriterConfig) *Writer {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 100 * time.Millisecond
	}
	return &Writer{
		queue:       queue,
		client:      client,
		broadcaster: broadcaster,
		cfg:         cfg,
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
	slog.Info("Log writer started")
}

// Stop signals shutdown and waits for the queue to drain.
func (w *Writer) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
	slog.Info("Log writer stopped", "dropped_total", w.queue.Dropped())
}

// run pulls batches and persists them until stopped, then drains.
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
		w.writeBatch(ctx, batch)
	}
}

// collectBatch pulls up to BatchSize entries, waiting at most PollTimeout
// for the first one.
func (w *Writer) collectBatch() []Entry {
	first, ok := w.queue.receive(w.cfg.PollTimeout)
	if !ok {
		return nil
	}
	batch := make([]Entry, 0, w.cfg.BatchSize)
	batch = append(batch, first)
	for len(batch) < w.cfg.BatchSize {
		e, ok := w.queue.tryReceive()
		if !ok {
			break
		}
		batch = append(batch, e)
	}
	return batch
}

// drain empties the queue before shutdown.
func (w *Writer) drain(ctx context.Context) {
	for {
		e, ok := w.queue.tryReceive()
		if !ok {
			return
		}
		batch := []Entry{e}
		for len(batch) < w.cfg.BatchSize {
			next, ok := w.queue.tryReceive()
			if !ok {
				break
			}
			batch = append(batch, next)
		}
		w.writeBatch(ctx, batch)
	}
}

// writeBatch inserts a batch of log rows and broadcasts per-job frames.
func (w *Writer) writeBatch(ctx context.Context, batch []Entry) {
	builders := make([]*ent.ExecutionLogCreate, len(batch))
	for i, e := range batch {
		b := w.client.ExecutionLog.Create().
			SetExecutionID(e.ExecutionID).
			SetContent(e.Content).
			SetTimestamp(e.Timestamp).
			SetGroupID(e.GroupID)
		if e.GroupEmail != "" {
			b.SetGroupEmail(e.GroupEmail)
		}
		builders[i] = b
	}
	if _, err := w.client.ExecutionLog.CreateBulk(builders...).Save(ctx); err != nil {
		slog.Error("Log batch write failed", "count", len(batch), "error", err)
		return
	}

	if w.broadcaster != nil {
		w.broadcastBatches(batch)
	}
}

// logFrame is the WebSocket frame shape for buffered log batches.
type logFrame struct {
	Type        string         `json:"type"`
	ExecutionID string         `json:"execution_id"`
	Entries     []logFrameLine `json:"entries"`
}

type logFrameLine struct {
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// jobRef identifies a frame's destination channel. Two tenants can run the
// same job_id concurrently, so grouping by id alone would merge their lines.
type jobRef struct {
	groupID string
	jobID   string
}

// broadcastBatches groups a batch by (group, job) and publishes one frame per
// pair.
func (w *Writer) broadcastBatches(batch []Entry) {
	byJob := make(map[jobRef][]logFrameLine)
	for _, e := range batch {
		ref := jobRef{groupID: e.GroupID, jobID: e.ExecutionID}
		byJob[ref] = append(byJob[ref], logFrameLine{
			Content:   e.Content,
			Timestamp: e.Timestamp.Format(time.RFC3339Nano),
		})
	}
	for ref, lines := range byJob {
		data, err := json.Marshal(logFrame{
			Type:        "log",
			ExecutionID: ref.jobID,
			Entries:     lines,
		})
		if err != nil {
			continue
		}
		w.broadcaster.Broadcast(ref.groupID, ref.jobID, data)
	}
}
