package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/kasal-project/kasal/pkg/crew"
	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/kasal-project/kasal/pkg/llm"
	"github.com/kasal-project/kasal/pkg/logs"
	"github.com/kasal-project/kasal/pkg/memory"
	"github.com/kasal-project/kasal/pkg/trace"
)

// emitter serializes envelopes onto the worker's stdout. Stdout is the IPC
// channel to the parent; nothing else in the worker may write to it.
type emitter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func newEmitter(w io.Writer) *emitter {
	return &emitter{enc: json.NewEncoder(w)}
}

func (e *emitter) send(env *Envelope) {
	e.mu.Lock()
	defer e.mu.Unlock()
	_ = e.enc.Encode(env)
}

func (e *emitter) Log(entry logs.Entry) {
	e.send(&Envelope{Kind: KindLog, Log: &entry})
}

func (e *emitter) Trace(ev trace.Event) {
	e.send(&Envelope{Kind: KindTrace, Trace: &ev})
}

func (e *emitter) Result(res *Result) {
	e.send(&Envelope{Kind: KindResult, Result: res})
}

// logHandler forwards worker slog records to the parent as log envelopes,
// teeing to the crew log file when one is open. The worker never writes
// logs to the database or the terminal.
type logHandler struct {
	emit  *emitter
	file  io.Writer
	jobID string
	group groupctx.GroupContext
	attrs []slog.Attr
}

func (h *logHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *logHandler) Handle(_ context.Context, r slog.Record) error {
	line := r.Message
	appendAttr := func(a slog.Attr) bool {
		line += " " + a.Key + "=" + a.Value.String()
		return true
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	r.Attrs(appendAttr)

	h.emit.Log(logs.Entry{
		ExecutionID: h.jobID,
		Content:     line,
		Timestamp:   r.Time,
		GroupID:     h.group.PrimaryGroupID(),
		GroupEmail:  h.group.GroupEmail,
	})
	if h.file != nil {
		fmt.Fprintf(h.file, "%s [%s] %s\n", r.Time.Format(time.RFC3339), r.Level, line)
	}
	return nil
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *logHandler) WithGroup(string) slog.Handler { return h }

// RunWorker is the --worker entrypoint. It reads the job payload from
// stdin, runs the crew, and streams envelopes to stdout. It always posts
// exactly one result envelope before returning, whatever fails.
func RunWorker(stdin io.Reader, stdout io.Writer) int {
	emit := newEmitter(stdout)

	var payload Payload
	if err := json.NewDecoder(stdin).Decode(&payload); err != nil {
		emit.Result(&Result{Success: false, Error: "failed to read payload: " + err.Error()})
		return 1
	}

	res := execute(&payload, emit)
	emit.Result(res)
	if res.Success {
		return 0
	}
	return 1
}

// execute runs one job. Every failure path returns a Result; panics are
// captured into one as well.
func execute(payload *Payload, emit *emitter) (res *Result) {
	defer func() {
		if r := recover(); r != nil {
			res = &Result{Success: false, Error: fmt.Sprintf("worker panic: %v", r)}
		}
	}()

	// Quiet third-party output before anything else runs; stdout carries
	// envelopes only.
	_ = os.Setenv("GRPC_GO_LOG_SEVERITY_LEVEL", "ERROR")

	var logFile io.Writer
	if payload.LogDir != "" {
		if err := os.MkdirAll(payload.LogDir, 0o755); err == nil {
			f, err := os.OpenFile(
				filepath.Join(payload.LogDir, payload.JobID+".log"),
				os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err == nil {
				defer func() { _ = f.Close() }()
				logFile = f
			}
		}
	}
	slog.SetDefault(slog.New(&logHandler{
		emit:  emit,
		file:  logFile,
		jobID: payload.JobID,
		group: payload.Group,
	}))

	ctx := groupctx.WithContext(context.Background(), &payload.Group)
	ctx, cancel := context.WithTimeout(ctx, payload.Timeout)
	defer cancel()

	manager := llm.NewManager(payload.LLMAddr)
	defer func() { _ = manager.Close() }()

	memSet, restore, err := attachMemory(ctx, payload, manager, emit)
	if err != nil {
		return &Result{Success: false, Error: err.Error()}
	}
	if restore != nil {
		defer restore()
	}

	built, err := crew.NewBuilder(manager).Build(payload.JobID, payload.Crew, memSet)
	if err != nil {
		return &Result{Success: false, Error: err.Error()}
	}
	orch := built.Orchestrator

	listener := crew.NewListener(payload.JobID, payload.Group, emit.Trace)
	listener.Register(orch.Bus())

	// Graceful cancel: TERM/INT trigger the orchestrator's cooperative stop.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			slog.Info("Worker received stop signal")
			orch.Stop()
		}
	}()

	slog.Info("Crew execution starting", "crew", payload.Crew.Name)
	output, err := orch.Kickoff(ctx, payload.Inputs)
	if err != nil {
		res := &Result{
			Success:        false,
			Error:          err.Error(),
			PartialResults: orch.PartialResults(),
		}
		if errors.Is(err, crew.ErrStopped) {
			res.Error = "stopped"
		}
		return res
	}

	out := &Result{
		Success:    true,
		Content:    output.Content,
		TokenUsage: output.TokenUsage,
	}
	if payload.Crew.Flow != nil {
		out.FlowID = payload.Crew.Flow.FlowID
	}
	return out
}

// attachMemory builds the crew's memory attachment from the payload profile
// and points the storage directory variable at the crew's directory.
func attachMemory(ctx context.Context, payload *Payload, manager *llm.Manager, emit *emitter) (crew.MemorySet, func(), error) {
	crewID := memory.CrewID(payload.Crew, payload.RunName, payload.Group.PrimaryGroupID())

	restore, err := memory.SetStorageEnv("", crewID)
	if err != nil {
		return crew.MemorySet{}, nil, fmt.Errorf("failed to prepare memory storage dir: %w", err)
	}

	opts := memory.FactoryOptions{
		CrewID: crewID,
		JobID:  payload.JobID,
		Group:  payload.Group,
	}
	if payload.DebugTracing {
		opts.Emit = emit.Trace
	}
	if payload.Memory != nil && len(payload.Memory.Embedder) > 0 {
		if model, ok := payload.Memory.Embedder["model"].(string); ok && model != "" {
			embedder, err := manager.Configure(model, -1)
			if err != nil {
				slog.Warn("Failed to configure embedder, using default memory", "model", model, "error", err)
			} else {
				opts.Embedder = embedder
			}
		}
	}

	return memory.Attach(ctx, payload.Memory, opts), restore, nil
}
