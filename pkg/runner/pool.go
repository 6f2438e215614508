package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/pkg/crew"
	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/kasal-project/kasal/pkg/logs"
	"github.com/kasal-project/kasal/pkg/services"
	"github.com/kasal-project/kasal/pkg/trace"
)

// WorkerFlag re-invokes this binary in worker mode.
const WorkerFlag = "--worker"

// stdout lines can carry full LLM outputs; size the scanner accordingly.
const maxEnvelopeBytes = 4 * 1024 * 1024

// TerminalPublisher pushes the execution_complete frame to WebSocket
// subscribers. Implemented by events.ConnectionManager.
type TerminalPublisher interface {
	PublishTerminal(groupID, jobID, status, errMsg string)
}

// PoolConfig tunes the process pool.
type PoolConfig struct {
	PodID          string        // this node's identity, stamped on running rows
	MaxConcurrent  int           // live worker cap; default 4
	DefaultTimeout time.Duration // per-job timeout when the request has none
	GracePeriod    time.Duration // TERM → KILL window; default 5s
	LLMAddr        string        // forwarded to workers
	LogDir         string        // forwarded to workers
}

// DefaultPoolConfig returns the built-in executor defaults.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxConcurrent:  4,
		DefaultTimeout: 30 * time.Minute,
		GracePeriod:    5 * time.Second,
	}
}

// Request is one job submission.
type Request struct {
	JobID        string
	RunName      string
	Group        groupctx.GroupContext
	Crew         crew.Config
	Inputs       map[string]interface{}
	Memory       *crew.MemoryProfile
	Timeout      time.Duration
	DebugTracing bool
}

// job tracks one live worker.
type job struct {
	jobID string
	group groupctx.GroupContext

	cmd      *exec.Cmd
	resultCh chan *Result // buffered 1; demux posts at most one result
	exitCh   chan struct{}

	stopMu        sync.Mutex
	stopRequested bool
	stopReason    string
	partials      []map[string]interface{}
}

func (j *job) key() string {
	return jobKey(j.group.PrimaryGroupID(), j.jobID)
}

func (j *job) markStopping(reason string) {
	j.stopMu.Lock()
	defer j.stopMu.Unlock()
	if !j.stopRequested {
		j.stopRequested = true
		j.stopReason = reason
	}
}

func (j *job) stopping() (bool, string) {
	j.stopMu.Lock()
	defer j.stopMu.Unlock()
	return j.stopRequested, j.stopReason
}

// jobKey addresses a worker by its owning group and job id. job_id alone is
// not unique across tenants, so every pool table keys on the pair.
func jobKey(groupID, jobID string) string {
	return groupID + "/" + jobID
}

// Pool runs each job in a freshly spawned OS process and caps live workers
// at MaxConcurrent. Submissions over the cap fail fast with ErrOverloaded.
type Pool struct {
	cfg        PoolConfig
	executions *services.ExecutionService
	traceQueue *trace.Queue
	logQueue   *logs.Queue
	publisher  TerminalPublisher

	// newWorkerCmd builds the worker process command. Tests swap it for a
	// scripted stand-in; production uses the re-exec default.
	newWorkerCmd func() (*exec.Cmd, error)

	mu   sync.Mutex
	jobs map[string]*job // keyed by jobKey
	wg   sync.WaitGroup
}

// NewPool creates a process pool. publisher may be nil.
func NewPool(cfg PoolConfig, executions *services.ExecutionService, traceQueue *trace.Queue, logQueue *logs.Queue, publisher TerminalPublisher) *Pool {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 4
	}
	if cfg.GracePeriod <= 0 {
		cfg.GracePeriod = 5 * time.Second
	}
	if cfg.DefaultTimeout <= 0 {
		cfg.DefaultTimeout = 30 * time.Minute
	}
	return &Pool{
		cfg:          cfg,
		executions:   executions,
		traceQueue:   traceQueue,
		logQueue:     logQueue,
		publisher:    publisher,
		newWorkerCmd: selfWorkerCmd,
		jobs:         make(map[string]*job),
	}
}

// selfWorkerCmd re-executes this binary in worker mode. Pdeathsig ties the
// worker's lifetime to the server so a server crash cannot strand workers.
func selfWorkerCmd() (*exec.Cmd, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate own binary: %w", err)
	}
	cmd := exec.Command(self, WorkerFlag)
	cmd.Env = os.Environ()
	cmd.SysProcAttr = &syscall.SysProcAttr{Pdeathsig: syscall.SIGKILL}
	return cmd, nil
}

// Submit spawns a worker for the job and returns once it is running. The
// terminal transition happens asynchronously; callers observe it via the
// status store or WebSocket. Fails fast with ErrOverloaded at capacity.
func (p *Pool) Submit(ctx context.Context, req Request) error {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = p.cfg.DefaultTimeout
	}

	j := &job{
		jobID:    req.JobID,
		group:    req.Group,
		resultCh: make(chan *Result, 1),
		exitCh:   make(chan struct{}),
	}
	key := j.key()

	p.mu.Lock()
	if len(p.jobs) >= p.cfg.MaxConcurrent {
		n := len(p.jobs)
		p.mu.Unlock()
		return fmt.Errorf("%w: %d of %d workers busy", services.ErrOverloaded, n, p.cfg.MaxConcurrent)
	}
	if _, exists := p.jobs[key]; exists {
		p.mu.Unlock()
		return services.ErrAlreadyExists
	}
	p.jobs[key] = j
	p.mu.Unlock()

	if err := p.spawn(j, req, timeout); err != nil {
		p.remove(key)
		return err
	}

	if err := p.executions.MarkRunning(ctx, req.Group.PrimaryGroupID(), req.JobID, p.cfg.PodID); err != nil {
		slog.Error("Failed to mark execution running", "job_id", req.JobID, "error", err)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.await(j, timeout)
	}()

	slog.Info("Worker spawned", "job_id", req.JobID, "pid", j.cmd.Process.Pid, "timeout", timeout)
	return nil
}

// spawn starts the worker process and wires its pipes.
func (p *Pool) spawn(j *job, req Request, timeout time.Duration) error {
	cmd, err := p.newWorkerCmd()
	if err != nil {
		return err
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to open worker stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open worker stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to open worker stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start worker: %w", err)
	}
	j.cmd = cmd

	payload := Payload{
		JobID:        req.JobID,
		RunName:      req.RunName,
		Group:        req.Group,
		Crew:         req.Crew,
		Inputs:       req.Inputs,
		Memory:       req.Memory,
		DebugTracing: req.DebugTracing,
		Timeout:      timeout,
		LLMAddr:      p.cfg.LLMAddr,
		LogDir:       p.cfg.LogDir,
	}
	go func() {
		defer func() { _ = stdin.Close() }()
		if err := json.NewEncoder(stdin).Encode(&payload); err != nil {
			slog.Error("Failed to write worker payload", "job_id", req.JobID, "error", err)
		}
	}()

	go p.demux(j, stdout)
	go p.forwardStderr(j, stderr)
	go func() {
		_ = cmd.Wait()
		close(j.exitCh)
	}()
	return nil
}

// demux routes the worker's stdout envelope stream: log lines to the log
// queue, trace events to the trace queue, the terminal result to the
// result channel. Unparseable lines are forwarded as log content so no
// worker output is silently lost.
func (p *Pool) demux(j *job, stdout io.Reader) {
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), maxEnvelopeBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var env Envelope
		if err := json.Unmarshal(line, &env); err != nil {
			p.enqueueRawLine(j, string(line))
			continue
		}
		switch env.Kind {
		case KindLog:
			if env.Log != nil {
				p.logQueue.Enqueue(*env.Log)
			}
		case KindTrace:
			if env.Trace != nil {
				p.traceQueue.Enqueue(*env.Trace)
			}
		case KindResult:
			if env.Result != nil {
				select {
				case j.resultCh <- env.Result:
				default:
				}
			}
		default:
			p.enqueueRawLine(j, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("Worker stdout read failed", "job_id", j.jobID, "error", err)
	}
}

// forwardStderr turns stderr lines (panics, runtime noise) into log entries.
func (p *Pool) forwardStderr(j *job, stderr io.Reader) {
	scanner := bufio.NewScanner(stderr)
	scanner.Buffer(make([]byte, 64*1024), maxEnvelopeBytes)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			p.enqueueRawLine(j, line)
		}
	}
}

func (p *Pool) enqueueRawLine(j *job, content string) {
	p.logQueue.Enqueue(logs.Entry{
		ExecutionID: j.jobID,
		Content:     content,
		Timestamp:   time.Now(),
		GroupID:     j.group.PrimaryGroupID(),
		GroupEmail:  j.group.GroupEmail,
	})
}

// await resolves the job: result, process exit without result, or timeout.
func (p *Pool) await(j *job, timeout time.Duration) {
	defer p.remove(j.key())

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-j.resultCh:
		// A worker that posted its result but won't exit would pin the slot
		// forever, so the wait for exit is bounded by the grace window.
		select {
		case <-j.exitCh:
		case <-time.After(p.cfg.GracePeriod):
			slog.Warn("Worker posted result but did not exit, killing",
				"job_id", j.jobID, "grace", p.cfg.GracePeriod)
			if err := p.kill(j); err != nil {
				slog.Error("Failed to kill lingering worker", "job_id", j.jobID, "error", err)
			}
		}
		p.resolve(j, res)

	case <-j.exitCh:
		// The demux goroutine may still be flushing a result posted just
		// before exit.
		select {
		case res := <-j.resultCh:
			p.resolve(j, res)
		case <-time.After(time.Second):
			p.resolveCrash(j)
		}

	case <-timer.C:
		slog.Warn("Worker timed out, terminating", "job_id", j.jobID, "timeout", timeout)
		if err := p.Terminate(context.Background(), j.group.PrimaryGroupID(), j.jobID, "timeout", false); err != nil {
			slog.Error("Failed to terminate timed-out worker", "job_id", j.jobID, "error", err)
		}
		select {
		case res := <-j.resultCh:
			j.partials = res.PartialResults
		default:
		}
		p.markTerminal(j, execution.StatusFailed, services.TerminalPayload{
			Error:          "timeout",
			PartialResults: j.partials,
		})
	}
}

// resolve maps a worker result onto the terminal transition.
func (p *Pool) resolve(j *job, res *Result) {
	stopping, reason := j.stopping()

	switch {
	case stopping:
		if reason == "" {
			reason = "stopped"
		}
		p.markTerminal(j, execution.StatusStopped, services.TerminalPayload{
			Error:          reason,
			PartialResults: res.PartialResults,
		})

	case res.Success:
		result := map[string]interface{}{"content": res.Content}
		if len(res.TokenUsage) > 0 {
			result["token_usage"] = res.TokenUsage
		}
		if res.FlowID != "" {
			result["flow_id"] = res.FlowID
		}
		p.markTerminal(j, execution.StatusCompleted, services.TerminalPayload{
			Result: result,
		})

	default:
		p.markTerminal(j, execution.StatusFailed, services.TerminalPayload{
			Error:          res.Error,
			PartialResults: res.PartialResults,
		})
	}
}

// resolveCrash handles a worker that exited without posting a result.
func (p *Pool) resolveCrash(j *job) {
	stopping, reason := j.stopping()
	if stopping {
		if reason == "" {
			reason = "stopped"
		}
		p.markTerminal(j, execution.StatusStopped, services.TerminalPayload{
			Error:          reason,
			PartialResults: j.partials,
		})
		return
	}
	p.markTerminal(j, execution.StatusFailed, services.TerminalPayload{
		Error: "worker exited without posting a result",
	})
}

// markTerminal records the terminal transition and publishes the
// execution_complete frame when this writer won the race.
func (p *Pool) markTerminal(j *job, outcome execution.Status, payload services.TerminalPayload) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	groupID := j.group.PrimaryGroupID()
	applied, err := p.executions.MarkTerminal(ctx, groupID, j.jobID, outcome, payload)
	if err != nil {
		slog.Error("Failed to record terminal status",
			"job_id", j.jobID, "outcome", outcome, "error", err)
		return
	}
	if !applied {
		return
	}
	slog.Info("Execution finished", "job_id", j.jobID, "status", outcome)
	if p.publisher != nil {
		p.publisher.PublishTerminal(groupID, j.jobID, string(outcome), payload.Error)
	}
}

// Known reports whether the group's job has a live worker on this node.
func (p *Pool) Known(groupID, jobID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.jobs[jobKey(groupID, jobID)]
	return ok
}

// Terminate shuts a worker down. Graceful sends TERM (the worker's signal
// handler triggers cooperative cancel) and escalates to KILL after the grace
// window; force kills immediately. Idempotent: terminating an unknown or
// already-exited job is a no-op.
func (p *Pool) Terminate(ctx context.Context, groupID, jobID, reason string, force bool) error {
	p.mu.Lock()
	j, ok := p.jobs[jobKey(groupID, jobID)]
	p.mu.Unlock()
	if !ok {
		return nil
	}
	j.markStopping(reason)

	select {
	case <-j.exitCh:
		return nil
	default:
	}

	if force {
		return p.kill(j)
	}

	if err := j.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		// Already gone, or signalling failed — escalate.
		return p.kill(j)
	}
	select {
	case <-j.exitCh:
		return nil
	case <-ctx.Done():
		return p.kill(j)
	case <-time.After(p.cfg.GracePeriod):
		slog.Warn("Worker ignored TERM, killing", "job_id", jobID, "grace", p.cfg.GracePeriod)
		return p.kill(j)
	}
}

func (p *Pool) kill(j *job) error {
	if err := j.cmd.Process.Kill(); err != nil {
		select {
		case <-j.exitCh:
			return nil
		default:
		}
		return fmt.Errorf("failed to kill worker: %w", err)
	}
	<-j.exitCh
	return nil
}

// ActiveJobs returns the job ids with live workers.
func (p *Pool) ActiveJobs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := make([]string, 0, len(p.jobs))
	for _, j := range p.jobs {
		ids = append(ids, j.jobID)
	}
	return ids
}

// snapshot returns the live job entries.
func (p *Pool) snapshot() []*job {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*job, 0, len(p.jobs))
	for _, j := range p.jobs {
		out = append(out, j)
	}
	return out
}

// Health is the pool's health snapshot.
type Health struct {
	ActiveWorkers int   `json:"active_workers"`
	MaxConcurrent int   `json:"max_concurrent"`
	TraceQueueLen int   `json:"trace_queue_len"`
	TraceDropped  int64 `json:"trace_dropped"`
	LogDropped    int64 `json:"log_dropped"`
}

// HealthSnapshot reports current capacity and queue pressure.
func (p *Pool) HealthSnapshot() Health {
	p.mu.Lock()
	active := len(p.jobs)
	p.mu.Unlock()
	return Health{
		ActiveWorkers: active,
		MaxConcurrent: p.cfg.MaxConcurrent,
		TraceQueueLen: p.traceQueue.Len(),
		TraceDropped:  p.traceQueue.Dropped(),
		LogDropped:    p.logQueue.Dropped(),
	}
}

// Shutdown kills all remaining workers and waits for their transitions to
// settle. Called on server shutdown after new submissions stop.
func (p *Pool) Shutdown(ctx context.Context) {
	for _, j := range p.snapshot() {
		if err := p.Terminate(ctx, j.group.PrimaryGroupID(), j.jobID, "shutdown", true); err != nil {
			slog.Error("Failed to kill worker during shutdown", "job_id", j.jobID, "error", err)
		}
	}
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		slog.Warn("Shutdown timed out waiting for worker transitions")
	}
}

func (p *Pool) remove(key string) {
	p.mu.Lock()
	delete(p.jobs, key)
	p.mu.Unlock()
}
