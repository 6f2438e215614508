// Package runner executes jobs in freshly spawned worker processes and
// bridges their output back into the trace and log pipelines.
//
// Each job gets its own OS process: the server re-executes its own binary
// with the --worker flag, writes the job payload to the child's stdin, and
// demultiplexes newline-delimited JSON envelopes from the child's stdout.
// Spawning (not forking) guarantees the worker starts with a clean runtime:
// no inherited event-bus state, no shared database pools or file handles.
package runner

import (
	"time"

	"github.com/kasal-project/kasal/pkg/crew"
	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/kasal-project/kasal/pkg/logs"
	"github.com/kasal-project/kasal/pkg/trace"
)

// Envelope kinds carried on the worker's stdout stream.
const (
	KindLog    = "log"
	KindTrace  = "trace"
	KindResult = "result"
)

// Envelope is one line of worker → parent IPC. Exactly one of the payload
// fields is set, selected by Kind. The worker emits log and trace envelopes
// throughout the run and exactly one result envelope before exiting.
type Envelope struct {
	Kind   string       `json:"kind"`
	Log    *logs.Entry  `json:"log,omitempty"`
	Trace  *trace.Event `json:"trace,omitempty"`
	Result *Result      `json:"result,omitempty"`
}

// Result is the worker's terminal result. Failures are captured in the
// worker and serialized here; they never surface as process crashes.
type Result struct {
	Success        bool                     `json:"success"`
	Content        string                   `json:"content,omitempty"`
	TokenUsage     map[string]int64         `json:"token_usage,omitempty"`
	Error          string                   `json:"error,omitempty"`
	FlowID         string                   `json:"flow_id,omitempty"`
	PartialResults []map[string]interface{} `json:"partial_results,omitempty"`
}

// Payload is everything a worker needs to run one job, written to its stdin
// as a single JSON document. All DB-derived data (tool configs, flow
// records, memory profile) is resolved by the parent and materialized here
// as primitives: the worker never opens a database connection.
type Payload struct {
	JobID        string                 `json:"job_id"`
	RunName      string                 `json:"run_name,omitempty"`
	Group        groupctx.GroupContext  `json:"group_context"`
	Crew         crew.Config            `json:"crew_config"`
	Inputs       map[string]interface{} `json:"inputs,omitempty"`
	Memory       *crew.MemoryProfile    `json:"memory,omitempty"`
	DebugTracing bool                   `json:"debug_tracing"`
	Timeout      time.Duration          `json:"timeout_ns"`

	// LLMAddr is the gRPC address of the LLM sidecar, passed through so the
	// worker dials its own connection.
	LLMAddr string `json:"llm_addr,omitempty"`

	// LogDir is where the worker writes its crew log file.
	LogDir string `json:"log_dir,omitempty"`
}
