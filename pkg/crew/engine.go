package crew

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/kasal-project/kasal/pkg/llm"
)

// BusEvent is one event published on the orchestrator's event bus. The
// listener adapter translates these into trace records.
type BusEvent struct {
	Kind      string
	Source    string
	TaskID    string
	TaskName  string
	AgentRole string
	ToolName  string
	Output    string
	Error     string
	Metadata  map[string]interface{}
	Timestamp time.Time
}

// Bus event kinds.
const (
	EventCrewStarted           = "crew_kickoff_started"
	EventCrewCompleted         = "crew_kickoff_completed"
	EventTaskStarted           = "task_started"
	EventTaskCompleted         = "task_completed"
	EventTaskFailed            = "task_failed"
	EventAgentExecution        = "agent_execution_completed"
	EventToolUsage             = "tool_usage"
	EventToolError             = "tool_error"
	EventLLMCall               = "llm_call"
	EventMemoryWrite           = "memory_save"
	EventMemoryRead            = "memory_query"
	EventKnowledgeQueryStarted = "knowledge_query_started"
	EventKnowledgeQuery        = "knowledge_query"
)

// Handler receives bus events. Handlers run synchronously on the publishing
// goroutine; a panicking handler is recovered and logged, never allowed to
// crash the orchestrator.
type Handler func(BusEvent)

// Bus is the in-process event bus the orchestrator publishes on.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

// Subscribe registers a handler for all subsequent events.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish delivers an event to every handler.
func (b *Bus) Publish(ev BusEvent) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	b.mu.RLock()
	handlers := b.handlers
	b.mu.RUnlock()
	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Event handler panicked", "kind", ev.Kind, "panic", r)
				}
			}()
			h(ev)
		}()
	}
}

// Output is the normalized terminal result of a kickoff.
type Output struct {
	Content    string
	TokenUsage map[string]int64
}

// Orchestrator runs a built crew. Kickoff blocks until the crew finishes,
// fails, or is cancelled via Stop or context.
type Orchestrator interface {
	Kickoff(ctx context.Context, inputs map[string]interface{}) (*Output, error)
	Bus() *Bus
	Stop()
	PartialResults() []map[string]interface{}
}

// ErrStopped is returned by Kickoff when the run was cancelled cooperatively.
var ErrStopped = errors.New("crew execution stopped")

// MemoryStore is one attached memory storage (short-term, long-term or
// entity). Implementations live in the memory package.
type MemoryStore interface {
	Save(ctx context.Context, content string, metadata map[string]interface{}) error
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

// MemorySet is the per-type storage attachment. Nil stores mean the type is
// not attached.
type MemorySet struct {
	ShortTerm MemoryStore
	LongTerm  MemoryStore
	Entity    MemoryStore

	// DisableDefault suppresses any built-in memory when custom storages
	// are attached (or when the disabled profile is selected).
	DisableDefault bool
}

// engine is the sequential in-process orchestrator. Tasks run one at a time
// in declaration order, or in flow order when a flow graph is present.
type engine struct {
	name       string
	agents     map[string]*boundAgent
	agentOrder []string
	tasks      []TaskConfig
	flow       *FlowConfig
	memory     MemorySet
	knowledge  map[string][]KnowledgeSource // agent role → sources

	bus *Bus

	stopCh   chan struct{}
	stopOnce sync.Once

	mu       sync.Mutex
	partials []map[string]interface{}

	jobID string
}

type boundAgent struct {
	cfg    AgentConfig
	client llm.Client
}

func (e *engine) Bus() *Bus { return e.bus }

func (e *engine) Stop() {
	e.stopOnce.Do(func() { close(e.stopCh) })
}

func (e *engine) PartialResults() []map[string]interface{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]map[string]interface{}, len(e.partials))
	copy(out, e.partials)
	return out
}

// Kickoff runs the crew to completion. Cancellation is checked between
// tasks; an in-flight LLM call is cut short by the context.
func (e *engine) Kickoff(ctx context.Context, inputs map[string]interface{}) (*Output, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-e.stopCh:
			cancel()
		case <-runCtx.Done():
		}
	}()

	e.bus.Publish(BusEvent{
		Kind:   EventCrewStarted,
		Source: fmt.Sprintf("Crew[%s]", e.name),
	})

	order, err := e.taskOrder()
	if err != nil {
		return nil, err
	}

	usage := map[string]int64{}
	outputs := make(map[string]string, len(order))
	var last string
	for _, task := range order {
		if err := e.checkCancelled(runCtx); err != nil {
			return nil, err
		}
		out, err := e.runTask(runCtx, task, inputs, outputs, usage)
		if err != nil {
			e.bus.Publish(BusEvent{
				Kind:     EventTaskFailed,
				Source:   fmt.Sprintf("Task[%s]", task.ID),
				TaskID:   task.ID,
				TaskName: task.Name,
				Error:    err.Error(),
			})
			if e.cancelled(runCtx) {
				return nil, ErrStopped
			}
			return nil, err
		}
		outputs[task.ID] = out
		last = out
		e.recordPartial(task.ID, out)
	}

	e.bus.Publish(BusEvent{
		Kind:   EventCrewCompleted,
		Source: fmt.Sprintf("Crew[%s]", e.name),
		Output: last,
	})
	return &Output{Content: last, TokenUsage: usage}, nil
}

// runTask executes one task through its agent.
func (e *engine) runTask(ctx context.Context, task TaskConfig, inputs map[string]interface{}, prior map[string]string, usage map[string]int64) (string, error) {
	e.bus.Publish(BusEvent{
		Kind:     EventTaskStarted,
		Source:   fmt.Sprintf("Task[%s]", task.ID),
		TaskID:   task.ID,
		TaskName: task.Name,
		Output:   task.Description,
	})

	agent, err := e.agentFor(task)
	if err != nil {
		return "", err
	}

	messages := e.composeMessages(agent, task, inputs, prior)
	if recalled := e.retrieveKnowledge(agent, task); recalled != "" {
		messages = append(messages, llm.Message{
			Role:    "system",
			Content: "Reference knowledge:\n" + recalled,
		})
	}
	if e.memory.ShortTerm != nil {
		if recalled, err := e.memory.ShortTerm.Search(ctx, task.Description, 3); err == nil && len(recalled) > 0 {
			messages = append(messages, llm.Message{
				Role:    "system",
				Content: "Relevant context from memory:\n" + strings.Join(recalled, "\n"),
			})
		}
	}

	completion, err := agent.client.Complete(ctx, e.jobID, messages)
	if err != nil {
		return "", fmt.Errorf("agent %q failed on task %q: %w", agent.cfg.Role, task.ID, err)
	}
	for k, v := range completion.TokenUsage {
		usage[k] += v
	}

	source := fmt.Sprintf("Agent[%s]", agent.cfg.Role)
	e.bus.Publish(BusEvent{
		Kind:      EventLLMCall,
		Source:    source,
		AgentRole: agent.cfg.Role,
		TaskID:    task.ID,
		Output:    completion.Content,
		Metadata:  map[string]interface{}{"task_id": task.ID},
	})
	e.bus.Publish(BusEvent{
		Kind:      EventAgentExecution,
		Source:    source,
		AgentRole: agent.cfg.Role,
		TaskID:    task.ID,
		Output:    completion.Content,
	})

	if e.memory.ShortTerm != nil {
		if err := e.memory.ShortTerm.Save(ctx, completion.Content, map[string]interface{}{
			"task_id": task.ID,
			"agent":   agent.cfg.Role,
		}); err != nil {
			slog.Warn("Short-term memory save failed", "task_id", task.ID, "error", err)
		}
	}

	e.bus.Publish(BusEvent{
		Kind:     EventTaskCompleted,
		Source:   fmt.Sprintf("Task[%s]", task.ID),
		TaskID:   task.ID,
		TaskName: task.Name,
		Output:   completion.Content,
	})
	return completion.Content, nil
}

// Knowledge files are truncated to keep the prompt bounded.
const maxKnowledgeBytes = 4 * 1024

// retrieveKnowledge loads the agent's knowledge sources for prompt
// injection. Local files are read (truncated); volume-backed sources are
// cited by reference since the worker has no volume client. Publishes the
// retrieval events whenever the agent has sources attached.
func (e *engine) retrieveKnowledge(agent *boundAgent, task TaskConfig) string {
	sources := e.knowledge[agent.cfg.Role]
	if len(sources) == 0 {
		return ""
	}

	source := fmt.Sprintf("Agent[%s]", agent.cfg.Role)
	e.bus.Publish(BusEvent{
		Kind:      EventKnowledgeQueryStarted,
		Source:    source,
		AgentRole: agent.cfg.Role,
		TaskID:    task.ID,
		Metadata:  map[string]interface{}{"task_id": task.ID, "source_count": len(sources)},
	})

	var b strings.Builder
	loaded := 0
	for _, src := range sources {
		if src.Volume != nil {
			fmt.Fprintf(&b, "[volume %s.%s.%s] %s\n",
				src.Volume.Catalog, src.Volume.Schema, src.Volume.Volume, src.Volume.Path)
			loaded++
			continue
		}
		data, err := os.ReadFile(src.Raw)
		if err != nil {
			slog.Warn("Knowledge source unreadable, skipping",
				"agent", agent.cfg.Role, "source", src.Raw, "error", err)
			continue
		}
		if len(data) > maxKnowledgeBytes {
			data = data[:maxKnowledgeBytes]
		}
		fmt.Fprintf(&b, "[%s]\n%s\n", src.Raw, data)
		loaded++
	}

	content := strings.TrimSpace(b.String())
	e.bus.Publish(BusEvent{
		Kind:      EventKnowledgeQuery,
		Source:    source,
		AgentRole: agent.cfg.Role,
		TaskID:    task.ID,
		Output:    fmt.Sprintf("loaded %d of %d knowledge sources", loaded, len(sources)),
		Metadata:  map[string]interface{}{"task_id": task.ID, "source_count": len(sources), "loaded": loaded},
	})
	return content
}

// composeMessages builds the conversation for one task.
func (e *engine) composeMessages(agent *boundAgent, task TaskConfig, inputs map[string]interface{}, prior map[string]string) []llm.Message {
	var system strings.Builder
	fmt.Fprintf(&system, "You are %s.", agent.cfg.Role)
	if agent.cfg.Goal != "" {
		fmt.Fprintf(&system, " Your goal: %s.", agent.cfg.Goal)
	}
	if agent.cfg.Backstory != "" {
		fmt.Fprintf(&system, "\n%s", agent.cfg.Backstory)
	}
	if len(agent.cfg.ResolvedTools) > 0 {
		names := make([]string, len(agent.cfg.ResolvedTools))
		for i, t := range agent.cfg.ResolvedTools {
			names[i] = t.Name
		}
		fmt.Fprintf(&system, "\nAvailable tools: %s.", strings.Join(names, ", "))
	}

	var user strings.Builder
	user.WriteString(task.Description)
	if task.ExpectedOutput != "" {
		fmt.Fprintf(&user, "\n\nExpected output: %s", task.ExpectedOutput)
	}
	for _, ctxID := range task.ContextTaskIDs {
		if out, ok := prior[ctxID]; ok {
			fmt.Fprintf(&user, "\n\nContext from task %s:\n%s", ctxID, out)
		}
	}
	if len(inputs) > 0 {
		user.WriteString("\n\nInputs:")
		for k, v := range inputs {
			fmt.Fprintf(&user, "\n- %s: %v", k, v)
		}
	}

	return []llm.Message{
		{Role: "system", Content: system.String()},
		{Role: "user", Content: user.String()},
	}
}

// agentFor returns the agent bound to a task, falling back to the first
// declared agent when the task names none.
func (e *engine) agentFor(task TaskConfig) (*boundAgent, error) {
	if task.Agent == "" {
		return e.agents[e.agentOrder[0]], nil
	}
	if a, ok := e.agents[task.Agent]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("no agent for task %q", task.ID)
}

// taskOrder returns the execution order: flow traversal when a flow graph is
// present, declaration order otherwise.
func (e *engine) taskOrder() ([]TaskConfig, error) {
	if e.flow == nil {
		return e.tasks, nil
	}

	byID := make(map[string]TaskConfig, len(e.tasks))
	for _, t := range e.tasks {
		byID[t.ID] = t
	}
	next := make(map[string][]string, len(e.flow.Edges))
	for _, edge := range e.flow.Edges {
		next[edge.From] = append(next[edge.From], edge.To)
	}
	nodes := make(map[string]FlowNode, len(e.flow.Nodes))
	for _, n := range e.flow.Nodes {
		nodes[n.ID] = n
	}

	// Breadth-first from the starting points; each node runs once.
	var order []TaskConfig
	visited := make(map[string]bool)
	frontier := append([]string(nil), e.flow.StartingPoints...)
	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		if visited[id] {
			continue
		}
		visited[id] = true

		node, ok := nodes[id]
		if !ok {
			return nil, fmt.Errorf("flow edge references unknown node %q", id)
		}
		taskID := node.TaskID
		if taskID == "" {
			taskID = node.ID
		}
		if task, ok := byID[taskID]; ok {
			order = append(order, task)
		}
		frontier = append(frontier, next[id]...)
	}
	return order, nil
}

func (e *engine) recordPartial(taskID, output string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.partials = append(e.partials, map[string]interface{}{
		"task_id": taskID,
		"output":  output,
	})
}

func (e *engine) checkCancelled(ctx context.Context) error {
	if e.cancelled(ctx) {
		return ErrStopped
	}
	return nil
}

func (e *engine) cancelled(ctx context.Context) bool {
	select {
	case <-e.stopCh:
		return true
	default:
	}
	return ctx.Err() != nil
}
