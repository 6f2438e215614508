package crew

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectEvents subscribes a recorder to the orchestrator's bus.
func collectEvents(bus *Bus) func() []BusEvent {
	var mu sync.Mutex
	var events []BusEvent
	bus.Subscribe(func(ev BusEvent) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
	})
	return func() []BusEvent {
		mu.Lock()
		defer mu.Unlock()
		out := make([]BusEvent, len(events))
		copy(out, events)
		return out
	}
}

func kinds(events []BusEvent) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func buildEngine(t *testing.T, cfg Config, memory MemorySet) (Orchestrator, *fakeClient) {
	t.Helper()
	llms := &fakeConfigurer{client: &fakeClient{}}
	built, err := NewBuilder(llms).Build("job-1", cfg, memory)
	require.NoError(t, err)
	return built.Orchestrator, llms.client
}

func TestKickoff_SequentialTasks(t *testing.T) {
	cfg := Config{
		Name:  "pipeline",
		Model: "gpt-4o",
		Agents: []AgentConfig{
			{Role: "researcher", Goal: "find facts"},
			{Role: "writer"},
		},
		Tasks: []TaskConfig{
			{ID: "research", Description: "research the topic", Agent: "researcher"},
			{ID: "write", Description: "write it up", Agent: "writer", ContextTaskIDs: []string{"research"}},
		},
	}
	orch, client := buildEngine(t, cfg, MemorySet{})
	events := collectEvents(orch.Bus())

	out, err := orch.Kickoff(context.Background(), map[string]interface{}{"topic": "go"})
	require.NoError(t, err)
	assert.Equal(t, "output-2", out.Content, "crew output is the last task's output")
	assert.Equal(t, int64(20), out.TokenUsage["total_tokens"])

	got := kinds(events())
	assert.Equal(t, []string{
		EventCrewStarted,
		EventTaskStarted, EventLLMCall, EventAgentExecution, EventTaskCompleted,
		EventTaskStarted, EventLLMCall, EventAgentExecution, EventTaskCompleted,
		EventCrewCompleted,
	}, got)

	// The second task receives the first task's output as context.
	require.Len(t, client.calls, 2)
	userTurn := client.calls[1][1]
	assert.Contains(t, userTurn.Content, "output-1")
	assert.Contains(t, userTurn.Content, "topic: go")

	partials := orch.PartialResults()
	require.Len(t, partials, 2)
	assert.Equal(t, "research", partials[0]["task_id"])
}

func TestKickoff_StopBeforeRun(t *testing.T) {
	cfg := Config{
		Model:  "gpt-4o",
		Agents: []AgentConfig{{Role: "a"}},
		Tasks:  []TaskConfig{{ID: "t1", Description: "d"}},
	}
	orch, _ := buildEngine(t, cfg, MemorySet{})
	orch.Stop()

	_, err := orch.Kickoff(context.Background(), nil)
	assert.ErrorIs(t, err, ErrStopped)
}

func TestKickoff_ContextCancelled(t *testing.T) {
	cfg := Config{
		Model:  "gpt-4o",
		Agents: []AgentConfig{{Role: "a"}},
		Tasks:  []TaskConfig{{ID: "t1", Description: "d"}},
	}
	orch, _ := buildEngine(t, cfg, MemorySet{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := orch.Kickoff(ctx, nil)
	assert.ErrorIs(t, err, ErrStopped)
}

func TestKickoff_FlowOrder(t *testing.T) {
	cfg := Config{
		Name:  "flowed",
		Model: "gpt-4o",
		Agents: []AgentConfig{
			{Role: "a"},
		},
		Tasks: []TaskConfig{
			{ID: "t1", Description: "first"},
			{ID: "t2", Description: "second"},
			{ID: "t3", Description: "third"},
		},
		Flow: &FlowConfig{
			Nodes: []FlowNode{
				{ID: "n3", TaskID: "t3"},
				{ID: "n1", TaskID: "t1"},
				{ID: "n2", TaskID: "t2"},
			},
			Edges: []FlowEdge{
				{From: "n3", To: "n1"},
				{From: "n1", To: "n2"},
			},
			StartingPoints: []string{"n3"},
		},
	}
	orch, client := buildEngine(t, cfg, MemorySet{})

	_, err := orch.Kickoff(context.Background(), nil)
	require.NoError(t, err)

	// Flow traversal, not declaration order: t3 → t1 → t2.
	require.Len(t, client.calls, 3)
	assert.True(t, strings.HasPrefix(client.calls[0][1].Content, "third"))
	assert.True(t, strings.HasPrefix(client.calls[1][1].Content, "first"))
	assert.True(t, strings.HasPrefix(client.calls[2][1].Content, "second"))
}

func TestKickoff_UnknownAgent(t *testing.T) {
	cfg := Config{
		Model:  "gpt-4o",
		Agents: []AgentConfig{{Role: "a"}},
		Tasks:  []TaskConfig{{ID: "t1", Description: "d", Agent: "ghost"}},
	}
	orch, _ := buildEngine(t, cfg, MemorySet{})
	events := collectEvents(orch.Bus())

	_, err := orch.Kickoff(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, kinds(events()), EventTaskFailed)
}

// recordingStore captures memory interactions.
type recordingStore struct {
	mu       sync.Mutex
	saved    []string
	searched []string
	recall   []string
}

func (s *recordingStore) Save(_ context.Context, content string, _ map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, content)
	return nil
}

func (s *recordingStore) Search(_ context.Context, query string, _ int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searched = append(s.searched, query)
	return s.recall, nil
}

func TestKickoff_ShortTermMemory(t *testing.T) {
	store := &recordingStore{recall: []string{"previously: the sky is blue"}}
	cfg := Config{
		Model:  "gpt-4o",
		Agents: []AgentConfig{{Role: "a"}},
		Tasks:  []TaskConfig{{ID: "t1", Description: "describe the sky"}},
	}
	orch, client := buildEngine(t, cfg, MemorySet{ShortTerm: store})

	_, err := orch.Kickoff(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"describe the sky"}, store.searched)
	assert.Equal(t, []string{"output-1"}, store.saved)

	// Recalled context is injected as an extra system message.
	require.Len(t, client.calls, 1)
	last := client.calls[0][len(client.calls[0])-1]
	assert.Equal(t, "system", last.Role)
	assert.Contains(t, last.Content, "the sky is blue")
}

func TestKickoff_KnowledgeInjection(t *testing.T) {
	dir := t.TempDir()
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("the capital of France is Paris"), 0o644))

	cfg := Config{
		Model: "gpt-4o",
		Agents: []AgentConfig{{
			Role: "a",
			KnowledgeSources: []string{
				notes,
				"/Volumes/main/docs/handbook/guide.pdf",
				filepath.Join(dir, "missing.txt"),
			},
		}},
		Tasks: []TaskConfig{{ID: "t1", Description: "answer geography questions"}},
	}
	orch, client := buildEngine(t, cfg, MemorySet{})
	events := collectEvents(orch.Bus())

	_, err := orch.Kickoff(context.Background(), nil)
	require.NoError(t, err)

	got := kinds(events())
	assert.Equal(t, []string{
		EventCrewStarted,
		EventTaskStarted, EventKnowledgeQueryStarted, EventKnowledgeQuery,
		EventLLMCall, EventAgentExecution, EventTaskCompleted,
		EventCrewCompleted,
	}, got)

	var query BusEvent
	for _, ev := range events() {
		if ev.Kind == EventKnowledgeQuery {
			query = ev
		}
	}
	assert.Equal(t, 3, query.Metadata["source_count"])
	assert.Equal(t, 2, query.Metadata["loaded"], "the unreadable source is skipped, not fatal")

	// Loaded knowledge is injected as an extra system message: file content
	// inline, volume sources cited by reference.
	require.Len(t, client.calls, 1)
	var system string
	for _, msg := range client.calls[0] {
		if msg.Role == "system" {
			system += msg.Content + "\n"
		}
	}
	assert.Contains(t, system, "the capital of France is Paris")
	assert.Contains(t, system, "main.docs.handbook")
}

func TestKickoff_NoKnowledgeNoEvents(t *testing.T) {
	cfg := Config{
		Model:  "gpt-4o",
		Agents: []AgentConfig{{Role: "a"}},
		Tasks:  []TaskConfig{{ID: "t1", Description: "d"}},
	}
	orch, _ := buildEngine(t, cfg, MemorySet{})
	events := collectEvents(orch.Bus())

	_, err := orch.Kickoff(context.Background(), nil)
	require.NoError(t, err)

	for _, ev := range events() {
		assert.NotEqual(t, EventKnowledgeQueryStarted, ev.Kind)
		assert.NotEqual(t, EventKnowledgeQuery, ev.Kind)
	}
}

func TestBus_HandlerPanicRecovered(t *testing.T) {
	bus := &Bus{}
	bus.Subscribe(func(BusEvent) { panic("handler bug") })

	var delivered bool
	bus.Subscribe(func(BusEvent) { delivered = true })

	assert.NotPanics(t, func() { bus.Publish(BusEvent{Kind: EventCrewStarted}) })
	assert.True(t, delivered, "a panicking handler must not starve the others")
}
