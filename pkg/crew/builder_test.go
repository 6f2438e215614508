package crew

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/kasal-project/kasal/pkg/llm"
	"github.com/kasal-project/kasal/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient is an llm.Client returning canned responses in call order.
type fakeClient struct {
	mu        sync.Mutex
	responses []string
	calls     [][]llm.Message
	err       error
}

func (c *fakeClient) Complete(_ context.Context, _ string, messages []llm.Message) (*llm.Completion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	c.calls = append(c.calls, messages)
	content := fmt.Sprintf("output-%d", len(c.calls))
	if n := len(c.calls); n <= len(c.responses) {
		content = c.responses[n-1]
	}
	return &llm.Completion{
		Content:    content,
		TokenUsage: map[string]int64{"total_tokens": 10},
	}, nil
}

func (c *fakeClient) Embed(context.Context, []string) ([][]float32, error) {
	return nil, errors.New("embedding not supported in fake")
}

// fakeConfigurer records model/temperature bindings and hands out one client.
type fakeConfigurer struct {
	client   *fakeClient
	bindings []binding
	err      error
}

type binding struct {
	model       string
	temperature float64
}

func (f *fakeConfigurer) Configure(model string, temperature float64) (llm.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bindings = append(f.bindings, binding{model, temperature})
	if f.client == nil {
		f.client = &fakeClient{}
	}
	return f.client, nil
}

func intPtr(n int) *int { return &n }

func TestBuild_TemperatureScaling(t *testing.T) {
	cfg := Config{
		Name:  "crew",
		Model: "gpt-4o",
		Agents: []AgentConfig{
			{Role: "hot", Temperature: intPtr(80)},
			{Role: "cold", Temperature: intPtr(0)},
			{Role: "default"},
		},
		Tasks: []TaskConfig{{ID: "t1", Description: "d"}},
	}

	llms := &fakeConfigurer{}
	_, err := NewBuilder(llms).Build("job-1", cfg, MemorySet{})
	require.NoError(t, err)

	require.Len(t, llms.bindings, 3)
	assert.InDelta(t, 0.8, llms.bindings[0].temperature, 1e-9)
	assert.InDelta(t, 0.0, llms.bindings[1].temperature, 1e-9)
	assert.InDelta(t, -1.0, llms.bindings[2].temperature, 1e-9, "nil temperature means provider default")
}

func TestBuild_LLMBindingForms(t *testing.T) {
	cfg := Config{
		Name:  "crew",
		Model: "gpt-4o",
		Agents: []AgentConfig{
			{Role: "string-form", LLM: json.RawMessage(`"claude-sonnet"`)},
			{Role: "object-form", LLM: json.RawMessage(`{"model":"gpt-5-mini","temperature":30}`)},
			{Role: "fallback"},
		},
		Tasks: []TaskConfig{{ID: "t1", Description: "d"}},
	}

	llms := &fakeConfigurer{}
	_, err := NewBuilder(llms).Build("job-1", cfg, MemorySet{})
	require.NoError(t, err)

	require.Len(t, llms.bindings, 3)
	assert.Equal(t, "claude-sonnet", llms.bindings[0].model)
	assert.Equal(t, "gpt-5-mini", llms.bindings[1].model)
	assert.InDelta(t, 0.3, llms.bindings[1].temperature, 1e-9)
	assert.Equal(t, "gpt-4o", llms.bindings[2].model)
}

func TestBuild_MalformedLLMBinding(t *testing.T) {
	cfg := Config{
		Model:  "gpt-4o",
		Agents: []AgentConfig{{Role: "bad", LLM: json.RawMessage(`[1,2]`)}},
		Tasks:  []TaskConfig{{ID: "t1", Description: "d"}},
	}
	_, err := NewBuilder(&fakeConfigurer{}).Build("job-1", cfg, MemorySet{})
	assert.ErrorIs(t, err, services.ErrInvalidConfig)
}

func TestBuild_NoModelAnywhere(t *testing.T) {
	cfg := Config{
		Agents: []AgentConfig{{Role: "orphan"}},
		Tasks:  []TaskConfig{{ID: "t1", Description: "d"}},
	}
	_, err := NewBuilder(&fakeConfigurer{}).Build("job-1", cfg, MemorySet{})
	assert.ErrorIs(t, err, services.ErrInvalidConfig)
}

func TestBuild_NoAgents(t *testing.T) {
	_, err := NewBuilder(&fakeConfigurer{}).Build("job-1", Config{}, MemorySet{})
	assert.ErrorIs(t, err, services.ErrInvalidConfig)
}

func TestBuild_FlowNeedsStartingPoints(t *testing.T) {
	cfg := Config{
		Model:  "gpt-4o",
		Agents: []AgentConfig{{Role: "a"}},
		Flow:   &FlowConfig{Nodes: []FlowNode{{ID: "n1"}}},
	}
	_, err := NewBuilder(&fakeConfigurer{}).Build("job-1", cfg, MemorySet{})
	assert.ErrorIs(t, err, services.ErrInvalidConfig)
}

func TestBuild_CollectsKnowledgeSources(t *testing.T) {
	cfg := Config{
		Model: "gpt-4o",
		Agents: []AgentConfig{{
			Role: "reader",
			KnowledgeSources: []string{
				"/Volumes/main/docs/kb/manual.pdf",
				"local/notes.txt",
			},
		}},
		Tasks: []TaskConfig{{ID: "t1", Description: "d"}},
	}

	built, err := NewBuilder(&fakeConfigurer{}).Build("job-1", cfg, MemorySet{})
	require.NoError(t, err)

	sources := built.Knowledge["reader"]
	require.Len(t, sources, 2)
	require.NotNil(t, sources[0].Volume)
	assert.Equal(t, "main", sources[0].Volume.Catalog)
	assert.Equal(t, "docs", sources[0].Volume.Schema)
	assert.Equal(t, "kb", sources[0].Volume.Volume)
	assert.Equal(t, "manual.pdf", sources[0].Volume.Path)
	assert.Nil(t, sources[1].Volume, "non-volume path stays raw")
}

func TestParseKnowledgeSource(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		volume *VolumeRef
	}{
		{
			name: "volume path",
			raw:  "/Volumes/cat/sch/vol/dir/file.md",
			volume: &VolumeRef{
				Catalog: "cat", Schema: "sch", Volume: "vol", Path: "dir/file.md",
			},
		},
		{
			name:   "too few segments",
			raw:    "/Volumes/cat/sch/vol",
			volume: nil,
		},
		{
			name:   "plain path",
			raw:    "docs/readme.md",
			volume: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks := ParseKnowledgeSource(tt.raw)
			assert.Equal(t, tt.raw, ks.Raw)
			assert.Equal(t, tt.volume, ks.Volume)
		})
	}
}
