// Package llm resolves model names into chat/embedding clients backed by the
// gRPC LLM sidecar.
package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	llmv1 "github.com/kasal-project/kasal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Message is one turn of a chat conversation.
type Message struct {
	Role    string
	Content string
}

// Completion is the result of one chat call.
type Completion struct {
	Content    string
	TokenUsage map[string]int64
}

// Client is a configured chat/embedding client bound to one model.
type Client interface {
	Complete(ctx context.Context, jobID string, messages []Message) (*Completion, error)
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Manager implements "model name → configured client" over one shared gRPC
// connection to the sidecar.
type Manager struct {
	addr string

	mu   sync.Mutex
	conn *grpc.ClientConn
	stub llmv1.LLMServiceClient
}

// NewManager creates a manager for the sidecar at addr. The connection is
// dialed lazily on first use.
func NewManager(addr string) *Manager {
	return &Manager{addr: addr}
}

// Configure resolves a model name and temperature into a bound client.
// Temperature is on the 0.0–1.0 scale; pass a negative value for the
// provider default.
func (m *Manager) Configure(model string, temperature float64) (Client, error) {
	if model == "" {
		return nil, fmt.Errorf("model name is required")
	}
	stub, err := m.dial()
	if err != nil {
		return nil, err
	}
	return &boundClient{
		stub:        stub,
		model:       model,
		temperature: temperature,
		paramStyle:  paramStyleFor(model),
	}, nil
}

// Close releases the shared connection.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn == nil {
		return nil
	}
	err := m.conn.Close()
	m.conn = nil
	m.stub = nil
	return err
}

func (m *Manager) dial() (llmv1.LLMServiceClient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stub != nil {
		return m.stub, nil
	}
	conn, err := grpc.NewClient(m.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", m.addr, err)
	}
	m.conn = conn
	m.stub = llmv1.NewLLMServiceClient(conn)
	return m.stub, nil
}

// paramStyleFor selects the provider parameter wrapper. The GPT-5 family
// uses the responses wrapper, which rejects a sampling temperature.
func paramStyleFor(model string) string {
	if strings.HasPrefix(strings.ToLower(model), "gpt-5") {
		return "responses"
	}
	return "chat"
}

type boundClient struct {
	stub        llmv1.LLMServiceClient
	model       string
	temperature float64
	paramStyle  string
}

func (c *boundClient) Complete(ctx context.Context, jobID string, messages []Message) (*Completion, error) {
	req := &llmv1.CompleteRequest{
		JobId:      jobID,
		Model:      c.model,
		ParamStyle: c.paramStyle,
	}
	if c.temperature >= 0 && c.paramStyle != "responses" {
		req.Temperature = float32(c.temperature)
	}
	for _, msg := range messages {
		req.Messages = append(req.Messages, &llmv1.ChatMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	resp, err := c.stub.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM completion failed: %w", err)
	}

	out := &Completion{Content: resp.Content}
	if u := resp.Usage; u != nil {
		out.TokenUsage = map[string]int64{
			"prompt_tokens":     u.PromptTokens,
			"completion_tokens": u.CompletionTokens,
			"total_tokens":      u.TotalTokens,
		}
	}
	return out, nil
}

func (c *boundClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := c.stub.Embed(ctx, &llmv1.EmbedRequest{
		Model: c.model,
		Texts: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM embedding failed: %w", err)
	}
	vectors := make([][]float32, len(resp.Vectors))
	for i, v := range resp.Vectors {
		vectors[i] = v.Values
	}
	return vectors, nil
}
