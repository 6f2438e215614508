package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamStyleFor(t *testing.T) {
	tests := []struct {
		model    string
		expected string
	}{
		{"gpt-4o", "chat"},
		{"gpt-5", "responses"},
		{"gpt-5-mini", "responses"},
		{"GPT-5-Turbo", "responses"},
		{"claude-sonnet", "chat"},
		{"databricks-dbrx", "chat"},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.expected, paramStyleFor(tt.model))
		})
	}
}

func TestConfigure_RequiresModel(t *testing.T) {
	m := NewManager("localhost:50051")
	_, err := m.Configure("", 0.5)
	assert.Error(t, err)
}

func TestConfigure_BindsParamStyle(t *testing.T) {
	// grpc.NewClient dials lazily, so Configure succeeds without a live sidecar.
	m := NewManager("localhost:50051")
	t.Cleanup(func() { _ = m.Close() })

	client, err := m.Configure("gpt-5-mini", 0.7)
	require.NoError(t, err)

	bound, ok := client.(*boundClient)
	require.True(t, ok)
	assert.Equal(t, "responses", bound.paramStyle)
	assert.Equal(t, "gpt-5-mini", bound.model)
	assert.InDelta(t, 0.7, bound.temperature, 1e-9)
}
