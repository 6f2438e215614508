package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedder maps known texts to fixed vectors so similarity is predictable.
type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (e *stubEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		v, ok := e.vectors[text]
		if !ok {
			return nil, fmt.Errorf("no stub vector for %q", text)
		}
		out[i] = v
	}
	return out, nil
}

func TestLocalStore_SaveAndSearch(t *testing.T) {
	ctx := context.Background()
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"cats are mammals":   {1, 0, 0},
		"dogs are mammals":   {0.9, 0.1, 0},
		"stocks went up":     {0, 0, 1},
		"tell me about pets": {1, 0.05, 0},
	}}

	store := NewLocalStore(t.TempDir(), "short_term", embedder)
	require.NoError(t, store.Save(ctx, "cats are mammals", map[string]interface{}{"task_id": "t1"}))
	require.NoError(t, store.Save(ctx, "dogs are mammals", nil))
	require.NoError(t, store.Save(ctx, "stocks went up", nil))

	got, err := store.Search(ctx, "tell me about pets", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "cats are mammals", got[0])
	assert.Equal(t, "dogs are mammals", got[1])
}

func TestLocalStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"remember me": {0, 1, 0},
	}}

	first := NewLocalStore(dir, "long_term", embedder)
	require.NoError(t, first.Save(ctx, "remember me", nil))

	// A fresh store over the same directory sees the persisted collection.
	second := NewLocalStore(dir, "long_term", embedder)
	got, err := second.Search(ctx, "remember me", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "remember me", got[0])
}

func TestLocalStore_EmbedderFailure(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "entity", &stubEmbedder{err: fmt.Errorf("sidecar down")})

	err := store.Save(context.Background(), "content", nil)
	assert.Error(t, err)

	_, err = store.Search(context.Background(), "query", 1)
	assert.Error(t, err)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 0}, []float32{1, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosine([]float32{1, 0}, []float32{-1, 0}), 1e-9)

	// Mismatched or zero vectors score zero instead of dividing by zero.
	assert.Equal(t, 0.0, cosine([]float32{1, 0}, []float32{1}))
	assert.Equal(t, 0.0, cosine([]float32{0, 0}, []float32{1, 0}))
	assert.Equal(t, 0.0, cosine(nil, nil))
}
