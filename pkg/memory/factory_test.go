package memory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/kasal-project/kasal/pkg/crew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttach_NilOrDisabledProfile(t *testing.T) {
	set := Attach(context.Background(), nil, FactoryOptions{CrewID: "g_abc"})
	assert.Nil(t, set.ShortTerm)
	assert.Nil(t, set.LongTerm)
	assert.Nil(t, set.Entity)
	assert.False(t, set.DisableDefault)

	disabled := &crew.MemoryProfile{BackendType: "disabled"}
	set = Attach(context.Background(), disabled, FactoryOptions{CrewID: "g_abc"})
	assert.Nil(t, set.ShortTerm)
}

func TestAttach_DefaultWithoutCustomEmbedder(t *testing.T) {
	// Default backend with no embedder config: library default memory,
	// nothing custom attached.
	profile := &crew.MemoryProfile{BackendType: "default", ShortTermEnabled: true}
	set := Attach(context.Background(), profile, FactoryOptions{CrewID: "g_abc"})
	assert.Nil(t, set.ShortTerm)
	assert.False(t, set.DisableDefault)
}

func TestAttach_LocalStores(t *testing.T) {
	profile := &crew.MemoryProfile{
		BackendType:      "default",
		ShortTermEnabled: true,
		LongTermEnabled:  true,
		Embedder:         map[string]interface{}{"model": "text-embedding-3-small"},
	}
	embedder := &stubEmbedder{vectors: map[string][]float32{}}

	set := Attach(context.Background(), profile, FactoryOptions{
		CrewID:   "g_abc",
		Embedder: embedder,
		BaseDir:  t.TempDir(),
	})
	assert.NotNil(t, set.ShortTerm)
	assert.NotNil(t, set.LongTerm)
	assert.Nil(t, set.Entity, "entity memory not enabled")
	assert.True(t, set.DisableDefault)
}

func TestAttach_LocalWithoutEmbedderClient(t *testing.T) {
	// Profile wants a custom embedder but the worker has no client for it.
	profile := &crew.MemoryProfile{
		BackendType:      "default",
		ShortTermEnabled: true,
		Embedder:         map[string]interface{}{"model": "text-embedding-3-small"},
	}
	set := Attach(context.Background(), profile, FactoryOptions{CrewID: "g_abc"})
	assert.Nil(t, set.ShortTerm)
}

func TestAttach_UnknownBackend(t *testing.T) {
	profile := &crew.MemoryProfile{BackendType: "redis", ShortTermEnabled: true}
	set := Attach(context.Background(), profile, FactoryOptions{CrewID: "g_abc"})
	assert.Nil(t, set.ShortTerm)
}

func databricksProfile(workspaceURL string) *crew.MemoryProfile {
	return &crew.MemoryProfile{
		BackendType:      "databricks",
		ShortTermEnabled: true,
		EntityEnabled:    true,
		Databricks: map[string]interface{}{
			"workspace_url": workspaceURL,
			"token":         "dapi-test",
			"index_prefix":  "main.memory",
		},
	}
}

func TestAttach_DatabricksProbeSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer dapi-test", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	set := Attach(context.Background(), databricksProfile(srv.URL), FactoryOptions{CrewID: "g_abc"})
	assert.NotNil(t, set.ShortTerm)
	assert.Nil(t, set.LongTerm, "long-term not enabled")
	assert.NotNil(t, set.Entity)
	assert.True(t, set.DisableDefault)
}

func TestAttach_DatabricksMissingScopesDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	set := Attach(context.Background(), databricksProfile(srv.URL), FactoryOptions{CrewID: "g_abc"})
	assert.Nil(t, set.ShortTerm, "scope failure degrades to default memory")
	assert.False(t, set.DisableDefault)
}

func TestAttach_DatabricksIncompleteConfig(t *testing.T) {
	profile := &crew.MemoryProfile{
		BackendType:      "databricks",
		ShortTermEnabled: true,
		Databricks:       map[string]interface{}{"token": "dapi-test"},
	}
	set := Attach(context.Background(), profile, FactoryOptions{CrewID: "g_abc"})
	assert.Nil(t, set.ShortTerm)
}

func TestStorageDir_Deterministic(t *testing.T) {
	base := t.TempDir()
	a := StorageDir(base, "team-a_deadbeef")
	b := StorageDir(base, "team-a_deadbeef")
	assert.Equal(t, a, b)
	assert.Equal(t, filepath.Join(base, "team-a_deadbeef"), a)

	other := StorageDir(base, "team-b_cafebabe")
	assert.NotEqual(t, a, other)
}

func TestSetStorageEnv_Restore(t *testing.T) {
	t.Setenv(StorageDirEnv, "/original/value")

	restore, err := SetStorageEnv(t.TempDir(), "g_abc")
	require.NoError(t, err)
	assert.NotEqual(t, "/original/value", os.Getenv(StorageDirEnv))

	restore()
	assert.Equal(t, "/original/value", os.Getenv(StorageDirEnv))
}
