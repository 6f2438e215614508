package memory

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kasal-project/kasal/pkg/crew"
	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/kasal-project/kasal/pkg/trace"
)

// StorageDirEnv is the environment variable the orchestration layer reads
// for its per-run storage directory.
const StorageDirEnv = "CREWAI_STORAGE_DIR"

// Collection name suffixes per memory type.
const (
	kindShortTerm = "short_term"
	kindLongTerm  = "long_term"
	kindEntity    = "entity"
)

// FactoryOptions carries everything the factory needs besides the profile.
type FactoryOptions struct {
	CrewID   string
	JobID    string
	Group    groupctx.GroupContext
	Embedder Embedder // required for the default backend with a custom embedder
	BaseDir  string   // local storage root; defaults under the user cache dir

	// Emit, when set, wraps each storage with save/search tracing hooks.
	// The caller gates this on the debug-tracing flag.
	Emit func(trace.Event)
}

// Attach builds the per-crew memory attachment from the group's active
// profile. A nil profile or the explicit disabled profile attaches nothing.
// A Databricks profile that fails its scope probe degrades to default
// memory rather than failing the job.
func Attach(ctx context.Context, profile *crew.MemoryProfile, opts FactoryOptions) crew.MemorySet {
	if profile == nil || profile.Disabled() {
		return crew.MemorySet{}
	}

	switch profile.BackendType {
	case "databricks":
		set, ok := attachDatabricks(ctx, profile, opts)
		if ok {
			return set
		}
		slog.Warn("Databricks memory unavailable, degrading to default memory",
			"crew_id", opts.CrewID)
		return crew.MemorySet{}

	case "default":
		if len(profile.Embedder) == 0 {
			// Library default memory, no custom storages.
			return crew.MemorySet{}
		}
		return attachLocal(profile, opts)

	default:
		slog.Warn("Unknown memory backend type, using default memory",
			"backend_type", profile.BackendType, "crew_id", opts.CrewID)
		return crew.MemorySet{}
	}
}

// attachDatabricks builds per-type Vector Search stores. The first store
// probes the index once; a scope failure degrades the whole attachment.
func attachDatabricks(ctx context.Context, profile *crew.MemoryProfile, opts FactoryOptions) (crew.MemorySet, bool) {
	cfg := databricksConfigFrom(profile.Databricks)
	if cfg.WorkspaceURL == "" || cfg.IndexPrefix == "" {
		slog.Warn("Databricks memory profile incomplete", "crew_id", opts.CrewID)
		return crew.MemorySet{}, false
	}

	probe := NewDatabricksStore(cfg, opts.CrewID+"_"+kindShortTerm)
	if err := probe.Probe(ctx); err != nil {
		slog.Warn("Databricks memory probe failed", "crew_id", opts.CrewID, "error", err)
		return crew.MemorySet{}, false
	}

	set := crew.MemorySet{DisableDefault: true}
	if profile.ShortTermEnabled {
		set.ShortTerm = wrap(probe, kindShortTerm, "databricks", opts)
	}
	if profile.LongTermEnabled {
		set.LongTerm = wrap(NewDatabricksStore(cfg, opts.CrewID+"_"+kindLongTerm), kindLongTerm, "databricks", opts)
	}
	if profile.EntityEnabled {
		set.Entity = wrap(NewDatabricksStore(cfg, opts.CrewID+"_"+kindEntity), kindEntity, "databricks", opts)
	}
	return set, true
}

// attachLocal builds per-type local vector stores with the custom embedder.
func attachLocal(profile *crew.MemoryProfile, opts FactoryOptions) crew.MemorySet {
	if opts.Embedder == nil {
		slog.Warn("Custom embedder requested but no embedding client available, using default memory",
			"crew_id", opts.CrewID)
		return crew.MemorySet{}
	}
	dir := StorageDir(opts.BaseDir, opts.CrewID)

	set := crew.MemorySet{DisableDefault: true}
	if profile.ShortTermEnabled {
		set.ShortTerm = wrap(NewLocalStore(dir, kindShortTerm, opts.Embedder), kindShortTerm, "default", opts)
	}
	if profile.LongTermEnabled {
		set.LongTerm = wrap(NewLocalStore(dir, kindLongTerm, opts.Embedder), kindLongTerm, "default", opts)
	}
	if profile.EntityEnabled {
		set.Entity = wrap(NewLocalStore(dir, kindEntity, opts.Embedder), kindEntity, "default", opts)
	}
	return set
}

func wrap(store crew.MemoryStore, kind, backend string, opts FactoryOptions) crew.MemoryStore {
	return Traced(store, kind, backend, opts.JobID, opts.Group, opts.Emit)
}

// StorageDir returns the per-crew storage directory. Directory names derive
// deterministically from crew_id, so concurrent jobs never contend on one
// directory unless they genuinely share an identity.
func StorageDir(baseDir, crewID string) string {
	if baseDir == "" {
		if cache, err := os.UserCacheDir(); err == nil {
			baseDir = filepath.Join(cache, "kasal", "memory")
		} else {
			baseDir = filepath.Join(os.TempDir(), "kasal-memory")
		}
	}
	return filepath.Join(baseDir, crewID)
}

// SetStorageEnv points the orchestration layer's storage directory variable
// at the crew's directory and returns a restore function for teardown.
func SetStorageEnv(baseDir, crewID string) (restore func(), err error) {
	dir := StorageDir(baseDir, crewID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	prev, had := os.LookupEnv(StorageDirEnv)
	if err := os.Setenv(StorageDirEnv, dir); err != nil {
		return nil, err
	}
	return func() {
		if had {
			_ = os.Setenv(StorageDirEnv, prev)
		} else {
			_ = os.Unsetenv(StorageDirEnv)
		}
	}, nil
}
