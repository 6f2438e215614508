package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/pkg/logs"
	"github.com/kasal-project/kasal/pkg/trace"
	"github.com/kasal-project/kasal/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedExecution(t *testing.T, client *ent.Client, jobID, podID string, status execution.Status) {
	t.Helper()
	b := client.Execution.Create().
		SetJobID(jobID).
		SetGroupID("team-a").
		SetStatus(status)
	if podID != "" {
		b.SetPodID(podID)
	}
	_, err := b.Save(context.Background())
	require.NoError(t, err)
}

func statusOf(t *testing.T, client *ent.Client, jobID string) *ent.Execution {
	t.Helper()
	exec, err := client.Execution.Query().
		Where(execution.JobIDEQ(jobID)).
		Only(context.Background())
	require.NoError(t, err)
	return exec
}

func TestCleanupStartupOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	seedExecution(t, client, "job-running-here", "pod-1", execution.StatusRunning)
	seedExecution(t, client, "job-pending-here", "pod-1", execution.StatusPending)
	seedExecution(t, client, "job-done-here", "pod-1", execution.StatusCompleted)
	seedExecution(t, client, "job-elsewhere", "pod-2", execution.StatusRunning)
	seedExecution(t, client, "job-unclaimed", "", execution.StatusPending)

	require.NoError(t, CleanupStartupOrphans(ctx, client, "pod-1"))

	for _, jobID := range []string{"job-running-here", "job-pending-here"} {
		exec := statusOf(t, client, jobID)
		assert.Equal(t, execution.StatusFailed, exec.Status, jobID)
		assert.False(t, exec.IsStopping)
		require.NotNil(t, exec.CompletedAt, jobID)
		require.NotNil(t, exec.Error, jobID)
		assert.Contains(t, *exec.Error, "Orphaned")
	}

	assert.Equal(t, execution.StatusCompleted, statusOf(t, client, "job-done-here").Status)
	assert.Equal(t, execution.StatusRunning, statusOf(t, client, "job-elsewhere").Status,
		"another pod's workers are not ours to fail")
	assert.Equal(t, execution.StatusPending, statusOf(t, client, "job-unclaimed").Status,
		"rows never claimed by a pod are the stale-pending sweeper's job")
}

func TestCleanupStartupOrphans_NothingToDo(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	assert.NoError(t, CleanupStartupOrphans(context.Background(), client, "pod-1"))
}

func TestPool_Surface(t *testing.T) {
	pool := NewPool(PoolConfig{MaxConcurrent: 2}, nil, trace.NewQueue(0), logs.NewQueue(0), nil)

	t.Run("unknown job is not known", func(t *testing.T) {
		assert.False(t, pool.Known("team-a", "job-x"))
		assert.Empty(t, pool.ActiveJobs())
	})

	t.Run("terminating an unknown job is a no-op", func(t *testing.T) {
		assert.NoError(t, pool.Terminate(context.Background(), "team-a", "job-x", "stop", false))
	})

	t.Run("health snapshot", func(t *testing.T) {
		h := pool.HealthSnapshot()
		assert.Equal(t, 0, h.ActiveWorkers)
		assert.Equal(t, 2, h.MaxConcurrent)
		assert.Equal(t, int64(0), h.TraceDropped)
	})
}

func TestStrayWorkerPIDs(t *testing.T) {
	procRoot := t.TempDir()
	exe := "/opt/kasal/bin/kasal"

	writeProc := func(pid string, argv ...string) {
		require.NoError(t, os.MkdirAll(filepath.Join(procRoot, pid), 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(procRoot, pid, "cmdline"),
			append([]byte(strings.Join(argv, "\x00")), 0),
			0o644,
		))
	}

	writeProc("100", exe, WorkerFlag)                   // stray worker
	writeProc("101", exe)                               // the server itself
	writeProc("102", "/usr/bin/vim", "--worker")        // other binary, same flag
	writeProc("103", exe, "--worker-threads", "4")      // flag prefix, not the flag
	writeProc("200", exe, WorkerFlag)                   // second stray
	require.NoError(t, os.MkdirAll(filepath.Join(procRoot, "self"), 0o755))

	pids, err := strayWorkerPIDs(procRoot, exe)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{100, 200}, pids)
}

func TestStrayWorkerPIDs_EmptyAndUnreadable(t *testing.T) {
	procRoot := t.TempDir()

	// A pid dir without a readable cmdline is skipped, not an error.
	require.NoError(t, os.MkdirAll(filepath.Join(procRoot, "300"), 0o755))

	pids, err := strayWorkerPIDs(procRoot, "/opt/kasal/bin/kasal")
	require.NoError(t, err)
	assert.Empty(t, pids)

	_, err = strayWorkerPIDs(filepath.Join(procRoot, "missing"), "/opt/kasal/bin/kasal")
	assert.Error(t, err)
}
