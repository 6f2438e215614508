package runner

import (
	"context"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/kasal-project/kasal/pkg/logs"
	"github.com/kasal-project/kasal/pkg/services"
	"github.com/kasal-project/kasal/pkg/trace"
	"github.com/kasal-project/kasal/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scripted stand-ins for the worker binary. Each consumes the stdin payload
// to EOF first, the way the real worker does.
const (
	scriptSucceed        = `cat >/dev/null; printf '{"kind":"result","result":{"success":true,"content":"ok"}}\n'`
	scriptHang           = `cat >/dev/null; sleep 60`
	scriptIgnoreTerm     = `trap "" TERM; cat >/dev/null; sleep 60; true`
	scriptResultThenHang = `cat >/dev/null; printf '{"kind":"result","result":{"success":true,"content":"ok"}}\n'; sleep 60`
)

// fakePublisher records terminal frames.
type fakePublisher struct {
	mu    sync.Mutex
	calls []string // groupID/jobID/status
}

func (f *fakePublisher) PublishTerminal(groupID, jobID, status, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, groupID+"/"+jobID+"/"+status)
}

func (f *fakePublisher) published() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func scriptedPool(t *testing.T, cfg PoolConfig, script string) (*Pool, *services.ExecutionService, *fakePublisher) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	executions := services.NewExecutionService(client)
	publisher := &fakePublisher{}
	pool := NewPool(cfg, executions, trace.NewQueue(0), logs.NewQueue(0), publisher)
	pool.newWorkerCmd = func() (*exec.Cmd, error) {
		return exec.Command("sh", "-c", script), nil
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pool.Shutdown(ctx)
	})
	return pool, executions, publisher
}

func poolRequest(jobID, groupID string) Request {
	return Request{
		JobID: jobID,
		Group: groupctx.GroupContext{
			GroupIDs:   []string{groupID},
			GroupEmail: "alice@example.com",
		},
	}
}

func seedPending(t *testing.T, executions *services.ExecutionService, jobID, groupID string) {
	t.Helper()
	_, err := executions.Create(context.Background(), services.CreateExecutionRequest{JobID: jobID},
		&groupctx.GroupContext{
			GroupIDs:    []string{groupID},
			GroupEmail:  "alice@example.com",
			UserRole:    groupctx.RoleAdmin,
			HighestRole: groupctx.RoleAdmin,
		})
	require.NoError(t, err)
}

func awaitStatus(t *testing.T, executions *services.ExecutionService, groupID, jobID string, want execution.Status) {
	t.Helper()
	require.Eventually(t, func() bool {
		exec, err := executions.Get(context.Background(), jobID, []string{groupID})
		if err != nil {
			return false
		}
		return exec.Status == want
	}, 15*time.Second, 50*time.Millisecond, "job %s should reach %s", jobID, want)
}

func TestPool_SubmitRunsToCompletion(t *testing.T) {
	pool, executions, publisher := scriptedPool(t, PoolConfig{MaxConcurrent: 2, PodID: "pod-1"}, scriptSucceed)
	seedPending(t, executions, "job-1", "team-a")

	require.NoError(t, pool.Submit(context.Background(), poolRequest("job-1", "team-a")))
	awaitStatus(t, executions, "team-a", "job-1", execution.StatusCompleted)

	got, err := executions.Get(context.Background(), "job-1", []string{"team-a"})
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Result["content"])

	require.Eventually(t, func() bool { return !pool.Known("team-a", "job-1") },
		5*time.Second, 50*time.Millisecond, "the slot is released after the terminal transition")
	assert.Equal(t, []string{"team-a/job-1/completed"}, publisher.published())
}

func TestPool_OverloadAndSlotReuse(t *testing.T) {
	pool, executions, _ := scriptedPool(t, PoolConfig{MaxConcurrent: 1, PodID: "pod-1"}, scriptHang)
	seedPending(t, executions, "job-1", "team-a")
	seedPending(t, executions, "job-2", "team-a")

	require.NoError(t, pool.Submit(context.Background(), poolRequest("job-1", "team-a")))

	err := pool.Submit(context.Background(), poolRequest("job-2", "team-a"))
	assert.ErrorIs(t, err, services.ErrOverloaded, "submissions over the cap fail fast")

	require.NoError(t, pool.Terminate(context.Background(), "team-a", "job-1", "make room", false))
	awaitStatus(t, executions, "team-a", "job-1", execution.StatusStopped)
	require.Eventually(t, func() bool { return !pool.Known("team-a", "job-1") },
		5*time.Second, 50*time.Millisecond)

	assert.NoError(t, pool.Submit(context.Background(), poolRequest("job-2", "team-a")),
		"a freed slot accepts the next submission")
}

func TestPool_TimeoutFailsTheJob(t *testing.T) {
	pool, executions, _ := scriptedPool(t, PoolConfig{
		MaxConcurrent: 1,
		PodID:         "pod-1",
		GracePeriod:   300 * time.Millisecond,
	}, scriptHang)
	seedPending(t, executions, "job-1", "team-a")

	req := poolRequest("job-1", "team-a")
	req.Timeout = 500 * time.Millisecond
	require.NoError(t, pool.Submit(context.Background(), req))

	awaitStatus(t, executions, "team-a", "job-1", execution.StatusFailed)
	got, err := executions.Get(context.Background(), "job-1", []string{"team-a"})
	require.NoError(t, err)
	require.NotNil(t, got.Error)
	assert.Equal(t, "timeout", *got.Error)
}

func TestPool_GracefulEscalatesToKill(t *testing.T) {
	pool, executions, _ := scriptedPool(t, PoolConfig{
		MaxConcurrent: 1,
		PodID:         "pod-1",
		GracePeriod:   300 * time.Millisecond,
	}, scriptIgnoreTerm)
	seedPending(t, executions, "job-1", "team-a")

	require.NoError(t, pool.Submit(context.Background(), poolRequest("job-1", "team-a")))
	awaitStatus(t, executions, "team-a", "job-1", execution.StatusRunning)

	start := time.Now()
	require.NoError(t, pool.Terminate(context.Background(), "team-a", "job-1", "user requested", false))
	assert.GreaterOrEqual(t, time.Since(start), 300*time.Millisecond,
		"a TERM-deaf worker is given the grace window before KILL")

	awaitStatus(t, executions, "team-a", "job-1", execution.StatusStopped)
	got, err := executions.Get(context.Background(), "job-1", []string{"team-a"})
	require.NoError(t, err)
	require.NotNil(t, got.Error)
	assert.Equal(t, "user requested", *got.Error)
}

func TestPool_ResultThenHungWorkerFreesTheSlot(t *testing.T) {
	pool, executions, _ := scriptedPool(t, PoolConfig{
		MaxConcurrent: 1,
		PodID:         "pod-1",
		GracePeriod:   300 * time.Millisecond,
	}, scriptResultThenHang)
	seedPending(t, executions, "job-1", "team-a")

	require.NoError(t, pool.Submit(context.Background(), poolRequest("job-1", "team-a")))

	// The worker posts its result but never exits; the pool kills it after
	// the grace window and still records the success.
	awaitStatus(t, executions, "team-a", "job-1", execution.StatusCompleted)
	require.Eventually(t, func() bool { return !pool.Known("team-a", "job-1") },
		5*time.Second, 50*time.Millisecond, "the hung worker must not pin the slot")

	got, err := executions.Get(context.Background(), "job-1", []string{"team-a"})
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Result["content"])
}

func TestPool_SameJobIDAcrossGroups(t *testing.T) {
	pool, executions, publisher := scriptedPool(t, PoolConfig{MaxConcurrent: 2, PodID: "pod-1"}, scriptSucceed)
	seedPending(t, executions, "job-1", "acme")
	seedPending(t, executions, "job-1", "globex")

	require.NoError(t, pool.Submit(context.Background(), poolRequest("job-1", "acme")))
	require.NoError(t, pool.Submit(context.Background(), poolRequest("job-1", "globex")),
		"two tenants may run the same job id concurrently")

	awaitStatus(t, executions, "acme", "job-1", execution.StatusCompleted)
	awaitStatus(t, executions, "globex", "job-1", execution.StatusCompleted)

	require.Eventually(t, func() bool { return len(publisher.published()) == 2 },
		5*time.Second, 50*time.Millisecond)
	assert.ElementsMatch(t,
		[]string{"acme/job-1/completed", "globex/job-1/completed"},
		publisher.published(),
		"each tenant's terminal frame goes to its own channel")
}
