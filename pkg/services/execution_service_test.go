package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/kasal-project/kasal/pkg/services"
	"github.com/kasal-project/kasal/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminGroup(groupID string) *groupctx.GroupContext {
	return &groupctx.GroupContext{
		GroupIDs:    []string{groupID},
		GroupEmail:  "alice@example.com",
		UserRole:    groupctx.RoleAdmin,
		HighestRole: groupctx.RoleAdmin,
	}
}

func operatorGroup(groupID string) *groupctx.GroupContext {
	return &groupctx.GroupContext{
		GroupIDs:    []string{groupID},
		GroupEmail:  "bob@example.com",
		UserRole:    groupctx.RoleOperator,
		HighestRole: groupctx.RoleOperator,
	}
}

func createExec(t *testing.T, svc *services.ExecutionService, jobID, groupID string) *ent.Execution {
	t.Helper()
	exec, err := svc.Create(context.Background(), services.CreateExecutionRequest{JobID: jobID}, adminGroup(groupID))
	require.NoError(t, err)
	return exec
}

func TestExecutionService_Create(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	ctx := context.Background()

	exec, err := svc.Create(ctx, services.CreateExecutionRequest{
		JobID:  "job-abc-12345",
		Inputs: map[string]interface{}{"topic": "go"},
	}, adminGroup("team-a"))
	require.NoError(t, err)
	assert.Equal(t, execution.StatusPending, exec.Status)
	assert.Equal(t, "team-a", exec.GroupID)
	assert.Equal(t, "run-job-abc-", exec.RunName, "default run name derives from the job id")
	assert.False(t, exec.IsStopping)

	t.Run("duplicate job id in the same group", func(t *testing.T) {
		_, err := svc.Create(ctx, services.CreateExecutionRequest{JobID: "job-abc-12345"}, adminGroup("team-a"))
		assert.ErrorIs(t, err, services.ErrAlreadyExists)
	})

	t.Run("same job id in another group is fine", func(t *testing.T) {
		_, err := svc.Create(ctx, services.CreateExecutionRequest{JobID: "job-abc-12345"}, adminGroup("team-b"))
		assert.NoError(t, err)
	})

	t.Run("missing job id", func(t *testing.T) {
		_, err := svc.Create(ctx, services.CreateExecutionRequest{}, adminGroup("team-a"))
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("invalid group context", func(t *testing.T) {
		_, err := svc.Create(ctx, services.CreateExecutionRequest{JobID: "job-x"}, &groupctx.GroupContext{})
		assert.ErrorIs(t, err, services.ErrSecurityViolation)
	})
}

func TestExecutionService_MarkRunning(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	ctx := context.Background()

	createExec(t, svc, "job-1", "team-a")

	require.NoError(t, svc.MarkRunning(ctx, "team-a", "job-1", "pod-7"))

	got, err := svc.Get(ctx, "job-1", []string{"team-a"})
	require.NoError(t, err)
	assert.Equal(t, execution.StatusRunning, got.Status)
	require.NotNil(t, got.StartedAt)
	require.NotNil(t, got.PodID)
	assert.Equal(t, "pod-7", *got.PodID)

	t.Run("idempotent on a running job", func(t *testing.T) {
		assert.NoError(t, svc.MarkRunning(ctx, "team-a", "job-1", "pod-7"))
	})

	t.Run("rejected once terminal", func(t *testing.T) {
		_, err := svc.MarkTerminal(ctx, "team-a", "job-1", execution.StatusCompleted, services.TerminalPayload{})
		require.NoError(t, err)
		err = svc.MarkRunning(ctx, "team-a", "job-1", "pod-7")
		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})

	t.Run("unknown job", func(t *testing.T) {
		err := svc.MarkRunning(ctx, "team-a", "no-such-job", "pod-7")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("wrong group reads as not found", func(t *testing.T) {
		createExec(t, svc, "job-4", "team-a")
		err := svc.MarkRunning(ctx, "team-b", "job-4", "pod-7")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("empty group is refused", func(t *testing.T) {
		err := svc.MarkRunning(ctx, "", "job-1", "pod-7")
		assert.ErrorIs(t, err, services.ErrSecurityViolation)
	})
}

func TestExecutionService_MarkTerminal(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	ctx := context.Background()

	createExec(t, svc, "job-1", "team-a")
	require.NoError(t, svc.MarkRunning(ctx, "team-a", "job-1", "pod-7"))
	require.NoError(t, svc.RequestStop(ctx, "team-a", "job-1", "user requested"))

	won, err := svc.MarkTerminal(ctx, "team-a", "job-1", execution.StatusCompleted, services.TerminalPayload{
		Result: map[string]interface{}{"answer": float64(42)},
	})
	require.NoError(t, err)
	assert.True(t, won)

	got, err := svc.Get(ctx, "job-1", []string{"team-a"})
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.False(t, got.IsStopping, "terminal transition clears the stopping flag")
	assert.Equal(t, float64(42), got.Result["answer"])

	t.Run("loser of the race observes a no-op", func(t *testing.T) {
		won, err := svc.MarkTerminal(ctx, "team-a", "job-1", execution.StatusFailed, services.TerminalPayload{Error: "too late"})
		require.NoError(t, err)
		assert.False(t, won)

		got, err := svc.Get(ctx, "job-1", []string{"team-a"})
		require.NoError(t, err)
		assert.Equal(t, execution.StatusCompleted, got.Status, "first writer wins")
		assert.Nil(t, got.Error)
	})

	t.Run("pending to completed is rejected", func(t *testing.T) {
		createExec(t, svc, "job-2", "team-a")
		_, err := svc.MarkTerminal(ctx, "team-a", "job-2", execution.StatusCompleted, services.TerminalPayload{})
		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})

	t.Run("pending to failed is allowed", func(t *testing.T) {
		createExec(t, svc, "job-3", "team-a")
		won, err := svc.MarkTerminal(ctx, "team-a", "job-3", execution.StatusFailed, services.TerminalPayload{Error: "spawn failed"})
		require.NoError(t, err)
		assert.True(t, won)

		got, err := svc.Get(ctx, "job-3", []string{"team-a"})
		require.NoError(t, err)
		assert.Equal(t, execution.StatusFailed, got.Status)
		require.NotNil(t, got.Error)
		assert.Equal(t, "spawn failed", *got.Error)
	})

	t.Run("non-terminal outcome is rejected", func(t *testing.T) {
		_, err := svc.MarkTerminal(ctx, "team-a", "job-1", execution.StatusRunning, services.TerminalPayload{})
		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})
}

// Two tenants can run the same job id concurrently. Every mutation must stay
// inside the caller's group: one tenant finishing its run must never flip or
// overwrite the other tenant's row.
func TestExecutionService_TenantIsolation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	ctx := context.Background()

	createExec(t, svc, "job-1", "acme")
	createExec(t, svc, "job-1", "globex")

	require.NoError(t, svc.MarkRunning(ctx, "acme", "job-1", "pod-7"))

	t.Run("terminal transition stays in its group", func(t *testing.T) {
		won, err := svc.MarkTerminal(ctx, "acme", "job-1", execution.StatusCompleted, services.TerminalPayload{
			Result: map[string]interface{}{"content": "acme result"},
		})
		require.NoError(t, err)
		assert.True(t, won)

		other, err := svc.Get(ctx, "job-1", []string{"globex"})
		require.NoError(t, err)
		assert.Equal(t, execution.StatusPending, other.Status)
		assert.Nil(t, other.Result)

		mine, err := svc.Get(ctx, "job-1", []string{"acme"})
		require.NoError(t, err)
		assert.Equal(t, execution.StatusCompleted, mine.Status)
	})

	t.Run("stop request stays in its group", func(t *testing.T) {
		require.NoError(t, svc.MarkRunning(ctx, "globex", "job-1", "pod-8"))
		require.NoError(t, svc.RequestStop(ctx, "globex", "job-1", "globex stop"))

		mine, err := svc.Get(ctx, "job-1", []string{"acme"})
		require.NoError(t, err)
		assert.False(t, mine.IsStopping)
	})

	t.Run("partial results stay in their group", func(t *testing.T) {
		partial := []map[string]interface{}{{"task_id": "t1", "output": "globex half"}}
		require.NoError(t, svc.RecordPartialResults(ctx, "globex", "job-1", partial))

		mine, err := svc.Get(ctx, "job-1", []string{"acme"})
		require.NoError(t, err)
		assert.Empty(t, mine.PartialResults)
	})

	t.Run("delete cascade stays in its group", func(t *testing.T) {
		traces := services.NewTraceService(client)
		_, err := client.ExecutionTrace.Create().
			SetJobID("job-1").
			SetGroupID("globex").
			SetEventSource("Crew[c]").
			SetEventType("crew_execution_started").
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, "job-1", adminGroup("acme")))

		_, err = svc.Get(ctx, "job-1", []string{"globex"})
		assert.NoError(t, err, "the other tenant's row survives")

		rows, err := traces.ListTraces(ctx, "job-1", []string{"globex"}, 0, 0)
		require.NoError(t, err)
		assert.Len(t, rows, 1, "the other tenant's traces survive")
	})
}

func TestExecutionService_RequestStop(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	ctx := context.Background()

	createExec(t, svc, "job-1", "team-a")

	t.Run("pending cannot be stopped", func(t *testing.T) {
		err := svc.RequestStop(ctx, "team-a", "job-1", "")
		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})

	require.NoError(t, svc.MarkRunning(ctx, "team-a", "job-1", "pod-7"))
	require.NoError(t, svc.RequestStop(ctx, "team-a", "job-1", "user requested"))

	got, err := svc.Get(ctx, "job-1", []string{"team-a"})
	require.NoError(t, err)
	assert.True(t, got.IsStopping)
	require.NotNil(t, got.StopReason)
	assert.Equal(t, "user requested", *got.StopReason)

	t.Run("idempotent", func(t *testing.T) {
		assert.NoError(t, svc.RequestStop(ctx, "team-a", "job-1", "again"))
	})
}

func TestExecutionService_ListFilters(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	ctx := context.Background()

	for _, jobID := range []string{"job-1", "job-2", "job-3"} {
		createExec(t, svc, jobID, "team-a")
	}
	createExec(t, svc, "job-other", "team-b")
	require.NoError(t, svc.MarkRunning(ctx, "team-a", "job-2", "pod-7"))

	t.Run("group isolation", func(t *testing.T) {
		res, err := svc.List(ctx, []string{"team-a"}, services.ExecutionFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalCount)
		for _, exec := range res.Executions {
			assert.Equal(t, "team-a", exec.GroupID)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		res, err := svc.List(ctx, []string{"team-a"}, services.ExecutionFilters{Status: "running"})
		require.NoError(t, err)
		require.Len(t, res.Executions, 1)
		assert.Equal(t, "job-2", res.Executions[0].JobID)
	})

	t.Run("run name filter", func(t *testing.T) {
		res, err := svc.List(ctx, []string{"team-a"}, services.ExecutionFilters{RunName: "run-job-1"})
		require.NoError(t, err)
		require.Len(t, res.Executions, 1)
		assert.Equal(t, "job-1", res.Executions[0].JobID)
	})

	t.Run("pagination", func(t *testing.T) {
		res, err := svc.List(ctx, []string{"team-a"}, services.ExecutionFilters{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, res.Executions, 2)
		assert.Equal(t, 3, res.TotalCount, "total count is unpaginated")

		rest, err := svc.List(ctx, []string{"team-a"}, services.ExecutionFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, rest.Executions, 1)
	})

	t.Run("no groups", func(t *testing.T) {
		_, err := svc.List(ctx, nil, services.ExecutionFilters{})
		assert.ErrorIs(t, err, services.ErrSecurityViolation)
	})
}

func TestExecutionService_GetAndOwnership(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	ctx := context.Background()

	createExec(t, svc, "job-1", "team-a")

	t.Run("wrong group reads as not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "job-1", []string{"team-b"})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("owner groups", func(t *testing.T) {
		owners, err := svc.OwnerGroups(ctx, "job-1", []string{"team-a", "team-b"})
		require.NoError(t, err)
		assert.Equal(t, []string{"team-a"}, owners)

		owners, err = svc.OwnerGroups(ctx, "job-1", []string{"team-b"})
		require.NoError(t, err)
		assert.Empty(t, owners)

		_, err = svc.OwnerGroups(ctx, "job-1", nil)
		assert.ErrorIs(t, err, services.ErrSecurityViolation)
	})

	t.Run("owner groups with a shared job id", func(t *testing.T) {
		createExec(t, svc, "job-1", "team-c")
		owners, err := svc.OwnerGroups(ctx, "job-1", []string{"team-a", "team-b", "team-c"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"team-a", "team-c"}, owners)
	})

	t.Run("exists is group scoped", func(t *testing.T) {
		ok, err := svc.Exists(ctx, "team-a", "job-1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.Exists(ctx, "team-b", "job-1")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = svc.Exists(ctx, "team-a", "no-such-job")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestExecutionService_Delete(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	traces := services.NewTraceService(client)
	ctx := context.Background()

	createExec(t, svc, "job-1", "team-a")
	_, err := client.ExecutionTrace.Create().
		SetJobID("job-1").
		SetGroupID("team-a").
		SetEventSource("Crew[c]").
		SetEventType("crew_execution_started").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.ExecutionLog.Create().
		SetExecutionID("job-1").
		SetGroupID("team-a").
		SetContent("starting").
		Save(ctx)
	require.NoError(t, err)

	t.Run("operator is refused", func(t *testing.T) {
		err := svc.Delete(ctx, "job-1", operatorGroup("team-a"))
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("admin deletes with trace and log cascade", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, "job-1", adminGroup("team-a")))

		_, err := svc.Get(ctx, "job-1", []string{"team-a"})
		assert.ErrorIs(t, err, services.ErrNotFound)

		rows, err := traces.ListTraces(ctx, "job-1", []string{"team-a"}, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, rows)

		lines, err := traces.ListLogs(ctx, "job-1", []string{"team-a"}, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("deleting a missing job", func(t *testing.T) {
		err := svc.Delete(ctx, "job-1", adminGroup("team-a"))
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestExecutionService_FailStalePending(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	ctx := context.Background()

	_, err := client.Execution.Create().
		SetJobID("job-stale").
		SetGroupID("team-a").
		SetStatus(execution.StatusPending).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	createExec(t, svc, "job-fresh", "team-a")

	n, err := svc.FailStalePending(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stale, err := svc.Get(ctx, "job-stale", []string{"team-a"})
	require.NoError(t, err)
	assert.Equal(t, execution.StatusFailed, stale.Status)
	require.NotNil(t, stale.Error)
	assert.Contains(t, *stale.Error, "never picked up")

	fresh, err := svc.Get(ctx, "job-fresh", []string{"team-a"})
	require.NoError(t, err)
	assert.Equal(t, execution.StatusPending, fresh.Status)
}

func TestExecutionService_RecordPartialResults(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewExecutionService(client)
	ctx := context.Background()

	createExec(t, svc, "job-1", "team-a")

	partial := []map[string]interface{}{{"task_id": "t1", "output": "half done"}}
	require.NoError(t, svc.RecordPartialResults(ctx, "team-a", "job-1", partial))

	got, err := svc.Get(ctx, "job-1", []string{"team-a"})
	require.NoError(t, err)
	require.Len(t, got.PartialResults, 1)
	assert.Equal(t, "t1", got.PartialResults[0]["task_id"])

	assert.NoError(t, svc.RecordPartialResults(ctx, "team-a", "job-1", nil), "empty payload is a no-op")
}
