package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/ent/executionlog"
	"github.com/kasal-project/kasal/ent/executiontrace"
	"github.com/kasal-project/kasal/pkg/config"
	"github.com/kasal-project/kasal/pkg/services"
	"github.com/kasal-project/kasal/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRetentionData(t *testing.T, client *ent.Client) {
	t.Helper()
	ctx := context.Background()

	// A pending row no executor ever claimed, and a fresh one.
	_, err := client.Execution.Create().
		SetJobID("job-stale").
		SetGroupID("team-a").
		SetStatus(execution.StatusPending).
		SetCreatedAt(time.Now().Add(-3 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Execution.Create().
		SetJobID("job-fresh").
		SetGroupID("team-a").
		SetStatus(execution.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	// One trace and one log past retention, one of each inside it.
	for _, age := range []time.Duration{40 * 24 * time.Hour, time.Hour} {
		_, err = client.ExecutionTrace.Create().
			SetJobID("job-stale").
			SetGroupID("team-a").
			SetEventSource("Crew[c]").
			SetEventType("crew_started").
			SetCreatedAt(time.Now().Add(-age)).
			Save(ctx)
		require.NoError(t, err)
		_, err = client.ExecutionLog.Create().
			SetExecutionID("job-stale").
			SetGroupID("team-a").
			SetContent("line").
			SetTimestamp(time.Now().Add(-age)).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestService_RunAll(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	seedRetentionData(t, client)

	svc := NewService(config.RetentionConfig{
		StalePendingAfter:  time.Hour,
		TraceRetentionDays: 30,
		LogRetentionDays:   14,
		SweepInterval:      time.Hour,
	}, services.NewExecutionService(client), services.NewTraceService(client))

	svc.runAll(ctx)

	stale, err := client.Execution.Query().Where(execution.JobIDEQ("job-stale")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusFailed, stale.Status)

	fresh, err := client.Execution.Query().Where(execution.JobIDEQ("job-fresh")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusPending, fresh.Status)

	nTraces, err := client.ExecutionTrace.Query().Where(executiontrace.JobIDEQ("job-stale")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, nTraces, "only the trace inside the retention window survives")

	nLogs, err := client.ExecutionLog.Query().Where(executionlog.ExecutionIDEQ("job-stale")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, nLogs)
}

func TestService_ZeroConfigDisablesSweeps(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	seedRetentionData(t, client)

	svc := NewService(config.RetentionConfig{SweepInterval: time.Hour},
		services.NewExecutionService(client), services.NewTraceService(client))
	svc.runAll(ctx)

	stale, err := client.Execution.Query().Where(execution.JobIDEQ("job-stale")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusPending, stale.Status)

	nTraces, err := client.ExecutionTrace.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, nTraces)
}

func TestService_StartRunsImmediately(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	seedRetentionData(t, client)

	svc := NewService(config.RetentionConfig{
		StalePendingAfter: time.Hour,
		SweepInterval:     time.Hour,
	}, services.NewExecutionService(client), services.NewTraceService(client))

	svc.Start(ctx)
	defer svc.Stop()

	require.Eventually(t, func() bool {
		stale, err := client.Execution.Query().Where(execution.JobIDEQ("job-stale")).Only(context.Background())
		return err == nil && stale.Status == execution.StatusFailed
	}, 5*time.Second, 50*time.Millisecond, "the first sweep runs at startup, not after the first tick")
}
