package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/kasal-project/kasal/pkg/services"
	"github.com/kasal-project/kasal/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolService_Resolve(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewToolService(client)
	ctx := context.Background()

	search, err := client.ToolRecord.Create().
		SetName("web_search").
		SetGroupID("team-a").
		SetKind("builtin").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.ToolRecord.Create().
		SetName("broken_tool").
		SetGroupID("team-a").
		SetEnabled(false).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.ToolRecord.Create().
		SetName("secret_tool").
		SetGroupID("team-b").
		Save(ctx)
	require.NoError(t, err)

	t.Run("by name", func(t *testing.T) {
		rec, err := svc.Resolve(ctx, "web_search", []string{"team-a"})
		require.NoError(t, err)
		assert.Equal(t, search.ID, rec.ID)
	})

	t.Run("by numeric id", func(t *testing.T) {
		rec, err := svc.Resolve(ctx, fmt.Sprintf("%d", search.ID), []string{"team-a"})
		require.NoError(t, err)
		assert.Equal(t, "web_search", rec.Name)
	})

	t.Run("disabled tools do not resolve", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "broken_tool", []string{"team-a"})
		assert.ErrorIs(t, err, services.ErrInvalidConfig)
	})

	t.Run("other groups' tools do not resolve", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "secret_tool", []string{"team-a"})
		assert.ErrorIs(t, err, services.ErrInvalidConfig)
	})

	t.Run("empty reference", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "", []string{"team-a"})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("no group filter", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "web_search", nil)
		assert.ErrorIs(t, err, services.ErrSecurityViolation)
	})
}

func TestMemoryConfigService_Active(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewMemoryConfigService(client)
	ctx := context.Background()

	t.Run("no config means library defaults", func(t *testing.T) {
		cfg, err := svc.Active(ctx, "team-a")
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	_, err := client.MemoryConfig.Create().
		SetGroupID("team-a").
		SetBackendType("databricks").
		SetIsActive(false).
		Save(ctx)
	require.NoError(t, err)

	t.Run("inactive configs are ignored", func(t *testing.T) {
		cfg, err := svc.Active(ctx, "team-a")
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	_, err = client.MemoryConfig.Create().
		SetGroupID("team-a").
		SetBackendType("disabled").
		SetIsActive(true).
		Save(ctx)
	require.NoError(t, err)

	t.Run("active config wins", func(t *testing.T) {
		cfg, err := svc.Active(ctx, "team-a")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "disabled", string(cfg.BackendType))
	})

	t.Run("missing group id", func(t *testing.T) {
		_, err := svc.Active(ctx, "")
		assert.ErrorIs(t, err, services.ErrSecurityViolation)
	})
}

func TestFlowService_Get(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewFlowService(client)
	ctx := context.Background()

	_, err := client.FlowRecord.Create().
		SetID("flow-1").
		SetGroupID("team-a").
		SetName("nightly pipeline").
		SetStartingPoints([]string{"n1"}).
		Save(ctx)
	require.NoError(t, err)

	rec, err := svc.Get(ctx, "flow-1", []string{"team-a"})
	require.NoError(t, err)
	assert.Equal(t, "nightly pipeline", rec.Name)
	assert.Equal(t, []string{"n1"}, rec.StartingPoints)

	t.Run("foreign group reads as not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "flow-1", []string{"team-b"})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("no group filter", func(t *testing.T) {
		_, err := svc.Get(ctx, "flow-1", nil)
		assert.ErrorIs(t, err, services.ErrSecurityViolation)
	})
}
