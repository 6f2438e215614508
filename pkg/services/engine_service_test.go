package services_test

import (
	"context"
	"testing"

	"github.com/kasal-project/kasal/pkg/services"
	"github.com/kasal-project/kasal/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineService_GetSetBool(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewEngineService(client)
	ctx := context.Background()

	t.Run("unset key returns the fallback", func(t *testing.T) {
		v, err := svc.GetBool(ctx, services.EngineName, services.DebugTracingKey, false)
		require.NoError(t, err)
		assert.False(t, v)

		v, err = svc.GetBool(ctx, services.EngineName, services.DebugTracingKey, true)
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("set then read back", func(t *testing.T) {
		require.NoError(t, svc.SetBool(ctx, services.EngineName, services.DebugTracingKey, true))
		v, err := svc.GetBool(ctx, services.EngineName, services.DebugTracingKey, false)
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("set is an upsert", func(t *testing.T) {
		require.NoError(t, svc.SetBool(ctx, services.EngineName, services.DebugTracingKey, false))
		v, err := svc.GetBool(ctx, services.EngineName, services.DebugTracingKey, true)
		require.NoError(t, err)
		assert.False(t, v)

		n, err := client.EngineSetting.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("keys are scoped per engine", func(t *testing.T) {
		require.NoError(t, svc.SetBool(ctx, "other", services.DebugTracingKey, true))
		v, err := svc.GetBool(ctx, services.EngineName, services.DebugTracingKey, false)
		require.NoError(t, err)
		assert.False(t, v)
	})

	t.Run("garbage value falls back", func(t *testing.T) {
		_, err := client.EngineSetting.Create().
			SetEngine("broken").
			SetKey("flag").
			SetValue("maybe").
			Save(ctx)
		require.NoError(t, err)

		v, err := svc.GetBool(ctx, "broken", "flag", true)
		require.NoError(t, err)
		assert.True(t, v)
	})
}
