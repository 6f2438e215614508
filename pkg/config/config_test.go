package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 4, cfg.Executor.MaxConcurrent)
	assert.Equal(t, 30*time.Minute, cfg.Executor.DefaultTimeout)
	assert.Equal(t, 5*time.Second, cfg.Executor.GracePeriod)
	assert.NotEmpty(t, cfg.Executor.PodID, "pod id falls back to hostname")
	assert.Equal(t, 1000, cfg.Pipeline.TraceQueueCapacity)
	assert.Equal(t, 2000, cfg.Pipeline.LogQueueCapacity)
	assert.Equal(t, "wait", cfg.Pipeline.OrphanPolicy)
	assert.Equal(t, "localhost:50051", cfg.LLM.Addr)
	assert.Equal(t, 30, cfg.Retention.TraceRetentionDays)
	assert.Equal(t, 14, cfg.Retention.LogRetentionDays)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("POD_ID", "pod-7")
	t.Setenv("EXECUTOR_MAX_CONCURRENT", "12")
	t.Setenv("EXECUTOR_TIMEOUT", "5m")
	t.Setenv("TRACE_QUEUE_CAPACITY", "50")
	t.Setenv("TRACE_ORPHAN_POLICY", "create")
	t.Setenv("LLM_SERVICE_ADDR", "sidecar:7777")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "pod-7", cfg.Executor.PodID)
	assert.Equal(t, 12, cfg.Executor.MaxConcurrent)
	assert.Equal(t, 5*time.Minute, cfg.Executor.DefaultTimeout)
	assert.Equal(t, 50, cfg.Pipeline.TraceQueueCapacity)
	assert.Equal(t, "create", cfg.Pipeline.OrphanPolicy)
	assert.Equal(t, "sidecar:7777", cfg.LLM.Addr)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("PORT", "not-a-number")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad orphan policy", func(t *testing.T) {
		t.Setenv("TRACE_ORPHAN_POLICY", "panic")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad duration falls back to default", func(t *testing.T) {
		t.Setenv("EXECUTOR_GRACE_PERIOD", "soon")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, cfg.Executor.GracePeriod)
	})
}
