package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/executions?"+rawQuery, nil)
	return c
}

func TestListFilters(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		filters, err := listFilters(queryContext(t, ""))
		require.NoError(t, err)
		assert.Equal(t, 20, filters.Limit)
		assert.Equal(t, 0, filters.Offset)
		assert.Nil(t, filters.CreatedAfter)
	})

	t.Run("full query", func(t *testing.T) {
		filters, err := listFilters(queryContext(t,
			"status=running&run_name=nightly&limit=5&offset=10&created_after=2026-08-01T00:00:00Z"))
		require.NoError(t, err)
		assert.Equal(t, "running", filters.Status)
		assert.Equal(t, "nightly", filters.RunName)
		assert.Equal(t, 5, filters.Limit)
		assert.Equal(t, 10, filters.Offset)
		require.NotNil(t, filters.CreatedAfter)
		assert.Equal(t, 2026, filters.CreatedAfter.Year())
	})

	t.Run("bad limit", func(t *testing.T) {
		_, err := listFilters(queryContext(t, "limit=lots"))
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("bad timestamp", func(t *testing.T) {
		_, err := listFilters(queryContext(t, "created_before=yesterday"))
		assert.True(t, services.IsValidationError(err))
	})
}

func TestStopRequestDefaults(t *testing.T) {
	var req stopExecutionRequest
	req.normalize()
	assert.Equal(t, services.StopTypeGraceful, req.StopType)
	assert.True(t, req.preserve(), "partials are preserved unless explicitly discarded")

	discard := false
	req = stopExecutionRequest{PreservePartialResults: &discard}
	assert.False(t, req.preserve())
}

func TestCreateRequestTimeout(t *testing.T) {
	req := createExecutionRequest{}
	assert.Equal(t, time.Duration(0), req.timeout(), "zero defers to the server default")

	req.TimeoutSeconds = 90
	assert.Equal(t, 90*time.Second, req.timeout())

	assert.Nil(t, req.startingPointsOverride())
	req.FlowConfig = &flowOverride{StartingPoints: []string{"n3"}}
	assert.Equal(t, []string{"n3"}, req.startingPointsOverride())
}

func TestEffectiveStatus(t *testing.T) {
	running := &ent.Execution{Status: execution.StatusRunning}
	assert.Equal(t, "running", effectiveStatus(running))

	running.IsStopping = true
	assert.Equal(t, "stopping", effectiveStatus(running), "stopping is a projection of the flag")

	stopped := &ent.Execution{Status: execution.StatusStopped, IsStopping: true}
	assert.Equal(t, "stopped", effectiveStatus(stopped), "the flag only matters while running")
}
