package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kasal-project/kasal/pkg/crew"
	"github.com/kasal-project/kasal/pkg/services"
)

// createExecutionRequest is the POST /executions body.
type createExecutionRequest struct {
	JobID          string                 `json:"job_id"`
	RunName        string                 `json:"run_name"`
	Crew           crew.Config            `json:"crew"`
	Inputs         map[string]interface{} `json:"inputs"`
	TimeoutSeconds int                    `json:"timeout_seconds"`

	// FlowConfig, when present, overrides the persisted flow record's
	// starting points with the request's own.
	FlowConfig *flowOverride `json:"flow_config"`
}

// flowOverride carries request-time flow adjustments.
type flowOverride struct {
	StartingPoints []string `json:"starting_points"`
}

// timeout converts timeout_seconds to a duration; zero means "server default".
func (r *createExecutionRequest) timeout() time.Duration {
	if r.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// startingPointsOverride returns the request's starting points, or nil when
// the request defers to the persisted flow record.
func (r *createExecutionRequest) startingPointsOverride() []string {
	if r.FlowConfig == nil {
		return nil
	}
	return r.FlowConfig.StartingPoints
}

// stopExecutionRequest is the POST /executions/:id/stop body.
type stopExecutionRequest struct {
	StopType               string `json:"stop_type"`
	Reason                 string `json:"reason"`
	PreservePartialResults *bool  `json:"preserve_partial_results"`
}

// normalize fills the contract defaults: graceful stop, partials preserved.
func (r *stopExecutionRequest) normalize() {
	if r.StopType == "" {
		r.StopType = services.StopTypeGraceful
	}
}

func (r *stopExecutionRequest) preserve() bool {
	return r.PreservePartialResults == nil || *r.PreservePartialResults
}

// listFilters parses the GET /executions query parameters.
func listFilters(c *gin.Context) (services.ExecutionFilters, error) {
	filters := services.ExecutionFilters{
		Status:  c.Query("status"),
		RunName: c.Query("run_name"),
	}

	var err error
	if filters.Limit, err = intQuery(c, "limit", 20); err != nil {
		return filters, err
	}
	if filters.Offset, err = intQuery(c, "offset", 0); err != nil {
		return filters, err
	}

	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filters, services.NewValidationError("created_after", "must be RFC3339")
		}
		filters.CreatedAfter = &t
	}
	if v := c.Query("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filters, services.NewValidationError("created_before", "must be RFC3339")
		}
		filters.CreatedBefore = &t
	}
	return filters, nil
}

// intQuery parses an integer query parameter with a default.
func intQuery(c *gin.Context, name string, defaultVal int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, services.NewValidationError(name, "must be an integer")
	}
	return n, nil
}
