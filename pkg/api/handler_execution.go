package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/pkg/runner"
	"github.com/kasal-project/kasal/pkg/services"
)

// createExecution validates and resolves a crew configuration, records the
// pending job, and hands it to the process pool.
//
// The ordering matters: the row is created before submission so the status
// store is authoritative from the first instant, and a refused submission
// (pool at capacity, spawn failure) marks that row failed rather than
// leaving it pending forever.
func (s *Server) createExecution(c *gin.Context) {
	var req createExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.JobID == "" {
		req.JobID = uuid.New().String()
	}

	gc := mustGroupContext(c)
	ctx := c.Request.Context()

	if err := s.resolver.Resolve(ctx, &req.Crew, gc, req.startingPointsOverride()); err != nil {
		mapServiceError(c, err)
		return
	}

	memory, err := s.resolver.MemoryProfile(ctx, gc.PrimaryGroupID())
	if err != nil {
		mapServiceError(c, err)
		return
	}

	debugTracing, err := s.engines.GetBool(ctx, services.EngineName, services.DebugTracingKey, false)
	if err != nil {
		// A settings read failure degrades to default tracing, never a 500.
		slog.Warn("Failed to read debug tracing flag, defaulting off", "error", err)
		debugTracing = false
	}

	exec, err := s.executions.Create(ctx, services.CreateExecutionRequest{
		JobID:   req.JobID,
		RunName: req.RunName,
		Inputs:  req.Inputs,
	}, gc)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	err = s.pool.Submit(ctx, runner.Request{
		JobID:        req.JobID,
		RunName:      exec.RunName,
		Group:        *gc,
		Crew:         req.Crew,
		Inputs:       req.Inputs,
		Memory:       memory,
		Timeout:      req.timeout(),
		DebugTracing: debugTracing,
	})
	if err != nil {
		if _, markErr := s.executions.MarkTerminal(ctx, gc.PrimaryGroupID(), req.JobID, execution.StatusFailed,
			services.TerminalPayload{Error: err.Error()}); markErr != nil {
			slog.Error("Failed to mark refused submission failed",
				"job_id", req.JobID, "error", markErr)
		}
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toExecutionResponse(exec))
}

// listExecutions returns the caller's executions, newest first.
func (s *Server) listExecutions(c *gin.Context) {
	gc := mustGroupContext(c)

	filters, err := listFilters(c)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	result, err := s.executions.List(c.Request.Context(), gc.GroupIDs, filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := executionListResponse{
		Executions: make([]executionResponse, 0, len(result.Executions)),
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	}
	for _, exec := range result.Executions {
		resp.Executions = append(resp.Executions, toExecutionResponse(exec))
	}
	c.JSON(http.StatusOK, resp)
}

// getExecution returns one execution by job id.
func (s *Server) getExecution(c *gin.Context) {
	gc := mustGroupContext(c)

	exec, err := s.executions.Get(c.Request.Context(), c.Param("id"), gc.GroupIDs)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toExecutionResponse(exec))
}

// stopExecution requests termination of a running job.
func (s *Server) stopExecution(c *gin.Context) {
	// An empty body means "graceful stop with defaults".
	var req stopExecutionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
			return
		}
	}
	req.normalize()

	gc := mustGroupContext(c)
	resp, err := s.stops.Stop(c.Request.Context(), services.StopRequest{
		JobID:                  c.Param("id"),
		StopType:               req.StopType,
		Reason:                 req.Reason,
		PreservePartialResults: req.preserve(),
	}, gc)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// deleteExecution removes an execution and its traces and logs. Admin only.
func (s *Server) deleteExecution(c *gin.Context) {
	gc := mustGroupContext(c)

	if err := s.executions.Delete(c.Request.Context(), c.Param("id"), gc); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
