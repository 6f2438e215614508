package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/pkg/groupctx"
)

// Stop types accepted by the API contract.
const (
	StopTypeGraceful = "graceful"
	StopTypeForce    = "force"
)

// Terminator is the subset of the process pool the stop controller drives.
// Implemented by runner.Pool. Jobs are addressed by (group, job_id) — job_id
// alone is ambiguous across tenants.
type Terminator interface {
	// Known reports whether the job has a live worker on this node.
	Known(groupID, jobID string) bool
	// Terminate shuts the worker down (graceful signal, grace window, then
	// kill — or immediate kill when force). The pool records the stopped
	// terminal status asynchronously once the worker exits.
	Terminate(ctx context.Context, groupID, jobID, reason string, force bool) error
}

// StopController coordinates in-flight termination with partial-result
// preservation.
type StopController struct {
	executions *ExecutionService
	pool       Terminator

	// TerminalWait bounds how long Stop waits for the pool's asynchronous
	// terminal transition after a successful Terminate before reporting the
	// projected stopping state.
	TerminalWait time.Duration
}

// NewStopController creates a new StopController.
func NewStopController(executions *ExecutionService, pool Terminator) *StopController {
	return &StopController{
		executions:   executions,
		pool:         pool,
		TerminalWait: 3 * time.Second,
	}
}

// StopRequest is the API contract for a stop call.
type StopRequest struct {
	JobID                  string
	StopType               string // "graceful" or "force"
	Reason                 string
	PreservePartialResults bool
}

// StopResponse reports the post-stop state of the job.
type StopResponse struct {
	ExecutionID    string                   `json:"execution_id"`
	Status         string                   `json:"status"`
	Message        string                   `json:"message"`
	PartialResults []map[string]interface{} `json:"partial_results,omitempty"`
}

// Stop requests termination of a running job.
//
// Already-terminal jobs return their current status without error. A job with
// no live worker on this node fails with ErrNotFound — the status row alone
// is not stoppable. An OS-level kill failure still records the job as stopped
// with error "force_stop_failed"; orphan cleanup reaps the leaked worker.
func (c *StopController) Stop(ctx context.Context, req StopRequest, gc *groupctx.GroupContext) (*StopResponse, error) {
	if req.StopType != StopTypeGraceful && req.StopType != StopTypeForce {
		return nil, NewValidationError("stop_type", "must be graceful or force")
	}

	exec, err := c.executions.Get(ctx, req.JobID, gc.GroupIDs)
	if err != nil {
		return nil, err
	}
	groupID := exec.GroupID

	if terminal(exec.Status) {
		return &StopResponse{
			ExecutionID:    req.JobID,
			Status:         string(exec.Status),
			Message:        "execution already finished",
			PartialResults: partials(req.PreservePartialResults, exec.PartialResults),
		}, nil
	}

	if !c.pool.Known(groupID, req.JobID) {
		return nil, ErrNotFound
	}

	if err := c.executions.RequestStop(ctx, groupID, req.JobID, req.Reason); err != nil &&
		!errors.Is(err, ErrInvalidTransition) {
		return nil, err
	}

	if err := c.pool.Terminate(ctx, groupID, req.JobID, req.Reason, req.StopType == StopTypeForce); err != nil {
		// Worker leaked at the OS level. Record the terminal state anyway and
		// let orphan cleanup deal with the process.
		slog.Error("Worker termination failed, marking stopped regardless",
			"job_id", req.JobID, "error", err)
		if _, markErr := c.executions.MarkTerminal(ctx, groupID, req.JobID, execution.StatusStopped, TerminalPayload{
			Error: "force_stop_failed",
		}); markErr != nil && !errors.Is(markErr, ErrNotFound) {
			return nil, fmt.Errorf("failed to record stop after kill failure: %w", markErr)
		}
	}

	// Terminate returns once the process is down; the pool's await loop
	// records the terminal row asynchronously. Wait briefly for that write so
	// the response carries the final status and partials.
	stopped, err := c.awaitTerminal(ctx, req.JobID, gc.GroupIDs)
	if err != nil {
		return nil, err
	}

	status := string(stopped.Status)
	message := "stop processed"
	if !terminal(stopped.Status) {
		status = "stopping"
		message = "stop requested, worker is shutting down"
	}
	return &StopResponse{
		ExecutionID:    req.JobID,
		Status:         status,
		Message:        message,
		PartialResults: partials(req.PreservePartialResults, stopped.PartialResults),
	}, nil
}

// awaitTerminal polls the status row until it goes terminal or TerminalWait
// elapses, returning the last row read either way.
func (c *StopController) awaitTerminal(ctx context.Context, jobID string, groupIDs []string) (*ent.Execution, error) {
	deadline := time.Now().Add(c.TerminalWait)
	for {
		exec, err := c.executions.Get(ctx, jobID, groupIDs)
		if err != nil {
			return nil, err
		}
		if terminal(exec.Status) || time.Now().After(deadline) {
			return exec, nil
		}
		select {
		case <-ctx.Done():
			return exec, nil
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// partials filters partial results by the preserve flag.
func partials(preserve bool, p []map[string]interface{}) []map[string]interface{} {
	if !preserve {
		return nil
	}
	return p
}
