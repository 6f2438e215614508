package api

import (
	"time"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/execution"
)

// executionResponse is the API view of an execution record.
type executionResponse struct {
	JobID          string                   `json:"job_id"`
	Status         string                   `json:"status"`
	RunName        string                   `json:"run_name"`
	GroupID        string                   `json:"group_id"`
	CreatedByEmail string                   `json:"created_by_email,omitempty"`
	Inputs         map[string]interface{}   `json:"inputs,omitempty"`
	Result         map[string]interface{}   `json:"result,omitempty"`
	Error          string                   `json:"error,omitempty"`
	PartialResults []map[string]interface{} `json:"partial_results,omitempty"`
	StopReason     string                   `json:"stop_reason,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
	StartedAt      *time.Time               `json:"started_at,omitempty"`
	CompletedAt    *time.Time               `json:"completed_at,omitempty"`
}

// effectiveStatus folds the is_stopping flag into the reported status: a
// running job with a stop in flight reads as "stopping". The database never
// stores "stopping" — it is a projection, not a state.
func effectiveStatus(exec *ent.Execution) string {
	if exec.Status == execution.StatusRunning && exec.IsStopping {
		return "stopping"
	}
	return string(exec.Status)
}

// toExecutionResponse maps an Ent row to the API shape.
func toExecutionResponse(exec *ent.Execution) executionResponse {
	resp := executionResponse{
		JobID:          exec.JobID,
		Status:         effectiveStatus(exec),
		RunName:        exec.RunName,
		GroupID:        exec.GroupID,
		CreatedByEmail: exec.CreatedByEmail,
		Inputs:         exec.Inputs,
		Result:         exec.Result,
		PartialResults: exec.PartialResults,
		CreatedAt:      exec.CreatedAt,
		StartedAt:      exec.StartedAt,
		CompletedAt:    exec.CompletedAt,
	}
	if exec.Error != nil {
		resp.Error = *exec.Error
	}
	if exec.StopReason != nil {
		resp.StopReason = *exec.StopReason
	}
	return resp
}

// executionListResponse is a page of executions.
type executionListResponse struct {
	Executions []executionResponse `json:"executions"`
	TotalCount int                 `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// traceResponse is the API view of one trace row.
type traceResponse struct {
	ID        int                    `json:"id"`
	JobID     string                 `json:"job_id"`
	EventType string                 `json:"event_type"`
	Source    string                 `json:"event_source"`
	Context   string                 `json:"event_context,omitempty"`
	Output    string                 `json:"output,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// logResponse is the API view of one log line.
type logResponse struct {
	ID        int       `json:"id"`
	JobID     string    `json:"job_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
