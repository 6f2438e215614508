package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/executionlog"
	"github.com/kasal-project/kasal/ent/executiontrace"
)

// TraceService reads persisted traces and logs for the API. Writes go through
// the trace and log writers only — this service never inserts.
type TraceService struct {
	client *ent.Client
}

// NewTraceService creates a new TraceService.
func NewTraceService(client *ent.Client) *TraceService {
	return &TraceService{client: client}
}

// ListTraces returns a job's trace rows in insertion order, group-filtered.
func (s *TraceService) ListTraces(ctx context.Context, jobID string, groupIDs []string, limit, offset int) ([]*ent.ExecutionTrace, error) {
	if len(groupIDs) == 0 {
		return nil, ErrSecurityViolation
	}
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	traces, err := s.client.ExecutionTrace.Query().
		Where(
			executiontrace.JobIDEQ(jobID),
			executiontrace.GroupIDIn(groupIDs...),
		).
		Order(ent.Asc(executiontrace.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list traces: %w", err)
	}
	return traces, nil
}

// ListLogs returns a job's log lines in timestamp order, group-filtered.
func (s *TraceService) ListLogs(ctx context.Context, jobID string, groupIDs []string, limit, offset int) ([]*ent.ExecutionLog, error) {
	if len(groupIDs) == 0 {
		return nil, ErrSecurityViolation
	}
	if limit <= 0 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}
	logs, err := s.client.ExecutionLog.Query().
		Where(
			executionlog.ExecutionIDEQ(jobID),
			executionlog.GroupIDIn(groupIDs...),
		).
		Order(ent.Asc(executionlog.FieldTimestamp), ent.Asc(executionlog.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return logs, nil
}

// PurgeTracesBefore deletes trace rows older than the cutoff, any group.
// Retention only — caller-facing deletes go through ExecutionService.Delete.
func (s *TraceService) PurgeTracesBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.ExecutionTrace.Delete().
		Where(executiontrace.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge traces: %w", err)
	}
	return n, nil
}

// PurgeLogsBefore deletes log lines older than the cutoff, any group.
func (s *TraceService) PurgeLogsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.ExecutionLog.Delete().
		Where(executionlog.TimestampLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge logs: %w", err)
	}
	return n, nil
}

// deleteTraceRows removes a job's trace rows inside an open transaction,
// scoped to the deleting tenant's groups.
func deleteTraceRows(ctx context.Context, tx *ent.Tx, jobID string, groupIDs []string) error {
	if _, err := tx.ExecutionTrace.Delete().
		Where(
			executiontrace.JobIDEQ(jobID),
			executiontrace.GroupIDIn(groupIDs...),
		).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete traces: %w", err)
	}
	return nil
}

// deleteLogRows removes a job's log rows inside an open transaction, scoped
// to the deleting tenant's groups.
func deleteLogRows(ctx context.Context, tx *ent.Tx, jobID string, groupIDs []string) error {
	if _, err := tx.ExecutionLog.Delete().
		Where(
			executionlog.ExecutionIDEQ(jobID),
			executionlog.GroupIDIn(groupIDs...),
		).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete logs: %w", err)
	}
	return nil
}
