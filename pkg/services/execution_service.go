package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/pkg/groupctx"
)

// ExecutionService is the authoritative status store for job lifecycle
// records. It is the only component permitted to transition an Execution row.
//
// Transitions are conditional updates (compare-and-set on status), so
// concurrent writers resolve by first-writer-wins; losers observe a no-op.
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService.
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// CreateExecutionRequest carries the validated inputs for a new job record.
type CreateExecutionRequest struct {
	JobID   string
	RunName string
	Inputs  map[string]interface{}
}

// ExecutionFilters narrows List results. Zero values mean "no filter".
type ExecutionFilters struct {
	Status        string
	RunName       string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Limit         int
	Offset        int
}

// ExecutionListResult is a page of executions plus the unpaginated count.
type ExecutionListResult struct {
	Executions []*ent.Execution
	TotalCount int
	Limit      int
	Offset     int
}

// Create inserts a pending Execution stamped with the caller's group.
// Returns ErrAlreadyExists if (group_id, job_id) collides.
func (s *ExecutionService) Create(httpCtx context.Context, req CreateExecutionRequest, gc *groupctx.GroupContext) (*ent.Execution, error) {
	if req.JobID == "" {
		return nil, NewValidationError("job_id", "required")
	}
	if !gc.IsValid() {
		return nil, ErrSecurityViolation
	}

	runName := req.RunName
	if runName == "" {
		runName = defaultRunName(req.JobID)
	}

	// Background context with timeout: the row must outlive a cancelled request.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Execution.Create().
		SetJobID(req.JobID).
		SetGroupID(gc.PrimaryGroupID()).
		SetGroupEmail(gc.GroupEmail).
		SetStatus(execution.StatusPending).
		SetRunName(runName).
		SetCreatedByEmail(gc.GroupEmail)
	if req.Inputs != nil {
		builder.SetInputs(req.Inputs)
	}

	exec, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}
	return exec, nil
}

// MarkRunning transitions pending → running, sets started_at and stamps the
// pod that owns the worker (for startup orphan cleanup).
// Idempotent: a job already running is a no-op. Any other state is rejected.
//
// job_id is only unique per group, so every mutation predicate carries the
// owning group — a bare job_id match could flip another tenant's row.
func (s *ExecutionService) MarkRunning(ctx context.Context, groupID, jobID, podID string) error {
	if groupID == "" {
		return ErrSecurityViolation
	}
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Execution.Update().
		Where(
			execution.GroupIDEQ(groupID),
			execution.JobIDEQ(jobID),
			execution.StatusEQ(execution.StatusPending),
		).
		SetStatus(execution.StatusRunning).
		SetStartedAt(time.Now())
	if podID != "" {
		update.SetPodID(podID)
	}
	n, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark execution running: %w", err)
	}
	if n > 0 {
		return nil
	}

	cur, err := s.statusOf(writeCtx, groupID, jobID)
	if err != nil {
		return err
	}
	if cur == execution.StatusRunning {
		return nil
	}
	return fmt.Errorf("%w: %s → running", ErrInvalidTransition, cur)
}

// TerminalPayload carries the outcome data written on the terminal transition.
type TerminalPayload struct {
	Result         map[string]interface{}
	Error          string
	PartialResults []map[string]interface{}
}

// terminal reports whether a status accepts no further writes.
func terminal(st execution.Status) bool {
	switch st {
	case execution.StatusCompleted, execution.StatusFailed, execution.StatusStopped:
		return true
	}
	return false
}

// MarkTerminal transitions running → {completed, failed, stopped}, setting
// completed_at exactly once. Racing callers resolve first-writer-wins: the
// loser gets (false, nil) when the job is already terminal. A transition from
// pending is rejected with ErrInvalidTransition.
func (s *ExecutionService) MarkTerminal(ctx context.Context, groupID, jobID string, outcome execution.Status, payload TerminalPayload) (bool, error) {
	if !terminal(outcome) {
		return false, fmt.Errorf("%w: %s is not a terminal status", ErrInvalidTransition, outcome)
	}
	if groupID == "" {
		return false, ErrSecurityViolation
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// pending → failed is legal: a job that never got a worker (submission
	// refused, spawn failure) fails without ever running.
	from := []execution.Status{execution.StatusRunning}
	if outcome == execution.StatusFailed {
		from = append(from, execution.StatusPending)
	}
	update := s.client.Execution.Update().
		Where(
			execution.GroupIDEQ(groupID),
			execution.JobIDEQ(jobID),
			execution.StatusIn(from...),
		).
		SetStatus(outcome).
		SetIsStopping(false).
		SetCompletedAt(time.Now())
	if payload.Result != nil {
		update.SetResult(payload.Result)
	}
	if payload.Error != "" {
		update.SetError(payload.Error)
	}
	if payload.PartialResults != nil {
		update.SetPartialResults(payload.PartialResults)
	}

	n, err := update.Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to mark execution terminal: %w", err)
	}
	if n > 0 {
		return true, nil
	}

	cur, err := s.statusOf(writeCtx, groupID, jobID)
	if err != nil {
		return false, err
	}
	if terminal(cur) {
		// Lost the race — another writer recorded the terminal state first.
		return false, nil
	}
	return false, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, cur, outcome)
}

// RequestStop flags a running job as stopping and records the reason.
// Idempotent: repeated calls on a stopping job are no-ops. Returns
// ErrInvalidTransition when the job is not running.
func (s *ExecutionService) RequestStop(ctx context.Context, groupID, jobID, reason string) error {
	if groupID == "" {
		return ErrSecurityViolation
	}
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Execution.Update().
		Where(
			execution.GroupIDEQ(groupID),
			execution.JobIDEQ(jobID),
			execution.StatusEQ(execution.StatusRunning),
		).
		SetIsStopping(true)
	if reason != "" {
		update.SetStopReason(reason)
	}

	n, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to request stop: %w", err)
	}
	if n > 0 {
		return nil
	}

	cur, err := s.statusOf(writeCtx, groupID, jobID)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: cannot stop a %s execution", ErrInvalidTransition, cur)
}

// RecordPartialResults stores results the worker posted before termination.
func (s *ExecutionService) RecordPartialResults(ctx context.Context, groupID, jobID string, partial []map[string]interface{}) error {
	if len(partial) == 0 {
		return nil
	}
	if groupID == "" {
		return ErrSecurityViolation
	}
	err := s.client.Execution.Update().
		Where(
			execution.GroupIDEQ(groupID),
			execution.JobIDEQ(jobID),
		).
		SetPartialResults(partial).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record partial results: %w", err)
	}
	return nil
}

// Get retrieves a job by id, filtered by the caller's groups.
func (s *ExecutionService) Get(ctx context.Context, jobID string, groupIDs []string) (*ent.Execution, error) {
	if len(groupIDs) == 0 {
		return nil, ErrSecurityViolation
	}
	exec, err := s.client.Execution.Query().
		Where(
			execution.JobIDEQ(jobID),
			execution.GroupIDIn(groupIDs...),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return exec, nil
}

// List returns executions visible to the caller's groups, newest first.
func (s *ExecutionService) List(ctx context.Context, groupIDs []string, filters ExecutionFilters) (*ExecutionListResult, error) {
	if len(groupIDs) == 0 {
		return nil, ErrSecurityViolation
	}

	query := s.client.Execution.Query().
		Where(execution.GroupIDIn(groupIDs...))
	if filters.Status != "" {
		query = query.Where(execution.StatusEQ(execution.Status(filters.Status)))
	}
	if filters.RunName != "" {
		query = query.Where(execution.RunNameEQ(filters.RunName))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(execution.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(execution.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count executions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	execs, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(execution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}

	return &ExecutionListResult{
		Executions: execs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// OwnerGroups returns which of the caller's groups own a row with this
// job_id. Used by the WebSocket broadcaster to authorize subscriptions and
// key them per tenant: the same job_id can exist in several of the caller's
// groups, and each is a distinct execution.
func (s *ExecutionService) OwnerGroups(ctx context.Context, jobID string, groupIDs []string) ([]string, error) {
	if len(groupIDs) == 0 {
		return nil, ErrSecurityViolation
	}
	rows, err := s.client.Execution.Query().
		Where(
			execution.JobIDEQ(jobID),
			execution.GroupIDIn(groupIDs...),
		).
		Select(execution.FieldGroupID).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve job owners: %w", err)
	}
	owners := make([]string, 0, len(rows))
	for _, row := range rows {
		owners = append(owners, row.GroupID)
	}
	return owners, nil
}

// Exists reports whether the group owns a record for this job. Only the
// trace writer may use this — every caller-facing read goes through Get/List
// with a full group filter.
func (s *ExecutionService) Exists(ctx context.Context, groupID, jobID string) (bool, error) {
	if groupID == "" {
		return false, ErrSecurityViolation
	}
	return s.client.Execution.Query().
		Where(
			execution.GroupIDEQ(groupID),
			execution.JobIDEQ(jobID),
		).
		Exist(ctx)
}

// Delete removes an execution and its traces and logs in one transaction.
// Admin-only; traces and logs are deleted only as a batch under their parent.
func (s *ExecutionService) Delete(ctx context.Context, jobID string, gc *groupctx.GroupContext) error {
	if !gc.IsValid() {
		return ErrSecurityViolation
	}
	if gc.HighestRole != groupctx.RoleAdmin {
		return ErrForbidden
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.Execution.Delete().
		Where(
			execution.JobIDEQ(jobID),
			execution.GroupIDIn(gc.GroupIDs...),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete execution: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	// The cascade carries the same group filter as the parent delete: another
	// tenant's traces under a colliding job_id are not ours to purge.
	if err := deleteTraceRows(ctx, tx, jobID, gc.GroupIDs); err != nil {
		return err
	}
	if err := deleteLogRows(ctx, tx, jobID, gc.GroupIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

// FailStalePending fails pending rows older than the cutoff. A row that sat
// pending that long was never picked up by an executor — submission crashed
// between the insert and the spawn. Returns the number of rows failed.
func (s *ExecutionService) FailStalePending(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	n, err := s.client.Execution.Update().
		Where(
			execution.StatusEQ(execution.StatusPending),
			execution.CreatedAtLT(cutoff),
		).
		SetStatus(execution.StatusFailed).
		SetCompletedAt(time.Now()).
		SetError("Stale: never picked up by an executor").
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fail stale pending executions: %w", err)
	}
	return n, nil
}

// statusOf reads the current status, mapping a missing row to ErrNotFound.
func (s *ExecutionService) statusOf(ctx context.Context, groupID, jobID string) (execution.Status, error) {
	exec, err := s.client.Execution.Query().
		Where(
			execution.GroupIDEQ(groupID),
			execution.JobIDEQ(jobID),
		).
		Select(execution.FieldStatus).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read execution status: %w", err)
	}
	return exec.Status, nil
}

// defaultRunName derives a display name when the caller supplied none.
func defaultRunName(jobID string) string {
	short := jobID
	if len(short) > 8 {
		short = short[:8]
	}
	return "run-" + short
}
