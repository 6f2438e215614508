// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/kasal-project/kasal/pkg/config"
	"github.com/kasal-project/kasal/pkg/services"
)

// Service periodically enforces retention policies:
//   - Fails pending executions no executor ever picked up
//   - Purges trace rows and forwarded log lines past their retention window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	cfg        config.RetentionConfig
	executions *services.ExecutionService
	traces     *services.TraceService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg config.RetentionConfig, executions *services.ExecutionService, traces *services.TraceService) *Service {
	return &Service{
		cfg:        cfg,
		executions: executions,
		traces:     traces,
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"stale_pending_after", s.cfg.StalePendingAfter,
		"trace_retention_days", s.cfg.TraceRetentionDays,
		"log_retention_days", s.cfg.LogRetentionDays,
		"interval", s.cfg.SweepInterval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.failStalePending(ctx)
	s.purgeTraces(ctx)
	s.purgeLogs(ctx)
}

func (s *Service) failStalePending(ctx context.Context) {
	if s.cfg.StalePendingAfter <= 0 {
		return
	}
	count, err := s.executions.FailStalePending(ctx, s.cfg.StalePendingAfter)
	if err != nil {
		slog.Error("Retention: stale pending sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: failed stale pending executions", "count", count)
	}
}

func (s *Service) purgeTraces(ctx context.Context) {
	if s.cfg.TraceRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.cfg.TraceRetentionDays)
	count, err := s.traces.PurgeTracesBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: trace purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old traces", "count", count)
	}
}

func (s *Service) purgeLogs(ctx context.Context) {
	if s.cfg.LogRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.cfg.LogRetentionDays)
	count, err := s.traces.PurgeLogsBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: log purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old logs", "count", count)
	}
}
