// Kasal execution core — runs AI agent crews and flows as isolated worker
// processes behind an HTTP/WebSocket API.
//
// The same binary is both the server and the worker: the pool re-executes
// itself with the --worker flag, so the worker entry is dispatched before
// anything server-side initializes.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kasal-project/kasal/pkg/api"
	"github.com/kasal-project/kasal/pkg/cleanup"
	"github.com/kasal-project/kasal/pkg/config"
	"github.com/kasal-project/kasal/pkg/crew"
	"github.com/kasal-project/kasal/pkg/database"
	"github.com/kasal-project/kasal/pkg/events"
	"github.com/kasal-project/kasal/pkg/logs"
	"github.com/kasal-project/kasal/pkg/runner"
	"github.com/kasal-project/kasal/pkg/services"
	"github.com/kasal-project/kasal/pkg/trace"
	"github.com/kasal-project/kasal/pkg/version"
)

func main() {
	// Worker dispatch comes first: a worker process must never touch the
	// database, load server config, or open sockets.
	if len(os.Args) > 1 && os.Args[1] == runner.WorkerFlag {
		os.Exit(runner.RunWorker(os.Stdin, os.Stdout))
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting kasal",
		"version", version.Full(),
		"pod_id", cfg.Executor.PodID,
		"port", cfg.Server.Port,
		"max_concurrent", cfg.Executor.MaxConcurrent)

	ctx := context.Background()

	// Database + migrations
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// One-time startup orphan cleanup: worker processes and rows this pod
	// abandoned in a crash
	runner.KillStrayWorkers()
	if err := runner.CleanupStartupOrphans(ctx, dbClient.Client, cfg.Executor.PodID); err != nil {
		slog.Error("Failed to clean up startup orphans", "error", err)
		// Non-fatal — continue
	}

	// Domain services
	executionService := services.NewExecutionService(dbClient.Client)
	groupService := services.NewGroupService(dbClient.Client)
	traceService := services.NewTraceService(dbClient.Client)
	engineService := services.NewEngineService(dbClient.Client)
	toolService := services.NewToolService(dbClient.Client)
	flowService := services.NewFlowService(dbClient.Client)
	memoryService := services.NewMemoryConfigService(dbClient.Client)
	resolver := crew.NewResolver(toolService, flowService, memoryService)
	slog.Info("Services initialized")

	// WebSocket fanout; subscriptions authorize against execution ownership
	connManager := events.NewConnectionManager(executionService, cfg.Server.WriteTimeout)

	// Trace/log pipeline: bounded queues drained by background writers
	traceQueue := trace.NewQueue(cfg.Pipeline.TraceQueueCapacity)
	logQueue := logs.NewQueue(cfg.Pipeline.LogQueueCapacity)

	traceWriter := trace.NewWriter(traceQueue, dbClient.Client, engineService, connManager, trace.WriterConfig{
		BatchSize:        cfg.Pipeline.TraceBatchSize,
		PollTimeout:      cfg.Pipeline.PollTimeout,
		OrphanPolicy:     trace.OrphanPolicy(cfg.Pipeline.OrphanPolicy),
		OrphanRetries:    cfg.Pipeline.OrphanRetries,
		OrphanRetryDelay: cfg.Pipeline.OrphanRetryDelay,
	})
	traceWriter.Start(ctx)

	logWriter := logs.NewWriter(logQueue, dbClient.Client, connManager, logs.WriterConfig{
		BatchSize:   cfg.Pipeline.LogBatchSize,
		PollTimeout: cfg.Pipeline.PollTimeout,
	})
	logWriter.Start(ctx)
	slog.Info("Trace and log writers started")

	// Process pool
	pool := runner.NewPool(runner.PoolConfig{
		PodID:          cfg.Executor.PodID,
		MaxConcurrent:  cfg.Executor.MaxConcurrent,
		DefaultTimeout: cfg.Executor.DefaultTimeout,
		GracePeriod:    cfg.Executor.GracePeriod,
		LLMAddr:        cfg.LLM.Addr,
		LogDir:         cfg.Executor.LogDir,
	}, executionService, traceQueue, logQueue, connManager)

	stopController := services.NewStopController(executionService, pool)

	// Background retention sweeper
	cleanupService := cleanup.NewService(cfg.Retention, executionService, traceService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// HTTP server
	server := api.NewServer(cfg.Server, api.Dependencies{
		DB:          dbClient,
		Groups:      groupService,
		Executions:  executionService,
		Stops:       stopController,
		Traces:      traceService,
		Engines:     engineService,
		Resolver:    resolver,
		Pool:        pool,
		ConnManager: connManager,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Kasal started", "pod_id", cfg.Executor.PodID)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: stop intake, kill workers, drain queues, then close
	// the database. Writer shutdown drains whatever the workers flushed.
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown incomplete", "error", err)
	}

	pool.Shutdown(shutdownCtx)
	slog.Info("Process pool stopped")

	traceQueue.Close()
	logQueue.Close()
	traceWriter.Stop()
	logWriter.Stop()
	slog.Info("Pipeline drained")

	slog.Info("Shutdown complete")
}
