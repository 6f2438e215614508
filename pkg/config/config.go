// Package config loads service configuration from the environment. Crew and
// flow definitions arrive per-request through the API; only service-level
// settings live here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ServerConfig holds the HTTP/WebSocket surface settings.
type ServerConfig struct {
	Host string
	Port int

	// WriteTimeout bounds one WebSocket frame send.
	WriteTimeout time.Duration
}

// ExecutorConfig tunes the process pool.
type ExecutorConfig struct {
	// PodID identifies this node; stamped on running executions so startup
	// orphan cleanup can find rows this node abandoned.
	PodID string

	// MaxConcurrent caps live worker processes on this node.
	MaxConcurrent int

	// DefaultTimeout applies when a submission carries no timeout.
	DefaultTimeout time.Duration

	// GracePeriod is the TERM → KILL window on graceful termination.
	GracePeriod time.Duration

	// LogDir is where workers write their per-crew log files.
	LogDir string
}

// PipelineConfig tunes the trace/log queues and writers.
type PipelineConfig struct {
	TraceQueueCapacity int
	LogQueueCapacity   int
	TraceBatchSize     int
	LogBatchSize       int
	PollTimeout        time.Duration

	// OrphanPolicy: "wait", "create" or "drop" — what the trace writer does
	// with events whose job row does not exist yet.
	OrphanPolicy     string
	OrphanRetries    int
	OrphanRetryDelay time.Duration
}

// LLMConfig points at the LLM sidecar.
type LLMConfig struct {
	Addr string
}

// RetentionConfig tunes the background retention sweeper.
// A zero retention disables that sweep.
type RetentionConfig struct {
	// StalePendingAfter fails pending rows never picked up by an executor.
	StalePendingAfter time.Duration

	// TraceRetentionDays purges trace rows older than this.
	TraceRetentionDays int

	// LogRetentionDays purges forwarded log lines older than this.
	LogRetentionDays int

	// SweepInterval is the pause between sweeps.
	SweepInterval time.Duration
}

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig
	Executor  ExecutorConfig
	Pipeline  PipelineConfig
	LLM       LLMConfig
	Retention RetentionConfig
}

// Load reads configuration from environment variables, applying defaults
// for everything unset.
func Load() (*Config, error) {
	port, err := intEnv("PORT", 8000)
	if err != nil {
		return nil, err
	}
	maxConcurrent, err := intEnv("EXECUTOR_MAX_CONCURRENT", 4)
	if err != nil {
		return nil, err
	}

	podID := os.Getenv("POD_ID")
	if podID == "" {
		if hostname, err := os.Hostname(); err == nil {
			podID = hostname
		} else {
			podID = "kasal"
		}
	}

	traceCap, err := intEnv("TRACE_QUEUE_CAPACITY", 1000)
	if err != nil {
		return nil, err
	}
	logCap, err := intEnv("LOG_QUEUE_CAPACITY", 2000)
	if err != nil {
		return nil, err
	}

	traceRetention, err := intEnv("RETENTION_TRACE_DAYS", 30)
	if err != nil {
		return nil, err
	}
	logRetention, err := intEnv("RETENTION_LOG_DAYS", 14)
	if err != nil {
		return nil, err
	}

	orphanPolicy := getEnvOrDefault("TRACE_ORPHAN_POLICY", "wait")
	switch orphanPolicy {
	case "wait", "create", "drop":
	default:
		return nil, fmt.Errorf("invalid TRACE_ORPHAN_POLICY %q (want wait, create or drop)", orphanPolicy)
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("HOST", "0.0.0.0"),
			Port:         port,
			WriteTimeout: durationEnv("WS_WRITE_TIMEOUT", 10*time.Second),
		},
		Executor: ExecutorConfig{
			PodID:          podID,
			MaxConcurrent:  maxConcurrent,
			DefaultTimeout: durationEnv("EXECUTOR_TIMEOUT", 30*time.Minute),
			GracePeriod:    durationEnv("EXECUTOR_GRACE_PERIOD", 5*time.Second),
			LogDir:         getEnvOrDefault("EXECUTOR_LOG_DIR", "logs/crews"),
		},
		Pipeline: PipelineConfig{
			TraceQueueCapacity: traceCap,
			LogQueueCapacity:   logCap,
			TraceBatchSize:     10,
			LogBatchSize:       50,
			PollTimeout:        100 * time.Millisecond,
			OrphanPolicy:       orphanPolicy,
			OrphanRetries:      3,
			OrphanRetryDelay:   200 * time.Millisecond,
		},
		LLM: LLMConfig{
			Addr: getEnvOrDefault("LLM_SERVICE_ADDR", "localhost:50051"),
		},
		Retention: RetentionConfig{
			StalePendingAfter:  durationEnv("RETENTION_STALE_PENDING_AFTER", time.Hour),
			TraceRetentionDays: traceRetention,
			LogRetentionDays:   logRetention,
			SweepInterval:      durationEnv("RETENTION_SWEEP_INTERVAL", time.Hour),
		},
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intEnv(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
