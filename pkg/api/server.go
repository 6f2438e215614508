// Package api exposes the HTTP and WebSocket surface: a thin gin layer that
// resolves tenant identity, validates requests, and delegates to the services.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kasal-project/kasal/pkg/config"
	"github.com/kasal-project/kasal/pkg/crew"
	"github.com/kasal-project/kasal/pkg/database"
	"github.com/kasal-project/kasal/pkg/events"
	"github.com/kasal-project/kasal/pkg/runner"
	"github.com/kasal-project/kasal/pkg/services"
)

// Dependencies carries everything the server routes to.
type Dependencies struct {
	DB          *database.Client
	Groups      *services.GroupService
	Executions  *services.ExecutionService
	Stops       *services.StopController
	Traces      *services.TraceService
	Engines     *services.EngineService
	Resolver    *crew.Resolver
	Pool        *runner.Pool
	ConnManager *events.ConnectionManager
}

// Server is the HTTP/WebSocket front of the service.
type Server struct {
	cfg config.ServerConfig

	db          *database.Client
	groups      *services.GroupService
	executions  *services.ExecutionService
	stops       *services.StopController
	traces      *services.TraceService
	engines     *services.EngineService
	resolver    *crew.Resolver
	pool        *runner.Pool
	connManager *events.ConnectionManager

	httpServer *http.Server
}

// NewServer wires the routes. Call Start to begin serving.
func NewServer(cfg config.ServerConfig, deps Dependencies) *Server {
	s := &Server{
		cfg:         cfg,
		db:          deps.DB,
		groups:      deps.Groups,
		executions:  deps.Executions,
		stops:       deps.Stops,
		traces:      deps.Traces,
		engines:     deps.Engines,
		resolver:    deps.Resolver,
		pool:        deps.Pool,
		connManager: deps.ConnManager,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders())

	router.GET("/health", s.health)

	authed := router.Group("/", groupContext(s.groups))
	{
		v1 := authed.Group("/api/v1")
		v1.POST("/executions", s.createExecution)
		v1.GET("/executions", s.listExecutions)
		v1.GET("/executions/:id", s.getExecution)
		v1.DELETE("/executions/:id", s.deleteExecution)
		v1.POST("/executions/:id/stop", s.stopExecution)
		v1.GET("/executions/:id/traces", s.listTraces)
		v1.GET("/executions/:id/logs", s.listLogs)

		authed.GET("/ws", s.handleWebSocket)
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	slog.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
