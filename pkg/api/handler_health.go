package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kasal-project/kasal/pkg/database"
	"github.com/kasal-project/kasal/pkg/version"
)

// health reports service liveness: database reachability plus the executor
// and pipeline snapshot. Unauthenticated — load balancers probe it.
func (s *Server) health(c *gin.Context) {
	dbHealth, err := database.Health(c.Request.Context(), s.db.DB())

	status := http.StatusOK
	overall := "healthy"
	if err != nil {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":   overall,
		"version":  version.Full(),
		"database": dbHealth,
		"executor": s.pool.HealthSnapshot(),
	})
}
