package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/kasal-project/kasal/pkg/services"
	"github.com/kasal-project/kasal/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probeRouter wires the identity middleware in front of a handler that
// echoes the resolved group context.
func probeRouter(t *testing.T) *gin.Engine {
	client, _ := util.SetupTestDatabase(t)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(securityHeaders())
	r.GET("/probe", groupContext(services.NewGroupService(client)), func(c *gin.Context) {
		gc := mustGroupContext(c)
		require.NotNil(t, groupctx.FromContext(c.Request.Context()),
			"the group context must also ride the request context")
		c.JSON(http.StatusOK, gin.H{
			"primary": gc.PrimaryGroupID(),
			"email":   gc.GroupEmail,
			"token":   gc.AccessToken,
		})
	})
	return r
}

func TestGroupContextMiddleware(t *testing.T) {
	r := probeRouter(t)

	t.Run("missing email is unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	})

	t.Run("forwarded identity resolves a personal workspace", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderForwardedEmail, "alice@example.com")
		req.Header.Set(HeaderForwardedToken, "tok-proxy")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"primary":"user_alice_example_com"`)
		assert.Contains(t, w.Body.String(), `"token":"tok-proxy"`)
	})

	t.Run("bearer token is the fallback", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderForwardedEmail, "alice@example.com")
		req.Header.Set("Authorization", "Bearer tok-direct")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"tok-direct"`)
	})

	t.Run("spoofed personal workspace is forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderForwardedEmail, "alice@example.com")
		req.Header.Set(HeaderGroupSelector, "user_mallory_example_com")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMapServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", services.NewValidationError("job_id", "required"), http.StatusBadRequest},
		{"invalid config", services.ErrInvalidConfig, http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"security violation", services.ErrSecurityViolation, http.StatusForbidden},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"invalid transition", services.ErrInvalidTransition, http.StatusConflict},
		{"overloaded", services.ErrOverloaded, http.StatusTooManyRequests},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			mapServiceError(c, tt.err)
			assert.Equal(t, tt.code, w.Code)
		})
	}

	t.Run("internal errors are opaque", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		mapServiceError(c, errors.New("password=hunter2"))
		assert.NotContains(t, w.Body.String(), "hunter2")
	})
}
