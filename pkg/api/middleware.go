package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/kasal-project/kasal/pkg/services"
)

// Identity headers set by the auth proxy in front of the service.
const (
	HeaderForwardedEmail = "X-Forwarded-Email"
	HeaderForwardedToken = "X-Forwarded-Access-Token"
	HeaderGroupSelector  = "X-Kasal-Group"
)

// gcContextKey is the gin context key for the resolved GroupContext.
const gcContextKey = "kasal.groupctx"

// securityHeaders sets defensive response headers on every request.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}

// groupContext resolves forwarded identity headers into a GroupContext and
// binds it to both the gin context and the request's ambient context.
// Requests without an email header are rejected: there is no anonymous access.
func groupContext(groups *services.GroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetHeader(HeaderForwardedEmail)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				errorResponse{Error: "missing identity header"})
			return
		}

		token := c.GetHeader(HeaderForwardedToken)
		if token == "" {
			// Fall back to a bearer token for direct (non-proxied) callers.
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		gc, err := groups.Resolve(c.Request.Context(), email, token, c.GetHeader(HeaderGroupSelector))
		if err != nil {
			mapServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(gcContextKey, gc)
		c.Request = c.Request.WithContext(groupctx.WithContext(c.Request.Context(), gc))
		c.Next()
	}
}

// mustGroupContext returns the GroupContext bound by the middleware.
// Handlers behind groupContext() can rely on it being present.
func mustGroupContext(c *gin.Context) *groupctx.GroupContext {
	gc, _ := c.MustGet(gcContextKey).(*groupctx.GroupContext)
	return gc
}
