package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kasal-project/kasal/pkg/services"
)

// errorResponse is the JSON body for all non-2xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// mapServiceError translates service-layer errors to HTTP responses.
// Unknown errors become opaque 500s; details go to the log, not the client.
func mapServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Error()})
	case errors.Is(err, services.ErrInvalidConfig):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrSecurityViolation):
		// Unauthorized resources are indistinguishable from missing ones at
		// the WebSocket layer; the REST layer is allowed to say forbidden.
		c.JSON(http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorResponse{Error: "already exists"})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrOverloaded):
		c.JSON(http.StatusTooManyRequests, errorResponse{Error: err.Error()})
	default:
		slog.Error("Unhandled service error", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
