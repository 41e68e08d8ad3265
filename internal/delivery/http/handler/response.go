package handler

import (
	"errors"
	"net/http"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// respondError maps a domain error kind to an HTTP status. Anything not
// carrying a known kind is reported as an internal error without leaking
// the underlying message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCode):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired code"})
	case errors.Is(err, domain.ErrNotParticipant):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "not a participant of this match"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrPrerequisiteMissing):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "service temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return "", false
	}
	return userID.(string), true
}
