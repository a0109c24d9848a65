package handlers

import (
	"net/http"

	"restaurant/internal/domain"
	"restaurant/internal/http/middleware"
	"restaurant/internal/utils"

	"github.com/gin-gonic/gin"
)

// respondData wraps successful payloads in the standard envelope. Public menu
// and offer routes keep their historical bare payloads; everything else goes
// through here.
func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondError emits the error envelope. The request id travels in the
// X-Request-ID response header, not the body.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RespondDomainError maps service faults to HTTP responses. Validation,
// not-found, conflict, and auth messages are safe to return verbatim; anything
// else is logged with the action name and replaced by a generic message.
func RespondDomainError(c *gin.Context, action string, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, err.Error())
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, err.Error())
	case domain.IsForbidden(err):
		respondError(c, http.StatusForbidden, err.Error())
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", action, "error: "+err.Error())
		respondError(c, http.StatusInternalServerError, "Failed to "+action)
	}
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "request body is required")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
