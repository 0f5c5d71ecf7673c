package server

import (
	"errors"
	"net/http"

	signupdomain "github.com/ambienthq/ambient/internal/signup/domain"
	tenantdomain "github.com/ambienthq/ambient/internal/tenant/domain"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrNotFound             = errors.New("not_found")
	ErrInvalidRequest       = errors.New("invalid_request")
	ErrTenantHeaderRequired = errors.New("tenant_header_required")
)

// ErrorHandlingMiddleware maps domain errors collected on the context to
// sanitized JSON responses. Storage error content never reaches callers.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case errors.Is(err, signupdomain.ErrInvalidEmail):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "invalid email format",
		}
	case errors.Is(err, signupdomain.ErrPublicEmailDomain):
		return http.StatusBadRequest, errorPayload{
			Type:    "policy_rejected",
			Message: "Please use your work email address.",
		}
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "invalid request",
		}
	case errors.Is(err, ErrTenantHeaderRequired),
		errors.Is(err, tenantdomain.ErrInvalidIdentifier):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "X-Tenant-ID header required",
		}
	case errors.Is(err, ErrNotFound),
		errors.Is(err, tenantdomain.ErrTenantNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

// classifyErrorForLog feeds the request logger; it reuses the response
// mapping so log labels and payloads stay consistent.
func classifyErrorForLog(err error) (string, string) {
	_, payload := mapError(err)
	return payload.Type, err.Error()
}
