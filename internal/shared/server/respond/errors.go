package respond

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eshu1234m/resume-analyzer-app/internal/shared/telemetry"
)

// ErrorResponse is the error body returned to callers. The message is the
// only user-facing detail; full diagnostics stay in the server log.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a standardized error response and logs the failure with
// request context.
func Error(c *gin.Context, status int, message string, fields ...zap.Field) {
	logFields := append([]zap.Field{
		zap.Int("status", status),
		zap.String("message", message),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("request_id", c.GetString("requestId")),
	}, fields...)
	telemetry.Error("http.error", logFields...)

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
