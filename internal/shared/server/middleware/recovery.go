package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eshu1234m/resume-analyzer-app/internal/shared/server/respond"
	"github.com/eshu1234m/resume-analyzer-app/internal/shared/telemetry"
)

// Recovery recovers from panics and returns a standardized error response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				telemetry.Error("panic",
					zap.String("request_id", RequestIDFromContext(c)),
					zap.String("error", fmt.Sprintf("%v", rec)),
					zap.String("stack", string(debug.Stack())),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)
				respond.Error(c, http.StatusInternalServerError, "An unexpected server error occurred.")
				c.Abort()
			}
		}()
		c.Next()
	}
}
