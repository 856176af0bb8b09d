package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eshu1234m/resume-analyzer-app/internal/analyses"
	"github.com/eshu1234m/resume-analyzer-app/internal/shared/config"
	"github.com/eshu1234m/resume-analyzer-app/internal/shared/server/middleware"
	"github.com/eshu1234m/resume-analyzer-app/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router needs.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.AnalysisHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
