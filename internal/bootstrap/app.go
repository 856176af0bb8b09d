package bootstrap

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eshu1234m/resume-analyzer-app/internal/analyses"
	"github.com/eshu1234m/resume-analyzer-app/internal/llm"
	"github.com/eshu1234m/resume-analyzer-app/internal/llm/gemini"
	"github.com/eshu1234m/resume-analyzer-app/internal/shared/config"
	"github.com/eshu1234m/resume-analyzer-app/internal/shared/server"
	"github.com/eshu1234m/resume-analyzer-app/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Generator       llm.Generator
	AnalysesService *analyses.Service
	AnalysesHandler *analyses.Handler
}

// Build wires dependencies and the router. A missing or invalid Gemini
// credential does not fail the build; the server starts and every analysis
// request fails at the gateway step instead.
func Build(cfg config.Config) (*App, error) {
	app := &App{Config: cfg}

	app.Generator = buildGenerator(context.Background(), cfg)
	app.AnalysesService = &analyses.Service{Generator: app.Generator}
	app.AnalysesHandler = analyses.NewHandler(app.AnalysesService, cfg.MaxUploadBytes)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: app.AnalysesHandler,
	})

	return app, nil
}

func buildGenerator(ctx context.Context, cfg config.Config) llm.Generator {
	client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, telemetry.L())
	if err != nil {
		telemetry.Error("bootstrap: gemini client unavailable, generation requests will fail",
			zap.Error(err))
		return llm.UnconfiguredGenerator{Reason: err.Error()}
	}
	telemetry.Info("bootstrap: gemini client ready", zap.String("model", client.Model()))
	return client
}
