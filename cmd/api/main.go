package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/eshu1234m/resume-analyzer-app/internal/bootstrap"
	"github.com/eshu1234m/resume-analyzer-app/internal/shared/config"
	"github.com/eshu1234m/resume-analyzer-app/internal/shared/server"
	"github.com/eshu1234m/resume-analyzer-app/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	if err := telemetry.Init(cfg.Env); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer telemetry.Sync()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		telemetry.Error("bootstrap failed", zap.Error(err))
		telemetry.Sync()
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("starting API server", zap.String("addr", addr), zap.String("env", cfg.Env))

	if err := app.Router.Run(addr); err != nil {
		telemetry.Error("server error", zap.Error(err))
		telemetry.Sync()
		log.Fatalf("server: %v", err)
	}
}
