package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portal-server/config"
	"portal-server/di"
	"portal-server/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logger.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to build container", zap.Error(err))
	}

	logger.Info("warming portal cache")
	if err := container.PortalRefresherService.RefreshPortalData(ctx, time.Now()); err != nil {
		logger.Warn("initial refresh failed", zap.Error(err))
	}
	container.PortalRefresherService.StartPeriodicJob(ctx, cfg.RefreshInterval)

	if err := container.PortalHttpServer.Start(ctx); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
