package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/app"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/bootstrap"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/config"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := bootstrap.NewLogger(cfg)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunConsumer(ctx, cfg, logger); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
