package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/app"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/bootstrap"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/config"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"

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

	apperror.Init()

	application, err := app.BuildApp(cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.RunHTTPServer(
		ctx,
		application.Router,
		bootstrap.ServerConfigFrom(cfg),
		bootstrap.NewStdoutAuditLogger(logger),
		logger,
	); err != nil {
		logger.Error("http server failed", zap.Error(err))
	}
}
