package bootstrap

import (
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/config"

	"go.uber.org/zap"
)

// NewLogger returns a JSON production logger when APP_ENV=production and a
// console development logger otherwise.
func NewLogger(cfg config.Config) *zap.Logger {
	build := zap.NewDevelopment
	if cfg.IsProduction() {
		build = zap.NewProduction
	}

	logger, err := build()
	if err != nil {
		panic(err)
	}
	return logger.With(zap.String("env", cfg.AppEnv))
}
