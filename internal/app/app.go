package app

import (
	"errors"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/config"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

// BuildApp connects Postgres and Redis and returns the fully routed engine.
func BuildApp(cfg config.Config, logger *zap.Logger) (*App, error) {
	db, err := connection.ConnectGORMWithRetry(cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.DB.MaxRetries, logger)
	if err != nil {
		closeDB(db)
		return nil, err
	}

	router, err := NewRouter(Deps{
		Config:   cfg,
		DB:       db,
		Redis:    rdb,
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
	})
	if err != nil {
		closeDB(db)
		return nil, err
	}

	return &App{Router: router, DB: db, Redis: rdb}, nil
}

func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
