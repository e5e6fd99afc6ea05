package app

import (
	"context"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/config"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/events"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/messaging/kafka/consumer"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/profile"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/connection"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/tenant"

	"go.uber.org/zap"
)

const profileCacheGroup = "carnet-profile-cache"

// RunConsumer warms the public profile cache from lifecycle events until ctx
// is cancelled.
func RunConsumer(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if len(cfg.Kafka.Brokers) == 0 {
		return errMissingBrokers
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, logger)
	if err != nil {
		return err
	}
	defer closeDB(gormDB)

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.DB.MaxRetries, logger)
	if err != nil {
		return err
	}
	if rdb == nil {
		return errMissingRedis
	}
	defer rdb.Close()

	// the consumer only reads profiles, so it gets no outbox
	profileService := profile.NewService(gormDB, profile.NewRepository(gormDB), tenant.NewRepository(gormDB), nil, rdb, logger)

	reader := connection.NewKafkaReader(cfg.Kafka.Brokers, events.ProfileLifecycleTopic, profileCacheGroup)
	defer reader.Close()

	consumer.ConsumeProfileLifecycle(ctx, reader, profileService, logger)

	log.Info("consumer shut down")
	return nil
}
