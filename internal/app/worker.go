package app

import (
	"context"
	"time"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/config"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/messaging/kafka"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/messaging/kafka/producer"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/connection"

	"go.uber.org/zap"
)

const outboxPollInterval = 3 * time.Second

// RunWorker relays outbox rows to Kafka until ctx is cancelled.
func RunWorker(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, logger)
	if err != nil {
		return err
	}
	defer closeDB(gormDB)

	writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Brokers, cfg.DB.MaxRetries, logger)
	if err != nil {
		return err
	}
	defer writer.Close()

	producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(gormDB), writer, logger, outboxPollInterval)

	log.Info("worker shut down")
	return nil
}
