package consumer

import (
	"context"
	"encoding/json"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// CacheWarmer loads a published profile into the public cache.
type CacheWarmer interface {
	WarmPublic(ctx context.Context, slug string) error
}

func ConsumeProfileLifecycle(
	ctx context.Context,
	reader MessageReader,
	warmer CacheWarmer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.profile_lifecycle")
	log.Info("profile lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("profile lifecycle consumer stopped")
				return
			}
			log.Error("fetch profile lifecycle message failed", zap.Error(err))
			continue
		}

		handleMessage(ctx, reader, warmer, msg, log)
	}
}

func handleMessage(ctx context.Context, reader MessageReader, warmer CacheWarmer, msg kafkago.Message, log *zap.Logger) {
	var event events.ProfileLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// poison message, skip it
		log.Error("decode profile lifecycle event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	log = log.With(
		zap.String("profile_id", event.ProfileID),
		zap.String("tenant_id", event.TenantID),
		zap.String("request_id", event.RequestID),
	)

	if event.EventType == events.ProfilePublished {
		if err := warmer.WarmPublic(ctx, event.Slug); err != nil {
			// left uncommitted, redelivered after a restart or rebalance
			log.Error("warm public profile cache failed", zap.String("slug", event.Slug), zap.Error(err))
			return
		}
		log.Info("public profile cache warmed", zap.String("slug", event.Slug))
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit profile lifecycle message failed", zap.Error(err))
	}
}
