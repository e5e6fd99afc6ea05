package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/messaging/kafka"
	kafkaMock "github.com/WhitworthLegacy/carnetmariage-sub001/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failKeys map[string]error
	written  []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err := w.failKeys[string(m.Key)]; err != nil {
			return err
		}
		w.written = append(w.written, m)
	}
	return nil
}

func header(m kafkago.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func pendingEvent(id, aggregateID, requestID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            id,
		RequestID:     requestID,
		AggregateType: "profile",
		AggregateID:   aggregateID,
		EventType:     "profile_published",
		Topic:         "wedding.profile.lifecycle.v1",
		Payload:       []byte(`{"slug":"ana-and-ben"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{
			pendingEvent("o-1", "p-1", "req-1"),
			pendingEvent("o-2", "p-2", ""),
		}, nil)
		repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o-2").Return(nil)

		sent, err := ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		require.Len(t, writer.written, 2)

		first := writer.written[0]
		assert.Equal(t, "wedding.profile.lifecycle.v1", first.Topic)
		assert.Equal(t, "p-1", string(first.Key))
		assert.Equal(t, "profile_published", header(first, "event_type"))
		assert.Equal(t, "req-1", header(first, "request_id"))
		assert.Empty(t, header(writer.written[1], "request_id"))
	})

	t.Run("failed publish is scheduled for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failKeys: map[string]error{"p-1": errors.New("leader not available")}}

		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{
			pendingEvent("o-1", "p-1", ""),
			pendingEvent("o-2", "p-2", ""),
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "o-1", "leader not available").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o-2").Return(nil)

		sent, err := ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, batchSize).Return(nil, nil)

		sent, err := ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, batchSize).Return(nil, errors.New("db down"))

		_, err := ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

		assert.EqualError(t, err, "db down")
	})
}

func TestProcessOutboxEvents_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().ListPending(gomock.Any(), batchSize).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ProcessOutboxEvents(ctx, repo, &fakeWriter{}, zap.NewNop(), 0)
		close(done)
	}()

	cancel()
	<-done
}
