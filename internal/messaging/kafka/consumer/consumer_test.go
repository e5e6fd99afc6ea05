package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReader struct {
	queue     []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.queue[0]
	r.queue = r.queue[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

type fakeWarmer struct {
	err    error
	warmed []string
}

func (w *fakeWarmer) WarmPublic(ctx context.Context, slug string) error {
	if w.err != nil {
		return w.err
	}
	w.warmed = append(w.warmed, slug)
	return nil
}

func lifecycleMessage(t *testing.T, offset int64, eventType, slug string) kafkago.Message {
	t.Helper()
	b, err := json.Marshal(events.ProfileLifecycleEvent{
		EventType:  eventType,
		ProfileID:  "p-1",
		TenantID:   "t-1",
		Slug:       slug,
		OccurredAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return kafkago.Message{Topic: events.ProfileLifecycleTopic, Offset: offset, Value: b}
}

func TestConsumeProfileLifecycle(t *testing.T) {
	t.Run("warms published profiles and commits everything", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{
			cancel: cancel,
			queue: []kafkago.Message{
				lifecycleMessage(t, 1, events.ProfilePublished, "ana-and-ben"),
				lifecycleMessage(t, 2, events.ProfileUnpublished, "old-site"),
				{Offset: 3, Value: []byte("not json")},
			},
		}
		warmer := &fakeWarmer{}

		ConsumeProfileLifecycle(ctx, reader, warmer, zap.NewNop())

		assert.Equal(t, []string{"ana-and-ben"}, warmer.warmed)
		require.Len(t, reader.committed, 3)
		assert.Equal(t, int64(3), reader.committed[2].Offset)
	})

	t.Run("failed warm leaves the message uncommitted", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{
			cancel: cancel,
			queue:  []kafkago.Message{lifecycleMessage(t, 1, events.ProfilePublished, "ana-and-ben")},
		}

		ConsumeProfileLifecycle(ctx, reader, &fakeWarmer{err: errors.New("redis down")}, zap.NewNop())

		assert.Empty(t, reader.committed)
	})
}
