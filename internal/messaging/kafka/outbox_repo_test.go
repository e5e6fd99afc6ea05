package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (kafka.OutboxRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return kafka.NewOutboxRepository(db), mock
}

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		RequestID:     "req-1",
		AggregateType: "profile",
		AggregateID:   "9b2d8f3e-2c1a-4e5b-8f6d-1a2b3c4d5e6f",
		EventType:     "profile_published",
		Topic:         "wedding.profile.lifecycle.v1",
		Payload:       []byte(`{"slug":"ana-and-ben"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	repo, mock := setupRepo(t)
	e := validEvent()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "outbox_events"`)).
		WithArgs(e.ID, e.RequestID, e.AggregateType, e.AggregateID, e.EventType, e.Topic, e.Payload, e.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	repo, mock := setupRepo(t)

	e := validEvent()
	e.Topic = ""

	err := repo.Create(context.Background(), e)

	assert.EqualError(t, err, "outbox topic is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	repo, mock := setupRepo(t)
	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow(
		"o-1", "", "profile", "p-1", "profile_published",
		"wedding.profile.lifecycle.v1", []byte(`{}`), kafka.OutboxStatusFailed, 2, at,
	)
	mock.ExpectQuery(regexp.QuoteMeta("outbox_events")).WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "o-1", events[0].ID)
	assert.Equal(t, 2, events[0].RetryCount)
	assert.Equal(t, at, events[0].NextRetryAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "outbox_events"`)).
		WithArgs("broker unreachable", kafka.OutboxStatusFailed, "o-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkFailed(context.Background(), "o-1", "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	e := validEvent()
	e.Status = "queued"
	assert.EqualError(t, kafka.ValidateOutboxEvent(e), "invalid outbox status: queued")

	assert.NoError(t, kafka.ValidateOutboxEvent(validEvent()))
}
