//go:build unit

package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"seat-hold-ticketing/internal/infra/broker"
	"seat-hold-ticketing/internal/pkg/clock"
	"seat-hold-ticketing/internal/pkg/config"
	"seat-hold-ticketing/internal/usecase/shared"
	"seat-hold-ticketing/internal/worker"
	"seat-hold-ticketing/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fakePublisher struct {
	mu   sync.Mutex
	sent []broker.Message
	err  error
}

func (p *fakePublisher) Publish(_ context.Context, msg broker.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, msg)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) messages() []broker.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]broker.Message(nil), p.sent...)
}

func seedJob(t *testing.T, store *memstore.Store, job shared.NotificationJob) {
	t.Helper()
	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().CreateJob(ctx, job)
	})
	require.NoError(t, err)
}

func brokerJob(runAt time.Time, attempts int) shared.NotificationJob {
	return shared.NotificationJob{
		ID:       uuid.New(),
		Kind:     shared.NotificationKindBroker,
		Topic:    shared.TopicBookingConfirmed,
		Payload:  []byte(`{"bookingId":41}`),
		Attempts: attempts,
		RunAt:    runAt,
	}
}

func newRelay(store *memstore.Store, pub broker.Publisher, clk clock.Clock) *worker.OutboxRelay {
	return worker.NewOutboxRelay(store, pub, clk, config.BrokerConfig{RelayInterval: time.Second, RelayBatch: 10})
}

func TestOutboxRelay_RelayOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("Normal case: due jobs are published and marked sent", func(t *testing.T) {
		store := memstore.New()
		clk := clock.NewMockClock(now)
		pub := &fakePublisher{}
		job := brokerJob(now, 0)
		seedJob(t, store, job)
		seedJob(t, store, brokerJob(now.Add(time.Minute), 0))

		sent, err := newRelay(store, pub, clk).RelayOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		msgs := pub.messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, broker.Message{ID: job.ID.String(), Topic: job.Topic, Body: job.Payload}, msgs[0])

		jobs := store.Jobs()
		require.Len(t, jobs, 2)
		assert.Equal(t, memstore.JobSent, jobs[0].Status)
		assert.Equal(t, memstore.JobQueued, jobs[1].Status)
	})

	t.Run("Error case: failed publish is rescheduled with backoff", func(t *testing.T) {
		store := memstore.New()
		clk := clock.NewMockClock(now)
		pub := &fakePublisher{err: errors.New("channel closed")}
		seedJob(t, store, brokerJob(now, 0))
		relay := newRelay(store, pub, clk)

		sent, err := relay.RelayOnce(ctx)
		require.NoError(t, err)
		assert.Zero(t, sent)

		jobs := store.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, memstore.JobQueued, jobs[0].Status)
		assert.Equal(t, 1, jobs[0].Attempts)
		assert.Equal(t, "channel closed", jobs[0].LastError)
		assert.Equal(t, now.Add(2*time.Second), jobs[0].RunAt)

		pub.err = nil
		clk.Add(time.Second)
		sent, err = relay.RelayOnce(ctx)
		require.NoError(t, err)
		assert.Zero(t, sent, "job is not due before its backoff")

		clk.Add(time.Second)
		sent, err = relay.RelayOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("Error case: job gives up after the last attempt", func(t *testing.T) {
		store := memstore.New()
		clk := clock.NewMockClock(now)
		pub := &fakePublisher{err: errors.New("nack")}
		seedJob(t, store, brokerJob(now, 7))

		_, err := newRelay(store, pub, clk).RelayOnce(ctx)
		require.NoError(t, err)

		jobs := store.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, memstore.JobFailed, jobs[0].Status)
	})

	t.Run("Error case: unsupported kind is failed without publishing", func(t *testing.T) {
		store := memstore.New()
		clk := clock.NewMockClock(now)
		pub := &fakePublisher{}
		job := brokerJob(now, 0)
		job.Kind = "email"
		seedJob(t, store, job)

		sent, err := newRelay(store, pub, clk).RelayOnce(ctx)
		require.NoError(t, err)

		assert.Zero(t, sent)
		assert.Empty(t, pub.messages())
		assert.Equal(t, memstore.JobFailed, store.Jobs()[0].Status)
	})

	t.Run("Error case: storage failure aborts the batch", func(t *testing.T) {
		store := memstore.New()
		clk := clock.NewMockClock(now)
		pub := &fakePublisher{}
		seedJob(t, store, brokerJob(now, 0))
		boom := errors.New("db down")
		store.FailNext("Notifications.MarkSent", boom)

		_, err := newRelay(store, pub, clk).RelayOnce(ctx)

		require.ErrorIs(t, err, boom)
		assert.Equal(t, memstore.JobQueued, store.Jobs()[0].Status)
	})
}
