package queue

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisQueue(t *testing.T) service.DurableQueue {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	q := NewRedisQueue(client, "test:queue", 10*time.Millisecond, logger)
	t.Cleanup(func() {
		_ = q.Close()
	})

	return q
}

func TestRedisQueue_FiresDueJob(t *testing.T) {
	q := newTestRedisQueue(t)

	fired := make(chan *entity.ScheduledJob, 1)
	q.SetHandler(func(_ context.Context, job *entity.ScheduledJob) error {
		fired <- job

		return nil
	})

	key := entity.JobKey("alert-1", entity.JobTypeResponse)
	require.NoError(t, q.ScheduleJob(context.Background(), key, entity.JobTypeResponse, nil, 0))

	select {
	case job := <-fired:
		assert.Equal(t, key, job.Key)
		assert.Equal(t, entity.JobTypeResponse, job.JobType)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for job to fire")
	}
}

func TestRedisQueue_HandlerRearmedKeySurvivesDispatch(t *testing.T) {
	q := newTestRedisQueue(t)

	key := entity.JobKey("alert-2", entity.JobTypeEscalation)

	var mu sync.Mutex
	fires := 0
	second := make(chan struct{})
	q.SetHandler(func(ctx context.Context, job *entity.ScheduledJob) error {
		mu.Lock()
		fires++
		n := fires
		mu.Unlock()

		// The escalation handler arms the next step under the same key
		// before returning; the dispatcher must not wipe that fresh timer.
		if n == 1 {
			return q.ScheduleJob(ctx, key, entity.JobTypeEscalation, nil, 20*time.Millisecond)
		}
		close(second)

		return nil
	})

	require.NoError(t, q.ScheduleJob(context.Background(), key, entity.JobTypeEscalation, nil, 0))

	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("re-armed job never fired")
	}
}

func TestRedisQueue_HandlerErrorRetriedOnNextPoll(t *testing.T) {
	q := newTestRedisQueue(t)

	var mu sync.Mutex
	attempts := 0
	succeeded := make(chan struct{})
	q.SetHandler(func(_ context.Context, _ *entity.ScheduledJob) error {
		mu.Lock()
		attempts++
		n := attempts
		mu.Unlock()

		if n == 1 {
			return errors.New("downstream unavailable")
		}
		close(succeeded)

		return nil
	})

	key := entity.JobKey("alert-3", entity.JobTypeEscalation)
	require.NoError(t, q.ScheduleJob(context.Background(), key, entity.JobTypeEscalation, nil, 0))

	select {
	case <-succeeded:
	case <-time.After(2 * time.Second):
		t.Fatal("failed job was not retried")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, attempts)
}

func TestRedisQueue_CancelPreventsFire(t *testing.T) {
	q := newTestRedisQueue(t)

	var mu sync.Mutex
	fires := 0
	q.SetHandler(func(_ context.Context, _ *entity.ScheduledJob) error {
		mu.Lock()
		fires++
		mu.Unlock()

		return nil
	})

	key := entity.JobKey("alert-4", entity.JobTypeEscalation)
	require.NoError(t, q.ScheduleJob(context.Background(), key, entity.JobTypeEscalation, nil, 50*time.Millisecond))
	require.NoError(t, q.CancelJob(context.Background(), key))

	time.Sleep(120 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, fires)
}
