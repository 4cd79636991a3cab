package queue

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) (*memoryQueue, *firedJobs) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	q, ok := NewMemoryQueue(logger).(*memoryQueue)
	require.True(t, ok)
	t.Cleanup(func() {
		_ = q.Close()
	})

	fired := &firedJobs{ch: make(chan *entity.ScheduledJob, 16)}
	q.SetHandler(fired.handle)

	return q, fired
}

type firedJobs struct {
	mu  sync.Mutex
	all []*entity.ScheduledJob
	ch  chan *entity.ScheduledJob
}

func (f *firedJobs) handle(_ context.Context, job *entity.ScheduledJob) error {
	f.mu.Lock()
	f.all = append(f.all, job)
	f.mu.Unlock()
	f.ch <- job

	return nil
}

func (f *firedJobs) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.all)
}

func (f *firedJobs) waitOne(t *testing.T) *entity.ScheduledJob {
	t.Helper()

	select {
	case job := <-f.ch:
		return job
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for job to fire")

		return nil
	}
}

func TestMemoryQueue_FiresAfterDelay(t *testing.T) {
	q, fired := newTestQueue(t)

	payload, err := json.Marshal(entity.AlertJobPayload{AlertID: "alert-1"})
	require.NoError(t, err)

	key := entity.JobKey("alert-1", entity.JobTypeEscalation)
	require.NoError(t, q.ScheduleJob(context.Background(), key, entity.JobTypeEscalation, payload, 10*time.Millisecond))

	job := fired.waitOne(t)
	assert.Equal(t, key, job.Key)
	assert.Equal(t, entity.JobTypeEscalation, job.JobType)

	var decoded entity.AlertJobPayload
	require.NoError(t, json.Unmarshal(job.Payload, &decoded))
	assert.Equal(t, "alert-1", decoded.AlertID)
}

func TestMemoryQueue_CancelPreventsFire(t *testing.T) {
	q, fired := newTestQueue(t)

	key := entity.JobKey("alert-2", entity.JobTypeEscalation)
	require.NoError(t, q.ScheduleJob(context.Background(), key, entity.JobTypeEscalation, nil, 20*time.Millisecond))
	require.NoError(t, q.CancelJob(context.Background(), key))

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, fired.count())
}

func TestMemoryQueue_CancelUnknownKeyIsNoop(t *testing.T) {
	q, _ := newTestQueue(t)

	assert.NoError(t, q.CancelJob(context.Background(), "missing:escalation"))
}

func TestMemoryQueue_RescheduleReplacesPendingTimer(t *testing.T) {
	q, fired := newTestQueue(t)

	key := entity.JobKey("alert-3", entity.JobTypeEscalation)

	first, err := json.Marshal(entity.AlertJobPayload{AlertID: "first"})
	require.NoError(t, err)
	second, err := json.Marshal(entity.AlertJobPayload{AlertID: "second"})
	require.NoError(t, err)

	require.NoError(t, q.ScheduleJob(context.Background(), key, entity.JobTypeEscalation, first, 15*time.Millisecond))
	require.NoError(t, q.ScheduleJob(context.Background(), key, entity.JobTypeEscalation, second, 30*time.Millisecond))

	job := fired.waitOne(t)

	var decoded entity.AlertJobPayload
	require.NoError(t, json.Unmarshal(job.Payload, &decoded))
	assert.Equal(t, "second", decoded.AlertID)

	// The replaced timer must not produce a second fire.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, fired.count())
}

func TestMemoryQueue_CancelThenRescheduleArmsFreshTimer(t *testing.T) {
	q, fired := newTestQueue(t)

	key := entity.JobKey("alert-4", entity.JobTypeResponse)

	require.NoError(t, q.ScheduleJob(context.Background(), key, entity.JobTypeResponse, nil, 10*time.Millisecond))
	require.NoError(t, q.CancelJob(context.Background(), key))
	require.NoError(t, q.ScheduleJob(context.Background(), key, entity.JobTypeResponse, nil, 20*time.Millisecond))

	job := fired.waitOne(t)
	assert.Equal(t, key, job.Key)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, fired.count())
}

func TestMemoryQueue_CloseStopsPendingTimers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	q := NewMemoryQueue(logger)

	fired := &firedJobs{ch: make(chan *entity.ScheduledJob, 16)}
	q.SetHandler(fired.handle)

	require.NoError(t, q.ScheduleJob(context.Background(), "alert-5:response", entity.JobTypeResponse, nil, 20*time.Millisecond))
	require.NoError(t, q.Close())

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, fired.count())
}
