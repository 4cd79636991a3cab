// Package queue contains durable timer implementations backing escalation
// scheduling.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/service"
)

// pendingTimer is a single armed timer. The generation counter guards against
// a cancelled timer's late fire racing a fresh timer armed under the same key.
type pendingTimer struct {
	timer      *time.Timer
	generation uint64
	job        *entity.ScheduledJob
}

// memoryQueue is the in-process DurableQueue used in development and tests.
// Timers do not survive a restart; the redis provider covers durability.
type memoryQueue struct {
	mu      sync.Mutex
	timers  map[string]*pendingTimer
	nextGen uint64
	handler service.JobHandler
	logger  *slog.Logger
	closed  bool
	wg      sync.WaitGroup
}

// NewMemoryQueue creates an in-process durable queue.
func NewMemoryQueue(logger *slog.Logger) service.DurableQueue {
	return &memoryQueue{
		timers: make(map[string]*pendingTimer),
		logger: logger,
	}
}

// SetHandler registers the callback invoked when jobs fire.
func (q *memoryQueue) SetHandler(handler service.JobHandler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handler = handler
}

// ScheduleJob arms a timer for the key, replacing any pending timer.
func (q *memoryQueue) ScheduleJob(_ context.Context, key, jobType string, payload json.RawMessage, delay time.Duration) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	if existing, ok := q.timers[key]; ok {
		existing.timer.Stop()
	}

	q.nextGen++
	generation := q.nextGen

	job := &entity.ScheduledJob{
		Key:     key,
		JobType: jobType,
		Payload: payload,
		FireAt:  time.Now().Add(delay),
	}

	pending := &pendingTimer{
		generation: generation,
		job:        job,
	}
	pending.timer = time.AfterFunc(delay, func() {
		q.fire(key, generation)
	})
	q.timers[key] = pending

	return nil
}

// CancelJob stops the pending timer for the key. Unknown keys are a no-op.
func (q *memoryQueue) CancelJob(_ context.Context, key string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if pending, ok := q.timers[key]; ok {
		pending.timer.Stop()
		delete(q.timers, key)
	}

	return nil
}

// Close stops all pending timers and waits for in-flight handlers.
func (q *memoryQueue) Close() error {
	q.mu.Lock()
	q.closed = true
	for key, pending := range q.timers {
		pending.timer.Stop()
		delete(q.timers, key)
	}
	q.mu.Unlock()

	q.wg.Wait()

	return nil
}

func (q *memoryQueue) fire(key string, generation uint64) {
	q.mu.Lock()
	pending, ok := q.timers[key]
	if !ok || pending.generation != generation || q.closed {
		// The timer was cancelled or replaced after this fire was queued.
		q.mu.Unlock()

		return
	}
	delete(q.timers, key)
	handler := q.handler
	job := pending.job
	q.wg.Add(1)
	q.mu.Unlock()

	defer q.wg.Done()

	if handler == nil {
		q.logger.Warn("scheduled job fired without a handler",
			slog.String("key", key),
			slog.String("jobType", job.JobType),
		)

		return
	}

	if err := handler(context.Background(), job); err != nil {
		q.logger.Error("scheduled job handler failed",
			slog.String("key", key),
			slog.String("jobType", job.JobType),
			slog.Any("error", err),
		)
	}
}
