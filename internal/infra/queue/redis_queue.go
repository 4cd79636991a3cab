package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultPollInterval = time.Second

// redisQueue is the redis-backed DurableQueue. Due timers live in a sorted
// set scored by fire time, with payloads in a companion hash; a job survives
// process restarts, and a fired job whose handler fails is put back for the
// next poll. That makes delivery at-least-once, never at-most-once.
type redisQueue struct {
	client       *redis.Client
	keyPrefix    string
	pollInterval time.Duration
	logger       *slog.Logger

	mu      sync.RWMutex
	handler service.JobHandler

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRedisQueue creates a redis-backed durable queue and starts its dispatch
// loop.
func NewRedisQueue(client *redis.Client, keyPrefix string, pollInterval time.Duration, logger *slog.Logger) service.DurableQueue {
	if keyPrefix == "" {
		keyPrefix = "lifeline:queue"
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	q := &redisQueue{
		client:       client,
		keyPrefix:    keyPrefix,
		pollInterval: pollInterval,
		logger:       logger,
		cancel:       cancel,
		done:         make(chan struct{}),
	}

	go q.dispatchLoop(ctx)

	return q
}

func (q *redisQueue) scheduleKey() string {
	return q.keyPrefix + ":schedule"
}

func (q *redisQueue) jobsKey() string {
	return q.keyPrefix + ":jobs"
}

// SetHandler registers the callback invoked when jobs fire.
func (q *redisQueue) SetHandler(handler service.JobHandler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handler = handler
}

// ScheduleJob registers the job under its key. ZADD on an existing member
// rewrites the score, so rescheduling an armed key replaces the pending fire
// rather than adding a second one.
func (q *redisQueue) ScheduleJob(ctx context.Context, key, jobType string, payload json.RawMessage, delay time.Duration) error {
	fireAt := time.Now().Add(delay)
	job := &entity.ScheduledJob{
		Key:     key,
		JobType: jobType,
		Payload: payload,
		FireAt:  fireAt,
	}

	encoded, err := json.Marshal(job)
	if err != nil {
		return errors.Wrap(err, "failed to encode scheduled job")
	}

	pipe := q.client.TxPipeline()
	pipe.HSet(ctx, q.jobsKey(), key, encoded)
	pipe.ZAdd(ctx, q.scheduleKey(), redis.Z{
		Score:  float64(fireAt.UnixMilli()),
		Member: key,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to schedule job")
	}

	return nil
}

// CancelJob removes a pending job. Unknown keys are a no-op.
func (q *redisQueue) CancelJob(ctx context.Context, key string) error {
	pipe := q.client.TxPipeline()
	pipe.ZRem(ctx, q.scheduleKey(), key)
	pipe.HDel(ctx, q.jobsKey(), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to cancel job")
	}

	return nil
}

// Close stops the dispatch loop. The redis state is left intact so pending
// jobs fire after a restart.
func (q *redisQueue) Close() error {
	q.cancel()
	<-q.done

	return nil
}

func (q *redisQueue) dispatchLoop(ctx context.Context) {
	defer close(q.done)

	ticker := time.NewTicker(q.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := q.dispatchDue(ctx); err != nil && !errors.Is(err, context.Canceled) {
				q.logger.Error("durable queue dispatch failed", slog.Any("error", err))
			}
		}
	}
}

// dispatchDue fires every job whose score has passed. Failed jobs are put
// back and retried on the next poll.
func (q *redisQueue) dispatchDue(ctx context.Context) error {
	now := time.Now().UnixMilli()

	keys, err := q.client.ZRangeByScore(ctx, q.scheduleKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now, 10),
	}).Result()
	if err != nil {
		return errors.Wrap(err, "failed to read due jobs")
	}

	for _, key := range keys {
		if err := q.dispatchOne(ctx, key); err != nil {
			q.logger.Error("scheduled job handler failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

func (q *redisQueue) dispatchOne(ctx context.Context, key string) error {
	encoded, err := q.client.HGet(ctx, q.jobsKey(), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Cancelled between the range read and here; drop the orphan score.
			return q.client.ZRem(ctx, q.scheduleKey(), key).Err()
		}

		return errors.Wrap(err, "failed to read job payload")
	}

	var job entity.ScheduledJob
	if err := json.Unmarshal([]byte(encoded), &job); err != nil {
		// Poison entry; remove it so the loop does not spin on it forever.
		q.logger.Error("dropping undecodable scheduled job", slog.String("key", key))

		return q.removeJob(ctx, key)
	}

	q.mu.RLock()
	handler := q.handler
	q.mu.RUnlock()

	if handler == nil {
		return errors.New("no job handler registered")
	}

	// Claim the entry before running the handler: the handler may re-arm the
	// same key (escalation re-schedules itself), and a removal afterwards
	// would delete the fresh timer instead of the fired one.
	if err := q.removeJob(ctx, key); err != nil {
		return err
	}

	if err := handler(ctx, &job); err != nil {
		if restoreErr := q.restoreJob(ctx, key, encoded, job.FireAt); restoreErr != nil {
			q.logger.Error("failed to restore job after handler error",
				slog.String("key", key),
				slog.Any("error", restoreErr),
			)
		}

		return err
	}

	return nil
}

func (q *redisQueue) removeJob(ctx context.Context, key string) error {
	pipe := q.client.TxPipeline()
	pipe.ZRem(ctx, q.scheduleKey(), key)
	pipe.HDel(ctx, q.jobsKey(), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to remove fired job")
	}

	return nil
}

// restoreJob puts a claimed job back so the next poll retries it. NX writes
// keep a timer the failed handler managed to arm itself from being clobbered
// by the stale entry.
func (q *redisQueue) restoreJob(ctx context.Context, key, encoded string, fireAt time.Time) error {
	pipe := q.client.TxPipeline()
	pipe.HSetNX(ctx, q.jobsKey(), key, encoded)
	pipe.ZAddNX(ctx, q.scheduleKey(), redis.Z{
		Score:  float64(fireAt.UnixMilli()),
		Member: key,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to restore job")
	}

	return nil
}
