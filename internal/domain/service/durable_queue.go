// Package service defines the interfaces for external collaborators consumed
// by the workflow.
package service

import (
	"context"
	"encoding/json"
	"time"

	"lifeline/internal/domain/entity"
)

// JobHandler consumes a fired scheduled job. Delivery is at-least-once:
// handlers must tolerate duplicate and late fires.
type JobHandler func(ctx context.Context, job *entity.ScheduledJob) error

// DurableQueue is the timer registry backing escalation scheduling. A key
// identifies at most one live timer; scheduling an existing key replaces the
// pending timer, and CancelJob is idempotent. Cancellation guarantees no new
// fire is scheduled after it commits but cannot retract a fire already
// dispatched, so receivers rely on their own idempotence.
type DurableQueue interface {
	// ScheduleJob registers a timer that delivers the job after delay.
	ScheduleJob(ctx context.Context, key, jobType string, payload json.RawMessage, delay time.Duration) error

	// CancelJob removes a pending timer. Unknown keys are a no-op.
	CancelJob(ctx context.Context, key string) error

	// SetHandler registers the callback invoked when jobs fire. It must be
	// called once before the queue starts dispatching.
	SetHandler(handler JobHandler)

	// Close stops the dispatcher and releases backing resources.
	Close() error
}
