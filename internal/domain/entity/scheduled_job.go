// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"
)

// Job types dispatched through the durable queue.
const (
	// JobTypeResponse is the immediate response job armed when an alert is created.
	JobTypeResponse = "response"
	// JobTypeEscalation is the delayed escalation job re-armed after each level.
	JobTypeEscalation = "escalation"
)

// JobKey builds the unique timer key for an alert and job type, e.g.
// "018f…:escalation". At most one live timer exists per key; scheduling the
// same key again replaces the pending timer.
func JobKey(alertID, jobType string) string {
	return alertID + ":" + jobType
}

// ScheduledJob is a durable timer entry delivered at-least-once. Receivers
// must tolerate duplicate and late fires.
type ScheduledJob struct {
	Key     string          `json:"key"`
	JobType string          `json:"job_type"`
	Payload json.RawMessage `json:"payload"`
	FireAt  time.Time       `json:"fire_at"`
}

// AlertJobPayload is the payload carried by response and escalation jobs.
type AlertJobPayload struct {
	AlertID string `json:"alert_id"`
}
