// Package service defines the interfaces for external collaborators consumed
// by the workflow.
package service

import (
	"context"
)

// Lifecycle and detector event names published on the bus.
const (
	EventEmergencyCreated      = "emergency:created"
	EventEmergencyAcknowledged = "emergency:acknowledged"
	EventEmergencyResolved     = "emergency:resolved"
	EventEmergencyCancelled    = "emergency:cancelled"
	EventEmergencyEscalated    = "emergency:escalated"
	EventLocationUpdated       = "location:updated"
	EventGeofenceViolation     = "geofence:violation"
	EventMovementUnusual       = "movement:unusual"
)

// EventHandler consumes a single published event. Handlers run concurrently
// with each other; delivery is at-most-once with no cross-subscriber ordering.
type EventHandler func(ctx context.Context, payload any)

// EventBus is the process-wide publish/subscribe fan-out for lifecycle and
// anomaly events. Emit is fire-and-forget; subscribers are registered once
// during process initialization, not via ambient global state.
type EventBus interface {
	// Emit publishes an event to all current subscribers of name.
	Emit(ctx context.Context, name string, payload any)

	// Subscribe registers a handler for the named event.
	Subscribe(name string, handler EventHandler)

	// Close stops delivery and waits for in-flight handlers.
	Close() error
}
