// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// GeofenceRepository defines the interface for geofence-related database operations.
// Fences are managed by the preferences surface; the core only reads them.
type GeofenceRepository interface {
	// FindGeofencesByUser retrieves all geofences configured for a user.
	FindGeofencesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Geofence, error)
}
