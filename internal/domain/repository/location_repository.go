// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrNoLocationSamples is returned when a user has no recorded location.
	ErrNoLocationSamples = errors.New("no location samples for user")
)

// LocationSampleRepository defines the interface for location-sample database operations.
type LocationSampleRepository interface {
	// CreateSample persists a new location sample.
	CreateSample(ctx context.Context, sample *entity.LocationSample) error

	// FindLatestSample retrieves the most recent sample for a user.
	FindLatestSample(ctx context.Context, userID uuid.UUID) (*entity.LocationSample, error)

	// FindRecentSamples retrieves samples newer than since, newest first, up to
	// limit. This is the bounded lookback window fed to the movement detector.
	FindRecentSamples(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*entity.LocationSample, error)
}
