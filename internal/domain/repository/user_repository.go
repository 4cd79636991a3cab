// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindEmergencyContacts retrieves the active emergency contacts for a user.
	FindEmergencyContacts(ctx context.Context, userID uuid.UUID) ([]*entity.EmergencyContact, error)
}
