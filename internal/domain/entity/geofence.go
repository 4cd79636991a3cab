// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// GeofenceType marks a fence as a region the user should stay inside of or
// keep out of.
type GeofenceType string

const (
	// GeofenceTypeSafe fires a violation when the user leaves the region.
	GeofenceTypeSafe GeofenceType = "safe"
	// GeofenceTypeDanger fires a violation when the user enters the region.
	GeofenceTypeDanger GeofenceType = "danger"
)

// Geofence is a circular region owned by a user. Fences are supplied by the
// preferences store and are immutable from the monitor's perspective.
type Geofence struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	Name      string       `json:"name"`
	Type      GeofenceType `json:"type"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Radius    float64      `json:"radius"` // Radius in meters.
}
