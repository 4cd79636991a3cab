// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationSample is a single position report from a user's device.
type LocationSample struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Accuracy     float64   `json:"accuracy,omitempty"`      // Horizontal accuracy in meters.
	Speed        *float64  `json:"speed,omitempty"`         // Instantaneous speed in m/s, when the device reports one.
	Heading      *float64  `json:"heading,omitempty"`       // Heading in degrees.
	Altitude     *float64  `json:"altitude,omitempty"`      // Altitude in meters.
	BatteryLevel *float64  `json:"battery_level,omitempty"` // Battery percentage 0-100.
	Source       string    `json:"source,omitempty"`        // gps, network, manual.
	Timestamp    time.Time `json:"timestamp"`
	CreatedAt    time.Time `json:"created_at"`
}
