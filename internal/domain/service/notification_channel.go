// Package service defines the interfaces for external collaborators consumed
// by the workflow.
package service

import (
	"context"

	"lifeline/internal/domain/entity"
)

// PolicePayload carries everything the police integration needs to dispatch
// a unit: user identity, last-known location and the alert context.
type PolicePayload struct {
	UserID      string               `json:"user_id"`
	AlertID     string               `json:"alert_id"`
	AlertType   entity.AlertType     `json:"alert_type"`
	Priority    entity.AlertPriority `json:"priority"`
	Location    *entity.Location     `json:"location,omitempty"`
	UserName    string               `json:"user_name"`
	UserPhone   string               `json:"user_phone"`
	MedicalInfo string               `json:"medical_info,omitempty"`
}

// MedicalPayload carries the location and medical context for medical services.
type MedicalPayload struct {
	UserID      string           `json:"user_id"`
	AlertID     string           `json:"alert_id"`
	AlertType   entity.AlertType `json:"alert_type"`
	Location    *entity.Location `json:"location,omitempty"`
	MedicalInfo string           `json:"medical_info,omitempty"`
}

// NotificationChannel is the outbound notification surface the workflow
// depends on. All sends are best-effort: the workflow logs failures per
// channel and never lets them abort a state transition.
type NotificationChannel interface {
	// NotifyContacts sends a message to the user's active emergency contacts.
	NotifyContacts(ctx context.Context, userID string, message string, priority entity.AlertPriority) error

	// NotifyPolice forwards an alert to the police integration.
	NotifyPolice(ctx context.Context, payload *PolicePayload) error

	// NotifyMedical forwards an alert to medical services.
	NotifyMedical(ctx context.Context, payload *MedicalPayload) error
}
