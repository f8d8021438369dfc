package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы и уровни важности тревог, рассылаемых наружу
const (
	AlertTypeGeofenceExit   = "geofence_exit"
	AlertTypeEmergencyState = "emergency_state_change"

	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Alert - тревога, отправляемая наблюдателям (вебхуки, websocket-клиенты)
type Alert struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Location  *Location `json:"location,omitempty"`
	Timestamp string    `json:"timestamp"`
}

// NewAlert создает тревогу с новым ID и текущим временем UTC
func NewAlert(alertType, message, severity string, loc *Location) Alert {
	return Alert{
		ID:        uuid.New(),
		Type:      alertType,
		Message:   message,
		Severity:  severity,
		Location:  loc,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
