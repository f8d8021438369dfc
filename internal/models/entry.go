package models

import (
	"fmt"
	"time"
)

// EventType - тип события в журнале аудита
type EventType string

const (
	EventLocationUpdate EventType = "location_update"
	EventAlert          EventType = "alert"
	EventGeofenceUpdate EventType = "geofence_update"
	EventPanicTrigger   EventType = "panic_trigger"
	EventPanicResolved  EventType = "panic_resolved"
	EventSystem         EventType = "system"
	EventError          EventType = "error"
)

// LogEntry - запись журнала аудита. Минимальный контракт на диске:
// timestamp + event_type, details зависят от типа события.
// Записи не изменяются после создания.
type LogEntry struct {
	Timestamp string    `json:"timestamp"`
	EventType EventType `json:"event_type"`
	Details   any       `json:"details,omitempty"`
}

// NewLogEntry создает запись с текущим временем UTC
func NewLogEntry(eventType EventType, details any) LogEntry {
	return LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		EventType: eventType,
		Details:   details,
	}
}

// Validate проверяет обязательные поля записи
func (e LogEntry) Validate() error {
	if e.EventType == "" {
		return fmt.Errorf("log entry event type cannot be empty")
	}
	if e.Timestamp == "" {
		return fmt.Errorf("log entry timestamp cannot be empty")
	}
	if _, err := time.Parse(time.RFC3339, e.Timestamp); err != nil {
		return fmt.Errorf("invalid log entry timestamp %q: %w", e.Timestamp, err)
	}
	return nil
}

// Типизированные полезные нагрузки записей журнала.
// Каждому типу события соответствует своя структура вместо произвольной map.

// LocationDetails - полезная нагрузка события location_update
type LocationDetails struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp,omitempty"`
}

// AlertDetails - полезная нагрузка события alert
type AlertDetails struct {
	AlertID        string    `json:"alert_id"`
	AlertType      string    `json:"alert_type"`
	Message        string    `json:"message"`
	Severity       string    `json:"severity"`
	Location       *Location `json:"location,omitempty"`
	BoundaryMeters float64   `json:"boundary_distance_meters,omitempty"`
}

// GeofenceDetails - полезная нагрузка события geofence_update
type GeofenceDetails struct {
	CenterLatitude  float64 `json:"center_latitude"`
	CenterLongitude float64 `json:"center_longitude"`
	RadiusMeters    float64 `json:"radius_meters"`
}

// PanicDetails - полезная нагрузка событий panic_trigger / panic_resolved
type PanicDetails struct {
	State  string `json:"state"`
	Source string `json:"source,omitempty"`
}

// SystemDetails - полезная нагрузка события system
type SystemDetails struct {
	Message   string `json:"message"`
	Component string `json:"component,omitempty"`
}

// ErrorDetails - полезная нагрузка события error
type ErrorDetails struct {
	Message   string `json:"message"`
	Component string `json:"component,omitempty"`
}
