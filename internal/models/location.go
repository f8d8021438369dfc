package models

import (
	"fmt"
	"time"
)

// Location - неизменяемая точка с координатами и опциональной временной меткой (RFC3339, UTC).
// Создавать только через NewLocation, чтобы гарантировать валидность координат.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp,omitempty"`
}

// NewLocation создает валидированную точку. Пустая временная метка допустима.
func NewLocation(lat, lon float64, timestamp string) (Location, error) {
	loc := Location{Latitude: lat, Longitude: lon, Timestamp: timestamp}
	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// NewLocationNow создает точку с текущим временем UTC.
func NewLocationNow(lat, lon float64) (Location, error) {
	return NewLocation(lat, lon, time.Now().UTC().Format(time.RFC3339))
}

// Validate проверяет границы координат и формат временной метки
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90, got %v", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180, got %v", l.Longitude)
	}
	if l.Timestamp != "" {
		if _, err := time.Parse(time.RFC3339, l.Timestamp); err != nil {
			return fmt.Errorf("invalid location timestamp %q: %w", l.Timestamp, err)
		}
	}
	return nil
}

// Geofence - круглая безопасная зона: центр и радиус в метрах.
// Создавать только через NewGeofence.
type Geofence struct {
	Center       Location `json:"center"`
	RadiusMeters float64  `json:"radius_meters"`
}

// NewGeofence создает валидированную зону. Радиус должен быть строго положительным.
func NewGeofence(center Location, radiusMeters float64) (Geofence, error) {
	fence := Geofence{Center: center, RadiusMeters: radiusMeters}
	if err := fence.Validate(); err != nil {
		return Geofence{}, err
	}
	return fence, nil
}

// Validate проверяет параметры зоны
func (g Geofence) Validate() error {
	if err := g.Center.Validate(); err != nil {
		return fmt.Errorf("invalid geofence center: %w", err)
	}
	if g.RadiusMeters <= 0 {
		return fmt.Errorf("geofence radius must be positive, got %v", g.RadiusMeters)
	}
	return nil
}
