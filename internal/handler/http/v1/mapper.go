package v1

import (
	"github.com/shenikar/kiddo_tracking_system/internal/audit"
	"github.com/shenikar/kiddo_tracking_system/internal/models"
	"github.com/shenikar/kiddo_tracking_system/internal/service"
)

// DTOToLocationModel преобразует DTO в доменную модель местоположения.
// Пустая метка времени заполняется движком при установке.
func DTOToLocationModel(dto LocationRequest) models.Location {
	return models.Location{
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
		Timestamp: dto.Timestamp,
	}
}

// ModelToLocationResponse преобразует доменную модель в DTO для ответа
func ModelToLocationResponse(model models.Location) LocationResponse {
	return LocationResponse{
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Timestamp: model.Timestamp,
	}
}

// DTOToGeofenceModel преобразует DTO в доменную модель безопасной зоны
func DTOToGeofenceModel(dto GeofenceRequest) models.Geofence {
	return models.Geofence{
		Center: models.Location{
			Latitude:  dto.Latitude,
			Longitude: dto.Longitude,
		},
		RadiusMeters: dto.RadiusMeters,
	}
}

// ModelToGeofenceResponse преобразует доменную модель в DTO для ответа
func ModelToGeofenceResponse(model models.Geofence) GeofenceResponse {
	return GeofenceResponse{
		Latitude:     model.Center.Latitude,
		Longitude:    model.Center.Longitude,
		RadiusMeters: model.RadiusMeters,
	}
}

// StatusToResponse преобразует сводку состояния сервиса в DTO для ответа
func StatusToResponse(status service.Status) StatusResponse {
	return StatusResponse{
		IsRunning:       status.IsRunning,
		CurrentLocation: ModelToLocationResponse(status.CurrentLocation),
		EmergencyState:  status.EmergencyState,
		GeofenceActive:  status.GeofenceActive,
		LastUpdate:      status.LastUpdate,
	}
}

// StatisticsToResponse преобразует статистику журнала аудита в DTO для ответа
func StatisticsToResponse(stats audit.Statistics) StatsResponse {
	byType := make(map[string]int, len(stats.ByType))
	for eventType, count := range stats.ByType {
		byType[string(eventType)] = count
	}
	return StatsResponse{
		TotalEntries: stats.TotalEntries,
		ByType:       byType,
		Earliest:     stats.Earliest,
		Latest:       stats.Latest,
	}
}
