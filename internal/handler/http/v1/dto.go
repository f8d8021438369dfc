package v1

// LocationRequest DTO для ручной установки местоположения
// @Description DTO для ручной установки местоположения
type LocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Timestamp string  `json:"timestamp,omitempty"`
}

// LocationResponse DTO для ответа с местоположением
// @Description DTO для ответа с местоположением
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
}

// GeofenceRequest DTO для установки безопасной зоны
// @Description DTO для установки безопасной зоны
type GeofenceRequest struct {
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	RadiusMeters float64 `json:"radius_meters" validate:"required,gt=0"`
}

// GeofenceResponse DTO для ответа с безопасной зоной
// @Description DTO для ответа с безопасной зоной
type GeofenceResponse struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}

// EmergencyResponse DTO для ответа с состоянием тревоги
// @Description DTO для ответа с состоянием тревоги
type EmergencyResponse struct {
	EmergencyState string `json:"emergency_state"`
}

// StatusResponse DTO для ответа со сводкой состояния системы
// @Description DTO для ответа со сводкой состояния системы
type StatusResponse struct {
	IsRunning       bool             `json:"is_running"`
	CurrentLocation LocationResponse `json:"current_location"`
	EmergencyState  string           `json:"emergency_state"`
	GeofenceActive  bool             `json:"geofence_active"`
	LastUpdate      string           `json:"last_update"`
}

// ExportRequest DTO для экспорта журнала аудита в файл
// @Description DTO для экспорта журнала аудита в файл
type ExportRequest struct {
	Path string `json:"path" validate:"required"`
}

// StatsResponse DTO для ответа со статистикой журнала аудита
// @Description DTO для ответа со статистикой журнала аудита
type StatsResponse struct {
	TotalEntries int            `json:"total_entries"`
	ByType       map[string]int `json:"by_type"`
	Earliest     string         `json:"earliest,omitempty"`
	Latest       string         `json:"latest,omitempty"`
}
