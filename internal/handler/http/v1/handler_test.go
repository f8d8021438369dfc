package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/kiddo_tracking_system/internal/audit"
	"github.com/shenikar/kiddo_tracking_system/internal/config"
	"github.com/shenikar/kiddo_tracking_system/internal/models"
	"github.com/shenikar/kiddo_tracking_system/internal/service"
	"github.com/shenikar/kiddo_tracking_system/internal/service/mocks"
	"github.com/shenikar/kiddo_tracking_system/pkg/ws"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockTrackerService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockTrackerService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, ws.NewHub(logger), logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetLocation_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedLocation := models.Location{
		Latitude:  40.7128,
		Longitude: -74.0060,
		Timestamp: "2026-08-30T12:00:00Z",
	}

	mockService.EXPECT().GetLocation().Return(expectedLocation).Times(1)

	w := makeRequest(router, "GET", "/api/v1/location", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LocationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedLocation.Latitude, resp.Latitude)
	assert.Equal(t, expectedLocation.Timestamp, resp.Timestamp)
}

func TestSetLocation_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := LocationRequest{
		Latitude:  40.7128,
		Longitude: -74.0060,
	}
	stamped := models.Location{
		Latitude:  reqBody.Latitude,
		Longitude: reqBody.Longitude,
		Timestamp: "2026-08-30T12:00:00Z",
	}

	mockService.EXPECT().SetLocation(DTOToLocationModel(reqBody)).Return(nil).Times(1)
	mockService.EXPECT().GetLocation().Return(stamped).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LocationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, stamped.Timestamp, resp.Timestamp)
}

func TestSetLocation_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetLocation(gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/location", bytes.NewBufferString(`{"latitude": 40`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSetLocation_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := LocationRequest{ // Широта вне диапазона
		Latitude:  95.0,
		Longitude: -74.0060,
	}

	mockService.EXPECT().SetLocation(gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Latitude' failed on the 'latitude' tag")
}

func TestSetLocation_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := LocationRequest{
		Latitude:  40.7128,
		Longitude: -74.0060,
		Timestamp: "not-a-timestamp",
	}
	serviceError := errors.New("service: could not set location")

	mockService.EXPECT().SetLocation(gomock.Any()).Return(serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "could not set location")
}

func TestGetGeofence_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedFence := models.Geofence{
		Center:       models.Location{Latitude: 40.7128, Longitude: -74.0060},
		RadiusMeters: 1000,
	}

	mockService.EXPECT().GetGeofence().Return(expectedFence).Times(1)

	w := makeRequest(router, "GET", "/api/v1/geofence", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp GeofenceResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedFence.RadiusMeters, resp.RadiusMeters)
	assert.Equal(t, expectedFence.Center.Latitude, resp.Latitude)
}

func TestSetGeofence_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := GeofenceRequest{
		Latitude:     40.7128,
		Longitude:    -74.0060,
		RadiusMeters: 500,
	}

	mockService.EXPECT().SetGeofence(DTOToGeofenceModel(reqBody)).Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/geofence", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp GeofenceResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reqBody.RadiusMeters, resp.RadiusMeters)
}

func TestSetGeofence_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := GeofenceRequest{ // Отсутствует RadiusMeters
		Latitude:  40.7128,
		Longitude: -74.0060,
	}

	mockService.EXPECT().SetGeofence(gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/geofence", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'RadiusMeters' failed on the 'required' tag")
}

func TestSetGeofence_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := GeofenceRequest{
		Latitude:     40.7128,
		Longitude:    -74.0060,
		RadiusMeters: 500,
	}
	serviceError := errors.New("service: could not set geofence")

	mockService.EXPECT().SetGeofence(gomock.Any()).Return(serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/geofence", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "could not set geofence")
}

func TestTriggerPanic_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().TriggerPanic().Return(models.EmergencyPanic).Times(1)

	w := makeRequest(router, "POST", "/api/v1/panic", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp EmergencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "panic", resp.EmergencyState)
}

func TestResolvePanic_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ResolvePanic().Return(models.EmergencyResolved).Times(1)

	w := makeRequest(router, "POST", "/api/v1/panic/resolve", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"emergency_state":"resolved"`)
}

func TestResetEmergency_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ResetEmergency().Return(models.EmergencyNormal).Times(1)

	w := makeRequest(router, "POST", "/api/v1/panic/reset", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"emergency_state":"normal"`)
}

func TestStartSimulator_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	status := service.Status{
		IsRunning:      true,
		EmergencyState: "normal",
	}

	mockService.EXPECT().StartSimulator().Times(1)
	mockService.EXPECT().GetStatus().Return(status).Times(1)

	w := makeRequest(router, "POST", "/api/v1/simulator/start", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.IsRunning)
}

func TestStopSimulator_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	status := service.Status{
		IsRunning:      false,
		EmergencyState: "normal",
	}

	mockService.EXPECT().StopSimulator().Times(1)
	mockService.EXPECT().GetStatus().Return(status).Times(1)

	w := makeRequest(router, "POST", "/api/v1/simulator/stop", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.IsRunning)
}

func TestGetStatus_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	status := service.Status{
		IsRunning:       true,
		CurrentLocation: models.Location{Latitude: 40.7128, Longitude: -74.0060, Timestamp: "2026-08-30T12:00:00Z"},
		EmergencyState:  "normal",
		GeofenceActive:  true,
		LastUpdate:      "2026-08-30T12:00:01Z",
	}

	mockService.EXPECT().GetStatus().Return(status).Times(1)

	w := makeRequest(router, "GET", "/api/v1/status", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.GeofenceActive)
	assert.Equal(t, status.CurrentLocation.Latitude, resp.CurrentLocation.Latitude)
}

func TestGetAlerts_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedEntries := []models.LogEntry{
		{Timestamp: "2026-08-30T12:00:00Z", EventType: models.EventAlert},
	}

	mockService.EXPECT().RecentAlerts(10).Return(expectedEntries).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts?limit=10", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.LogEntry
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, models.EventAlert, resp[0].EventType)
}

func TestGetAlerts_DefaultLimit(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().RecentAlerts(defaultEventLimit).Return(nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetEvents_ByType(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	expectedEntries := []models.LogEntry{
		{Timestamp: "2026-08-30T12:00:00Z", EventType: models.EventLocationUpdate},
	}

	mockService.EXPECT().RecentEvents(20, models.EventLocationUpdate).Return(expectedEntries).Times(1)

	w := makeRequest(router, "GET", "/api/v1/events?type=location_update&limit=20", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.LogEntry
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestGetEvents_TimeRange(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	from := "2026-08-30T00:00:00Z"
	to := "2026-08-30T23:59:59Z"

	mockService.EXPECT().EventsByTimeRange(from, to).Return(nil).Times(1)
	mockService.EXPECT().RecentEvents(gomock.Any(), gomock.Any()).Times(0) // Диапазон имеет приоритет

	w := makeRequest(router, "GET", "/api/v1/events?from="+from+"&to="+to, nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	stats := audit.Statistics{
		TotalEntries: 42,
		ByType: map[models.EventType]int{
			models.EventLocationUpdate: 40,
			models.EventAlert:          2,
		},
		Earliest: "2026-08-30T00:00:00Z",
		Latest:   "2026-08-30T12:00:00Z",
	}

	mockService.EXPECT().GetStatistics().Return(stats).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 42, resp.TotalEntries)
	assert.Equal(t, 2, resp.ByType["alert"])
}

func TestExportLog_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := ExportRequest{Path: "data/export.jsonl"}

	mockService.EXPECT().ExportLog(reqBody.Path).Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/log/export", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"exported_to":"data/export.jsonl"`)
}

func TestExportLog_MissingPath(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ExportLog(gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/log/export", bytes.NewBufferString(`{}`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Path' failed on the 'required' tag")
}

func TestExportLog_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := ExportRequest{Path: "/nonexistent/export.jsonl"}
	serviceError := errors.New("service: could not export audit log")

	mockService.EXPECT().ExportLog(reqBody.Path).Return(serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/log/export", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "could not export audit log")
}

func TestClearLog_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ClearLog().Times(1)

	w := makeRequest(router, "POST", "/api/v1/log/clear", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"cleared"`)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
