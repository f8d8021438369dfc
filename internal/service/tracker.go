package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/kiddo_tracking_system/internal/audit"
	"github.com/shenikar/kiddo_tracking_system/internal/geo"
	"github.com/shenikar/kiddo_tracking_system/internal/models"
	"github.com/shenikar/kiddo_tracking_system/internal/simulator"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=tracker.go -destination=mocks/mock_tracker.go -package=mocks

// Engine определяет контракт симулятора движения для сервиса
type Engine interface {
	Start()
	Stop()
	IsRunning() bool
	CurrentLocation() models.Location
	EmergencyState() models.EmergencyState
	SetLocation(loc models.Location) error
	TriggerPanic()
	ResolvePanic()
	Reset()
	AddLocationObserver(obs simulator.LocationObserver)
	AddEmergencyObserver(obs simulator.EmergencyObserver)
}

// Recorder определяет контракт журнала аудита для сервиса
type Recorder interface {
	LogLocation(loc models.Location) error
	LogGeofenceExit(alert models.Alert, fence models.Geofence) error
	LogAlert(alert models.Alert) error
	LogGeofenceUpdate(fence models.Geofence) error
	LogPanicTrigger(source string) error
	LogPanicResolution(source string) error
	LogSystem(component, message string) error
	LogError(component, message string) error
	RecentEntries(limit int, eventType models.EventType) []models.LogEntry
	EntriesByTimeRange(from, to string) []models.LogEntry
	Statistics() audit.Statistics
	Export(path string) error
	Clear()
}

// Broadcaster рассылает события подключенным websocket-клиентам
type Broadcaster interface {
	BroadcastJSON(v any) error
}

// Status - сводка состояния системы
type Status struct {
	IsRunning       bool            `json:"is_running"`
	CurrentLocation models.Location `json:"current_location"`
	EmergencyState  string          `json:"emergency_state"`
	GeofenceActive  bool            `json:"geofence_active"`
	LastUpdate      string          `json:"last_update"`
}

// TrackerService определяет контракт бизнес-логики отслеживания
type TrackerService interface {
	StartSimulator()
	StopSimulator()
	GetStatus() Status
	GetLocation() models.Location
	SetLocation(loc models.Location) error
	GetGeofence() models.Geofence
	SetGeofence(fence models.Geofence) error
	TriggerPanic() models.EmergencyState
	ResolvePanic() models.EmergencyState
	ResetEmergency() models.EmergencyState
	RecentAlerts(limit int) []models.LogEntry
	RecentEvents(limit int, eventType models.EventType) []models.LogEntry
	EventsByTimeRange(from, to string) []models.LogEntry
	GetStatistics() audit.Statistics
	ExportLog(path string) error
	ClearLog()
}

type trackerService struct {
	engine    Engine
	recorder  Recorder
	publisher Publisher
	hub       Broadcaster
	logger    *logrus.Logger

	mu            sync.Mutex // защищает fence и lastExitAlert
	fence         models.Geofence
	alertCooldown time.Duration
	lastExitAlert time.Time
}

// Publisher определяет контракт публикации тревог во внешнюю очередь.
// Реализация живет в internal/webhook; интерфейс объявлен на стороне
// потребителя, чтобы сервис не зависел от транспорта.
type Publisher interface {
	PublishAlert(alert models.Alert) error
}

// NewTrackerService собирает сервис и подписывает его на события движка.
// Коллбэки наблюдателей выполняются в горутине цикла симуляции, поэтому
// вся их работа - только быстрые буферизованные операции.
func NewTrackerService(
	engine Engine,
	recorder Recorder,
	publisher Publisher,
	hub Broadcaster,
	fence models.Geofence,
	alertCooldown time.Duration,
	logger *logrus.Logger,
) (TrackerService, error) {
	if err := fence.Validate(); err != nil {
		return nil, fmt.Errorf("service: invalid initial geofence: %w", err)
	}

	s := &trackerService{
		engine:        engine,
		recorder:      recorder,
		publisher:     publisher,
		hub:           hub,
		logger:        logger,
		fence:         fence,
		alertCooldown: alertCooldown,
	}

	engine.AddLocationObserver(s.handleLocationUpdate)
	engine.AddEmergencyObserver(s.handleEmergencyChange)
	return s, nil
}

// handleLocationUpdate - наблюдатель позиции: аудит, проверка зоны,
// тревога при выходе за границу
func (s *trackerService) handleLocationUpdate(loc models.Location) error {
	if err := s.recorder.LogLocation(loc); err != nil {
		s.logger.WithError(err).Error("Failed to record location update")
	}

	if err := s.hub.BroadcastJSON(locationMessage(loc)); err != nil {
		s.logger.WithError(err).Debug("Failed to broadcast location update")
	}

	s.mu.Lock()
	fence := s.fence
	s.mu.Unlock()

	if geo.IsInside(loc, fence) {
		return nil
	}

	distance := geo.BoundaryDistance(loc, fence)
	if !s.shouldRaiseExitAlert() {
		// Период охлаждения: объект все еще снаружи, шторм тревог не нужен
		return nil
	}

	alert := models.NewAlert(
		models.AlertTypeGeofenceExit,
		fmt.Sprintf("Tracked subject has left the safe zone, %.1fm beyond the boundary", distance),
		models.SeverityHigh,
		&loc,
	)
	s.logger.WithFields(logrus.Fields{
		"service":         "tracker",
		"alert_id":        alert.ID,
		"boundary_meters": distance,
	}).Warn("Geofence exit detected")

	s.dispatchAlert(alert, fence)
	return nil
}

// handleEmergencyChange - наблюдатель состояния тревоги
func (s *trackerService) handleEmergencyChange(state models.EmergencyState) error {
	severity := models.SeverityMedium
	if state == models.EmergencyPanic {
		severity = models.SeverityCritical
	}

	loc := s.engine.CurrentLocation()
	alert := models.NewAlert(
		models.AlertTypeEmergencyState,
		fmt.Sprintf("Emergency state changed to: %s", state),
		severity,
		&loc,
	)

	s.mu.Lock()
	fence := s.fence
	s.mu.Unlock()
	s.dispatchAlert(alert, fence)
	return nil
}

// dispatchAlert записывает тревогу в аудит и рассылает ее наружу.
// Любой отказ здесь best-effort: логируется и не прерывает остальных получателей.
func (s *trackerService) dispatchAlert(alert models.Alert, fence models.Geofence) {
	if alert.Type == models.AlertTypeGeofenceExit {
		if err := s.recorder.LogGeofenceExit(alert, fence); err != nil {
			s.logger.WithError(err).Error("Failed to record geofence exit alert")
		}
	} else {
		if err := s.recorder.LogAlert(alert); err != nil {
			s.logger.WithError(err).Error("Failed to record alert")
		}
	}

	if err := s.publisher.PublishAlert(alert); err != nil {
		s.logger.WithError(err).Error("Failed to publish alert to webhook queue")
		if logErr := s.recorder.LogError("webhook", err.Error()); logErr != nil {
			s.logger.WithError(logErr).Error("Failed to record publish failure")
		}
	}
	if err := s.hub.BroadcastJSON(alertMessage(alert)); err != nil {
		s.logger.WithError(err).Debug("Failed to broadcast alert")
	}
}

// shouldRaiseExitAlert проверяет и обновляет период охлаждения тревог выхода
func (s *trackerService) shouldRaiseExitAlert() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if s.alertCooldown > 0 && now.Sub(s.lastExitAlert) < s.alertCooldown {
		return false
	}
	s.lastExitAlert = now
	return true
}

func (s *trackerService) StartSimulator() {
	s.engine.Start()
	if err := s.recorder.LogSystem("simulator", "simulator started"); err != nil {
		s.logger.WithError(err).Error("Failed to record simulator start")
	}
}

func (s *trackerService) StopSimulator() {
	s.engine.Stop()
	if err := s.recorder.LogSystem("simulator", "simulator stopped"); err != nil {
		s.logger.WithError(err).Error("Failed to record simulator stop")
	}
}

func (s *trackerService) GetStatus() Status {
	s.mu.Lock()
	fenceActive := s.fence.RadiusMeters > 0
	s.mu.Unlock()

	return Status{
		IsRunning:       s.engine.IsRunning(),
		CurrentLocation: s.engine.CurrentLocation(),
		EmergencyState:  s.engine.EmergencyState().String(),
		GeofenceActive:  fenceActive,
		LastUpdate:      time.Now().UTC().Format(time.RFC3339),
	}
}

func (s *trackerService) GetLocation() models.Location {
	return s.engine.CurrentLocation()
}

// SetLocation вручную задает позицию; наблюдатели движка отработают
// аудит и проверку зоны так же, как для тика симуляции
func (s *trackerService) SetLocation(loc models.Location) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracker",
		"method":  "SetLocation",
	})

	if err := s.engine.SetLocation(loc); err != nil {
		log.WithError(err).Warn("Rejected manual location")
		return fmt.Errorf("service: could not set location: %w", err)
	}

	log.Info("Location set manually")
	return nil
}

func (s *trackerService) GetGeofence() models.Geofence {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fence
}

// SetGeofence заменяет безопасную зону и фиксирует смену конфигурации в аудите
func (s *trackerService) SetGeofence(fence models.Geofence) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracker",
		"method":  "SetGeofence",
	})

	if err := fence.Validate(); err != nil {
		log.WithError(err).Warn("Rejected invalid geofence")
		return fmt.Errorf("service: could not set geofence: %w", err)
	}

	s.mu.Lock()
	s.fence = fence
	s.mu.Unlock()

	if err := s.recorder.LogGeofenceUpdate(fence); err != nil {
		log.WithError(err).Error("Failed to record geofence update")
	}
	log.WithField("radius_meters", fence.RadiusMeters).Info("Geofence updated")
	return nil
}

func (s *trackerService) TriggerPanic() models.EmergencyState {
	s.engine.TriggerPanic()
	if err := s.recorder.LogPanicTrigger("api"); err != nil {
		s.logger.WithError(err).Error("Failed to record panic trigger")
	}
	return s.engine.EmergencyState()
}

func (s *trackerService) ResolvePanic() models.EmergencyState {
	s.engine.ResolvePanic()
	if err := s.recorder.LogPanicResolution("api"); err != nil {
		s.logger.WithError(err).Error("Failed to record panic resolution")
	}
	return s.engine.EmergencyState()
}

func (s *trackerService) ResetEmergency() models.EmergencyState {
	s.engine.Reset()
	return s.engine.EmergencyState()
}

func (s *trackerService) RecentAlerts(limit int) []models.LogEntry {
	return s.recorder.RecentEntries(limit, models.EventAlert)
}

func (s *trackerService) RecentEvents(limit int, eventType models.EventType) []models.LogEntry {
	return s.recorder.RecentEntries(limit, eventType)
}

func (s *trackerService) EventsByTimeRange(from, to string) []models.LogEntry {
	return s.recorder.EntriesByTimeRange(from, to)
}

func (s *trackerService) GetStatistics() audit.Statistics {
	return s.recorder.Statistics()
}

func (s *trackerService) ExportLog(path string) error {
	if err := s.recorder.Export(path); err != nil {
		s.logger.WithError(err).Error("Failed to export audit log")
		return fmt.Errorf("service: could not export audit log: %w", err)
	}
	return nil
}

// ClearLog полностью очищает журнал аудита и фиксирует сам факт очистки
func (s *trackerService) ClearLog() {
	s.recorder.Clear()
	if err := s.recorder.LogSystem("audit", "audit log cleared"); err != nil {
		s.logger.WithError(err).Error("Failed to record audit log clear")
	}
	s.logger.WithField("service", "tracker").Info("Audit log cleared")
}

// Сообщения для websocket-клиентов

type wsMessage struct {
	Kind    string `json:"kind"`
	Payload any    `json:"payload"`
}

func locationMessage(loc models.Location) wsMessage {
	return wsMessage{Kind: "location", Payload: loc}
}

func alertMessage(alert models.Alert) wsMessage {
	return wsMessage{Kind: "alert", Payload: alert}
}
