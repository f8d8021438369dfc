package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/kiddo_tracking_system/internal/config"
	"github.com/shenikar/kiddo_tracking_system/internal/models"
	"github.com/shenikar/kiddo_tracking_system/internal/service"
	"github.com/shenikar/kiddo_tracking_system/pkg/ws"
	"github.com/sirupsen/logrus"
)

const defaultEventLimit = 50

type Handler struct {
	trackerService service.TrackerService
	hub            *ws.Hub
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(trackerService service.TrackerService, hub *ws.Hub, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		trackerService: trackerService,
		hub:            hub,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// @Summary Get current location
// @Description Get the last known location of the tracked subject. Requires API key.
// @Tags Tracking
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} LocationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location [get]
func (h *Handler) getLocation(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToLocationResponse(h.trackerService.GetLocation()))
}

// @Summary Set location manually
// @Description Override the simulated location with a manual position. Requires API key.
// @Tags Tracking
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationRequest true "Location request"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location [post]
func (h *Handler) setLocation(c *gin.Context) {
	var input LocationRequest
	log := h.logger.WithField("method", "setLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.trackerService.SetLocation(DTOToLocationModel(input)); err != nil {
		log.WithError(err).Warn("Failed to set location in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(h.trackerService.GetLocation()))
}

// @Summary Get geofence
// @Description Get the active safe zone. Requires API key.
// @Tags Geofence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} GeofenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /geofence [get]
func (h *Handler) getGeofence(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToGeofenceResponse(h.trackerService.GetGeofence()))
}

// @Summary Update geofence
// @Description Replace the active safe zone. Requires API key.
// @Tags Geofence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param geofence body GeofenceRequest true "Geofence request"
// @Success 200 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /geofence [post]
func (h *Handler) setGeofence(c *gin.Context) {
	var input GeofenceRequest
	log := h.logger.WithField("method", "setGeofence")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fence := DTOToGeofenceModel(input)
	if err := h.trackerService.SetGeofence(fence); err != nil {
		log.WithError(err).Warn("Failed to set geofence in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ModelToGeofenceResponse(fence))
}

// @Summary Trigger panic
// @Description Activate the panic button for the tracked subject. Requires API key.
// @Tags Emergency
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} EmergencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /panic [post]
func (h *Handler) triggerPanic(c *gin.Context) {
	state := h.trackerService.TriggerPanic()
	c.JSON(http.StatusOK, EmergencyResponse{EmergencyState: state.String()})
}

// @Summary Resolve panic
// @Description Mark the active panic as resolved. Requires API key.
// @Tags Emergency
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} EmergencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /panic/resolve [post]
func (h *Handler) resolvePanic(c *gin.Context) {
	state := h.trackerService.ResolvePanic()
	c.JSON(http.StatusOK, EmergencyResponse{EmergencyState: state.String()})
}

// @Summary Reset emergency state
// @Description Return the emergency state machine to normal. Requires API key.
// @Tags Emergency
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} EmergencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /panic/reset [post]
func (h *Handler) resetEmergency(c *gin.Context) {
	state := h.trackerService.ResetEmergency()
	c.JSON(http.StatusOK, EmergencyResponse{EmergencyState: state.String()})
}

// @Summary Start simulator
// @Description Start the movement simulator. Requires API key.
// @Tags Simulator
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /simulator/start [post]
func (h *Handler) startSimulator(c *gin.Context) {
	h.trackerService.StartSimulator()
	c.JSON(http.StatusOK, StatusToResponse(h.trackerService.GetStatus()))
}

// @Summary Stop simulator
// @Description Stop the movement simulator. Requires API key.
// @Tags Simulator
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /simulator/stop [post]
func (h *Handler) stopSimulator(c *gin.Context) {
	h.trackerService.StopSimulator()
	c.JSON(http.StatusOK, StatusToResponse(h.trackerService.GetStatus()))
}

// @Summary Get system status
// @Description Get a summary of the tracking system state. Requires API key.
// @Tags System
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /status [get]
func (h *Handler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusToResponse(h.trackerService.GetStatus()))
}

// @Summary Get recent alerts
// @Description Get recent alert entries from the audit log, newest last. Requires API key.
// @Tags Audit
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum number of entries" default(50)
// @Success 200 {array} models.LogEntry
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /alerts [get]
func (h *Handler) getAlerts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultEventLimit)))
	c.JSON(http.StatusOK, h.trackerService.RecentAlerts(limit))
}

// @Summary Query audit events
// @Description Get audit log entries filtered by event type, or by RFC3339 time range when both from and to are provided. Requires API key.
// @Tags Audit
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param type query string false "Event type filter (location_update, alert, geofence_update, panic_trigger, panic_resolved, system, error)"
// @Param from query string false "Range start, RFC3339"
// @Param to query string false "Range end, RFC3339"
// @Param limit query int false "Maximum number of entries" default(50)
// @Success 200 {array} models.LogEntry
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /events [get]
func (h *Handler) getEvents(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from != "" && to != "" {
		c.JSON(http.StatusOK, h.trackerService.EventsByTimeRange(from, to))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultEventLimit)))
	eventType := models.EventType(c.Query("type"))
	c.JSON(http.StatusOK, h.trackerService.RecentEvents(limit, eventType))
}

// @Summary Get audit log statistics
// @Description Get entry counts per event type and the covered time span. Requires API key.
// @Tags Audit
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, StatisticsToResponse(h.trackerService.GetStatistics()))
}

// @Summary Export audit log
// @Description Flush the audit log and copy it to the given file path on the server. Requires API key.
// @Tags Audit
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param export body ExportRequest true "Export request"
// @Success 200 {object} map[string]string "Export destination"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Export failed"
// @Router /log/export [post]
func (h *Handler) exportLog(c *gin.Context) {
	var input ExportRequest
	log := h.logger.WithField("method", "exportLog")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.trackerService.ExportLog(input.Path); err != nil {
		log.WithError(err).Error("Failed to export audit log")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exported_to": input.Path})
}

// @Summary Clear audit log
// @Description Remove all audit log entries from memory and disk. Requires API key.
// @Tags Audit
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]string "Status cleared"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /log/clear [post]
func (h *Handler) clearLog(c *gin.Context) {
	h.trackerService.ClearLog()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
