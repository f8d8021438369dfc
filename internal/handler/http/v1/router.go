package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты местоположения
	location := api.Group("/location")
	{
		location.GET("", h.getLocation)
		location.POST("", h.setLocation)
	}

	// Маршруты безопасной зоны
	geofence := api.Group("/geofence")
	{
		geofence.GET("", h.getGeofence)
		geofence.POST("", h.setGeofence)
	}

	// Маршруты кнопки тревоги
	emergency := api.Group("/panic")
	{
		emergency.POST("", h.triggerPanic)
		emergency.POST("/resolve", h.resolvePanic)
		emergency.POST("/reset", h.resetEmergency)
	}

	// Маршруты управления симулятором
	simulator := api.Group("/simulator")
	{
		simulator.POST("/start", h.startSimulator)
		simulator.POST("/stop", h.stopSimulator)
	}

	// Маршруты чтения состояния и журнала аудита
	api.GET("/status", h.getStatus)
	api.GET("/alerts", h.getAlerts)
	api.GET("/events", h.getEvents)
	api.GET("/stats", h.getStats)

	// Маршруты обслуживания журнала аудита
	auditLog := api.Group("/log")
	{
		auditLog.POST("/export", h.exportLog)
		auditLog.POST("/clear", h.clearLog)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
