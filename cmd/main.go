package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/kiddo_tracking_system/internal/audit"
	"github.com/shenikar/kiddo_tracking_system/internal/config"
	v1 "github.com/shenikar/kiddo_tracking_system/internal/handler/http/v1"
	"github.com/shenikar/kiddo_tracking_system/internal/models"
	"github.com/shenikar/kiddo_tracking_system/internal/service"
	"github.com/shenikar/kiddo_tracking_system/internal/simulator"
	"github.com/shenikar/kiddo_tracking_system/internal/webhook"
	"github.com/shenikar/kiddo_tracking_system/pkg/logger"
	redisclient "github.com/shenikar/kiddo_tracking_system/pkg/redis"
	"github.com/shenikar/kiddo_tracking_system/pkg/ws"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/kiddo_tracking_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Kiddo Tracking System API
// @version 1.0
// @description This is a Kiddo Tracking System API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация журнала аудита
	auditLog, err := audit.New(audit.Config{
		FilePath:    cfg.LogFilePath(),
		BufferSize:  cfg.BufferSize,
		MaxFileSize: cfg.MaxFileSize,
		CacheSize:   cfg.CacheSize,
	}, log)
	if err != nil {
		log.Fatalf("Failed to open audit log: %v", err)
	}
	log.Infof("Audit log opened at %s", cfg.LogFilePath())

	// Инициализация симулятора движения
	engine, err := simulator.NewEngine(simulator.Config{
		HomeLatitude:      cfg.HomeLatitude,
		HomeLongitude:     cfg.HomeLongitude,
		UpdateFrequency:   cfg.UpdateFrequency,
		MaxWanderDistance: cfg.MaxWanderDistance,
		PanicProbability:  cfg.PanicProbability,
	}, log)
	if err != nil {
		log.Fatalf("Failed to create simulator engine: %v", err)
	}

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя тревог
	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)

	// Инициализация и запуск воркера доставки вебхуков
	deliveryWorker := webhook.NewDeliveryWorker(redisClient, log, cfg)
	deliveryWorker.Start(ctx)

	// Инициализация WebSocket-хаба
	hub := ws.NewHub(log)
	go hub.Run()

	// Безопасная зона по умолчанию вокруг домашней точки
	fence, err := models.NewGeofence(
		models.Location{Latitude: cfg.HomeLatitude, Longitude: cfg.HomeLongitude},
		cfg.DefaultGeofenceRadius,
	)
	if err != nil {
		log.Fatalf("Failed to build default geofence: %v", err)
	}

	// Инициализация сервисов
	trackerService, err := service.NewTrackerService(engine, auditLog, alertPublisher, hub, fence, cfg.AlertCooldown, log)
	if err != nil {
		log.Fatalf("Failed to create tracker service: %v", err)
	}

	// Симуляция стартует сразу, остановить можно через API
	trackerService.StartSimulator()

	// Инициализация хэндлеров
	handler := v1.NewHandler(trackerService, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	if len(cfg.APIKeys) > 0 {
		api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	}
	handler.RegisterRoutes(api)

	// WebSocket-поток для живого отображения, без аутентификации
	router.GET("/ws", handler.ServeWS)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем симуляцию и сбрасываем буфер журнала на диск
	trackerService.StopSimulator()
	if err := auditLog.Close(); err != nil {
		log.Errorf("Failed to close audit log: %v", err)
	}

	log.Info("Server gracefully stopped")
}
