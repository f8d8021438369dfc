package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/kiddo_tracking_system/internal/models"
)

const (
	alertQueueKey = "kiddo_alert_events"

	// publishTimeout ограничивает постановку в очередь, чтобы недоступный
	// Redis не задерживал горутину цикла симуляции
	publishTimeout = 2 * time.Second
)

// AlertEvent - полезная нагрузка вебхука о тревоге
type AlertEvent struct {
	AlertID   string           `json:"alert_id"`
	Type      string           `json:"type"`
	Message   string           `json:"message"`
	Severity  string           `json:"severity"`
	Location  *models.Location `json:"location,omitempty"`
	Timestamp string           `json:"timestamp"`
}

// RedisAlertPublisher ставит события тревог в очередь Redis;
// доставкой по HTTP занимается DeliveryWorker
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{redisClient: client}
}

// PublishAlert публикует тревогу в очередь Redis
func (p *RedisAlertPublisher) PublishAlert(alert models.Alert) error {
	event := AlertEvent{
		AlertID:   alert.ID.String(),
		Type:      alert.Type,
		Message:   alert.Message,
		Severity:  alert.Severity,
		Location:  alert.Location,
		Timestamp: alert.Timestamp,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	// LPUSH в левую часть списка, воркер забирает BRPop с правой
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
