package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/anwaraftab007/women-analytics-backend/internal/models"
)

const (
	alertQueueKey = "sos_alert_events"
)

// RedisAlertPublisher кладет SOS-оповещения в очередь Redis, откуда их
// забирает Relay для внешней доставки
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Name реализует service.AlertPublisher
func (p *RedisAlertPublisher) Name() string { return "webhook_queue" }

// Publish добавляет оповещение в левую часть списка (очереди)
func (p *RedisAlertPublisher) Publish(ctx context.Context, alert *models.SOSAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal sos alert: %w", err)
	}

	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish sos alert to Redis: %w", err)
	}
	return nil
}
