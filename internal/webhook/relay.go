package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/anwaraftab007/women-analytics-backend/internal/config"
	"github.com/anwaraftab007/women-analytics-backend/internal/metrics"
	"github.com/anwaraftab007/women-analytics-backend/internal/models"
)

// Relay доставляет SOS-оповещения из очереди Redis на внешний вебхук.
// Каждое событие отправляется ровно один раз: гарантий доставки нет,
// неудачная попытка логируется и событие отбрасывается.
type Relay struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewRelay создает новый Relay
func NewRelay(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Relay {
	return &Relay{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину обработки очереди оповещений
func (r *Relay) Start(ctx context.Context) {
	r.logger.Info("Starting webhook relay...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stopping webhook relay.")
				return
			default:
				// BRPOP — блокирующее извлечение из правой части списка (очереди),
				// 0 означает бесконечное ожидание
				result, err := r.redisClient.BRPop(ctx, 0, alertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					r.logger.WithError(err).Error("Failed to pop sos alert from Redis")
					time.Sleep(r.cfg.WebhookTimeout)
					continue
				}

				// result[0] — ключ, result[1] — значение
				r.deliver(ctx, result[1])
			}
		}
	}()
}

// deliver выполняет единственную попытку доставки события на вебхук
func (r *Relay) deliver(ctx context.Context, payload string) {
	var alert models.SOSAlert
	if err := json.Unmarshal([]byte(payload), &alert); err != nil {
		r.logger.WithError(err).Error("Failed to unmarshal sos alert from Redis")
		return
	}

	log := r.logger.WithFields(logrus.Fields{
		"alert_id": alert.ID,
		"user_id":  alert.UserID,
	})

	if r.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.cfg.WebhookURL, bytes.NewBufferString(payload))
	if err != nil {
		log.WithError(err).Error("Failed to create webhook request")
		metrics.WebhookFailedTotal.Inc()
		return
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если WEBHOOK_SECRET задан
	if r.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(payload, r.cfg.WebhookSecret))
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Failed to send webhook")
		metrics.WebhookFailedTotal.Inc()
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Info("Webhook delivered successfully.")
		metrics.WebhookDeliveredTotal.Inc()
		return
	}

	log.WithField("status_code", resp.StatusCode).Warn("Webhook delivery failed")
	metrics.WebhookFailedTotal.Inc()
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
