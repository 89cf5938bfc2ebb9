package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anwaraftab007/women-analytics-backend/internal/config"
	"github.com/anwaraftab007/women-analytics-backend/internal/models"
)

// newTestRelay — вспомогательная функция: релей без Redis, только доставка.
func newTestRelay(t *testing.T, cfg *config.Config) *Relay {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewRelay(nil, logger, cfg)
}

// marshalAlert сериализует оповещение так же, как издатель перед постановкой в очередь.
func marshalAlert(t *testing.T, alert *models.SOSAlert) string {
	t.Helper()

	payload, err := json.Marshal(alert)
	require.NoError(t, err)
	return string(payload)
}

func TestRelayDeliver_Success(t *testing.T) {
	// Подготовка
	var requests atomic.Int32
	var gotBody []byte
	var gotContentType, gotSignature string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:     server.URL,
		WebhookSecret:  "secret",
		WebhookTimeout: 2 * time.Second,
	}
	relay := newTestRelay(t, cfg)
	payload := marshalAlert(t, &models.SOSAlert{ID: uuid.New(), UserID: "user-1"})

	// Действие
	relay.deliver(context.Background(), payload)

	// Проверки
	require.Equal(t, int32(1), requests.Load())
	assert.Equal(t, payload, string(gotBody))
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, generateHMACSHA256(payload, "secret"), gotSignature)
}

func TestRelayDeliver_SingleAttemptOnServerError(t *testing.T) {
	// Подготовка
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:     server.URL,
		WebhookTimeout: 2 * time.Second,
	}
	relay := newTestRelay(t, cfg)
	payload := marshalAlert(t, &models.SOSAlert{ID: uuid.New(), UserID: "user-1"})

	// Действие
	relay.deliver(context.Background(), payload)

	// Проверки
	// Повторных попыток нет: событие отправляется ровно один раз
	assert.Equal(t, int32(1), requests.Load())
}

func TestRelayDeliver_NoSignatureWithoutSecret(t *testing.T) {
	// Подготовка
	signatureSeen := "unset"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signatureSeen = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:     server.URL,
		WebhookTimeout: 2 * time.Second,
	}
	relay := newTestRelay(t, cfg)

	// Действие
	relay.deliver(context.Background(), marshalAlert(t, &models.SOSAlert{ID: uuid.New()}))

	// Проверки
	assert.Empty(t, signatureSeen)
}

func TestRelayDeliver_SkipsWithoutURL(t *testing.T) {
	// Подготовка
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	cfg := &config.Config{WebhookTimeout: 2 * time.Second}
	relay := newTestRelay(t, cfg)

	// Действие
	relay.deliver(context.Background(), marshalAlert(t, &models.SOSAlert{ID: uuid.New()}))

	// Проверки
	assert.Equal(t, int32(0), requests.Load())
}

func TestRelayDeliver_InvalidPayload(t *testing.T) {
	// Подготовка
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:     server.URL,
		WebhookTimeout: 2 * time.Second,
	}
	relay := newTestRelay(t, cfg)

	// Действие
	relay.deliver(context.Background(), "not a json payload")

	// Проверки
	assert.Equal(t, int32(0), requests.Load())
}

func TestGenerateHMACSHA256(t *testing.T) {
	// Известный вектор: HMAC-SHA256("hello", "secret")
	signature := generateHMACSHA256("hello", "secret")
	assert.Equal(t, "88aab3ede8d3adf94d26ab90d3bafd4a2083070c3bcce9c014ee04a443847c0b", signature)
}
