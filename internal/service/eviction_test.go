package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"github.com/anwaraftab007/women-analytics-backend/internal/config"
	"github.com/anwaraftab007/women-analytics-backend/internal/service/mocks"
)

// newTestEvictionWorker — вспомогательная функция для создания воркера с моками.
func newTestEvictionWorker(t *testing.T) (*EvictionWorker, *mocks.MockUserDirectory) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserDirectory(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		UserMaxAge:       24 * time.Hour,
		EvictionInterval: 6 * time.Hour,
	}

	return NewEvictionWorker(usersMock, logger, cfg), usersMock
}

func TestEvictionSweep_RemovesStale(t *testing.T) {
	// Подготовка
	worker, usersMock := newTestEvictionWorker(t)

	// Ожидания
	// Проход очистки использует настроенный срок жизни записи
	usersMock.EXPECT().EvictOlderThan(24 * time.Hour).Return(3).Times(1)

	// Действие
	worker.sweep()
}

func TestEvictionSweep_NothingToRemove(t *testing.T) {
	// Подготовка
	worker, usersMock := newTestEvictionWorker(t)

	// Ожидания
	usersMock.EXPECT().EvictOlderThan(24 * time.Hour).Return(0).Times(1)

	// Действие
	worker.sweep()
}
