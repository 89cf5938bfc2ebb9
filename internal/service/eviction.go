package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anwaraftab007/women-analytics-backend/internal/config"
	"github.com/anwaraftab007/women-analytics-backend/internal/metrics"
)

// EvictionWorker периодически удаляет из каталога пользователей записи,
// не обновлявшиеся дольше настроенного срока. Расписанием владеет воркер,
// каталог сам очистку не планирует.
type EvictionWorker struct {
	users  UserDirectory
	logger *logrus.Logger
	cfg    *config.Config
}

// NewEvictionWorker создает новый EvictionWorker
func NewEvictionWorker(users UserDirectory, logger *logrus.Logger, cfg *config.Config) *EvictionWorker {
	return &EvictionWorker{
		users:  users,
		logger: logger,
		cfg:    cfg,
	}
}

// Start запускает горутину периодической очистки
func (w *EvictionWorker) Start(ctx context.Context) {
	w.logger.WithFields(logrus.Fields{
		"interval": w.cfg.EvictionInterval.String(),
		"max_age":  w.cfg.UserMaxAge.String(),
	}).Info("Starting user eviction worker...")

	go func() {
		ticker := time.NewTicker(w.cfg.EvictionInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping user eviction worker.")
				return
			case <-ticker.C:
				w.sweep()
			}
		}
	}()
}

// sweep выполняет один проход очистки
func (w *EvictionWorker) sweep() {
	removed := w.users.EvictOlderThan(w.cfg.UserMaxAge)
	if removed > 0 {
		metrics.UsersEvictedTotal.Add(float64(removed))
		w.logger.WithField("removed", removed).Info("Evicted stale users")
	}
}
