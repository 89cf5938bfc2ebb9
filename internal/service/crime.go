package service

//go:generate mockgen -source=crime.go -destination=mocks/mock_crime.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/anwaraftab007/women-analytics-backend/internal/config"
	"github.com/anwaraftab007/women-analytics-backend/internal/metrics"
	"github.com/anwaraftab007/women-analytics-backend/internal/models"
)

// CrimeStore определяет контракт набора криминальных записей
type CrimeStore interface {
	Load(ctx context.Context, path string) (int, error)
	GetAll() []models.CrimeRecord
	FilterByType(category string) []models.CrimeRecord
	FilterByArea(lat, lng float64, radiusMeters int) ([]models.CrimeRecord, error)
	Query(category string, area *models.AreaFilter) ([]models.CrimeRecord, error)
	Stats() models.CrimeStats
}

// CrimeService определяет контракт бизнес-логики криминальных зон
type CrimeService interface {
	Search(ctx context.Context, category string, area *models.AreaFilter) ([]models.CrimeRecord, error)
	Stats(ctx context.Context) models.CrimeStats
	Reload(ctx context.Context) (int, error)
}

type crimeService struct {
	store  CrimeStore
	logger *logrus.Logger
	cfg    *config.Config
}

func NewCrimeService(store CrimeStore, logger *logrus.Logger, cfg *config.Config) CrimeService {
	return &crimeService{
		store:  store,
		logger: logger,
		cfg:    cfg,
	}
}

// Search возвращает записи, отфильтрованные по подстроке категории и области
func (s *crimeService) Search(ctx context.Context, category string, area *models.AreaFilter) ([]models.CrimeRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "crime",
		"method":   "Search",
		"category": category,
	})
	metrics.CrimeQueriesTotal.Inc()

	records, err := s.store.Query(category, area)
	if err != nil {
		log.WithError(err).Warn("Crime search with invalid area")
		return nil, err
	}

	log.WithField("count", len(records)).Debug("Crime search completed")
	return records, nil
}

// Stats возвращает сводку по загруженному набору
func (s *crimeService) Stats(ctx context.Context) models.CrimeStats {
	return s.store.Stats()
}

// Reload перечитывает файл с данными и заменяет набор целиком
func (s *crimeService) Reload(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "crime",
		"method":  "Reload",
		"path":    s.cfg.CrimeDataPath,
	})
	log.Info("Reloading crime dataset")

	count, err := s.store.Load(ctx, s.cfg.CrimeDataPath)
	if err != nil {
		log.WithError(err).Error("Failed to reload crime dataset")
		return 0, fmt.Errorf("service: could not reload crime dataset: %w", err)
	}

	log.WithField("records", count).Info("Crime dataset reloaded")
	return count, nil
}
