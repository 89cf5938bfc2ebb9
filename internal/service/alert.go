package service

//go:generate mockgen -source=alert.go -destination=mocks/mock_alert.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/anwaraftab007/women-analytics-backend/internal/config"
	"github.com/anwaraftab007/women-analytics-backend/internal/metrics"
	"github.com/anwaraftab007/women-analytics-backend/internal/models"
	"github.com/anwaraftab007/women-analytics-backend/pkg/geo"
)

// UserDirectory определяет контракт каталога последних координат пользователей
type UserDirectory interface {
	Upsert(userID string, lat, lng float64) (models.User, error)
	Get(userID string) (models.User, bool)
	All() []models.User
	Remove(userID string) bool
	Count() int
	FindNearby(lat, lng float64, radiusMeters int, excludeID string) []models.NearbyUser
	EvictOlderThan(maxAge time.Duration) int
}

// AlertPublisher определяет контракт канала доставки SOS-оповещений
type AlertPublisher interface {
	Name() string
	Publish(ctx context.Context, alert *models.SOSAlert) error
}

// AlertService определяет контракт бизнес-логики обработки SOS
type AlertService interface {
	HandleSOS(ctx context.Context, userID string, lat, lng float64) (*models.SOSAlert, error)
	RegisterLocation(ctx context.Context, userID string, lat, lng float64) (models.User, error)
	ListUsers(ctx context.Context) []models.User
	UserCount(ctx context.Context) int
	RemoveUser(ctx context.Context, userID string) error
}

type alertService struct {
	users      UserDirectory
	logger     *logrus.Logger
	cfg        *config.Config
	publishers []AlertPublisher
}

func NewAlertService(users UserDirectory, logger *logrus.Logger, cfg *config.Config, publishers ...AlertPublisher) AlertService {
	return &alertService{
		users:      users,
		logger:     logger,
		cfg:        cfg,
		publishers: publishers,
	}
}

// HandleSOS обрабатывает сигнал SOS: находит пользователей в радиусе от точки,
// собирает оповещение и передает его всем издателям. Доставка идет по принципу
// best-effort: ошибка издателя логируется и не прерывает обработку.
func (s *alertService) HandleSOS(ctx context.Context, userID string, lat, lng float64) (*models.SOSAlert, error) {
	start := time.Now()
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "HandleSOS",
		"user_id": userID,
	})

	if userID == "" {
		metrics.SOSRejectedTotal.WithLabelValues("empty_user_id").Inc()
		return nil, models.ErrEmptyUserID
	}
	if !geo.IsValidCoordinate(lat, lng) {
		log.WithFields(logrus.Fields{"latitude": lat, "longitude": lng}).Warn("SOS with invalid coordinates")
		metrics.SOSRejectedTotal.WithLabelValues("invalid_coordinates").Inc()
		return nil, models.ErrInvalidCoordinate
	}

	nearby := s.users.FindNearby(lat, lng, s.cfg.SOSRadiusMeters, userID)

	alert := &models.SOSAlert{
		ID:          uuid.New(),
		UserID:      userID,
		Latitude:    lat,
		Longitude:   lng,
		Timestamp:   time.Now().UTC(),
		NearbyUsers: nearby,
	}

	for _, pub := range s.publishers {
		if err := pub.Publish(ctx, alert); err != nil {
			log.WithError(err).WithField("publisher", pub.Name()).Warn("Failed to publish SOS alert")
			metrics.BroadcastFailedTotal.WithLabelValues(pub.Name()).Inc()
		}
	}

	// Сигнал SOS — тоже свежая координата отправителя
	if _, err := s.users.Upsert(userID, lat, lng); err != nil {
		log.WithError(err).Error("Failed to record sender location")
	}

	metrics.SOSAlertsTotal.Inc()
	metrics.SOSDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	log.WithFields(logrus.Fields{"alert_id": alert.ID, "nearby_count": len(nearby)}).Info("SOS alert dispatched")
	return alert, nil
}

// RegisterLocation сохраняет или обновляет последнее местоположение пользователя
func (s *alertService) RegisterLocation(ctx context.Context, userID string, lat, lng float64) (models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "RegisterLocation",
		"user_id": userID,
	})

	user, err := s.users.Upsert(userID, lat, lng)
	if err != nil {
		log.WithError(err).Warn("Failed to register location")
		return models.User{}, err
	}

	log.Debug("Location registered")
	return user, nil
}

// ListUsers возвращает все записи каталога пользователей
func (s *alertService) ListUsers(ctx context.Context) []models.User {
	return s.users.All()
}

// UserCount возвращает число пользователей в каталоге
func (s *alertService) UserCount(ctx context.Context) int {
	return s.users.Count()
}

// RemoveUser удаляет пользователя из каталога
func (s *alertService) RemoveUser(ctx context.Context, userID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "RemoveUser",
		"user_id": userID,
	})

	if userID == "" {
		return models.ErrEmptyUserID
	}
	if !s.users.Remove(userID) {
		log.Warn("Attempted to remove unknown user")
		return models.ErrUserNotFound
	}

	log.Info("User removed")
	return nil
}
