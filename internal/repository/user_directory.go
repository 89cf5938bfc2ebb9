package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anwaraftab007/women-analytics-backend/internal/models"
	"github.com/anwaraftab007/women-analytics-backend/internal/service"
	"github.com/anwaraftab007/women-analytics-backend/pkg/geo"
)

// UserDirectory хранит последние известные координаты пользователей в памяти.
// Все операции потокобезопасны. Фоновую очистку планирует вызывающая сторона.
type UserDirectory struct {
	mu     sync.RWMutex
	users  map[string]models.User
	logger *logrus.Logger

	// now подменяется в тестах для контроля времени
	now func() time.Time
}

func NewUserDirectory(logger *logrus.Logger) service.UserDirectory {
	return &UserDirectory{
		users:  make(map[string]models.User),
		logger: logger,
		now:    time.Now,
	}
}

// Upsert создает или обновляет запись пользователя и возвращает её снимок.
// Нулевые широта и долгота — валидные координаты.
func (d *UserDirectory) Upsert(userID string, lat, lng float64) (models.User, error) {
	if userID == "" {
		return models.User{}, models.ErrEmptyUserID
	}
	if !geo.IsValidCoordinate(lat, lng) {
		return models.User{}, models.ErrInvalidCoordinate
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	user := models.User{
		ID:        userID,
		Latitude:  lat,
		Longitude: lng,
		LastSeen:  d.now(),
	}
	d.users[userID] = user
	return user, nil
}

// Get возвращает запись пользователя по идентификатору
func (d *UserDirectory) Get(userID string) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[userID]
	return user, ok
}

// All возвращает снимок всех записей, отсортированный по идентификатору
func (d *UserDirectory) All() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users := make([]models.User, 0, len(d.users))
	for _, user := range d.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// Remove удаляет запись пользователя и сообщает, существовала ли она
func (d *UserDirectory) Remove(userID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[userID]; !ok {
		return false
	}
	delete(d.users, userID)
	return true
}

// Count возвращает число записей в каталоге
func (d *UserDirectory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.users)
}

// FindNearby возвращает пользователей в радиусе от точки, по возрастанию
// расстояния. Граница радиуса включается, пользователь excludeID пропускается.
// Невалидные параметры поиска дают пустой результат и предупреждение в логе.
func (d *UserDirectory) FindNearby(lat, lng float64, radiusMeters int, excludeID string) []models.NearbyUser {
	if !geo.IsValidCoordinate(lat, lng) || radiusMeters <= 0 {
		d.logger.WithFields(logrus.Fields{
			"latitude":  lat,
			"longitude": lng,
			"radius":    radiusMeters,
		}).Warn("Nearby search with invalid parameters")
		return []models.NearbyUser{}
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	nearby := make([]models.NearbyUser, 0)
	for id, user := range d.users {
		if id == excludeID {
			continue
		}
		if !geo.IsValidCoordinate(user.Latitude, user.Longitude) {
			continue
		}
		dist := geo.DistanceMeters(lat, lng, user.Latitude, user.Longitude)
		if dist > radiusMeters {
			continue
		}
		nearby = append(nearby, models.NearbyUser{
			UserID:         id,
			Latitude:       user.Latitude,
			Longitude:      user.Longitude,
			DistanceMeters: dist,
			BearingDegrees: geo.BearingDegrees(lat, lng, user.Latitude, user.Longitude),
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})
	return nearby
}

// EvictOlderThan удаляет записи, не обновлявшиеся дольше maxAge, и возвращает
// число удаленных. Запись с возрастом ровно maxAge остается.
func (d *UserDirectory) EvictOlderThan(maxAge time.Duration) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	removed := 0
	for id, user := range d.users {
		if now.Sub(user.LastSeen) > maxAge {
			delete(d.users, id)
			removed++
		}
	}
	return removed
}
