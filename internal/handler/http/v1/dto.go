package v1

import (
	"time"

	"github.com/google/uuid"
)

// SOSRequest DTO сигнала SOS
// @Description DTO сигнала SOS
type SOSRequest struct {
	UserID string `json:"user_id" validate:"required"`
	// Координаты — указатели: нулевая широта и долгота валидны,
	// required отличает отсутствующее поле от нулевого значения
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// LocationUpdateRequest DTO обновления местоположения пользователя
// @Description DTO обновления местоположения пользователя
type LocationUpdateRequest struct {
	UserID    string   `json:"user_id" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// NearbyUserResponse DTO получателя оповещения
// @Description DTO получателя оповещения
type NearbyUserResponse struct {
	UserID         string  `json:"user_id"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceMeters int     `json:"distance_meters"`
	BearingDegrees float64 `json:"bearing_degrees"`
}

// AlertResponse DTO для ответа с информацией об отправленном оповещении
// @Description DTO для ответа с информацией об отправленном оповещении
type AlertResponse struct {
	ID          uuid.UUID            `json:"id"`
	UserID      string               `json:"user_id"`
	Latitude    float64              `json:"latitude"`
	Longitude   float64              `json:"longitude"`
	Timestamp   time.Time            `json:"timestamp"`
	NearbyUsers []NearbyUserResponse `json:"nearby_users"`
}

// UserResponse DTO записи каталога пользователей
// @Description DTO записи каталога пользователей
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	LastSeen  time.Time `json:"last_seen"`
}

// UserCountResponse DTO для ответа с числом пользователей
// @Description DTO для ответа с числом пользователей
type UserCountResponse struct {
	Count int `json:"count"`
}

// CrimeRecordResponse DTO криминальной записи
// @Description DTO криминальной записи
type CrimeRecordResponse struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Category  string  `json:"category"`
}

// CrimeStatsResponse DTO сводки по набору криминальных записей
// @Description DTO сводки по набору криминальных записей
type CrimeStatsResponse struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
	Loaded     bool           `json:"loaded"`
}

// ReloadResponse DTO для ответа на перезагрузку набора
// @Description DTO для ответа на перезагрузку набора
type ReloadResponse struct {
	Records int `json:"records"`
}
