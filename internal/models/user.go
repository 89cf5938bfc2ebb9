package models

import (
	"time"
)

// User представляет последнее известное местоположение пользователя
type User struct {
	ID        string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	LastSeen  time.Time `json:"last_seen"`
}

// NearbyUser — пользователь, найденный рядом с точкой SOS, с расстоянием
// в метрах и азимутом от точки SOS к пользователю
type NearbyUser struct {
	UserID         string  `json:"user_id"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceMeters int     `json:"distance_meters"`
	BearingDegrees float64 `json:"bearing_degrees"`
}
