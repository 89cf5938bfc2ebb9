package models

import (
	"time"

	"github.com/google/uuid"
)

// SOSAlert — собранное оповещение, рассылаемое всем каналам доставки
type SOSAlert struct {
	ID          uuid.UUID    `json:"id"`
	UserID      string       `json:"user_id"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	Timestamp   time.Time    `json:"timestamp"`
	NearbyUsers []NearbyUser `json:"nearby_users"`
}
