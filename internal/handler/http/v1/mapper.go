package v1

import "github.com/anwaraftab007/women-analytics-backend/internal/models"

// ModelToAlertResponse преобразует доменную модель оповещения в DTO для ответа
func ModelToAlertResponse(model *models.SOSAlert) *AlertResponse {
	nearby := make([]NearbyUserResponse, len(model.NearbyUsers))
	for i, user := range model.NearbyUsers {
		nearby[i] = NearbyUserResponse{
			UserID:         user.UserID,
			Latitude:       user.Latitude,
			Longitude:      user.Longitude,
			DistanceMeters: user.DistanceMeters,
			BearingDegrees: user.BearingDegrees,
		}
	}
	return &AlertResponse{
		ID:          model.ID,
		UserID:      model.UserID,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Timestamp:   model.Timestamp,
		NearbyUsers: nearby,
	}
}

// ModelToUserResponse преобразует доменную модель пользователя в DTO
func ModelToUserResponse(model models.User) UserResponse {
	return UserResponse{
		UserID:    model.ID,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		LastSeen:  model.LastSeen,
	}
}

// ModelsToUserResponses преобразует слайс моделей пользователей в слайс DTO
func ModelsToUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ModelToUserResponse(user)
	}
	return responses
}

// ModelsToCrimeResponses преобразует слайс криминальных записей в слайс DTO
func ModelsToCrimeResponses(records []models.CrimeRecord) []CrimeRecordResponse {
	responses := make([]CrimeRecordResponse, len(records))
	for i, rec := range records {
		responses[i] = CrimeRecordResponse{
			ID:        rec.ID,
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
			Category:  rec.Category,
		}
	}
	return responses
}

// ModelToCrimeStatsResponse преобразует сводку набора в DTO
func ModelToCrimeStatsResponse(stats models.CrimeStats) CrimeStatsResponse {
	return CrimeStatsResponse{
		Total:      stats.Total,
		ByCategory: stats.ByCategory,
		Loaded:     stats.Loaded,
	}
}
