package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Сигнал SOS и обновление местоположения
	api.POST("/sos", h.sendSOS)
	api.POST("/location", h.updateLocation)

	// Маршруты каталога пользователей
	users := api.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/count", h.getUserCount)
		users.DELETE("/:id", h.removeUser)
	}

	// Маршруты криминальных зон
	crimezones := api.Group("/crimezones")
	{
		crimezones.GET("", h.listCrimeZones)
		crimezones.GET("/stats", h.getCrimeStats)
		// Перезагрузка набора — административная операция
		crimezones.POST("/reload", APIKeyAuthMiddleware(h.cfg, h.logger), h.reloadCrimeZones)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
