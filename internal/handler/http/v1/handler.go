package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/anwaraftab007/women-analytics-backend/internal/config"
	"github.com/anwaraftab007/women-analytics-backend/internal/models"
	"github.com/anwaraftab007/women-analytics-backend/internal/service"
)

type Handler struct {
	alertService service.AlertService
	crimeService service.CrimeService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(alertService service.AlertService, crimeService service.CrimeService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		alertService: alertService,
		crimeService: crimeService,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// @Summary Send an SOS alert
// @Description Dispatch an SOS alert: find users within the alert radius of the sender and broadcast the alert to dashboard viewers.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param sos body SOSRequest true "SOS request"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [post]
func (h *Handler) sendSOS(c *gin.Context) {
	var input SOSRequest
	log := h.logger.WithField("method", "sendSOS")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.alertService.HandleSOS(c.Request.Context(), input.UserID, *input.Latitude, *input.Longitude)
	if err != nil {
		if errors.Is(err, models.ErrEmptyUserID) || errors.Is(err, models.ErrInvalidCoordinate) {
			log.WithError(err).Warn("SOS rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to handle SOS in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Update user location
// @Description Store the latest known location of a user. Stale records are evicted after the configured TTL.
// @Tags Users
// @Accept json
// @Produce json
// @Param location body LocationUpdateRequest true "Location update request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location [post]
func (h *Handler) updateLocation(c *gin.Context) {
	var input LocationUpdateRequest
	log := h.logger.WithField("method", "updateLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.alertService.RegisterLocation(c.Request.Context(), input.UserID, *input.Latitude, *input.Longitude); err != nil {
		if errors.Is(err, models.ErrEmptyUserID) || errors.Is(err, models.ErrInvalidCoordinate) {
			log.WithError(err).Warn("Location update rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to register location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List tracked users
// @Description Get all users currently present in the location directory.
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {array} UserResponse
// @Router /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users := h.alertService.ListUsers(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToUserResponses(users))
}

// @Summary Get tracked user count
// @Description Get the number of users currently present in the location directory.
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} UserCountResponse
// @Router /users/count [get]
func (h *Handler) getUserCount(c *gin.Context) {
	c.JSON(http.StatusOK, UserCountResponse{Count: h.alertService.UserCount(c.Request.Context())})
}

// @Summary Remove a tracked user
// @Description Remove a user from the location directory by ID.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [delete]
func (h *Handler) removeUser(c *gin.Context) {
	userID := c.Param("id")
	log := h.logger.WithField("method", "removeUser").WithField("user_id", userID)

	if err := h.alertService.RemoveUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Warn("User not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.WithError(err).Error("Failed to remove user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List crime records
// @Description Get crime records, optionally filtered by category substring and by a circular area. lat and lng must be provided together; radius defaults to the alert radius.
// @Tags CrimeZones
// @Accept json
// @Produce json
// @Param type query string false "Category substring filter (case-insensitive)"
// @Param lat query number false "Area center latitude"
// @Param lng query number false "Area center longitude"
// @Param radius query int false "Area radius in meters"
// @Success 200 {array} CrimeRecordResponse
// @Failure 400 {object} map[string]string "Invalid filter parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crimezones [get]
func (h *Handler) listCrimeZones(c *gin.Context) {
	log := h.logger.WithField("method", "listCrimeZones")

	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if (latStr == "") != (lngStr == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng must be provided together"})
		return
	}

	var area *models.AreaFilter
	if latStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat != nil || errLng != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat or lng"})
			return
		}

		radius := h.cfg.SOSRadiusMeters
		if radiusStr := c.Query("radius"); radiusStr != "" {
			parsed, err := strconv.Atoi(radiusStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
				return
			}
			radius = parsed
		}
		area = &models.AreaFilter{Latitude: lat, Longitude: lng, RadiusMeters: radius}
	}

	records, err := h.crimeService.Search(c.Request.Context(), c.Query("type"), area)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCoordinate) || errors.Is(err, models.ErrInvalidRadius) {
			log.WithError(err).Warn("Crime search with invalid filters")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to search crime records in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToCrimeResponses(records))
}

// @Summary Get crime dataset statistics
// @Description Get total record count and per-category breakdown of the loaded crime dataset.
// @Tags CrimeZones
// @Accept json
// @Produce json
// @Success 200 {object} CrimeStatsResponse
// @Router /crimezones/stats [get]
func (h *Handler) getCrimeStats(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToCrimeStatsResponse(h.crimeService.Stats(c.Request.Context())))
}

// @Summary Reload the crime dataset
// @Description Re-read the crime data file and replace the in-memory dataset. Requires API key.
// @Tags CrimeZones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ReloadResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crimezones/reload [post]
func (h *Handler) reloadCrimeZones(c *gin.Context) {
	log := h.logger.WithField("method", "reloadCrimeZones")

	count, err := h.crimeService.Reload(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to reload crime data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload crime data"})
		return
	}

	c.JSON(http.StatusOK, ReloadResponse{Records: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
