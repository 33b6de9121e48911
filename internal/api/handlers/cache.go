package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/nfse-api/internal/models"
	"github.com/nexconsult/nfse-api/internal/services"
	"github.com/nexconsult/nfse-api/internal/utils"
	"github.com/sirupsen/logrus"
)

// CacheHandler handles cache management requests
type CacheHandler struct {
	cacheService services.CacheServiceInterface
	logger       *logrus.Logger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(cacheService services.CacheServiceInterface, logger *logrus.Logger) *CacheHandler {
	return &CacheHandler{
		cacheService: cacheService,
		logger:       logger,
	}
}

// GetStats handles cache statistics request
// @Summary Get cache statistics
// @Description Get Redis and memory cache statistics
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/cache/stats [get]
func (h *CacheHandler) GetStats(c *gin.Context) {
	requestID := c.GetString("request_id")

	stats, err := h.cacheService.GetStats(c.Request.Context())
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get cache statistics")

		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Internal server error",
			Message:   "Failed to retrieve cache statistics",
			Code:      "CACHE_STATS_ERROR",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":     stats,
		"timestamp": time.Now(),
		"health":    h.cacheService.Health(),
	})
}

// Clear handles cache clear request
// @Summary Clear all cache
// @Description Clear every cached company profile
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/cache/clear [delete]
func (h *CacheHandler) Clear(c *gin.Context) {
	requestID := c.GetString("request_id")

	if err := h.cacheService.Clear(c.Request.Context()); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to clear cache")

		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Internal server error",
			Message:   "Failed to clear cache",
			Code:      "CACHE_CLEAR_ERROR",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	h.logger.WithField("request_id", requestID).Info("Cache cleared successfully")

	c.JSON(http.StatusOK, gin.H{
		"message":   "Cache cleared successfully",
		"timestamp": time.Now(),
		"success":   true,
	})
}

// DeleteProfile handles eviction of one cached profile
// @Summary Evict a cached company profile
// @Tags Cache
// @Param cnpj path string true "Issuer CNPJ (digits only)"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/cache/profiles/{cnpj} [delete]
func (h *CacheHandler) DeleteProfile(c *gin.Context) {
	requestID := c.GetString("request_id")
	cnpjParam := c.Param("cnpj")

	if !utils.IsValidCNPJ(cnpjParam) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "Invalid CNPJ",
			Message:   "CNPJ check digits do not match",
			Code:      "INVALID_CNPJ",
			Field:     "cnpj",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	cnpj := utils.CleanDigits(cnpjParam)
	key := services.ProfileCacheKey(cnpj)

	exists, err := h.cacheService.Exists(c.Request.Context(), key)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:     "Not found",
			Message:   "Profile not found in cache",
			Code:      "PROFILE_NOT_IN_CACHE",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	if err := h.cacheService.Delete(c.Request.Context(), key); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"cnpj":       cnpj,
	}).Info("Profile evicted from cache")

	c.JSON(http.StatusOK, gin.H{
		"message":   "Profile evicted from cache",
		"cnpj":      utils.FormatCNPJ(cnpj),
		"timestamp": time.Now(),
		"success":   true,
	})
}
