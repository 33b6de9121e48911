package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/nfse-api/internal/models"
	"github.com/nexconsult/nfse-api/internal/services"
	"github.com/sirupsen/logrus"
)

// ProfileHandler handles issuer profile requests
type ProfileHandler struct {
	service services.ProfileServiceInterface
	logger  *logrus.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service services.ProfileServiceInterface, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger,
	}
}

// Get handles profile lookup
// @Summary Get a company profile
// @Tags Companies
// @Produce json
// @Param cnpj path string true "Issuer CNPJ (digits only)"
// @Success 200 {object} models.CompanyProfile
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/companies/{cnpj}/profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.service.Get(c.Request.Context(), c.Param("cnpj"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Put handles profile creation and replacement
// @Summary Save a company profile
// @Description Register the tax regime and municipal registration used when issuing
// @Tags Companies
// @Accept json
// @Produce json
// @Param cnpj path string true "Issuer CNPJ (digits only)"
// @Param request body models.ProfileRequest true "Profile"
// @Success 200 {object} models.CompanyProfile
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/companies/{cnpj}/profile [put]
func (h *ProfileHandler) Put(c *gin.Context) {
	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	profile, err := h.service.Save(c.Request.Context(), c.Param("cnpj"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Delete handles profile removal
// @Summary Delete a company profile
// @Tags Companies
// @Produce json
// @Param cnpj path string true "Issuer CNPJ (digits only)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/companies/{cnpj}/profile [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("cnpj")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Company profile deleted",
		"timestamp": time.Now(),
		"success":   true,
	})
}
