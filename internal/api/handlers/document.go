package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/nfse-api/internal/models"
	"github.com/nexconsult/nfse-api/internal/services"
	"github.com/sirupsen/logrus"
)

// DocumentHandler handles CPF/CNPJ validation requests
type DocumentHandler struct {
	service services.DocumentServiceInterface
	logger  *logrus.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(service services.DocumentServiceInterface, logger *logrus.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		logger:  logger,
	}
}

// Validate handles single document validation
// @Summary Validate a CPF or CNPJ
// @Description Check the Módulo 11 digits of a CPF or CNPJ, formatted or not
// @Tags Documents
// @Produce json
// @Param document path string true "CPF or CNPJ (digits only)"
// @Success 200 {object} utils.DocumentInfo
// @Router /api/v1/documents/{document}/validate [get]
func (h *DocumentHandler) Validate(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Validate(c.Param("document")))
}

// ValidateBatch handles batch document validation
// @Summary Validate several CPFs or CNPJs
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body models.BatchValidationRequest true "Documents (1 to 100)"
// @Success 200 {object} models.BatchValidationResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/documents/validate [post]
func (h *DocumentHandler) ValidateBatch(c *gin.Context) {
	var req models.BatchValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, h.service.ValidateBatch(req.Documents))
}
