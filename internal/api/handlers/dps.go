package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/nfse-api/internal/dps"
	"github.com/nexconsult/nfse-api/internal/models"
	"github.com/nexconsult/nfse-api/internal/services"
	"github.com/nexconsult/nfse-api/internal/utils"
	"github.com/sirupsen/logrus"
)

// DPSHandler handles DPS payload requests
type DPSHandler struct {
	service services.DPSServiceInterface
	logger  *logrus.Logger
}

// NewDPSHandler creates a new DPS handler
func NewDPSHandler(service services.DPSServiceInterface, logger *logrus.Logger) *DPSHandler {
	return &DPSHandler{
		service: service,
		logger:  logger,
	}
}

// Build handles DPS building with an inline issuer profile
// @Summary Build a DPS payload
// @Description Normalize an emission form into the infDPS envelope expected by the NFS-e API
// @Tags DPS
// @Accept json
// @Produce json
// @Param request body models.BuildDPSRequest true "Form and issuer profile"
// @Success 200 {object} models.BuildDPSResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/v1/dps/build [post]
func (h *DPSHandler) Build(c *gin.Context) {
	var req models.BuildDPSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	payload, err := h.service.Build(c.Request.Context(), req.Form.ToForm(), req.Profile.ToProfile())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newBuildResponse(payload))
}

// BuildForCompany handles DPS building with the stored issuer profile
// @Summary Build a DPS payload for a registered company
// @Description Load the company profile by CNPJ and normalize the emission form
// @Tags DPS
// @Accept json
// @Produce json
// @Param cnpj path string true "Issuer CNPJ (digits only)"
// @Param request body models.InvoiceFormRequest true "Emission form"
// @Success 200 {object} models.BuildDPSResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/v1/companies/{cnpj}/dps [post]
func (h *DPSHandler) BuildForCompany(c *gin.Context) {
	var req models.InvoiceFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	payload, err := h.service.BuildForCompany(c.Request.Context(), c.Param("cnpj"), req.ToForm())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newBuildResponse(payload))
}

// NormalizeServiceCode handles LC116 code normalization
// @Summary Normalize an LC116 service code
// @Tags Catalog
// @Produce json
// @Param code path string true "Service code, e.g. 0102 or 01.02"
// @Success 200 {object} models.ServiceCodeResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/v1/service-codes/{code}/normalize [get]
func (h *DPSHandler) NormalizeServiceCode(c *gin.Context) {
	code := c.Param("code")

	normalized, err := h.service.NormalizeServiceCode(code)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.ServiceCodeResponse{Input: code, LC116: normalized})
}

// ResolveLocality handles municipality code resolution
// @Summary Resolve an IBGE municipality code
// @Tags Catalog
// @Produce json
// @Param code query string false "Explicit IBGE code"
// @Param city query string false "City name"
// @Success 200 {object} models.LocalityResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/v1/localities/resolve [get]
func (h *DPSHandler) ResolveLocality(c *gin.Context) {
	in := dps.LocalityInput{
		Code: c.Query("code"),
		City: c.Query("city"),
	}
	if in.IsEmpty() {
		badRequest(c, h.logger, errors.New("code or city is required"))
		return
	}

	code, err := h.service.ResolveLocality(in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.LocalityResponse{CodigoMunicipio: code})
}

func newBuildResponse(payload *dps.NormalizedDPS) models.BuildDPSResponse {
	return models.BuildDPSResponse{
		InfDPS: payload,
		Summary: models.DPSSummary{
			ValorServicos: utils.FormatBRL(payload.Values.Gross.Decimal),
			ValorRetido:   utils.FormatBRL(payload.Values.Withheld.Total()),
			ValorLiquido:  utils.FormatBRL(payload.Values.Net.Decimal),
			Tomador:       utils.FormatDocument(payload.Taker.Document()),
		},
	}
}
