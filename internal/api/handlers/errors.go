package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/nfse-api/internal/dps"
	"github.com/nexconsult/nfse-api/internal/logger"
	"github.com/nexconsult/nfse-api/internal/models"
	"github.com/nexconsult/nfse-api/internal/services"
	"github.com/sirupsen/logrus"
)

func writeError(c *gin.Context, status int, title, code, field, message string) {
	c.JSON(status, models.ErrorResponse{
		Error:     title,
		Message:   message,
		Code:      code,
		Field:     field,
		Timestamp: time.Now(),
		Path:      c.Request.URL.Path,
	})
}

// badRequest answers a body or parameter that could not be bound
func badRequest(c *gin.Context, log logrus.FieldLogger, err error) {
	logger.WithRequest(log, c.GetString("request_id")).WithError(err).Warn("Invalid request")
	writeError(c, http.StatusBadRequest, "Invalid request", "INVALID_REQUEST", "", err.Error())
}

// respondError maps service and validation errors to HTTP responses
func respondError(c *gin.Context, log logrus.FieldLogger, err error) {
	entry := logger.WithRequest(log, c.GetString("request_id"))

	var verr *dps.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(c, http.StatusUnprocessableEntity, "Validation failed", verr.Code(), verr.Field, verr.Message)
	case errors.Is(err, services.ErrInvalidCNPJ):
		writeError(c, http.StatusBadRequest, "Invalid CNPJ", "INVALID_CNPJ", "cnpj", "CNPJ check digits do not match")
	case errors.Is(err, services.ErrProfileNotFound):
		writeError(c, http.StatusNotFound, "Not found", "PROFILE_NOT_FOUND", "cnpj", "No company profile is registered for this CNPJ")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		entry.WithError(err).Warn("Request timed out")
		writeError(c, http.StatusGatewayTimeout, "Timeout", "REQUEST_TIMEOUT", "", "The request took too long to complete")
	default:
		entry.WithError(err).Error("Unexpected error")
		writeError(c, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", "", "An unexpected error occurred")
	}
}
