package models

import (
	"time"

	"github.com/nexconsult/nfse-api/internal/utils"
)

// BatchValidationRequest represents a batch CPF/CNPJ validation request
type BatchValidationRequest struct {
	Documents []string `json:"documents" binding:"required,min=1,max=100" example:"[\"52998224725\",\"11222333000181\"]"`
}

// BatchValidationResponse represents a batch CPF/CNPJ validation response
type BatchValidationResponse struct {
	Results   []utils.DocumentInfo `json:"results"`
	Total     int                  `json:"total" example:"2"`
	Valid     int                  `json:"valid" example:"2"`
	Invalid   int                  `json:"invalid" example:"0"`
	Timestamp time.Time            `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// ServiceCodeResponse is the canonical form of an LC116 code
type ServiceCodeResponse struct {
	Input string `json:"input" example:"0102"`
	LC116 string `json:"lc116" example:"01.02.00"`
}

// LocalityResponse is a resolved IBGE municipality code
type LocalityResponse struct {
	CodigoMunicipio string `json:"codigoMunicipio" example:"3550308"`
}
