package services

import (
	"strconv"
	"time"

	"github.com/nexconsult/nfse-api/internal/metrics"
	"github.com/nexconsult/nfse-api/internal/models"
	"github.com/nexconsult/nfse-api/internal/utils"
)

// DocumentService validates CPF and CNPJ check digits
type DocumentService struct {
	metrics *metrics.Registry
}

func NewDocumentService(reg *metrics.Registry) *DocumentService {
	return &DocumentService{metrics: reg}
}

// Validate analyzes a single document
func (s *DocumentService) Validate(document string) utils.DocumentInfo {
	info := utils.AnalyzeDocument(document)
	s.metrics.DocumentValidations.WithLabelValues(info.Type, strconv.FormatBool(info.Valid)).Inc()
	return info
}

// ValidateBatch analyzes documents in order
func (s *DocumentService) ValidateBatch(documents []string) *models.BatchValidationResponse {
	resp := &models.BatchValidationResponse{
		Results:   make([]utils.DocumentInfo, 0, len(documents)),
		Total:     len(documents),
		Timestamp: time.Now(),
	}
	for _, doc := range documents {
		info := s.Validate(doc)
		if info.Valid {
			resp.Valid++
		} else {
			resp.Invalid++
		}
		resp.Results = append(resp.Results, info)
	}
	return resp
}
