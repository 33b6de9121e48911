package services

import (
	"context"
	"errors"

	"github.com/nexconsult/nfse-api/internal/dps"
	"github.com/nexconsult/nfse-api/internal/metrics"
	"github.com/nexconsult/nfse-api/internal/utils"
	"github.com/sirupsen/logrus"
)

// DPSService wraps the payload builder with profile lookup and metrics
type DPSService struct {
	builder   *dps.Builder
	directory dps.LocalityDirectory
	profiles  ProfileServiceInterface
	metrics   *metrics.Registry
	logger    *logrus.Logger
}

// NewDPSService creates a new DPS service
func NewDPSService(builder *dps.Builder, directory dps.LocalityDirectory, profiles ProfileServiceInterface, reg *metrics.Registry, logger *logrus.Logger) *DPSService {
	return &DPSService{
		builder:   builder,
		directory: directory,
		profiles:  profiles,
		metrics:   reg,
		logger:    logger,
	}
}

// Build normalizes form against profile
func (s *DPSService) Build(ctx context.Context, form dps.Form, profile dps.CompanyProfile) (*dps.NormalizedDPS, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, err := s.builder.Build(form, profile)
	if err != nil {
		var verr *dps.ValidationError
		if errors.As(err, &verr) {
			s.metrics.DPSRejected.WithLabelValues(verr.Code()).Inc()
			s.logger.WithFields(logrus.Fields{
				"code":  verr.Code(),
				"field": verr.Field,
			}).Info("DPS rejected")
		}
		return nil, err
	}

	s.metrics.DPSBuilt.Inc()
	s.logger.WithFields(logrus.Fields{
		"provider": payload.Provider.CNPJ,
		"lc116":    payload.Service.LC116,
		"net":      utils.FormatBRL(payload.Values.Net.Decimal),
	}).Info("DPS built")

	return payload, nil
}

// BuildForCompany builds with the stored profile of cnpj. An empty form
// locality falls back to the profile's municipality code.
func (s *DPSService) BuildForCompany(ctx context.Context, cnpj string, form dps.Form) (*dps.NormalizedDPS, error) {
	profile, err := s.profiles.Get(ctx, cnpj)
	if err != nil {
		return nil, err
	}

	// The issuer's own municipality stands in when the form names none
	if form.Locality.IsEmpty() && profile.CodigoMunicipio != "" {
		form.Locality = dps.LocalityInput{Code: profile.CodigoMunicipio}
	}
	return s.Build(ctx, form, profile.ToProfile())
}

// NormalizeServiceCode accepts a bare or labeled LC116 code
func (s *DPSService) NormalizeServiceCode(code string) (string, error) {
	return dps.NormalizeLC116(utils.ExtractCode(code))
}

// ResolveLocality resolves against the configured directory
func (s *DPSService) ResolveLocality(in dps.LocalityInput) (string, error) {
	return dps.ResolveLocalityCode(in, s.directory)
}

// Health returns service health status
func (s *DPSService) Health() map[string]interface{} {
	return map[string]interface{}{
		"status": "healthy",
	}
}
