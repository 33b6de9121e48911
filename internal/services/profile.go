package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nexconsult/nfse-api/internal/dps"
	"github.com/nexconsult/nfse-api/internal/metrics"
	"github.com/nexconsult/nfse-api/internal/models"
	"github.com/nexconsult/nfse-api/internal/utils"
	"github.com/sirupsen/logrus"
)

// ProfileService reads issuer profiles through the cache
type ProfileService struct {
	store   ProfileStore
	cache   CacheServiceInterface
	metrics *metrics.Registry
	logger  *logrus.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(store ProfileStore, cache CacheServiceInterface, reg *metrics.Registry, logger *logrus.Logger) *ProfileService {
	return &ProfileService{
		store:   store,
		cache:   cache,
		metrics: reg,
		logger:  logger,
	}
}

// ProfileCacheKey is the cache key of a profile, without KeyPrefix
func ProfileCacheKey(cnpj string) string {
	return "profile:" + cnpj
}

// cleanCNPJ returns the digits of cnpj, or ErrInvalidCNPJ
func cleanCNPJ(cnpj string) (string, error) {
	if !utils.IsValidCNPJ(cnpj) {
		return "", fmt.Errorf("%w: %s", ErrInvalidCNPJ, cnpj)
	}
	return utils.CleanDigits(cnpj), nil
}

// Get retrieves the profile of cnpj
func (s *ProfileService) Get(ctx context.Context, cnpj string) (*models.CompanyProfile, error) {
	cnpj, err := cleanCNPJ(cnpj)
	if err != nil {
		return nil, err
	}

	if cached, err := s.cache.Get(ctx, ProfileCacheKey(cnpj)); err == nil {
		var p models.CompanyProfile
		if err := json.Unmarshal([]byte(cached), &p); err == nil {
			s.metrics.CacheLookups.WithLabelValues("hit").Inc()
			return &p, nil
		}
		s.logger.WithField("cnpj", cnpj).Warn("Discarding undecodable cached profile")
	}
	s.metrics.CacheLookups.WithLabelValues("miss").Inc()

	p, err := s.store.GetProfile(ctx, cnpj)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}

	s.cacheProfile(ctx, p)
	return p, nil
}

// Save creates or replaces the profile of cnpj
func (s *ProfileService) Save(ctx context.Context, cnpj string, req models.ProfileRequest) (*models.CompanyProfile, error) {
	cnpj, err := cleanCNPJ(cnpj)
	if err != nil {
		return nil, err
	}

	regime := strings.TrimSpace(req.RegimeTributario)
	if regime == "" {
		regime = dps.DefaultTaxRegime
	}

	p := &models.CompanyProfile{
		CNPJ:               cnpj,
		RazaoSocial:        strings.TrimSpace(req.RazaoSocial),
		RegimeTributario:   regime,
		InscricaoMunicipal: strings.TrimSpace(req.InscricaoMunicipal),
		CodigoMunicipio:    utils.CleanDigits(req.CodigoMunicipio),
	}
	if err := s.store.SaveProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.cacheProfile(ctx, p)

	s.logger.WithFields(logrus.Fields{
		"cnpj":   cnpj,
		"regime": regime,
	}).Info("Company profile saved")

	return p, nil
}

// Delete removes the profile of cnpj
func (s *ProfileService) Delete(ctx context.Context, cnpj string) error {
	cnpj, err := cleanCNPJ(cnpj)
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, ProfileCacheKey(cnpj))

	deleted, err := s.store.DeleteProfile(ctx, cnpj)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if !deleted {
		return ErrProfileNotFound
	}

	s.logger.WithField("cnpj", cnpj).Info("Company profile deleted")
	return nil
}

// Health returns profile storage health status
func (s *ProfileService) Health() map[string]interface{} {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		return map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		}
	}
	return map[string]interface{}{
		"status": "healthy",
	}
}

func (s *ProfileService) cacheProfile(ctx context.Context, p *models.CompanyProfile) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, ProfileCacheKey(p.CNPJ), string(data)); err != nil {
		s.logger.WithError(err).Warn("Failed to cache profile")
	}
}

// IsNotFound reports whether err means a missing profile
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProfileNotFound)
}
