package services

import (
	"context"

	"github.com/nexconsult/nfse-api/internal/dps"
	"github.com/nexconsult/nfse-api/internal/models"
	"github.com/nexconsult/nfse-api/internal/utils"
)

// DPSServiceInterface defines the interface for DPS payload building
type DPSServiceInterface interface {
	// Build normalizes a raw form against an inline issuer profile
	Build(ctx context.Context, form dps.Form, profile dps.CompanyProfile) (*dps.NormalizedDPS, error)

	// BuildForCompany loads the stored profile of cnpj and builds with it
	BuildForCompany(ctx context.Context, cnpj string, form dps.Form) (*dps.NormalizedDPS, error)

	// NormalizeServiceCode returns the canonical LC116 code
	NormalizeServiceCode(code string) (string, error)

	// ResolveLocality returns the IBGE municipality code
	ResolveLocality(in dps.LocalityInput) (string, error)

	// Health returns service health status
	Health() map[string]interface{}
}

// DocumentServiceInterface defines the interface for CPF/CNPJ validation
type DocumentServiceInterface interface {
	// Validate analyzes a single document
	Validate(document string) utils.DocumentInfo

	// ValidateBatch analyzes several documents
	ValidateBatch(documents []string) *models.BatchValidationResponse
}

// ProfileServiceInterface defines the interface for issuer profiles
type ProfileServiceInterface interface {
	// Get retrieves the profile of cnpj, through the cache
	Get(ctx context.Context, cnpj string) (*models.CompanyProfile, error)

	// Save creates or replaces the profile of cnpj
	Save(ctx context.Context, cnpj string, req models.ProfileRequest) (*models.CompanyProfile, error)

	// Delete removes the profile of cnpj
	Delete(ctx context.Context, cnpj string) error

	// Health returns profile storage health status
	Health() map[string]interface{}
}

// ProfileStore persists issuer profiles. Get returns nil, nil when the
// profile does not exist.
type ProfileStore interface {
	GetProfile(ctx context.Context, cnpj string) (*models.CompanyProfile, error)
	SaveProfile(ctx context.Context, p *models.CompanyProfile) error
	DeleteProfile(ctx context.Context, cnpj string) (bool, error)
	Ping(ctx context.Context) error
}

// CacheServiceInterface defines the interface for cache service
type CacheServiceInterface interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value string) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Clear clears all cache entries
	Clear(ctx context.Context) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// GetStats returns cache statistics
	GetStats(ctx context.Context) (map[string]interface{}, error)

	// Health returns cache service health status
	Health() map[string]interface{}
}
