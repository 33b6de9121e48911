package store

import (
	"context"
	"sync"
	"time"

	"github.com/nexconsult/nfse-api/internal/models"
)

// Memory keeps profiles in process. It is used when MongoDB is disabled.
type Memory struct {
	mu       sync.RWMutex
	profiles map[string]models.CompanyProfile
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{profiles: make(map[string]models.CompanyProfile)}
}

// GetProfile returns nil, nil when cnpj is unknown.
func (m *Memory) GetProfile(_ context.Context, cnpj string) (*models.CompanyProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[cnpj]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *Memory) SaveProfile(_ context.Context, p *models.CompanyProfile) error {
	p.UpdatedAt = time.Now().UTC()

	m.mu.Lock()
	m.profiles[p.CNPJ] = *p
	m.mu.Unlock()
	return nil
}

func (m *Memory) DeleteProfile(_ context.Context, cnpj string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.profiles[cnpj]
	delete(m.profiles, cnpj)
	return ok, nil
}

// Ping always succeeds.
func (m *Memory) Ping(context.Context) error { return nil }
