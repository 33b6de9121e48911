package models

import (
	"time"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error" example:"Validation failed"`
	Message   string    `json:"message" example:"service value must be greater than zero"`
	Code      string    `json:"code,omitempty" example:"INVALID_MONETARY_VALUE"`
	Field     string    `json:"field,omitempty" example:"valorServicos"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Path      string    `json:"path" example:"/api/v1/dps/build"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Timestamp time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Version   string                 `json:"version" example:"1.0.0"`
	Services  map[string]ServiceInfo `json:"services"`
	Uptime    string                 `json:"uptime" example:"2h30m45s"`
}

// ServiceInfo represents individual service health
type ServiceInfo struct {
	Status    string    `json:"status" example:"healthy"`
	LastCheck time.Time `json:"last_check" example:"2024-01-15T10:30:00Z"`
	Error     string    `json:"error,omitempty"`
}

// Health statuses
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
	StatusDisabled  = "disabled"
)
