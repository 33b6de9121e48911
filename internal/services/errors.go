package services

import "errors"

var (
	// ErrCacheMiss is returned by the cache when a key is absent or expired
	ErrCacheMiss = errors.New("key not found")

	// ErrProfileNotFound is returned when no issuer profile is stored for a CNPJ
	ErrProfileNotFound = errors.New("company profile not found")

	// ErrInvalidCNPJ is returned when a path CNPJ fails the checksum
	ErrInvalidCNPJ = errors.New("invalid CNPJ")
)
