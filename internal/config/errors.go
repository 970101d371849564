package config

import "errors"

// Validation errors returned when a binary-specific config view is
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing store URI or a
	// non-positive store timeout.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSeedConfigs indicates that one of the three seed files is
	// not configured.
	ErrInvalidSeedConfigs = errors.New("invalid seed configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCacheConfigs indicates a non-positive cache TTL.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
)
