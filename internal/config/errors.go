package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing API address or a negative
	// request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory DSN; the
	// session must survive restarts.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates a negative refresh interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
