package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRemoteConfigs indicates invalid remote versioned store
	// settings (for example, missing base URL).
	ErrInvalidRemoteConfigs = errors.New("invalid remote store configuration")
	// ErrInvalidEngineConfigs indicates invalid engine tuning settings
	// (for example, negative worker count or retention).
	ErrInvalidEngineConfigs = errors.New("invalid engine configuration")
)
