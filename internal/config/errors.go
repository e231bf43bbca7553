package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, an empty address or a rate limit without a window).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidEngineConfigs indicates invalid Earth Engine client settings
	// (for example, a relative base URL or an empty project).
	ErrInvalidEngineConfigs = errors.New("invalid engine configuration")
	// ErrInvalidRegionConfigs indicates an incomplete boundary selection.
	ErrInvalidRegionConfigs = errors.New("invalid region configuration")
)
