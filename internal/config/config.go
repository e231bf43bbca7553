// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the geowaqf
// server. It aggregates all sub-configurations and is populated by merging
// built-in defaults, environment variables (optionally seeded from a .env
// file), command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application identity settings.
	App App `envPrefix:"APP_"`

	// Server holds the inbound HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Engine holds the Earth Engine REST client and credential settings.
	Engine Engine `envPrefix:"GEE_"`

	// Region describes which administrative boundaries the analyses are
	// clipped to.
	Region Region `envPrefix:"REGION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a dotenv file loaded before the
	// environment is parsed. Populated via ENV_FILE or -env-file.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level identity values.
type App struct {
	// Name is the service name reported in logs.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format. An empty host listens on all interfaces.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// CORSAllowedOrigins is a comma separated origin list; "*" allows all.
	// Env: SERVER_CORS_ALLOWED_ORIGINS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// RateLimitRequests is the per-IP request budget per RateLimitWindow.
	// Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT_REQUESTS
	RateLimitRequests int `env:"RATE_LIMIT_REQUESTS"`

	// Env: SERVER_RATE_LIMIT_WINDOW
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW"`
}

// Engine holds the remote Earth Engine settings.
type Engine struct {
	// BaseURL is the REST root, e.g. "https://earthengine.googleapis.com".
	// Env: GEE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIVersion is the path segment used in tile URLs, e.g. "v1".
	// Env: GEE_API_VERSION
	APIVersion string `env:"API_VERSION"`

	// Project is the cloud project the computations are billed to.
	// Env: GEE_PROJECT
	Project string `env:"PROJECT"`

	// RequestTimeout bounds every outbound REST call.
	// Env: GEE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ServiceAccountJSON is the raw service-account key document.
	// Env: GEE_SERVICE_ACCOUNT_JSON
	ServiceAccountJSON string `env:"SERVICE_ACCOUNT_JSON"`

	// ServiceAccountJSONBase64 is the base64-encoded key document.
	// Env: GEE_SERVICE_ACCOUNT_JSON_BASE64
	ServiceAccountJSONBase64 string `env:"SERVICE_ACCOUNT_JSON_BASE64"`

	// ServiceAccountFile is a path to the key document on disk.
	// Env: GEE_SERVICE_ACCOUNT_FILE
	ServiceAccountFile string `env:"SERVICE_ACCOUNT_FILE"`

	// CredentialsTempPath, when set, receives the decoded base64 key for the
	// lifetime of the process.
	// Env: GEE_CREDENTIALS_TEMP_PATH
	CredentialsTempPath string `env:"CREDENTIALS_TEMP_PATH"`

	// RequireCredentials makes a missing or malformed key fatal at startup
	// instead of running with a degraded engine handle.
	// Env: GEE_REQUIRE_CREDENTIALS
	RequireCredentials bool `env:"REQUIRE_CREDENTIALS"`
}

// Region selects the district and province boundaries.
type Region struct {
	// Env: REGION_DATASET
	Dataset string `env:"DATASET"`

	// Env: REGION_DISTRICT_FIELD
	DistrictField string `env:"DISTRICT_FIELD"`

	// Env: REGION_DISTRICT_NAME
	DistrictName string `env:"DISTRICT_NAME"`

	// Env: REGION_PROVINCE_FIELD
	ProvinceField string `env:"PROVINCE_FIELD"`

	// Env: REGION_PROVINCE_NAME
	ProvinceName string `env:"PROVINCE_NAME"`

	// ResolveTimeout bounds the startup boundary lookup.
	// Env: REGION_RESOLVE_TIMEOUT
	ResolveTimeout time.Duration `env:"RESOLVE_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (after loading the dotenv file, if any)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
