package adapter

import "errors"

// Transport errors, mapped from Earth Engine REST status codes.
var (
	ErrBadRequest          = errors.New("engine: bad request")
	ErrUnauthorized        = errors.New("engine: unauthorized")
	ErrForbidden           = errors.New("engine: forbidden")
	ErrNotFound            = errors.New("engine: not found")
	ErrTooManyRequests     = errors.New("engine: too many requests")
	ErrInternalServerError = errors.New("engine: internal server error")
	ErrUnavailable         = errors.New("engine: service unavailable")
)

// Credential errors.
var (
	// ErrNoCredentials means none of the configured sources held a key.
	ErrNoCredentials = errors.New("no service account credentials configured")
	// ErrMalformedCredentials means a key was found but could not be used.
	ErrMalformedCredentials = errors.New("malformed service account credentials")
	// ErrNotAuthenticated is returned by every call of the degraded adapter.
	ErrNotAuthenticated = errors.New("earth engine is not authenticated")
)
