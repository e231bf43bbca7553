package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrRegionUnavailable is returned while the district and province
	// boundaries are not resolved.
	ErrRegionUnavailable = errors.New("region of interest is not available")
	ErrEmptyBoundary     = errors.New("boundary collection is empty")

	ErrNoCloudFreeImagery = errors.New("no cloud-free imagery found")
	ErrNoImagery          = errors.New("no imagery found")

	ErrUnexpectedResult = errors.New("unexpected engine result")
)
