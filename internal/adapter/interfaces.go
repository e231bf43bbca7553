// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the Earth Engine REST API.
//
// The primary abstraction is [EngineAdapter], which decouples the service
// layer from the wire protocol. The package ships an HTTP implementation
// ([NewHTTPEngineAdapter]) authenticated with a service account, and a
// degraded implementation ([NewDegradedAdapter]) used when no valid
// credential was found at startup.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/geo-waqf/geowaqf/internal/ee"
	"github.com/geo-waqf/geowaqf/models"
	"github.com/goccy/go-json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_adapter_mock.go -package=mock

// EngineAdapter evaluates computation graphs on the remote engine.
// Implementations are responsible for authentication, serialisation and
// mapping transport-level errors to the sentinel values of this package.
type EngineAdapter interface {
	// ComputeValue evaluates expr and returns the raw JSON "result" field,
	// e.g. a number, a GeoJSON geometry or a FeatureCollection.
	ComputeValue(ctx context.Context, expr *ee.Expression) (json.RawMessage, error)

	// CreateMap registers expr for tiled rendering with the given
	// visualization and returns the XYZ tile template.
	CreateMap(ctx context.Context, expr *ee.Expression, vis models.VisParams) (models.TileLayer, error)

	// Authenticated reports whether the adapter holds a usable credential.
	Authenticated() bool
}
