package service

import (
	"context"

	"github.com/geo-waqf/geowaqf/internal/ee"
	"github.com/geo-waqf/geowaqf/models"
	"github.com/goccy/go-json"
)

// RegionService owns the region of interest: one district geometry and the
// province-level boundary collection. Both are resolved once by Resolve and
// read-only afterwards.
type RegionService interface {
	Resolve(ctx context.Context) error

	District() (ee.Geometry, error)
	Province() (ee.FeatureCollection, error)

	// BoundaryGeoJSON materializes the province collection as a GeoJSON
	// FeatureCollection and returns it verbatim.
	BoundaryGeoJSON(ctx context.Context) (json.RawMessage, error)
}

type AnalysisService interface {
	AnalysisLayers(ctx context.Context) (models.AnalysisLayers, error)
	NDVILayers(ctx context.Context) (models.NDVILayers, error)
}

type MCEService interface {
	MCELayer(ctx context.Context, req models.MCERequest) (models.TileLayer, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
