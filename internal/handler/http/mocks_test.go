package http

import (
	"context"
	"testing"

	"github.com/geo-waqf/geowaqf/internal/config"
	"github.com/geo-waqf/geowaqf/internal/ee"
	"github.com/geo-waqf/geowaqf/internal/logger"
	"github.com/geo-waqf/geowaqf/internal/service"
	"github.com/geo-waqf/geowaqf/models"
	"github.com/goccy/go-json"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAnalysisService struct {
	analysisFn func(ctx context.Context) (models.AnalysisLayers, error)
	ndviFn     func(ctx context.Context) (models.NDVILayers, error)
}

func (m *mockAnalysisService) AnalysisLayers(ctx context.Context) (models.AnalysisLayers, error) {
	return m.analysisFn(ctx)
}

func (m *mockAnalysisService) NDVILayers(ctx context.Context) (models.NDVILayers, error) {
	return m.ndviFn(ctx)
}

type mockMCEService struct {
	mceFn func(ctx context.Context, req models.MCERequest) (models.TileLayer, error)
}

func (m *mockMCEService) MCELayer(ctx context.Context, req models.MCERequest) (models.TileLayer, error) {
	return m.mceFn(ctx, req)
}

type mockRegionService struct {
	boundaryFn func(ctx context.Context) (json.RawMessage, error)
}

func (m *mockRegionService) Resolve(context.Context) error { return nil }

func (m *mockRegionService) District() (ee.Geometry, error) {
	return ee.Geometry{}, nil
}

func (m *mockRegionService) Province() (ee.FeatureCollection, error) {
	return ee.FeatureCollection{}, nil
}

func (m *mockRegionService) BoundaryGeoJSON(ctx context.Context) (json.RawMessage, error) {
	return m.boundaryFn(ctx)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler whose services all succeed. Tests override
// the function fields they care about.
func newTestHandler() *Handler {
	return NewHandler(newTestServices(), config.Server{}, logger.Nop())
}

func newTestServices() *service.Services {
	return &service.Services{
		AnalysisService: &mockAnalysisService{
			analysisFn: func(context.Context) (models.AnalysisLayers, error) {
				return models.AnalysisLayers{
					DNBR:     models.TileLayer{URLFormat: "https://tiles/dnbr/{z}/{x}/{y}"},
					NDWI2019: models.TileLayer{URLFormat: "https://tiles/ndwi-2019/{z}/{x}/{y}"},
					NDWI2024: models.TileLayer{URLFormat: "https://tiles/ndwi-2024/{z}/{x}/{y}"},
				}, nil
			},
			ndviFn: func(context.Context) (models.NDVILayers, error) {
				return models.NDVILayers{
					NDVI2019: models.TileLayer{URLFormat: "https://tiles/ndvi-2019/{z}/{x}/{y}"},
					NDVI2024: models.TileLayer{URLFormat: "https://tiles/ndvi-2024/{z}/{x}/{y}"},
				}, nil
			},
		},
		MCEService: &mockMCEService{
			mceFn: func(context.Context, models.MCERequest) (models.TileLayer, error) {
				return models.TileLayer{URLFormat: "https://tiles/mce/{z}/{x}/{y}"}, nil
			},
		},
		RegionService: &mockRegionService{
			boundaryFn: func(context.Context) (json.RawMessage, error) {
				return json.RawMessage(`{"type":"FeatureCollection","features":[{"type":"Feature","geometry":null,"properties":{}}]}`), nil
			},
		},
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
}

func newHandlerWithServices(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

func failingBoundary(context.Context) (json.RawMessage, error) {
	return nil, service.ErrRegionUnavailable
}
