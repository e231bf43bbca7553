package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/geo-waqf/geowaqf/internal/adapter"
	"github.com/geo-waqf/geowaqf/internal/config"
	"github.com/geo-waqf/geowaqf/internal/ee"
	"github.com/geo-waqf/geowaqf/internal/logger"
	"github.com/geo-waqf/geowaqf/internal/metrics"
	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type region struct {
	district ee.Geometry
	province ee.FeatureCollection
	bounds   orb.Bound
}

type regionService struct {
	engine adapter.EngineAdapter
	cfg    config.Region

	// nil until Resolve succeeds
	current atomic.Pointer[region]

	logger *logger.Logger
}

func NewRegionService(engine adapter.EngineAdapter, cfg config.Region, logger *logger.Logger) RegionService {
	return &regionService{
		engine: engine,
		cfg:    cfg,
		logger: logger,
	}
}

// Resolve looks the district and province up in the boundary dataset and
// keeps them for the lifetime of the process. On failure the region stays
// absent; it is not retried.
func (s *regionService) Resolve(ctx context.Context) error {
	if s.cfg.ResolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ResolveTimeout)
		defer cancel()
	}

	r, err := s.resolve(ctx)
	if err != nil {
		metrics.SetRegionResolved(false)
		s.logger.Err(err).
			Str("dataset", s.cfg.Dataset).
			Str("district", s.cfg.DistrictName).
			Str("province", s.cfg.ProvinceName).
			Msg("region of interest could not be resolved, dependent endpoints will fail")
		return fmt.Errorf("%w: %w", ErrRegionUnavailable, err)
	}

	s.current.Store(r)
	metrics.SetRegionResolved(true)

	s.logger.Info().
		Str("district", s.cfg.DistrictName).
		Str("province", s.cfg.ProvinceName).
		Floats64("bounds", []float64{r.bounds.Min.Lon(), r.bounds.Min.Lat(), r.bounds.Max.Lon(), r.bounds.Max.Lat()}).
		Msg("region of interest resolved")

	return nil
}

func (s *regionService) resolve(ctx context.Context) (*region, error) {
	boundaries := ee.LoadFeatureCollection(s.cfg.Dataset)
	district := boundaries.Filter(ee.FilterEq(s.cfg.DistrictField, s.cfg.DistrictName)).First().Geometry()
	province := boundaries.Filter(ee.FilterEq(s.cfg.ProvinceField, s.cfg.ProvinceName))

	expr, err := ee.Encode(district.Value())
	if err != nil {
		return nil, fmt.Errorf("encode district: %w", err)
	}

	raw, err := s.engine.ComputeValue(ctx, expr)
	if err != nil {
		return nil, fmt.Errorf("district %q: %w", s.cfg.DistrictName, err)
	}

	bounds, err := geometryBounds(raw)
	if err != nil {
		return nil, fmt.Errorf("district %q: %w", s.cfg.DistrictName, err)
	}

	count, err := computeNumber(ctx, s.engine, province.Size())
	if err != nil {
		return nil, fmt.Errorf("province %q: %w", s.cfg.ProvinceName, err)
	}
	if count <= 0 {
		return nil, fmt.Errorf("province %q: %w", s.cfg.ProvinceName, ErrEmptyBoundary)
	}

	return &region{district: district, province: province, bounds: bounds}, nil
}

func geometryBounds(raw json.RawMessage) (orb.Bound, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return orb.Bound{}, ErrEmptyBoundary
	}

	g, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return orb.Bound{}, fmt.Errorf("%w: decode geometry: %v", ErrUnexpectedResult, err)
	}
	geom := g.Geometry()
	if geom == nil {
		return orb.Bound{}, ErrEmptyBoundary
	}

	return geom.Bound(), nil
}

func (s *regionService) District() (ee.Geometry, error) {
	r := s.current.Load()
	if r == nil {
		return ee.Geometry{}, ErrRegionUnavailable
	}
	return r.district, nil
}

func (s *regionService) Province() (ee.FeatureCollection, error) {
	r := s.current.Load()
	if r == nil {
		return ee.FeatureCollection{}, ErrRegionUnavailable
	}
	return r.province, nil
}

func (s *regionService) BoundaryGeoJSON(ctx context.Context) (json.RawMessage, error) {
	province, err := s.Province()
	if err != nil {
		return nil, err
	}

	expr, err := ee.Encode(province.Value())
	if err != nil {
		return nil, fmt.Errorf("encode province: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Debug().Str("province", s.cfg.ProvinceName).Msg("materializing boundary collection")

	raw, err := s.engine.ComputeValue(ctx, expr)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decode feature collection: %v", ErrUnexpectedResult, err)
	}
	if len(fc.Features) == 0 {
		return nil, ErrEmptyBoundary
	}

	log.Debug().Int("features", len(fc.Features)).Msg("boundary collection materialized")

	return raw, nil
}
