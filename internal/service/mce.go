package service

import (
	"context"

	"github.com/geo-waqf/geowaqf/internal/adapter"
	"github.com/geo-waqf/geowaqf/internal/ee"
	"github.com/geo-waqf/geowaqf/internal/logger"
	"github.com/geo-waqf/geowaqf/models"
)

const (
	peatlandImage   = "projects/sat-io/open-datasets/GLOBAL-PEATLAND-DATABASE"
	worldCover      = "ESA/WorldCover/v200"
	ruggednessImage = "CSP/ERGo/1_0/Global/SRTM_mTPI"
	riversTable     = "WWF/HydroSHEDS/v1/FreeFlowingRivers"

	// Distances beyond this many meters score as least vulnerable.
	riverSearchRadius = 10000
	// mTPI magnitude at which terrain counts as fully rugged.
	maxRuggedness = 15
)

// WorldCover classes and their degradation intensity from 1 (intact) to 5
// (most degraded): tree cover, shrubland, grassland, cropland, built-up,
// bare, snow, water, herbaceous wetland, mangroves, moss.
var (
	worldCoverClasses     = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 100}
	worldCoverDegradation = []float64{1, 3, 3, 4, 5, 5, 1, 1, 3, 1, 1}
)

var mcePalette = []string{"#008000", "#FFFF00", "#FF0000"}

type mceService struct {
	engine adapter.EngineAdapter
	region RegionService

	logger *logger.Logger
}

func NewMCEService(engine adapter.EngineAdapter, region RegionService, logger *logger.Logger) MCEService {
	return &mceService{
		engine: engine,
		region: region,
		logger: logger,
	}
}

// MCELayer renders the weighted overlay of the four vulnerability criteria
// clipped to the district. Every criterion scores 0 (safe) to 1 (most
// vulnerable).
func (s *mceService) MCELayer(ctx context.Context, req models.MCERequest) (models.TileLayer, error) {
	district, err := s.region.District()
	if err != nil {
		return models.TileLayer{}, err
	}

	w := req.Weights
	logger.FromContext(ctx).Info().
		Float64("peat", w.Peat).
		Float64("degradation", w.Degradation).
		Float64("access", w.Access).
		Float64("hydrology", w.Hydrology).
		Bool("normalize", req.Normalize).
		Msg("mce weights")

	score := weightedScore(district, req).Clip(district)

	return createMap(ctx, s.engine, score, mceVis(req))
}

func weightedScore(district ee.Geometry, req models.MCERequest) ee.Image {
	w := req.Weights
	total := w.Total()
	if total <= 0 {
		return ee.ConstantImage(0)
	}

	score := degradationScore().Multiply(ee.ConstantImage(w.Degradation)).
		Add(peatScore().Multiply(ee.ConstantImage(w.Peat))).
		Add(hydrologyScore(district).Multiply(ee.ConstantImage(w.Hydrology))).
		Add(accessScore().Multiply(ee.ConstantImage(w.Access)))

	if req.Normalize {
		score = score.Divide(ee.ConstantImage(total))
	}
	return score.Rename("mce_score")
}

func mceVis(req models.MCERequest) models.VisParams {
	vis := models.VisParams{Min: 0, Max: 1, Palette: mcePalette}
	if total := req.Weights.Total(); !req.Normalize && total > 0 {
		vis.Max = total
	}

	if req.Min != nil {
		vis.Min = *req.Min
	}
	if req.Max != nil {
		vis.Max = *req.Max
	}
	return vis
}

// peatScore is 1 over mapped peat, 0 elsewhere.
func peatScore() ee.Image {
	return ee.LoadImage(peatlandImage).Select("b1").
		Gt(ee.ConstantImage(0)).
		UnitScale(0, 1).
		Unmask(0).
		Rename("score_peat")
}

func degradationScore() ee.Image {
	return ee.LoadImageCollection(worldCover).First().Select("Map").
		Remap(worldCoverClasses, worldCoverDegradation).
		UnitScale(1, 5).
		Rename("score_degradation")
}

// accessScore is high on flat terrain, which is easiest to reach.
func accessScore() ee.Image {
	rugged := ee.LoadImage(ruggednessImage).Abs().
		UnitScale(0, maxRuggedness).
		Clamp(0, 1)

	return ee.ConstantImage(1).Subtract(rugged).Rename("score_access")
}

// hydrologyScore is high close to rivers.
func hydrologyScore(district ee.Geometry) ee.Image {
	distance := ee.LoadFeatureCollection(riversTable).
		FilterBounds(district).
		Distance(riverSearchRadius, 10).
		Unmask(riverSearchRadius).
		UnitScale(0, riverSearchRadius).
		Clamp(0, 1)

	return ee.ConstantImage(1).Subtract(distance).Rename("score_hydrology")
}
