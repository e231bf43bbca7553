package service

import (
	"context"
	"fmt"

	"github.com/geo-waqf/geowaqf/internal/adapter"
	"github.com/geo-waqf/geowaqf/internal/ee"
	"github.com/geo-waqf/geowaqf/internal/logger"
	"github.com/geo-waqf/geowaqf/models"
	"golang.org/x/sync/errgroup"
)

const (
	sentinel2Collection = "COPERNICUS/S2_SR_HARMONIZED"
	modisCollection     = "MODIS/061/MOD13A1"

	maxCloudyPixelPercentage = 50
	reflectanceScale         = 10000

	cloudBitMask  = 1 << 10
	cirrusBitMask = 1 << 11
)

// window is an acquisition period, end exclusive.
type window struct {
	Start string
	End   string
}

func (w window) String() string { return w.Start + " - " + w.End }

var (
	window2019 = window{Start: "2019-07-01", End: "2019-10-30"}
	window2024 = window{Start: "2024-07-01", End: "2024-10-30"}

	ndviYears = [2]int{2019, 2024}
)

var (
	// dNBR runs from high (burned, red) to low (regrowth, green).
	dnbrVis = models.VisParams{
		Min:     0.5,
		Max:     -0.5,
		Palette: []string{"#d7191c", "#fdae61", "#ffffbf", "#a6d96a", "#1a9641"},
	}
	ndwiVis = models.VisParams{
		Min:     -0.5,
		Max:     0.5,
		Palette: []string{"#f7fbff", "#c6dbef", "#6baed6", "#2171b5", "#08306b"},
	}
	ndviVis = models.VisParams{
		Min:     0,
		Max:     9000,
		Palette: []string{"#e7eff6", "#00a600"},
	}
)

type analysisService struct {
	engine adapter.EngineAdapter
	region RegionService

	logger *logger.Logger
}

func NewAnalysisService(engine adapter.EngineAdapter, region RegionService, logger *logger.Logger) AnalysisService {
	return &analysisService{
		engine: engine,
		region: region,
		logger: logger,
	}
}

// AnalysisLayers compares the two dry-season windows: burn severity as the
// NBR difference, and surface water as NDWI for each window.
func (s *analysisService) AnalysisLayers(ctx context.Context) (models.AnalysisLayers, error) {
	district, err := s.region.District()
	if err != nil {
		return models.AnalysisLayers{}, err
	}

	before := sentinelComposite(district, window2019)
	after := sentinelComposite(district, window2024)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.ensureBands(gctx, before, window2019, ErrNoCloudFreeImagery) })
	g.Go(func() error { return s.ensureBands(gctx, after, window2024, ErrNoCloudFreeImagery) })
	if err = g.Wait(); err != nil {
		return models.AnalysisLayers{}, err
	}

	nbrBefore := before.NormalizedDifference("B8", "B12").Rename("NBR").Clip(district)
	nbrAfter := after.NormalizedDifference("B8", "B12").Rename("NBR").Clip(district)
	dnbr := nbrBefore.Subtract(nbrAfter)

	ndwiBefore := before.NormalizedDifference("B3", "B8").Rename("NDWI").Clip(district)
	ndwiAfter := after.NormalizedDifference("B3", "B8").Rename("NDWI").Clip(district)

	var layers models.AnalysisLayers

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		layers.DNBR, err = createMap(gctx, s.engine, dnbr, dnbrVis)
		return err
	})
	g.Go(func() (err error) {
		layers.NDWI2019, err = createMap(gctx, s.engine, ndwiBefore, ndwiVis)
		return err
	})
	g.Go(func() (err error) {
		layers.NDWI2024, err = createMap(gctx, s.engine, ndwiAfter, ndwiVis)
		return err
	})
	if err = g.Wait(); err != nil {
		return models.AnalysisLayers{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("dnbr", layers.DNBR.Name).
		Str("ndwi_2019", layers.NDWI2019.Name).
		Str("ndwi_2024", layers.NDWI2024.Name).
		Msg("analysis layers created")

	return layers, nil
}

// NDVILayers renders the first-half-year mean MODIS NDVI of 2019 and 2024.
func (s *analysisService) NDVILayers(ctx context.Context) (models.NDVILayers, error) {
	var means [2]ee.Image

	g, gctx := errgroup.WithContext(ctx)
	for i, year := range ndviYears {
		w := window{Start: fmt.Sprintf("%d-01-01", year), End: fmt.Sprintf("%d-07-01", year)}
		means[i] = ee.LoadImageCollection(modisCollection).FilterDate(w.Start, w.End).Mean()

		g.Go(func() error { return s.ensureBands(gctx, means[i], w, ErrNoImagery) })
	}
	if err := g.Wait(); err != nil {
		return models.NDVILayers{}, err
	}

	var layers models.NDVILayers

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		layers.NDVI2019, err = createMap(gctx, s.engine, means[0].Select("NDVI"), ndviVis)
		return err
	})
	g.Go(func() (err error) {
		layers.NDVI2024, err = createMap(gctx, s.engine, means[1].Select("NDVI"), ndviVis)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.NDVILayers{}, err
	}

	return layers, nil
}

// ensureBands fails with sentinel when img has no bands, which is what an
// empty collection reduces to.
func (s *analysisService) ensureBands(ctx context.Context, img ee.Image, w window, sentinel error) error {
	n, err := computeNumber(ctx, s.engine, img.BandNames().Size())
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w for %s", sentinel, w)
	}
	return nil
}

// sentinelComposite is the cloud-masked, scaled median of the Sentinel-2
// surface reflectance scenes over district within w.
func sentinelComposite(district ee.Geometry, w window) ee.Image {
	return ee.LoadImageCollection(sentinel2Collection).
		FilterDate(w.Start, w.End).
		FilterBounds(district).
		Filter(ee.FilterLt("CLOUDY_PIXEL_PERCENTAGE", maxCloudyPixelPercentage)).
		Map(maskClouds).
		Median()
}

// maskClouds drops pixels flagged as opaque cloud or cirrus in QA60, erodes
// the clear mask by three pixels and scales reflectance to [0, 1].
func maskClouds(img ee.Image) ee.Image {
	qa := img.Select("QA60")
	zero := ee.ConstantImage(0)

	clear := qa.BitwiseAnd(ee.ConstantImage(cloudBitMask)).Eq(zero).
		And(qa.BitwiseAnd(ee.ConstantImage(cirrusBitMask)).Eq(zero))
	clear = clear.UpdateMask(clear).FocalMin(3, "pixels")

	return img.UpdateMask(clear).Divide(ee.ConstantImage(reflectanceScale))
}
