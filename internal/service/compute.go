package service

import (
	"context"
	"fmt"

	"github.com/geo-waqf/geowaqf/internal/adapter"
	"github.com/geo-waqf/geowaqf/internal/ee"
	"github.com/geo-waqf/geowaqf/models"
	"github.com/goccy/go-json"
)

// computeNumber evaluates a scalar expression.
func computeNumber(ctx context.Context, engine adapter.EngineAdapter, n ee.Number) (float64, error) {
	expr, err := ee.Encode(n.Value())
	if err != nil {
		return 0, fmt.Errorf("encode expression: %w", err)
	}

	raw, err := engine.ComputeValue(ctx, expr)
	if err != nil {
		return 0, err
	}

	var v float64
	if err = json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("%w: expected a number, got %s", ErrUnexpectedResult, raw)
	}
	return v, nil
}

// createMap registers img for tiled rendering.
func createMap(ctx context.Context, engine adapter.EngineAdapter, img ee.Image, vis models.VisParams) (models.TileLayer, error) {
	expr, err := ee.Encode(img.Value())
	if err != nil {
		return models.TileLayer{}, fmt.Errorf("encode expression: %w", err)
	}

	return engine.CreateMap(ctx, expr, vis)
}
