package adapter

import (
	"context"
	"fmt"

	"github.com/geo-waqf/geowaqf/internal/ee"
	"github.com/geo-waqf/geowaqf/models"
	"github.com/goccy/go-json"
)

type degradedAdapter struct {
	cause error
}

// NewDegradedAdapter returns an [EngineAdapter] that fails every call with
// [ErrNotAuthenticated] wrapping cause. The server keeps serving its
// liveness and version routes while the engine routes report the failure.
func NewDegradedAdapter(cause error) EngineAdapter {
	if cause == nil {
		cause = ErrNoCredentials
	}
	return &degradedAdapter{cause: cause}
}

func (d *degradedAdapter) err() error {
	return fmt.Errorf("%w: %v", ErrNotAuthenticated, d.cause)
}

func (d *degradedAdapter) ComputeValue(context.Context, *ee.Expression) (json.RawMessage, error) {
	return nil, d.err()
}

func (d *degradedAdapter) CreateMap(context.Context, *ee.Expression, models.VisParams) (models.TileLayer, error) {
	return models.TileLayer{}, d.err()
}

func (d *degradedAdapter) Authenticated() bool {
	return false
}
