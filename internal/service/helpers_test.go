package service

import (
	"context"
	"testing"

	"github.com/geo-waqf/geowaqf/internal/ee"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubRegion is a fixed RegionService, so analysis tests only set up the
// engine calls they are about.
type stubRegion struct {
	err error
}

var testDistrict = ee.LoadFeatureCollection("FAO/GAUL/2015/level2").
	Filter(ee.FilterEq("ADM2_NAME", "Bengkalis")).
	First().
	Geometry()

func (s *stubRegion) Resolve(context.Context) error { return s.err }

func (s *stubRegion) District() (ee.Geometry, error) {
	if s.err != nil {
		return ee.Geometry{}, s.err
	}
	return testDistrict, nil
}

func (s *stubRegion) Province() (ee.FeatureCollection, error) {
	if s.err != nil {
		return ee.FeatureCollection{}, s.err
	}
	return ee.LoadFeatureCollection("FAO/GAUL/2015/level2"), nil
}

func (s *stubRegion) BoundaryGeoJSON(context.Context) (json.RawMessage, error) {
	return nil, s.err
}

// rootFunction is the function name of the expression's result node.
func rootFunction(expr *ee.Expression) string {
	if expr == nil {
		return ""
	}
	inv, ok := expr.Values[expr.Result]["functionInvocationValue"].(map[string]any)
	if !ok {
		return ""
	}
	name, _ := inv["functionName"].(string)
	return name
}

type exprRootMatcher struct{ fn string }

// exprRoot matches an *ee.Expression whose result invokes fn.
func exprRoot(fn string) gomock.Matcher { return exprRootMatcher{fn: fn} }

func (m exprRootMatcher) Matches(x any) bool {
	expr, ok := x.(*ee.Expression)
	return ok && rootFunction(expr) == m.fn
}

func (m exprRootMatcher) String() string { return "expression rooted at " + m.fn }

func exprJSON(t *testing.T, expr *ee.Expression) string {
	t.Helper()

	raw, err := json.Marshal(expr)
	require.NoError(t, err)
	return string(raw)
}
