package http

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/geo-waqf/geowaqf/models"
)

// Query parameters of /api/get-mce-layer.
const (
	paramPeat        = "gambut"
	paramDegradation = "degradasi"
	paramAccess      = "akses"
	paramHydrology   = "hidrologi"
	paramNormalize   = "normalize"
	paramMin         = "min"
	paramMax         = "max"
)

// parseMCERequest never fails: unreadable values fall back to defaults.
func parseMCERequest(q url.Values) models.MCERequest {
	req := models.DefaultMCERequest()

	req.Weights = models.MCEWeights{
		Peat:        models.ParseWeight(q.Get(paramPeat)),
		Degradation: models.ParseWeight(q.Get(paramDegradation)),
		Access:      models.ParseWeight(q.Get(paramAccess)),
		Hydrology:   models.ParseWeight(q.Get(paramHydrology)),
	}

	if v, err := strconv.ParseBool(strings.TrimSpace(q.Get(paramNormalize))); err == nil {
		req.Normalize = v
	}
	req.Min = parseOptionalFloat(q.Get(paramMin))
	req.Max = parseOptionalFloat(q.Get(paramMax))

	return req
}

func parseOptionalFloat(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
