package models

import "github.com/goccy/go-json"

// Envelope status values. Every JSON response carries exactly one of them.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewErrorResponse wraps message in the error envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Status: StatusError, Message: message}
}

// AnalysisLayersResponse carries the burn severity and surface water tile
// templates for the two observation windows.
type AnalysisLayersResponse struct {
	Status      string `json:"status"`
	URLDNBR     string `json:"url_dnbr"`
	URLNDWI2019 string `json:"url_ndwi_2019"`
	URLNDWI2024 string `json:"url_ndwi_2024"`
}

// MCELayerResponse carries the weighted vulnerability tile template.
type MCELayerResponse struct {
	Status string `json:"status"`
	URL    string `json:"url"`
}

// BoundaryResponse carries the province boundary as a GeoJSON
// FeatureCollection, passed through verbatim.
type BoundaryResponse struct {
	Status  string          `json:"status"`
	GeoJSON json.RawMessage `json:"geojson"`
}

// NDVILayersResponse carries the vegetation index tile templates.
type NDVILayersResponse struct {
	Status  string `json:"status"`
	URL2019 string `json:"url_2019"`
	URL2024 string `json:"url_2024"`
}
