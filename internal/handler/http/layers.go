package http

import (
	"net/http"

	"github.com/geo-waqf/geowaqf/internal/logger"
	"github.com/geo-waqf/geowaqf/internal/utils"
	"github.com/geo-waqf/geowaqf/models"
)

const livenessMessage = "Halo! Server Geo-WAQF sedang berjalan."

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	writePlainText(w, livenessMessage)
}

func (h *Handler) getAnalysisLayers(w http.ResponseWriter, r *http.Request) {
	layers, err := h.services.AnalysisService.AnalysisLayers(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.getAnalysisLayers", err)
		return
	}

	h.writeSuccess(w, r, models.AnalysisLayersResponse{
		Status:      models.StatusSuccess,
		URLDNBR:     layers.DNBR.URLFormat,
		URLNDWI2019: layers.NDWI2019.URLFormat,
		URLNDWI2024: layers.NDWI2024.URLFormat,
	})
}

func (h *Handler) getMCELayer(w http.ResponseWriter, r *http.Request) {
	req := parseMCERequest(r.URL.Query())

	layer, err := h.services.MCEService.MCELayer(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "*Handler.getMCELayer", err)
		return
	}

	h.writeSuccess(w, r, models.MCELayerResponse{
		Status: models.StatusSuccess,
		URL:    layer.URLFormat,
	})
}

func (h *Handler) getBoundary(w http.ResponseWriter, r *http.Request) {
	geoJSON, err := h.services.RegionService.BoundaryGeoJSON(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.getBoundary", err)
		return
	}

	h.writeSuccess(w, r, models.BoundaryResponse{
		Status:  models.StatusSuccess,
		GeoJSON: geoJSON,
	})
}

func (h *Handler) getNDVILayers(w http.ResponseWriter, r *http.Request) {
	layers, err := h.services.AnalysisService.NDVILayers(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.getNDVILayers", err)
		return
	}

	h.writeSuccess(w, r, models.NDVILayersResponse{
		Status:  models.StatusSuccess,
		URL2019: layers.NDVI2019.URLFormat,
		URL2024: layers.NDVI2024.URLFormat,
	})
}

func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request, body any) {
	if _, err := utils.WriteJSON(w, body, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
