// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/geo-waqf/geowaqf/internal/utils"
	"github.com/geo-waqf/geowaqf/models"
)

const (
	notFoundMessage        = "not found"
	tooManyRequestsMessage = "too many requests"
)

// notFound answers unknown paths and unsupported methods on known paths
// alike: 404 with the error envelope. Chi's default 405 is never sent.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.NewErrorResponse(notFoundMessage), http.StatusNotFound); err != nil {
		h.logger.Err(err).Msg("error writing not found response")
	}
}

func (h *Handler) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.NewErrorResponse(tooManyRequestsMessage), http.StatusTooManyRequests); err != nil {
		h.logger.Err(err).Msg("error writing rate limit response")
	}
}
