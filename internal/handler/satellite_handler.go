package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"droughtwatch/internal/model"
	"droughtwatch/internal/service"
	"droughtwatch/pkg/apierror"
)

type SatelliteHandler struct {
	service *service.SatelliteService
}

func NewSatelliteHandler(service *service.SatelliteService) *SatelliteHandler {
	return &SatelliteHandler{service: service}
}

func (h *SatelliteHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.IngestSatelliteDataRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body", ""))
		return
	}

	entry, err := h.service.Ingest(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, entry, nil)
}

func (h *SatelliteHandler) List(w http.ResponseWriter, r *http.Request) {
	farmID, err := queryInt64(r, "farm_id")
	if err != nil {
		writeError(w, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, parseErr := strconv.Atoi(raw)
		if parseErr != nil || v <= 0 {
			writeError(w, apierror.BadRequest("limit must be a positive integer", raw))
			return
		}
		limit = v
	}

	entries, err := h.service.ListForFarm(r.Context(), farmID, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, entries, &model.Meta{Limit: limit, Count: len(entries)})
}
