package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"droughtwatch/internal/model"
	"droughtwatch/internal/service"
	"droughtwatch/pkg/apierror"
)

type PredictionHandler struct {
	service *service.PredictionService
}

func NewPredictionHandler(service *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{service: service}
}

func (h *PredictionHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreatePredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body", ""))
		return
	}

	prediction, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, prediction, nil)
}

func (h *PredictionHandler) List(w http.ResponseWriter, r *http.Request) {
	farmID, err := queryInt64(r, "farm_id")
	if err != nil {
		writeError(w, err)
		return
	}

	predictions, err := h.service.ListForFarm(r.Context(), farmID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, predictions, &model.Meta{Count: len(predictions)})
}

func (h *PredictionHandler) Latest(w http.ResponseWriter, r *http.Request) {
	farmID, err := queryInt64(r, "farm_id")
	if err != nil {
		writeError(w, err)
		return
	}

	prediction, err := h.service.LatestForFarm(r.Context(), farmID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, prediction, nil)
}

func queryInt64(r *http.Request, key string) (int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, apierror.BadRequest(key+" is required", "")
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierror.BadRequest(key+" must be an integer", raw)
	}
	return v, nil
}
