package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"droughtwatch/internal/middleware"
	"droughtwatch/internal/model"
	"droughtwatch/internal/service"
	"droughtwatch/pkg/apierror"
)

type FarmHandler struct {
	service *service.FarmService
}

func NewFarmHandler(service *service.FarmService) *FarmHandler {
	return &FarmHandler{service: service}
}

func (h *FarmHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("authentication required"))
		return
	}

	var payload model.CreateFarmRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body", ""))
		return
	}

	farm, err := h.service.Create(r.Context(), claims.UserID, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, farm, nil)
}

func (h *FarmHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("authentication required"))
		return
	}

	farms, err := h.service.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, farms, &model.Meta{Count: len(farms)})
}

func (h *FarmHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "farm_id"), 10, 64)
	if err != nil {
		writeError(w, apierror.BadRequest("farm_id must be an integer", ""))
		return
	}

	farm, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, farm, nil)
}
