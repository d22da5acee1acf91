package handler

import (
	"encoding/json"
	"net/http"

	"droughtwatch/internal/model"
	"droughtwatch/internal/service"
	"droughtwatch/pkg/apierror"
)

type RecoveryPlanHandler struct {
	service *service.RecoveryPlanService
}

func NewRecoveryPlanHandler(service *service.RecoveryPlanService) *RecoveryPlanHandler {
	return &RecoveryPlanHandler{service: service}
}

func (h *RecoveryPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateRecoveryPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body", ""))
		return
	}

	plan, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, plan, nil)
}

func (h *RecoveryPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	farmID, err := queryInt64(r, "farm_id")
	if err != nil {
		writeError(w, err)
		return
	}

	plans, err := h.service.ListForFarm(r.Context(), farmID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, plans, &model.Meta{Count: len(plans)})
}
