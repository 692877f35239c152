package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tracewell/covid-social-be/internal/http/respond"
	"github.com/tracewell/covid-social-be/internal/middleware"
	"github.com/tracewell/covid-social-be/internal/models/dto"
	"github.com/tracewell/covid-social-be/internal/storage"
)

func (h *UserHandler) handleAddVaccination(w http.ResponseWriter, r *http.Request) {
	var req dto.VaccinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.UserID(r.Context())
	if err := h.store.UpdateVaccination(r.Context(), userID, req.Vaccination()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "The user with the given ID was not found.")
			return
		}
		log.Printf("update vaccination of %s error: %v", userID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to update vaccination")
		return
	}
	respond.Text(w, http.StatusOK, "Vaccination added.")
}

func (h *UserHandler) handleCovidStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.CovidStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := middleware.UserID(r.Context())
	if err := h.store.UpdateCovidStatus(r.Context(), userID, *req.HasCovid, req.LastExposed); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusBadRequest, "The user with the given ID could not be found.")
			return
		}
		log.Printf("update covid status of %s error: %v", userID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to update status")
		return
	}
	respond.Text(w, http.StatusOK, "Status updated.")
}
