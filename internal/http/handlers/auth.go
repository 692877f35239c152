package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tracewell/covid-social-be/internal/auth"
	"github.com/tracewell/covid-social-be/internal/http/respond"
	"github.com/tracewell/covid-social-be/internal/models"
	"github.com/tracewell/covid-social-be/internal/models/dto"
	"github.com/tracewell/covid-social-be/internal/storage"
)

func (h *UserHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	passwordHash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		log.Printf("hash password error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: passwordHash,
		Friends:      []string{},
		DateJoined:   time.Now().UTC(),
	}
	created, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			respond.Error(w, http.StatusBadRequest, "This email is already registered.")
		default:
			log.Printf("create user error: %v", err)
			respond.Error(w, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	token, err := h.tokens.Generate(created.ID)
	if err != nil {
		log.Printf("generate token error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	w.Header().Set("X-Auth-Token", token)
	w.Header().Set("Access-Control-Expose-Headers", "X-Auth-Token")
	respond.JSON(w, http.StatusCreated, created.Summary())
}

func (h *UserHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.store.FindByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusBadRequest, "Invalid email or password.")
			return
		}
		log.Printf("login: fetch user error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		respond.Error(w, http.StatusBadRequest, "Invalid email or password.")
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		log.Printf("generate token error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.Text(w, http.StatusOK, token)
}
