package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/tracewell/covid-social-be/internal/auth"
	"github.com/tracewell/covid-social-be/internal/http/respond"
	"github.com/tracewell/covid-social-be/internal/middleware"
	"github.com/tracewell/covid-social-be/internal/models"
	"github.com/tracewell/covid-social-be/internal/storage"
)

// UserHandler owns the user, auth, friend, and covid-status endpoints.
type UserHandler struct {
	store      storage.UserStore
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewUserHandler constructs the handler.
func NewUserHandler(store storage.UserStore, tokens *auth.TokenManager, bcryptCost int) *UserHandler {
	return &UserHandler{store: store, tokens: tokens, bcryptCost: bcryptCost}
}

// Register attaches all routes to the mux. Routes past registration and
// login require a verified bearer token.
func (h *UserHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /users", h.handleRegister)
	mux.HandleFunc("POST /auth", h.handleLogin)

	authed := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h.tokens, fn)
	}
	mux.Handle("GET /users", authed(h.handleList))
	mux.Handle("GET /users/me", authed(h.handleMe))
	mux.Handle("GET /users/friends", authed(h.handleFriends))
	mux.Handle("POST /users/add-friend/{id}", authed(h.handleAddFriend))
	mux.Handle("POST /users/remove-friend/{id}", authed(h.handleRemoveFriend))
	mux.Handle("PUT /users/add-vaccination", authed(h.handleAddVaccination))
	mux.Handle("PUT /users/covid-status", authed(h.handleCovidStatus))
	mux.Handle("DELETE /users/me", authed(h.handleDelete))
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		log.Printf("list users error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	summaries := make([]models.Summary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, user.Summary())
	}
	respond.JSON(w, http.StatusOK, summaries)
}

func (h *UserHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	user, err := h.store.FindByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "The user with the given ID was not found.")
			return
		}
		log.Printf("fetch user %s error: %v", userID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	respond.JSON(w, http.StatusOK, user.Summary())
}

func (h *UserHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	// Other users' friend lists are not cleaned up here: references to a
	// deleted user dangle until the holder removes them.
	if err := h.store.DeleteUser(r.Context(), userID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("delete user %s error: %v", userID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	respond.Text(w, http.StatusOK, "User deleted successfully.")
}
