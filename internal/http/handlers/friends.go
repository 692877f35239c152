package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/tracewell/covid-social-be/internal/http/respond"
	"github.com/tracewell/covid-social-be/internal/middleware"
	"github.com/tracewell/covid-social-be/internal/models"
	"github.com/tracewell/covid-social-be/internal/storage"
)

// Friend links are directed in storage: add and remove write only the
// caller's row, the other user's list is never touched.

func (h *UserHandler) handleFriends(w http.ResponseWriter, r *http.Request) {
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

	friends, err := h.store.ListByIDs(r.Context(), user.Friends)
	if err != nil {
		log.Printf("list friends of %s error: %v", userID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to list friends")
		return
	}
	views := make([]models.FriendView, 0, len(friends))
	for _, friend := range friends {
		views = append(views, friend.FriendView())
	}
	respond.JSON(w, http.StatusOK, views)
}

func (h *UserHandler) handleAddFriend(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	friendID := r.PathValue("id")
	if friendID == userID {
		respond.Error(w, http.StatusBadRequest, "You cannot add yourself as a friend.")
		return
	}

	user, err := h.store.FindByID(r.Context(), userID)
	if err != nil {
		h.respondFriendLookup(w, userID, err)
		return
	}
	friend, err := h.store.FindByID(r.Context(), friendID)
	if err != nil {
		h.respondFriendLookup(w, friendID, err)
		return
	}

	user.AddFriend(friend.ID)
	if err := h.store.UpdateFriends(r.Context(), user.ID, user.Friends); err != nil {
		log.Printf("update friends of %s error: %v", user.ID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to update friends")
		return
	}
	respond.Text(w, http.StatusOK, "Friend added.")
}

func (h *UserHandler) handleRemoveFriend(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	friendID := r.PathValue("id")
	if friendID == userID {
		respond.Error(w, http.StatusBadRequest, "You cannot remove yourself from your friend's list.")
		return
	}

	user, err := h.store.FindByID(r.Context(), userID)
	if err != nil {
		h.respondFriendLookup(w, userID, err)
		return
	}
	// The friend's own record is not consulted: removing a friend that was
	// since deleted still works, which is how dangling references drain.
	if !user.RemoveFriend(friendID) {
		respond.Error(w, http.StatusBadRequest, "This user is not currently your friend.")
		return
	}
	if err := h.store.UpdateFriends(r.Context(), user.ID, user.Friends); err != nil {
		log.Printf("update friends of %s error: %v", user.ID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to update friends")
		return
	}
	respond.Text(w, http.StatusOK, "Friend removed.")
}

func (h *UserHandler) respondFriendLookup(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		respond.Error(w, http.StatusBadRequest, "The user with the given ID could not be found.")
		return
	}
	log.Printf("fetch user %s error: %v", id, err)
	respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
}
