package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// ListUsers handles GET /api/users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.Users.FindAll(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list users")
		h.writeError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}
	h.writeJSON(w, http.StatusOK, emptyList(users))
}

// GetUser handles GET /api/users/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := h.store.Users.FindByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("get user")
		h.writeError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// CreateUser handles POST /api/users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	user, err := h.store.Users.Create(r.Context(), req)
	if err != nil {
		h.log.Error().Err(err).Msg("create user")
		h.writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	h.writeJSON(w, http.StatusCreated, user)
}

// UpdateUser handles PUT /api/users/{id}.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req domain.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	user, err := h.store.Users.Update(r.Context(), id, req)
	if errors.Is(err, repository.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("update user")
		h.writeError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.store.Users.Delete(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("delete user")
		h.writeError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if !deleted {
		h.writeError(w, http.StatusNotFound, "User not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
