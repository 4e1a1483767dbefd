package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// ListOrders handles GET /api/orders.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.Orders.FindAll(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list orders")
		h.writeError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}
	h.writeJSON(w, http.StatusOK, emptyList(orders))
}

// GetOrder handles GET /api/orders/{id}.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	order, err := h.store.Orders.FindByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("get order")
		h.writeError(w, http.StatusInternalServerError, "Failed to get order")
		return
	}
	h.writeJSON(w, http.StatusOK, order)
}

// CreateOrder handles POST /api/orders. A payload naming a product that does
// not exist is well-formed but unprocessable, so the referential failure maps
// to 422 with the repository's descriptive message rather than the generic
// validation reply.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	order, err := h.store.Orders.Create(r.Context(), req)
	if errors.Is(err, repository.ErrProductNotFound) {
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("create order")
		h.writeError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}
	h.writeJSON(w, http.StatusCreated, order)
}

// UpdateOrder handles PUT /api/orders/{id}.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req domain.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	order, err := h.store.Orders.Update(r.Context(), id, req)
	if errors.Is(err, repository.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("update order")
		h.writeError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}
	h.writeJSON(w, http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/orders/{id}.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.store.Orders.Delete(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("delete order")
		h.writeError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	if !deleted {
		h.writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
