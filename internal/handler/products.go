package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// ListProducts handles GET /api/products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.Products.FindAll(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list products")
		h.writeError(w, http.StatusInternalServerError, "Failed to list products")
		return
	}
	h.writeJSON(w, http.StatusOK, emptyList(products))
}

// GetProduct handles GET /api/products/{id}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, err := h.store.Products.FindByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("get product")
		h.writeError(w, http.StatusInternalServerError, "Failed to get product")
		return
	}
	h.writeJSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /api/products.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	product, err := h.store.Products.Create(r.Context(), req)
	if err != nil {
		h.log.Error().Err(err).Msg("create product")
		h.writeError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}
	h.writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/{id}.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req domain.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	product, err := h.store.Products.Update(r.Context(), id, req)
	if errors.Is(err, repository.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("update product")
		h.writeError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}
	h.writeJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/{id}.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleted, err := h.store.Products.Delete(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("delete product")
		h.writeError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if !deleted {
		h.writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
