package memory

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// FindAll returns every product in insertion order.
func (r *Products) FindAll(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// FindByID returns the product with the given id.
func (r *Products) FindByID(ctx context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, repository.ErrNotFound
}

// Create appends a new product, defaulting inStock to true.
func (r *Products) Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := domain.Product{
		ID:          r.ids.id(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		InStock:     req.Stocked(),
	}
	r.products = append(r.products, p)
	return p, nil
}

// Update applies the non-nil fields of req to the stored product.
func (r *Products) Update(ctx context.Context, id string, req domain.UpdateProductRequest) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID != id {
			continue
		}
		if req.Name != nil {
			r.products[i].Name = *req.Name
		}
		if req.Description != nil {
			r.products[i].Description = *req.Description
		}
		if req.Price != nil {
			r.products[i].Price = *req.Price
		}
		if req.InStock != nil {
			r.products[i].InStock = *req.InStock
		}
		return r.products[i], nil
	}
	return domain.Product{}, repository.ErrNotFound
}

// Delete removes the product with the given id, reporting whether it existed.
func (r *Products) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
