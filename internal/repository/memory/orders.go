package memory

import (
	"context"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// FindAll returns every order in insertion order.
func (r *Orders) FindAll(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// FindByID returns the order with the given id.
func (r *Orders) FindByID(ctx context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, repository.ErrNotFound
}

// Create snapshots the referenced product's price into the order total and
// appends the order with status "pending". The customer reference is not
// checked, matching the persistent backend's schema which only constrains the
// product lookup at creation time.
func (r *Orders) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	product, err := r.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: %s", repository.ErrProductNotFound, req.ProductID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	o := domain.Order{
		ID:         r.ids.id(),
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Total:      product.Price * float64(req.Quantity),
		Status:     domain.OrderPending,
	}
	r.orders = append(r.orders, o)
	return o, nil
}

// Update applies the non-nil fields of req to the stored order. The total is
// only changed when explicitly provided; it is never recomputed.
func (r *Orders) Update(ctx context.Context, id string, req domain.UpdateOrderRequest) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}
		if req.CustomerID != nil {
			r.orders[i].CustomerID = *req.CustomerID
		}
		if req.ProductID != nil {
			r.orders[i].ProductID = *req.ProductID
		}
		if req.Quantity != nil {
			r.orders[i].Quantity = *req.Quantity
		}
		if req.Total != nil {
			r.orders[i].Total = *req.Total
		}
		if req.Status != nil {
			r.orders[i].Status = *req.Status
		}
		return r.orders[i], nil
	}
	return domain.Order{}, repository.ErrNotFound
}

// Delete removes the order with the given id, reporting whether it existed.
func (r *Orders) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
