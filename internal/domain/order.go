package domain

import "fmt"

// OrderStatus tracks an order through its lifecycle.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order records a purchase of a single product. Total is a snapshot of
// product.Price * Quantity taken at creation time and never recomputed.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	ProductID  string      `json:"productId"`
	Quantity   int         `json:"quantity"`
	Total      float64     `json:"total"`
	Status     OrderStatus `json:"status"`
}

// CreateOrderRequest is the payload for POST /api/orders. The total and
// status are assigned by the repository, not the caller.
type CreateOrderRequest struct {
	CustomerID string `json:"customerId"`
	ProductID  string `json:"productId"`
	Quantity   int    `json:"quantity"`
}

// Validate checks required fields.
func (r CreateOrderRequest) Validate() error {
	if r.CustomerID == "" {
		return fmt.Errorf("%w: customerId is required", ErrValidation)
	}
	if r.ProductID == "" {
		return fmt.Errorf("%w: productId is required", ErrValidation)
	}
	if r.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	return nil
}

// UpdateOrderRequest carries a partial update; nil fields are left untouched.
// Updating quantity does not recompute the stored total.
type UpdateOrderRequest struct {
	CustomerID *string      `json:"customerId,omitempty"`
	ProductID  *string      `json:"productId,omitempty"`
	Quantity   *int         `json:"quantity,omitempty"`
	Total      *float64     `json:"total,omitempty"`
	Status     *OrderStatus `json:"status,omitempty"`
}

// Validate checks the fields that are present.
func (r UpdateOrderRequest) Validate() error {
	if r.CustomerID != nil && *r.CustomerID == "" {
		return fmt.Errorf("%w: customerId must not be empty", ErrValidation)
	}
	if r.ProductID != nil && *r.ProductID == "" {
		return fmt.Errorf("%w: productId must not be empty", ErrValidation)
	}
	if r.Quantity != nil && *r.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if r.Status != nil && !r.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, *r.Status)
	}
	return nil
}
