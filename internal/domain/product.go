package domain

import "fmt"

// Product is a catalog entry. Its price is read once at order creation time;
// stored orders keep that snapshot even if the price changes later.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	InStock     bool    `json:"inStock"`
}

// CreateProductRequest is the payload for POST /api/products.
// InStock is tri-state on the wire: absent means "default to true".
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	InStock     *bool   `json:"inStock,omitempty"`
}

// Validate checks required fields.
func (r CreateProductRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if r.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	return nil
}

// Stocked resolves the InStock default.
func (r CreateProductRequest) Stocked() bool {
	if r.InStock == nil {
		return true
	}
	return *r.InStock
}

// UpdateProductRequest carries a partial update; nil fields are left untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	InStock     *bool    `json:"inStock,omitempty"`
}

// Validate checks the fields that are present.
func (r UpdateProductRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if r.Price != nil && *r.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	return nil
}
