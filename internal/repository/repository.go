package repository

import (
	"context"
	"errors"

	"storefront/internal/domain"
)

// ErrNotFound indicates a lookup by id matched no record.
var ErrNotFound = errors.New("not found")

// ErrProductNotFound indicates an order referenced a product that does not
// exist. It is distinct from ErrNotFound so the HTTP layer can report a
// referential failure on create instead of a missing resource.
var ErrProductNotFound = errors.New("product not found")

// UserRepository persists users.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, req domain.CreateUserRequest) (domain.User, error)
	Update(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProductRepository persists products.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
	Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error)
	Update(ctx context.Context, id string, req domain.UpdateProductRequest) (domain.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// OrderRepository persists orders. Create computes the order total from the
// referenced product's current price and fails with ErrProductNotFound if no
// such product exists.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (domain.Order, error)
	Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	Update(ctx context.Context, id string, req domain.UpdateOrderRequest) (domain.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Store bundles the per-entity repositories of one backend with its lifecycle.
type Store struct {
	Users    UserRepository
	Products ProductRepository
	Orders   OrderRepository

	closer func() error
}

// NewStore builds a Store. closer may be nil for backends without resources.
func NewStore(users UserRepository, products ProductRepository, orders OrderRepository, closer func() error) *Store {
	return &Store{Users: users, Products: products, Orders: orders, closer: closer}
}

// Close releases the backend's resources.
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
