// Package memory implements the storefront repositories over in-process
// slices. Records keep insertion order, FindAll returns copies, and ids come
// from a per-repository counter seeded above the initial seed data. The
// backend is a process-lifetime store for demos and handler tests.
package memory

import (
	"strconv"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// NewStore builds a seeded in-memory store. The order repository reads prices
// through the product repository at order creation time.
func NewStore() *repository.Store {
	products := NewProducts()
	return repository.NewStore(NewUsers(), products, NewOrders(products), nil)
}

// counter issues sequential string ids, mirroring the seeded numeric ids.
type counter struct {
	next int
}

func (c *counter) id() string {
	id := strconv.Itoa(c.next)
	c.next++
	return id
}

// Users is the in-memory user repository.
type Users struct {
	mu    sync.RWMutex
	users []domain.User
	ids   counter
}

// NewUsers returns a user repository seeded with demo accounts.
func NewUsers() *Users {
	return &Users{
		users: []domain.User{
			{ID: "1", Name: "John Doe", Email: "john@example.com", Role: domain.RoleAdmin},
			{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Role: domain.RoleUser},
		},
		ids: counter{next: 3},
	}
}

// Products is the in-memory product repository.
type Products struct {
	mu       sync.RWMutex
	products []domain.Product
	ids      counter
}

// NewProducts returns a product repository seeded with demo catalog entries.
func NewProducts() *Products {
	return &Products{
		products: []domain.Product{
			{ID: "1", Name: "Laptop", Description: "Powerful laptop for development", Price: 2500, InStock: true},
			{ID: "2", Name: "Keyboard", Description: "Mechanical keyboard", Price: 150, InStock: true},
			{ID: "3", Name: "Monitor", Description: `27" 4K monitor`, Price: 800, InStock: false},
		},
		ids: counter{next: 4},
	}
}

// Orders is the in-memory order repository.
type Orders struct {
	mu       sync.RWMutex
	orders   []domain.Order
	ids      counter
	products *Products
}

// NewOrders returns an order repository seeded with demo orders. products is
// consulted for the price snapshot when new orders are created.
func NewOrders(products *Products) *Orders {
	return &Orders{
		orders: []domain.Order{
			{ID: "1", CustomerID: "1", ProductID: "1", Quantity: 1, Total: 2500, Status: domain.OrderCompleted},
			{ID: "2", CustomerID: "2", ProductID: "2", Quantity: 2, Total: 300, Status: domain.OrderPending},
		},
		ids:      counter{next: 3},
		products: products,
	}
}
