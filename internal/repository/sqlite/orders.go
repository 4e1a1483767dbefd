package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// Orders is the SQLite order repository.
type Orders struct {
	db *sql.DB
}

// FindAll returns every order, newest first.
func (r *Orders) FindAll(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_id, product_id, quantity, total, status
		FROM orders ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity, &o.Total, &o.Status); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// FindByID returns the order with the given id.
func (r *Orders) FindByID(ctx context.Context, id string) (domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, product_id, quantity, total, status
		FROM orders WHERE id = ?
	`, id).Scan(&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity, &o.Total, &o.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, repository.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("query order: %w", err)
	}
	return o, nil
}

// Create looks up the referenced product's price and stores price*quantity as
// the order total. The lookup and insert share one transaction, so a product
// deleted mid-create cannot leave a priced order behind.
func (r *Orders) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var price float64
	err = tx.QueryRowContext(ctx, `SELECT price FROM products WHERE id = ?`, req.ProductID).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("%w: %s", repository.ErrProductNotFound, req.ProductID)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("query product price: %w", err)
	}

	o := domain.Order{
		ID:         uuid.NewString(),
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Total:      price * float64(req.Quantity),
		Status:     domain.OrderPending,
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_id, product_id, quantity, total, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, o.ID, o.CustomerID, o.ProductID, o.Quantity, o.Total, string(o.Status), time.Now())
	if err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Order{}, fmt.Errorf("commit order: %w", err)
	}
	return o, nil
}

// Update applies the non-nil fields of req and returns the full updated row.
// The stored total is never recomputed here.
func (r *Orders) Update(ctx context.Context, id string, req domain.UpdateOrderRequest) (domain.Order, error) {
	var sets []string
	var args []any
	if req.CustomerID != nil {
		sets = append(sets, "customer_id = ?")
		args = append(args, *req.CustomerID)
	}
	if req.ProductID != nil {
		sets = append(sets, "product_id = ?")
		args = append(args, *req.ProductID)
	}
	if req.Quantity != nil {
		sets = append(sets, "quantity = ?")
		args = append(args, *req.Quantity)
	}
	if req.Total != nil {
		sets = append(sets, "total = ?")
		args = append(args, *req.Total)
	}
	if req.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*req.Status))
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Order{}, repository.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes the order with the given id, reporting whether it existed.
func (r *Orders) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
