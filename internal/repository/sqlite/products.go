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

// Products is the SQLite product repository.
type Products struct {
	db *sql.DB
}

func scanProduct(scan func(dest ...any) error) (domain.Product, error) {
	var (
		p           domain.Product
		description sql.NullString
		inStock     int64
	)
	if err := scan(&p.ID, &p.Name, &description, &p.Price, &inStock); err != nil {
		return domain.Product{}, err
	}
	p.Description = nullToString(description)
	p.InStock = intToBool(inStock)
	return p, nil
}

// FindAll returns every product, newest first.
func (r *Products) FindAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price, in_stock FROM products ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// FindByID returns the product with the given id.
func (r *Products) FindByID(ctx context.Context, id string) (domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, in_stock FROM products WHERE id = ?
	`, id)
	p, err := scanProduct(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, repository.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("query product: %w", err)
	}
	return p, nil
}

// Create inserts a new product with a generated id, defaulting inStock to true.
func (r *Products) Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		InStock:     req.Stocked(),
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, description, price, in_stock, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Description, p.Price, boolToInt(p.InStock), time.Now())
	if err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

// Update applies the non-nil fields of req and returns the full updated row.
func (r *Products) Update(ctx context.Context, id string, req domain.UpdateProductRequest) (domain.Product, error) {
	var sets []string
	var args []any
	if req.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *req.Description)
	}
	if req.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *req.Price)
	}
	if req.InStock != nil {
		sets = append(sets, "in_stock = ?")
		args = append(args, boolToInt(*req.InStock))
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Product{}, repository.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes the product with the given id, reporting whether it existed.
func (r *Products) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
