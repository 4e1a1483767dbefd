// Package sqlite implements the storefront repositories over a SQLite
// database using the modernc.org/sqlite driver. A file path gives the
// persistent backend; ":memory:" gives the ephemeral backend used by tests,
// whose contents vanish when the connection closes.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store owns one SQLite database and the repositories backed by it.
type Store struct {
	db *sql.DB

	Users    *Users
	Products *Products
	Orders   *Orders
}

// Open opens (or creates) the database at path and migrates the schema.
// Pass ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if path != ":memory:" {
		dsn += "&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows one writer; a single pooled connection also keeps the
	// :memory: database shared across all queries.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	s.Users = &Users{db: db}
	s.Products = &Products{db: db}
	s.Orders = &Orders{db: db}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL DEFAULT 'user',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price REAL NOT NULL,
		in_stock INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		total REAL NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Seed inserts demo data into any table that is still empty.
func (s *Store) Seed(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n == 0 {
		seed := [][]any{
			{"1", "John Doe", "john@example.com", "admin"},
			{"2", "Jane Smith", "jane@example.com", "user"},
		}
		for _, row := range seed {
			if _, err := s.db.ExecContext(ctx,
				`INSERT INTO users (id, name, email, role, created_at) VALUES (?, ?, ?, ?, ?)`,
				append(row, time.Now())...); err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if n == 0 {
		seed := [][]any{
			{"1", "Laptop", "Powerful laptop for development", 2500.0, 1},
			{"2", "Keyboard", "Mechanical keyboard", 150.0, 1},
			{"3", "Monitor", `27" 4K monitor`, 800.0, 0},
		}
		for _, row := range seed {
			if _, err := s.db.ExecContext(ctx,
				`INSERT INTO products (id, name, description, price, in_stock, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
				append(row, time.Now())...); err != nil {
				return fmt.Errorf("seed products: %w", err)
			}
		}
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return fmt.Errorf("count orders: %w", err)
	}
	if n == 0 {
		seed := [][]any{
			{"1", "1", "1", 1, 2500.0, "completed"},
			{"2", "2", "2", 2, 300.0, "pending"},
		}
		for _, row := range seed {
			if _, err := s.db.ExecContext(ctx,
				`INSERT INTO orders (id, customer_id, product_id, quantity, total, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				append(row, time.Now())...); err != nil {
				return fmt.Errorf("seed orders: %w", err)
			}
		}
	}

	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
