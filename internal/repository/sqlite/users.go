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

// Users is the SQLite user repository.
type Users struct {
	db *sql.DB
}

// FindAll returns every user, newest first.
func (r *Users) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, role FROM users ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// FindByID returns the user with the given id.
func (r *Users) FindByID(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, role FROM users WHERE id = ?
	`, id).Scan(&u.ID, &u.Name, &u.Email, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, repository.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}

// Create inserts a new user with a generated id, defaulting the role to "user".
func (r *Users) Create(ctx context.Context, req domain.CreateUserRequest) (domain.User, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	u := domain.User{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, role, created_at) VALUES (?, ?, ?, ?, ?)
	`, u.ID, u.Name, u.Email, string(u.Role), time.Now())
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// Update applies the non-nil fields of req and returns the full updated row.
func (r *Users) Update(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.User, error) {
	var sets []string
	var args []any
	if req.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *req.Name)
	}
	if req.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *req.Email)
	}
	if req.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, string(*req.Role))
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.User{}, repository.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes the user with the given id, reporting whether it existed.
func (r *Users) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
