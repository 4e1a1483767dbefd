package memory

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// FindAll returns every user in insertion order.
func (r *Users) FindAll(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// FindByID returns the user with the given id.
func (r *Users) FindByID(ctx context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrNotFound
}

// Create appends a new user, defaulting the role to "user".
func (r *Users) Create(ctx context.Context, req domain.CreateUserRequest) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	u := domain.User{
		ID:    r.ids.id(),
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
	}
	r.users = append(r.users, u)
	return u, nil
}

// Update applies the non-nil fields of req to the stored user.
func (r *Users) Update(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		if req.Name != nil {
			r.users[i].Name = *req.Name
		}
		if req.Email != nil {
			r.users[i].Email = *req.Email
		}
		if req.Role != nil {
			r.users[i].Role = *req.Role
		}
		return r.users[i], nil
	}
	return domain.User{}, repository.ErrNotFound
}

// Delete removes the user with the given id, reporting whether it existed.
func (r *Users) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
