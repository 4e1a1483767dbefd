package domain

import (
	"fmt"
	"net/mail"
)

// Role controls what a user is allowed to do in the UI.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is a registered account.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// CreateUserRequest is the payload for POST /api/users.
// Role is optional and defaults to "user".
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`
}

// Validate checks required fields and the email shape.
func (r CreateUserRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: email %q is not valid", ErrValidation, r.Email)
	}
	if r.Role != "" && !r.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, r.Role)
	}
	return nil
}

// UpdateUserRequest carries a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *Role   `json:"role,omitempty"`
}

// Validate checks the fields that are present.
func (r UpdateUserRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if r.Email != nil {
		if _, err := mail.ParseAddress(*r.Email); err != nil {
			return fmt.Errorf("%w: email %q is not valid", ErrValidation, *r.Email)
		}
	}
	if r.Role != nil && !r.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, *r.Role)
	}
	return nil
}
