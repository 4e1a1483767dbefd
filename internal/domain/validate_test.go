package domain

import (
	"errors"
	"testing"
)

func TestCreateUserRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr bool
	}{
		{
			name: "valid with explicit role",
			req:  CreateUserRequest{Name: "John Doe", Email: "john@example.com", Role: RoleAdmin},
		},
		{
			name: "valid without role",
			req:  CreateUserRequest{Name: "Jane Smith", Email: "jane@example.com"},
		},
		{
			name:    "missing name",
			req:     CreateUserRequest{Email: "john@example.com"},
			wantErr: true,
		},
		{
			name:    "missing email",
			req:     CreateUserRequest{Name: "John Doe"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			req:     CreateUserRequest{Name: "John Doe", Email: "not-an-email"},
			wantErr: true,
		},
		{
			name:    "unknown role",
			req:     CreateUserRequest{Name: "John Doe", Email: "john@example.com", Role: "superuser"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Fatalf("error %v does not wrap ErrValidation", err)
			}
		})
	}
}

func TestCreateProductRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateProductRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  CreateProductRequest{Name: "Laptop", Price: 2500},
		},
		{
			name:    "missing name",
			req:     CreateProductRequest{Price: 2500},
			wantErr: true,
		},
		{
			name:    "zero price",
			req:     CreateProductRequest{Name: "Laptop"},
			wantErr: true,
		},
		{
			name:    "negative price",
			req:     CreateProductRequest{Name: "Laptop", Price: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreateProductRequestStocked(t *testing.T) {
	req := CreateProductRequest{Name: "Laptop", Price: 2500}
	if !req.Stocked() {
		t.Error("expected inStock to default to true")
	}

	f := false
	req.InStock = &f
	if req.Stocked() {
		t.Error("expected explicit inStock=false to be preserved")
	}
}

func TestCreateOrderRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateOrderRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  CreateOrderRequest{CustomerID: "1", ProductID: "1", Quantity: 2},
		},
		{
			name:    "missing customer",
			req:     CreateOrderRequest{ProductID: "1", Quantity: 2},
			wantErr: true,
		},
		{
			name:    "missing product",
			req:     CreateOrderRequest{CustomerID: "1", Quantity: 2},
			wantErr: true,
		},
		{
			name:    "zero quantity",
			req:     CreateOrderRequest{CustomerID: "1", ProductID: "1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdateRequestsValidatePresentFieldsOnly(t *testing.T) {
	// Empty partials are valid no-ops.
	if err := (UpdateUserRequest{}).Validate(); err != nil {
		t.Fatalf("empty user update: %v", err)
	}
	if err := (UpdateProductRequest{}).Validate(); err != nil {
		t.Fatalf("empty product update: %v", err)
	}
	if err := (UpdateOrderRequest{}).Validate(); err != nil {
		t.Fatalf("empty order update: %v", err)
	}

	empty := ""
	if err := (UpdateUserRequest{Name: &empty}).Validate(); err == nil {
		t.Fatal("expected error for empty name")
	}

	badStatus := OrderStatus("shipped")
	if err := (UpdateOrderRequest{Status: &badStatus}).Validate(); err == nil {
		t.Fatal("expected error for unknown status")
	}

	zero := 0
	if err := (UpdateOrderRequest{Quantity: &zero}).Validate(); err == nil {
		t.Fatal("expected error for zero quantity")
	}
}
