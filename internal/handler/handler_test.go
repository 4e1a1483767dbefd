package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"storefront/internal/domain"
	"storefront/internal/repository/memory"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewStore()
	t.Cleanup(func() { store.Close() })
	return NewRouter(New(store, zerolog.Nop()))
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodGet, "/health", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeBody[HealthResponse](t, rec)
	if resp.Status != "ok" {
		t.Errorf("status field = %q, want ok", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Error("timestamp is zero")
	}
}

func TestListUsersSeeded(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodGet, "/api/users", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	users := decodeBody[[]domain.User](t, rec)
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0].Name != "John Doe" || users[0].Role != domain.RoleAdmin {
		t.Errorf("first seeded user = %+v", users[0])
	}
}

func TestListEncodesAsArray(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodGet, "/api/users", nil)

	body := strings.TrimSpace(rec.Body.String())
	if !strings.HasPrefix(body, "[") {
		t.Fatalf("list body does not start with '[': %s", body)
	}
}

func TestUserJSONFieldNames(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodGet, "/api/users/1", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	raw := decodeBody[map[string]any](t, rec)
	for _, key := range []string{"id", "name", "email", "role"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("response missing %q field: %v", key, raw)
		}
	}
}

func TestGetUserNotFound(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodGet, "/api/users/999", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	resp := decodeBody[ErrorResponse](t, rec)
	if resp.Error != "User not found" {
		t.Errorf("error = %q, want %q", resp.Error, "User not found")
	}
}

func TestCreateUser(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodPost, "/api/users", domain.CreateUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	user := decodeBody[domain.User](t, rec)
	if user.ID == "" {
		t.Error("created user has no id")
	}
	if user.Role != domain.RoleUser {
		t.Errorf("role = %q, want default user", user.Role)
	}

	got := doRequest(t, router, http.MethodGet, "/api/users/"+user.ID, nil)
	if got.Code != http.StatusOK {
		t.Fatalf("get after create = %d, want 200", got.Code)
	}
}

func TestCreateUserInvalid(t *testing.T) {
	tests := []struct {
		name string
		req  domain.CreateUserRequest
	}{
		{name: "missing name", req: domain.CreateUserRequest{Email: "a@b.com"}},
		{name: "bad email", req: domain.CreateUserRequest{Name: "Bob", Email: "not-an-email"}},
	}

	router := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/users", tt.req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			resp := decodeBody[ErrorResponse](t, rec)
			if resp.Error != "Invalid data" {
				t.Errorf("error = %q, want %q", resp.Error, "Invalid data")
			}
		})
	}
}

func TestCreateUserMalformedJSON(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateUserPartial(t *testing.T) {
	router := newTestRouter(t)
	name := "Johnathan Doe"
	rec := doRequest(t, router, http.MethodPut, "/api/users/1", domain.UpdateUserRequest{Name: &name})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	user := decodeBody[domain.User](t, rec)
	if user.Name != name {
		t.Errorf("name = %q, want %q", user.Name, name)
	}
	if user.Email != "john@example.com" {
		t.Errorf("email changed on partial update: %q", user.Email)
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	router := newTestRouter(t)
	name := "Ghost"
	rec := doRequest(t, router, http.MethodPut, "/api/users/999", domain.UpdateUserRequest{Name: &name})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteUser(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodDelete, "/api/users/2", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	got := doRequest(t, router, http.MethodGet, "/api/users/2", nil)
	if got.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d, want 404", got.Code)
	}

	again := doRequest(t, router, http.MethodDelete, "/api/users/2", nil)
	if again.Code != http.StatusNotFound {
		t.Fatalf("second delete = %d, want 404", again.Code)
	}
}

func TestCreateProductDefaultsInStock(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodPost, "/api/products", domain.CreateProductRequest{
		Name:  "Webcam",
		Price: 120,
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	product := decodeBody[domain.Product](t, rec)
	if !product.InStock {
		t.Error("inStock should default to true")
	}
}

func TestCreateProductInvalidPrice(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodPost, "/api/products", domain.CreateProductRequest{
		Name:  "Freebie",
		Price: 0,
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateOrderComputesTotal(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodPost, "/api/orders", domain.CreateOrderRequest{
		CustomerID: "1",
		ProductID:  "1",
		Quantity:   2,
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	order := decodeBody[domain.Order](t, rec)
	if order.Total != 5000 {
		t.Errorf("total = %v, want 5000", order.Total)
	}
	if order.Status != domain.OrderPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
}

func TestCreateOrderMissingProduct(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodPost, "/api/orders", domain.CreateOrderRequest{
		CustomerID: "1",
		ProductID:  "999",
		Quantity:   1,
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[ErrorResponse](t, rec)
	if !strings.Contains(resp.Error, "999") {
		t.Errorf("error %q should name the missing product", resp.Error)
	}
}

func TestCreateOrderInvalidQuantity(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodPost, "/api/orders", domain.CreateOrderRequest{
		CustomerID: "1",
		ProductID:  "1",
		Quantity:   0,
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	router := newTestRouter(t)
	status := domain.OrderCompleted
	rec := doRequest(t, router, http.MethodPut, "/api/orders/1", domain.UpdateOrderRequest{Status: &status})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	order := decodeBody[domain.Order](t, rec)
	if order.Status != domain.OrderCompleted {
		t.Errorf("status = %q, want completed", order.Status)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow-origin = %q, want *", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodGet, "/metrics", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
