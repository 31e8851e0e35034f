package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/farmops/farm-api/internal/api/handler"
	"github.com/farmops/farm-api/internal/core/service"
)

type testAPI struct {
	router http.Handler
	store  *memStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	store := newMemStore()
	managers := &memManagerRepo{s: store}
	employees := &memEmployeeRepo{s: store}
	animals := &memAnimalRepo{s: store}
	milk := &memMilkRepo{s: store}
	reports := &memHealthReportRepo{s: store}
	sales := &memSaleRepo{s: store}
	products := &memProductRepo{s: store}
	finance := &memFinanceRepo{s: store}
	orders := &memOrderRepo{s: store}

	tokens, err := service.NewTokenService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}

	log := zerolog.Nop()
	authService := service.NewAuthService(managers, employees, tokens, nil, log)

	router := NewRouter(Dependencies{
		Tokens:      tokens,
		Credentials: &memCredentialStore{managers: managers, employees: employees},

		Auth:         handler.NewAuthHandler(authService),
		Employees:    handler.NewEmployeeHandler(service.NewEmployeeService(employees, log)),
		Animals:      handler.NewAnimalHandler(service.NewAnimalService(animals, log)),
		Milk:         handler.NewMilkHandler(service.NewMilkService(milk, log)),
		HealthReport: handler.NewHealthReportHandler(service.NewHealthReportService(reports, log)),
		Sales:        handler.NewSaleHandler(service.NewSaleService(sales, log)),
		Products:     handler.NewProductHandler(service.NewProductService(products, log)),
		Orders:       handler.NewOrderHandler(service.NewOrderService(orders, products, noopQueue{}, log)),
		Finance:      handler.NewFinanceHandler(service.NewFinanceService(finance, log)),
		Dashboard:    handler.NewDashboardHandler(service.NewDashboardService(animals, employees, milk, orders, log)),

		Registry: prometheus.NewRegistry(),
		Log:      log,
	})

	return &testAPI{router: router, store: store}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echoHeaderContentType, "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

const echoHeaderContentType = "Content-Type"

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func (a *testAPI) registerManager(t *testing.T, username string) string {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": username,
		"fullName": "Manager " + username,
		"password": "pass123",
		"contact":  "0123456789",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	token, _ := decodeBody(t, rec)["token"].(string)
	if token == "" {
		t.Fatalf("register: no token in response")
	}
	return token
}

func (a *testAPI) createEmployee(t *testing.T, managerToken, username string) string {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/employees", managerToken, map[string]any{
		"name":     "Worker " + username,
		"gender":   "Female",
		"contact":  "0123456789",
		"salary":   2500,
		"username": username,
		"password": "emp-pass",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create employee: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	id, _ := decodeBody(t, rec)["id"].(string)
	if id == "" {
		t.Fatalf("create employee: no id in response")
	}
	return id
}

func (a *testAPI) loginEmployee(t *testing.T, username string) string {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/auth/employee-login", "", map[string]any{
		"username": username,
		"password": "emp-pass",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("employee login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	token, _ := decodeBody(t, rec)["token"].(string)
	if token == "" {
		t.Fatalf("employee login: no token in response")
	}
	return token
}

func TestRouter_RegisterLoginAndAccess(t *testing.T) {
	api := newTestAPI(t)
	api.registerManager(t, "alice")

	rec := api.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "alice",
		"password": "pass123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	token, _ := decodeBody(t, rec)["token"].(string)

	rec = api.do(t, http.MethodGet, "/api/employees", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on manager endpoint, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_MissingTokenRejected(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/employees", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_ManagerTokenOnEmployeeEndpoint(t *testing.T) {
	api := newTestAPI(t)
	token := api.registerManager(t, "alice")

	rec := api.do(t, http.MethodGet, "/api/products", token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_EmployeeTokenOnManagerEndpoint(t *testing.T) {
	api := newTestAPI(t)
	managerToken := api.registerManager(t, "alice")
	api.createEmployee(t, managerToken, "worker01")
	employeeToken := api.loginEmployee(t, "worker01")

	rec := api.do(t, http.MethodGet, "/api/employees", employeeToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

// Deleting an account revokes its outstanding tokens even though they remain
// cryptographically valid.
func TestRouter_DeletedAccountTokenRejected(t *testing.T) {
	api := newTestAPI(t)
	managerToken := api.registerManager(t, "alice")
	employeeID := api.createEmployee(t, managerToken, "worker01")
	employeeToken := api.loginEmployee(t, "worker01")

	rec := api.do(t, http.MethodGet, "/api/products", employeeToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 before deletion, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = api.do(t, http.MethodDelete, "/api/employees/"+employeeID, managerToken, nil)
	if rec.Code != http.StatusOK && rec.Code != http.StatusNoContent {
		t.Fatalf("delete employee: got %d: %s", rec.Code, rec.Body.String())
	}

	rec = api.do(t, http.MethodGet, "/api/products", employeeToken, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after deletion, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_PublicOrderFlow(t *testing.T) {
	api := newTestAPI(t)
	managerToken := api.registerManager(t, "alice")
	api.createEmployee(t, managerToken, "worker01")
	employeeToken := api.loginEmployee(t, "worker01")

	rec := api.do(t, http.MethodPost, "/api/products", employeeToken, map[string]any{
		"productId":      "MILK01",
		"name":           "Fresh Milk",
		"pricePerUnit":   2.50,
		"availability":   "in_stock",
		"productionDate": time.Now().UTC().Format("2006-01-02"),
		"expirationDate": time.Now().UTC().Add(30 * 24 * time.Hour).Format("2006-01-02"),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create product: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	order := map[string]any{
		"customer": map[string]any{
			"name":    "Jane Customer",
			"contact": "0123456789",
			"address": "1 Farm Lane",
		},
		"items": []map[string]any{
			{"productId": "MILK01", "quantity": 4},
		},
		"totalAmount": 10.00,
	}

	rec = api.do(t, http.MethodPost, "/api/orders", "", order)
	if rec.Code != http.StatusCreated {
		t.Fatalf("place order: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	orderID, _ := decodeBody(t, rec)["orderId"].(string)
	if orderID == "" {
		t.Fatalf("place order: no orderId in response")
	}

	// Listing orders requires an employee token.
	rec = api.do(t, http.MethodGet, "/api/orders", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 listing orders anonymously, got %d", rec.Code)
	}
	rec = api.do(t, http.MethodGet, "/api/orders", employeeToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list orders: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = api.do(t, http.MethodPut, fmt.Sprintf("/api/orders/%s/status", orderID), employeeToken, map[string]any{
		"status": "processing",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_OrderTotalMismatchRejected(t *testing.T) {
	api := newTestAPI(t)
	managerToken := api.registerManager(t, "alice")
	api.createEmployee(t, managerToken, "worker01")
	employeeToken := api.loginEmployee(t, "worker01")

	rec := api.do(t, http.MethodPost, "/api/products", employeeToken, map[string]any{
		"productId":      "MILK01",
		"name":           "Fresh Milk",
		"pricePerUnit":   2.50,
		"availability":   "in_stock",
		"productionDate": time.Now().UTC().Format("2006-01-02"),
		"expirationDate": time.Now().UTC().Add(30 * 24 * time.Hour).Format("2006-01-02"),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create product: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = api.do(t, http.MethodPost, "/api/orders", "", map[string]any{
		"customer": map[string]any{
			"name":    "Jane Customer",
			"contact": "0123456789",
			"address": "1 Farm Lane",
		},
		"items": []map[string]any{
			{"productId": "MILK01", "quantity": 4},
		},
		"totalAmount": 2.00,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for total mismatch, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_DashboardManagerOnly(t *testing.T) {
	api := newTestAPI(t)
	managerToken := api.registerManager(t, "alice")
	api.createEmployee(t, managerToken, "worker01")
	employeeToken := api.loginEmployee(t, "worker01")

	rec := api.do(t, http.MethodGet, "/api/dashboard/stats", employeeToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for employee, got %d", rec.Code)
	}

	rec = api.do(t, http.MethodGet, "/api/dashboard/stats", managerToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for manager, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_HealthProbe(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
