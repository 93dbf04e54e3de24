package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vican-pos/config"
	"vican-pos/internal/database/dbtest"
	"vican-pos/internal/database/models"
	"vican-pos/internal/gateway/clients"
	"vican-pos/internal/gateway/middleware"
	"vican-pos/internal/server/servertest"
	"vican-pos/internal/services/directory"
	"vican-pos/internal/utils"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	Retryable bool            `json:"retryable"`
}

type testGateway struct {
	t       *testing.T
	router  *gin.Engine
	backend *servertest.Backend
}

func newTestGateway(t *testing.T) *testGateway {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b := servertest.Start(t)
	r, err := setupRouter(clients.FromConn(b.Conn), b.Tokens, config.GatewayConfig{RateLimit: "1000-M"})
	require.NoError(t, err)

	return &testGateway{t: t, router: r, backend: b}
}

func (g *testGateway) tokenFor(u models.User) string {
	g.t.Helper()
	token, _, err := g.backend.Tokens.GenerateToken(u.ID, u.Username, u.Role, utils.PurposeSession, time.Hour)
	require.NoError(g.t, err)
	return token
}

func (g *testGateway) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	g.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(g.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	g.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(g.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func TestLogin(t *testing.T) {
	g := newTestGateway(t)
	_, err := g.backend.Services.Directory.CreateUser(context.Background(), directory.UserInput{
		Username: "aziza", Password: "secret1", Role: "cashier",
	})
	require.NoError(t, err)

	w, env := g.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "aziza", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var session struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "cashier", session.User.Role)

	w, env = g.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "aziza", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error)

	w, _ = g.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "aziza"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthAndCapabilities(t *testing.T) {
	g := newTestGateway(t)
	cashier := dbtest.SeedUser(t, g.backend.DB, "kamol", "cashier")
	warehouse := dbtest.SeedUser(t, g.backend.DB, "dilnoza", "warehouse")

	w, _ := g.do(http.MethodGet, "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = g.do(http.MethodGet, "/api/v1/products", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = g.do(http.MethodGet, "/api/v1/products", g.tokenFor(cashier), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = g.do(http.MethodGet, "/api/v1/reports/sales?start_date=2026-01-01&end_date=2026-01-31", g.tokenFor(cashier), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = g.do(http.MethodPost, "/api/v1/sales", g.tokenFor(warehouse), gin.H{"product_id": 1, "quantity": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = g.do(http.MethodGet, "/api/v1/users", g.tokenFor(cashier), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A QR login token is not a session.
	qr, _, err := g.backend.Tokens.GenerateToken(cashier.ID, cashier.Username, cashier.Role, utils.PurposeLogin, time.Hour)
	require.NoError(t, err)
	w, _ = g.do(http.MethodGet, "/api/v1/products", qr, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSellOverHTTP(t *testing.T) {
	g := newTestGateway(t)
	cashier := dbtest.SeedUser(t, g.backend.DB, "kamol", "cashier")
	product := dbtest.SeedProduct(t, g.backend.DB, "Headphones", 60000, 100000, 3)
	customer := dbtest.SeedCustomer(t, g.backend.DB, "Bekzod", "+998901112233")
	token := g.tokenFor(cashier)

	w, env := g.do(http.MethodPost, "/api/v1/sales", token, gin.H{
		"product_id": product.ID, "quantity": 2, "customer_id": customer.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sale struct {
		SaleID      int64  `json:"sale_id"`
		TotalPrice  string `json:"total_price"`
		BonusPoints int64  `json:"bonus_points"`
		Remaining   int64  `json:"remaining"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sale))
	assert.Equal(t, "200000", sale.TotalPrice)
	assert.Equal(t, int64(20), sale.BonusPoints)
	assert.Equal(t, int64(1), sale.Remaining)

	var sold models.Sale
	require.NoError(t, g.backend.DB.First(&sold, sale.SaleID).Error)
	require.NotNil(t, sold.UserID)
	assert.Equal(t, cashier.ID, *sold.UserID)

	w, env = g.do(http.MethodPost, "/api/v1/sales", token, gin.H{"product_id": product.ID, "quantity": 5})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INSUFFICIENT_STOCK", env.Error)
	assert.Contains(t, env.Message, "1 left")
	assert.False(t, env.Retryable)

	w, env = g.do(http.MethodPost, "/api/v1/sales", token, gin.H{"product_id": product.ID, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_QUANTITY", env.Error)

	w, env = g.do(http.MethodPost, "/api/v1/sales", token, gin.H{"product_id": 9999, "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error)

	w, _ = g.do(http.MethodGet, "/api/v1/sales/abc/receipt", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInventoryAndCatalogOverHTTP(t *testing.T) {
	g := newTestGateway(t)
	admin := dbtest.SeedUser(t, g.backend.DB, "root", "admin")
	warehouse := dbtest.SeedUser(t, g.backend.DB, "dilnoza", "warehouse")

	w, env := g.do(http.MethodPost, "/api/v1/products", g.tokenFor(admin), gin.H{
		"name": "Rice", "cost_price": "9000", "price": "12000", "quantity": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var product struct {
		ID       int64 `json:"id"`
		Quantity int64 `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, int64(4), product.Quantity)

	w, env = g.do(http.MethodPost, "/api/v1/inventory/receive", g.tokenFor(warehouse), gin.H{
		"product_id": product.ID, "quantity": 6,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var moved struct {
		Quantity int64 `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &moved))
	assert.Equal(t, int64(10), moved.Quantity)

	w, env = g.do(http.MethodPost, "/api/v1/inventory/dispatch", g.tokenFor(warehouse), gin.H{
		"product_id": product.ID, "quantity": 11,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INSUFFICIENT_STOCK", env.Error)

	w, _ = g.do(http.MethodGet, "/api/v1/inventory/audit", g.tokenFor(admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = g.do(http.MethodDelete, "/api/v1/products/"+strconv.FormatInt(product.ID, 10), g.tokenFor(admin), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "HAS_HISTORY", env.Error)

	w, env = g.do(http.MethodGet, "/api/v1/reports/sales?start_date=2026-02-01&end_date=2026-01-01", g.tokenFor(admin), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error)

	w, _ = g.do(http.MethodGet, "/api/v1/reports/restock", g.tokenFor(warehouse), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthAndRequestID(t *testing.T) {
	g := newTestGateway(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	g.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))

	var body struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Len(t, body.Services, 4)

	w, _ = g.do(http.MethodGet, "/health", "", nil)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
