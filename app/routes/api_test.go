package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shalabia/storefront/app/controllers"
	"github.com/shalabia/storefront/app/routes"
	"github.com/shalabia/storefront/pkg/kv"
	"github.com/shalabia/storefront/pkg/router"
	"github.com/shalabia/storefront/pkg/ws"
)

// ─── Harness ──────────────────────────────────────────────────────────────────

func newTestHandler() http.Handler {
	r := router.New()
	routes.RegisterAPI(r, kv.NewMemoryDriver(), ws.NewHub())
	return r.Handler()
}

type apiEnvelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// dataMap asserts that the envelope's data is a JSON object.
func (e apiEnvelope) dataMap(t *testing.T) map[string]interface{} {
	t.Helper()
	m, ok := e.Data.(map[string]interface{})
	require.True(t, ok, "expected object data, got %T", e.Data)
	return m
}

// dataList asserts that the envelope's data is a JSON array.
func (e apiEnvelope) dataList(t *testing.T) []interface{} {
	t.Helper()
	l, ok := e.Data.([]interface{})
	require.True(t, ok, "expected array data, got %T", e.Data)
	return l
}

func do(t *testing.T, h http.Handler, method, path, body string, header map[string]string) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env apiEnvelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

// ─── Catalog ──────────────────────────────────────────────────────────────────

func TestProductsEndpoint(t *testing.T) {
	h := newTestHandler()

	rec, env := do(t, h, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.dataList(t), 3)

	rec, env = do(t, h, http.MethodGet, "/api/products?category=Dresses", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.dataList(t), 1)

	rec, _ = do(t, h, http.MethodGet, "/api/products/999", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cats := env.dataList(t)
	require.Equal(t, "All", cats[0])
}

// ─── Cart ─────────────────────────────────────────────────────────────────────

func TestCartFlowMintsAndHonoursToken(t *testing.T) {
	h := newTestHandler()

	rec, env := do(t, h, http.MethodPost, "/api/cart", `{"productId":1}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 1, env.dataMap(t)["count"])

	token := rec.Header().Get(controllers.CartTokenHeader)
	require.NotEmpty(t, token)

	// Echoing the token back keeps adding to the same cart.
	rec, env = do(t, h, http.MethodPost, "/api/cart", `{"productId":2}`,
		map[string]string{controllers.CartTokenHeader: token})
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 2, env.dataMap(t)["count"])
	require.EqualValues(t, 5000, env.dataMap(t)["total"])

	// A fresh visitor gets a fresh cart.
	rec, env = do(t, h, http.MethodGet, "/api/cart", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 0, env.dataMap(t)["count"])
	require.NotEqual(t, token, rec.Header().Get(controllers.CartTokenHeader))
}

func TestCartAddUnknownProductIs404(t *testing.T) {
	h := newTestHandler()

	rec, _ := do(t, h, http.MethodPost, "/api/cart", `{"productId":999}`, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ─── Checkout ─────────────────────────────────────────────────────────────────

func TestCheckoutValidationErrorsOverHTTP(t *testing.T) {
	h := newTestHandler()

	rec, _ := do(t, h, http.MethodPost, "/api/cart", `{"productId":1}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	token := rec.Header().Get(controllers.CartTokenHeader)

	rec, env := do(t, h, http.MethodPost, "/api/checkout",
		`{"name":"Mo","phone":"123","area":"","address":"x"}`,
		map[string]string{controllers.CartTokenHeader: token})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "Validation failed", env.Message)
	require.Equal(t, "Please enter a valid full name (min 3 chars).", env.Errors["name"])
	require.Equal(t, "Please select your area.", env.Errors["area"])
}

// ─── Notifications (admin only) ───────────────────────────────────────────────

func TestNotificationsRequireAdmin(t *testing.T) {
	h := newTestHandler()

	rec, _ := do(t, h, http.MethodGet, "/api/notifications", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// A regular shopper is signed up but still locked out.
	rec, env := do(t, h, http.MethodPost, "/api/auth/signup",
		`{"name":"Mona Hassan","email":"mona@example.com","password":"secret1"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	shopperToken, _ := env.dataMap(t)["token"].(string)
	require.NotEmpty(t, shopperToken)

	rec, _ = do(t, h, http.MethodGet, "/api/notifications", "",
		map[string]string{"Authorization": "Bearer " + shopperToken})
	require.Equal(t, http.StatusForbidden, rec.Code)

	// The owner sees the log, newest first, without her own sign-up on it.
	rec, env = do(t, h, http.MethodPost, "/api/auth/signup",
		`{"name":"Shalabia Admin","email":"admin@shalabia.com","password":"admin123"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	adminToken, _ := env.dataMap(t)["token"].(string)
	require.NotEmpty(t, adminToken)

	rec, env = do(t, h, http.MethodGet, "/api/notifications", "",
		map[string]string{"Authorization": "Bearer " + adminToken})
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 1, env.dataMap(t)["count"])
}
