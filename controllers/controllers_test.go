package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardware-store/config"
	"hardware-store/libs"
	"hardware-store/middleware"
	"hardware-store/models"
	"hardware-store/repositories"
	"hardware-store/routes"
	"hardware-store/services"
)

type testServer struct {
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newServer(t, false)
}

func newServer(t *testing.T, devAuthBypass bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	dir := t.TempDir()

	cfg := &config.Config{
		AppEnv:    "test",
		AppURL:    "http://localhost:3000",
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
		UploadDir: filepath.Join(dir, "uploads"),

		DevAuthBypass: devAuthBypass,
	}

	products := repositories.NewMemoryProductRepository(repositories.SeedProducts(), repositories.SeedCategories())
	users := repositories.NewMemoryUserRepository()
	orders := repositories.NewMemoryOrderRepository()
	configRepo := repositories.NewFileConfigRepository(filepath.Join(dir, "settings.json"))
	kv := repositories.NewMemoryKVStore()

	store := services.NewConfigService(configRepo, configRepo)
	auth := services.NewAuthService(users, cfg.JWTSecret, cfg.JWTExpiry, cfg.DevAuthBypass)
	require.NoError(t, auth.SeedUsers(ctx))

	router := gin.New()
	routes.SetupRoutes(router, routes.Dependencies{
		Config:   cfg,
		Auth:     auth,
		Carts:    services.NewCartService(kv),
		Store:    store,
		Popups:   services.NewPopupService(kv),
		Products: services.NewProductService(products, nil),
		Checkout: services.NewCheckoutService(libs.NewMercadoPagoClient(""), orders, products, libs.LogMailer{}, store, cfg.AppURL),
		Sellers:  services.NewSellerService(repositories.NewMemorySellerApplicationRepository(), libs.LogMailer{}, store, ""),
		Stats:    services.NewStatsService(products, users, orders),
		Uploader: libs.NewLocalUploader(cfg.UploadDir, "/uploads", cfg.MaxUploadSize),
	})
	return &testServer{router: router}
}

func (s *testServer) request(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		if c != nil {
			req.AddCookie(c)
		}
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T, email, password string, cookies ...*http.Cookie) *http.Cookie {
	t.Helper()
	w := s.request(http.MethodPost, "/api/auth/login", models.LoginRequest{Email: email, Password: password}, cookies...)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := cookieNamed(w, middleware.SessionCookie)
	require.NotNil(t, token)
	return token
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	w := newTestServer(t).request(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnonymousCart(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := cookieNamed(w, middleware.CartCookie)
	require.NotNil(t, cart)
	assert.True(t, cart.HttpOnly)
	empty := decode[models.CartSummary](t, w)
	assert.Empty(t, empty.Items)
	assert.Zero(t, empty.Total)

	for i := 0; i < 3; i++ {
		w = s.request(http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ProductID: "1"}, cart)
		require.Equal(t, http.StatusOK, w.Code)
	}
	summary := decode[models.CartSummary](t, w)
	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, int64(75000), summary.Total)
	assert.Nil(t, cookieNamed(w, middleware.CartCookie))

	w = s.request(http.MethodPatch, "/api/cart/items/1", models.UpdateCartItemRequest{Quantity: 100}, cart)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, decode[models.CartSummary](t, w).Items[0].Quantity)

	w = s.request(http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ProductID: "999"}, cart)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.request(http.MethodDelete, "/api/cart/items/1", nil, cart)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, decode[models.CartSummary](t, w).ItemCount)

	w = s.request(http.MethodGet, "/api/cart", nil)
	assert.NotEqual(t, cart.Value, cookieNamed(w, middleware.CartCookie).Value)
}

func TestLoginMergesAnonymousCart(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ProductID: "3"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := cookieNamed(w, middleware.CartCookie)

	token := s.login(t, "user@test.com", "user123", cart)

	w = s.request(http.MethodGet, "/api/cart", nil, token, cart)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[models.CartSummary](t, w)
	assert.Equal(t, 1, summary.ItemCount)
	assert.Equal(t, int64(85000), summary.Total)

	w = s.request(http.MethodGet, "/api/cart", nil, cart)
	assert.Zero(t, decode[models.CartSummary](t, w).ItemCount)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodPost, "/api/auth/login", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email y contraseña son requeridos", decode[models.ErrorResponse](t, w).Message)

	w = s.request(http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "admin@test.com", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Credenciales inválidas", decode[models.ErrorResponse](t, w).Message)

	token := s.login(t, "admin@test.com", "admin123")
	assert.True(t, token.HttpOnly)

	w = s.request(http.MethodGet, "/api/auth/me", nil, token)
	me := decode[models.SessionResponse](t, w)
	require.NotNil(t, me.User)
	assert.Equal(t, "Admin User", me.User.Name)

	w = s.request(http.MethodGet, "/api/auth/me", nil)
	assert.Nil(t, decode[models.SessionResponse](t, w).User)

	w = s.request(http.MethodGet, "/api/auth/me", nil, &http.Cookie{Name: middleware.SessionCookie, Value: "forged"})
	assert.Nil(t, decode[models.SessionResponse](t, w).User)
	cleared := cookieNamed(w, middleware.SessionCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)

	w = s.request(http.MethodPost, "/api/auth/logout", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cookieNamed(w, middleware.SessionCookie).Value)
}

func TestAdminGuard(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodGet, "/api/admin/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodGet, "/api/admin/stats", nil, s.login(t, "user@test.com", "user123"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.request(http.MethodGet, "/api/admin/stats", nil, s.login(t, "admin@test.com", "admin123"))
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[models.AdminStats](t, w)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, len(repositories.SeedProducts()), stats.TotalProducts)
}

func TestDevAuthBypass(t *testing.T) {
	s := newServer(t, true)

	w := s.request(http.MethodPost, "/api/cart/items", models.AddCartItemRequest{ProductID: "1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[models.CartSummary](t, w).ItemCount)
	require.NotNil(t, cookieNamed(w, middleware.CartCookie))

	w = s.request(http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, decode[models.CartSummary](t, w).ItemCount)

	w = s.request(http.MethodGet, "/api/admin/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodPost, "/api/config", models.DefaultStoreConfig())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodGet, "/api/auth/me", nil)
	me := decode[models.SessionResponse](t, w)
	require.NotNil(t, me.User)
	assert.True(t, me.User.IsAdmin())

	w = s.request(http.MethodPost, "/api/auth/login", "not a login request")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := cookieNamed(w, middleware.SessionCookie)
	require.NotNil(t, token)

	w = s.request(http.MethodGet, "/api/admin/stats", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutAndOrders(t *testing.T) {
	s := newTestServer(t)
	items := models.CheckoutRequest{Items: []models.CheckoutItemRequest{{ID: "1", Quantity: 2}}}

	w := s.request(http.MethodPost, "/api/checkout", items)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	user := s.login(t, "user@test.com", "user123")
	w = s.request(http.MethodPost, "/api/checkout", items, user)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.CheckoutResponse](t, w)
	assert.True(t, strings.HasPrefix(resp.PreferenceID, "MP-"))
	assert.Contains(t, resp.PreferenceURL, resp.PreferenceID)
	assert.Equal(t, int64(50000), resp.Total)

	w = s.request(http.MethodPost, "/api/checkout", models.CheckoutRequest{}, user)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPost, "/api/checkout", models.CheckoutRequest{Items: []models.CheckoutItemRequest{{ID: "7", Quantity: 9}}}, user)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	admin := s.login(t, "admin@test.com", "admin123")
	w = s.request(http.MethodGet, "/api/admin/orders?status=pending", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[models.HATEOASResponse](t, w)
	assert.Equal(t, 1, page.Meta.TotalItems)
	assert.Contains(t, page.Links.Self, "status=pending")

	w = s.request(http.MethodGet, "/api/admin/orders?status=bogus", nil, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.request(http.MethodGet, "/api/admin/orders/"+resp.OrderID, nil, admin)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/admin/orders/missing", nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodGet, "/api/payment-status", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.request(http.MethodGet, "/api/payment-status?payment_id=123", nil)
	require.Equal(t, http.StatusOK, w.Code)
	payment := decode[models.PaymentData](t, w)
	assert.Equal(t, "approved", payment.Status)
	assert.Equal(t, "123", payment.ID)

	w = s.request(http.MethodPost, "/api/mercadopago/webhook", map[string]any{"type": "payment", "data": map[string]any{"id": 123}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true}`, w.Body.String())

	w = s.request(http.MethodGet, "/api/mercadopago/webhook?topic=merchant_order&id=9", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStoreConfig(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodGet, "/api/config", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cfg := decode[models.StoreConfig](t, w)
	assert.Equal(t, models.DefaultStoreConfig(), cfg)

	cfg.StoreName = "Ferretería del Barrio"
	cfg.PrimaryColor = "#000000"

	w = s.request(http.MethodPost, "/api/config", cfg)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	admin := s.login(t, "admin@test.com", "admin123")
	invalid := cfg
	invalid.StoreName = ""
	w = s.request(http.MethodPost, "/api/config", invalid, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPost, "/api/config", cfg, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.request(http.MethodGet, "/api/config", nil)
	assert.Equal(t, "Ferretería del Barrio", decode[models.StoreConfig](t, w).StoreName)

	w = s.request(http.MethodGet, "/api/config/theme", nil)
	theme := decode[services.Theme](t, w)
	assert.Equal(t, "80, 80, 80", theme.Variables["--color-primary-50"])

	w = s.request(http.MethodGet, "/api/config/theme.css", nil)
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "--color-primary-500: 0, 0, 0;")
}

func TestPopups(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodGet, "/api/popups/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := cookieNamed(w, middleware.CartCookie)
	next := decode[struct {
		Popup *models.PopupConfig `json:"popup"`
	}](t, w)
	require.NotNil(t, next.Popup)
	assert.Equal(t, "1", next.Popup.ID)

	w = s.request(http.MethodPost, "/api/popups/1/shown", nil, cart)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"shown":["1"]}`, w.Body.String())

	w = s.request(http.MethodGet, "/api/popups/next", nil, cart)
	assert.JSONEq(t, `{"popup":null}`, w.Body.String())

	w = s.request(http.MethodPost, "/api/popups/nope/shown", nil, cart)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalog(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodGet, "/api/products?featured=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, p := range decode[models.ProductList](t, w).Products {
		assert.True(t, p.Featured)
	}

	w = s.request(http.MethodGet, "/api/products/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "TAL001", decode[models.Product](t, w).Code)

	w = s.request(http.MethodGet, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.request(http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, len(repositories.SeedCategories()), decode[models.CategoryList](t, w).Total)
}

func TestAdminProducts(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, "admin@test.com", "admin123")

	w := s.request(http.MethodPost, "/api/admin/products", models.CreateProductRequest{
		Name: "Nivel", Code: "NIV001", Price: 12000, Stock: 3, Category: "Herramientas",
	}, admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = s.request(http.MethodPost, "/api/admin/products", map[string]any{"name": "sin precio"}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPatch, "/api/admin/products/"+created.Data.ID, map[string]any{"stock": 7}, admin)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/products/"+created.Data.ID, nil)
	assert.Equal(t, 7, decode[models.Product](t, w).Stock)

	w = s.request(http.MethodDelete, "/api/admin/products/"+created.Data.ID, nil, admin)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.request(http.MethodDelete, "/api/admin/products/"+created.Data.ID, nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSellerApplications(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodPost, "/api/seller-applications", map[string]any{"firstName": "Ana"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPost, "/api/seller-applications", models.SellerApplicationRequest{
		FirstName: "Ana", LastName: "Gómez", Email: "ana@example.com", Phone: "11", DNI: "1",
		BusinessName: "Pinturerías Ana", BusinessType: "company", CUIT: "30-1-9",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]string](t, w)
	id := created["applicationId"]
	require.NotEmpty(t, id)

	w = s.request(http.MethodGet, "/api/seller-applications", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	admin := s.login(t, "admin@test.com", "admin123")
	w = s.request(http.MethodGet, "/api/seller-applications", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[models.SellerApplicationList](t, w).Total)

	w = s.request(http.MethodPatch, "/api/seller-applications/"+id, models.UpdateApplicationStatusRequest{Status: "approved"}, admin)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.request(http.MethodPatch, "/api/seller-applications/"+id, models.UpdateApplicationStatusRequest{Status: "later"}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPatch, "/api/seller-applications/missing", models.UpdateApplicationStatusRequest{Status: "rejected"}, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
