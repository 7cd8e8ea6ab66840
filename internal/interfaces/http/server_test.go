package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verve-shop/storefront/internal/config"
	"github.com/verve-shop/storefront/internal/domain/cart"
	"github.com/verve-shop/storefront/internal/domain/catalog"
	"github.com/verve-shop/storefront/internal/domain/checkout"
	"github.com/verve-shop/storefront/internal/domain/order"
	"github.com/verve-shop/storefront/internal/domain/session"
	"github.com/verve-shop/storefront/internal/domain/storefront"
	"github.com/verve-shop/storefront/internal/interfaces/http/routes"
	"github.com/verve-shop/storefront/internal/pkg/auth"
	"github.com/verve-shop/storefront/internal/pkg/email"
	"github.com/verve-shop/storefront/internal/pkg/pdf"
	"golang.org/x/crypto/bcrypt"
)

const adminPassword = "Sunrise!Mat9"

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		App:    config.AppConfig{Name: "VERVE Storefront", Version: "test", Environment: "test"},
		Server: config.ServerConfig{Port: "0", RequestTimeout: 5 * time.Second, MaxBodyBytes: 1 << 20},
		Session: config.SessionConfig{
			Driver:     config.SessionDriverMemory,
			TTL:        time.Hour,
			CookieName: "session_id",
		},
		JWT: config.JWTConfig{Secret: "test-secret-that-is-at-least-32-chars", AccessTokenExpiry: time.Hour},
		Security: config.SecurityConfig{
			BcryptCost:         bcrypt.MinCost,
			AdminEmail:         "admin@verve.shop",
			AdminPasswordHash:  string(hash),
			CORSAllowedOrigins: []string{"http://localhost:5173"},
			CORSAllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
			CORSAllowedHeaders: []string{"Content-Type", "Authorization"},
		},
		Email: config.EmailConfig{Provider: config.EmailProviderLog, FromName: "VERVE", FromEmail: "orders@verve.shop"},
	}
}

func newTestServer(t *testing.T, deps ...Dependency) (*Server, *test.Hook) {
	t.Helper()
	cfg := testConfig(t)
	logger, hook := test.NewNullLogger()
	entry := logrus.NewEntry(logger)

	catalogService := catalog.NewService(catalog.NewSampleRepository())
	orderService := order.NewService(order.NewSampleRepository())

	emailService, err := email.NewEmailService(cfg, entry)
	require.NoError(t, err)

	services := routes.Services{
		Config:     cfg,
		Logger:     entry,
		Catalog:    catalogService,
		Cart:       cart.NewService(catalogService),
		Checkout:   checkout.NewService(emailService, entry),
		Orders:     orderService,
		Storefront: storefront.NewService(catalogService, orderService),
		Sessions:   session.NewManager(session.NewMemoryStore(cfg.Session.TTL), entry),
		Admin:      auth.NewAdminAuthenticator(cfg),
		Invoices:   pdf.NewService(cfg, entry),
	}

	srv, err := NewServer(cfg, services, nil, deps...)
	require.NoError(t, err)
	return srv, hook
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details string          `json:"details"`
}

// shopper replays the session cookie like a browser would
type shopper struct {
	t      *testing.T
	h      http.Handler
	cookie *http.Cookie
	token  string
}

func newShopper(t *testing.T, srv *Server) *shopper {
	return &shopper{t: t, h: srv.Handler()}
}

func (s *shopper) do(method, path string, body any) (int, envelope) {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.h.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" {
			s.cookie = c
		}
	}

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

type cartJSON struct {
	ItemCount int  `json:"item_count"`
	Empty     bool `json:"empty"`
	Lines     []struct {
		Quantity     int    `json:"quantity"`
		LineTotal    string `json:"line_total"`
		CanIncrement bool   `json:"can_increment"`
		Product      struct {
			ID string `json:"id"`
		} `json:"product"`
	} `json:"lines"`
	Quote struct {
		Subtotal              string `json:"subtotal"`
		Shipping              string `json:"shipping"`
		Total                 string `json:"total"`
		FreeShippingRemaining string `json:"free_shipping_remaining"`
	} `json:"quote"`
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		srv, _ := newTestServer(t, Dependency{Name: "redis", Check: func(context.Context) error { return nil }})
		code, _ := newShopper(t, srv).do(http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("unhealthy", func(t *testing.T) {
		srv, _ := newTestServer(t, Dependency{Name: "database", Check: func(context.Context) error { return errors.New("down") }})
		code, _ := newShopper(t, srv).do(http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusServiceUnavailable, code)
	})

	srv, _ := newTestServer(t)
	code, _ := newShopper(t, srv).do(http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestSessionView_Defaults(t *testing.T) {
	srv, _ := newTestServer(t)
	s := newShopper(t, srv)

	code, env := s.do(http.MethodGet, "/api/v1/session/view", nil)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, s.cookie, "session cookie issued")

	view := decode[struct {
		Page      string `json:"page"`
		Theme     string `json:"theme"`
		CartCount int    `json:"cart_count"`
		Content   struct {
			NewArrivals []json.RawMessage `json:"new_arrivals"`
		} `json:"content"`
	}](t, env.Data)
	assert.Equal(t, "home", view.Page)
	assert.Equal(t, "light", view.Theme)
	assert.Zero(t, view.CartCount)
	assert.NotEmpty(t, view.Content.NewArrivals)
}

func TestSessionActions(t *testing.T) {
	srv, _ := newTestServer(t)
	s := newShopper(t, srv)

	code, env := s.do(http.MethodPost, "/api/v1/session/actions", map[string]any{"type": "select_category", "category": "Fitness"})
	require.Equal(t, http.StatusOK, code)
	products := decode[struct {
		Page    string `json:"page"`
		Content struct {
			Category string `json:"category"`
			Count    int    `json:"count"`
		} `json:"content"`
	}](t, env.Data)
	assert.Equal(t, "products", products.Page)
	assert.Equal(t, "Fitness", products.Content.Category)
	assert.Equal(t, 3, products.Content.Count)

	// Listing filters are per request; the category sticks to the session
	code, env = s.do(http.MethodGet, "/api/v1/session/view?sort=price-low", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"category":"Fitness"`)
	assert.Contains(t, string(env.Data), `"sort":"price-low"`)

	code, env = s.do(http.MethodPost, "/api/v1/session/actions", map[string]any{"type": "toggle_theme"})
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"theme":"dark"`)

	code, env = s.do(http.MethodPost, "/api/v1/session/actions", map[string]any{"type": "select_product", "product_id": "999"})
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"page":"product-detail"`)
	assert.Contains(t, string(env.Data), `"message":"Product not found"`)

	code, _ = s.do(http.MethodPost, "/api/v1/session/actions", map[string]any{"type": "fly"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/api/v1/session/actions", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSessionView_DrawerAndSearch(t *testing.T) {
	srv, _ := newTestServer(t)
	s := newShopper(t, srv)

	s.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "9"})
	s.do(http.MethodPost, "/api/v1/session/actions", map[string]any{"type": "set_cart_open", "open": true})
	code, env := s.do(http.MethodPost, "/api/v1/session/actions", map[string]any{"type": "search", "query": "mat"})
	require.Equal(t, http.StatusOK, code)

	view := decode[struct {
		Page      string    `json:"page"`
		CartCount int       `json:"cart_count"`
		Drawer    *cartJSON `json:"drawer"`
		Content   struct {
			Query string `json:"query"`
			Count int    `json:"count"`
		} `json:"content"`
	}](t, env.Data)
	assert.Equal(t, "search", view.Page)
	assert.Equal(t, 1, view.CartCount)
	require.NotNil(t, view.Drawer)
	assert.Equal(t, "12.99", view.Drawer.Quote.Subtotal)
	assert.Equal(t, "mat", view.Content.Query)
	assert.GreaterOrEqual(t, view.Content.Count, 1)
}

func TestCartFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	s := newShopper(t, srv)

	code, env := s.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "1", "quantity": 2})
	require.Equal(t, http.StatusOK, code, env.Error)
	c := decode[cartJSON](t, env.Data)
	assert.Equal(t, 2, c.ItemCount)
	assert.Equal(t, "69.98", c.Quote.Subtotal)
	assert.Equal(t, "9.99", c.Quote.Shipping)
	assert.Equal(t, "85.57", c.Quote.Total)
	assert.Equal(t, "30.02", c.Quote.FreeShippingRemaining)

	code, env = s.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "1"})
	require.Equal(t, http.StatusOK, code)
	c = decode[cartJSON](t, env.Data)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)
	assert.Equal(t, "104.97", c.Lines[0].LineTotal)
	assert.Equal(t, "0.00", c.Quote.Shipping)
	assert.Equal(t, "113.37", c.Quote.Total)

	code, env = s.do(http.MethodGet, "/api/v1/cart/count", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"count":3}`, string(env.Data))

	code, env = s.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "5"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "This item is out of stock", env.Error)

	code, _ = s.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "2", "size": "5kg"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "999"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(http.MethodPut, "/api/v1/cart/items/1", map[string]any{"quantity": 46})
	assert.Equal(t, http.StatusConflict, code)

	code, env = s.do(http.MethodPut, "/api/v1/cart/items/1", map[string]any{"quantity": 1})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, decode[cartJSON](t, env.Data).ItemCount)

	code, _ = s.do(http.MethodPut, "/api/v1/cart/items/1", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, code)
	_, env = s.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Equal(t, 1, decode[cartJSON](t, env.Data).ItemCount)

	code, env = s.do(http.MethodPut, "/api/v1/cart/items/1", map[string]any{"quantity": 0})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[cartJSON](t, env.Data).Empty)

	s.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "4", "color": "Sage"})
	code, env = s.do(http.MethodDelete, "/api/v1/cart/items/4", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[cartJSON](t, env.Data).Empty)

	s.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "9"})
	code, env = s.do(http.MethodDelete, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[cartJSON](t, env.Data).Empty)
}

func TestCartIsolatedPerSession(t *testing.T) {
	srv, _ := newTestServer(t)
	a, b := newShopper(t, srv), newShopper(t, srv)

	a.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "9", "quantity": 4})
	_, env := b.do(http.MethodGet, "/api/v1/cart/count", nil)
	assert.JSONEq(t, `{"count":0}`, string(env.Data))
}

func TestCheckoutFlow(t *testing.T) {
	srv, hook := newTestServer(t)
	s := newShopper(t, srv)

	code, env := s.do(http.MethodPost, "/api/v1/checkout/place-order", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Your cart is empty", env.Error)

	s.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "4", "color": "Sage"})

	code, _ = s.do(http.MethodPost, "/api/v1/checkout/payment", map[string]any{
		"card_number": "4242424242424242", "expiry": "12/29", "cvv": "123", "name_on_card": "Sam Rivera",
	})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = s.do(http.MethodPost, "/api/v1/checkout/contact", map[string]any{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = s.do(http.MethodPost, "/api/v1/checkout/contact", map[string]any{"email": "sam@example.com"})
	require.Equal(t, http.StatusOK, code, env.Details)
	assert.Contains(t, string(env.Data), `"step_name":"Shipping"`)

	code, env = s.do(http.MethodPost, "/api/v1/checkout/shipping", map[string]any{
		"first_name": "Sam", "last_name": "Rivera", "address": "12 Elm Street",
		"city": "Portland", "state": "OR", "zip": "97201", "country": "United States",
	})
	require.Equal(t, http.StatusOK, code, env.Details)

	code, env = s.do(http.MethodPost, "/api/v1/checkout/payment", map[string]any{
		"card_number": "4242424242424242", "expiry": "13/29", "cvv": "123", "name_on_card": "Sam Rivera",
	})
	assert.Equal(t, http.StatusBadRequest, code, env.Details)

	code, env = s.do(http.MethodPost, "/api/v1/checkout/payment", map[string]any{
		"card_number": "4242424242424242", "expiry": "12/29", "cvv": "123", "name_on_card": "Sam Rivera",
	})
	require.Equal(t, http.StatusOK, code, env.Details)
	assert.Contains(t, string(env.Data), `"last4":"4242"`)
	assert.NotContains(t, string(env.Data), "4242424242424242")

	code, env = s.do(http.MethodPost, "/api/v1/checkout/back", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"step_name":"Payment"`)

	s.do(http.MethodPost, "/api/v1/checkout/payment", map[string]any{
		"card_number": "4242424242424242", "expiry": "12/29", "cvv": "123", "name_on_card": "Sam Rivera",
	})

	code, env = s.do(http.MethodPost, "/api/v1/checkout/place-order", nil)
	require.Equal(t, http.StatusCreated, code, env.Details)
	confirmation := decode[struct {
		Reference string `json:"reference"`
		ItemCount int    `json:"item_count"`
		Quote     struct {
			Total string `json:"total"`
		} `json:"quote"`
	}](t, env.Data)
	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, confirmation.Reference)
	assert.Equal(t, 1, confirmation.ItemCount)
	assert.Equal(t, "83.43", confirmation.Quote.Total)

	var mailed bool
	for _, e := range hook.AllEntries() {
		if e.Data["to"] == "sam@example.com" {
			mailed = true
		}
	}
	assert.True(t, mailed, "confirmation email logged")

	_, env = s.do(http.MethodGet, "/api/v1/session/view", nil)
	assert.Contains(t, string(env.Data), `"page":"home"`)
	assert.Contains(t, string(env.Data), `"cart_count":0`)

	_, env = s.do(http.MethodGet, "/api/v1/checkout", nil)
	assert.Contains(t, string(env.Data), `"step_name":"Contact"`)
}

func TestProducts(t *testing.T) {
	srv, _ := newTestServer(t)
	s := newShopper(t, srv)

	code, env := s.do(http.MethodGet, "/api/v1/products?categories=Skincare,Wellness&sort=price-high", nil)
	require.Equal(t, http.StatusOK, code)
	list := decode[struct {
		Count    int  `json:"count"`
		Filtered bool `json:"filtered"`
		Products []struct {
			ID string `json:"id"`
		} `json:"products"`
	}](t, env.Data)
	assert.Equal(t, 6, list.Count)
	assert.True(t, list.Filtered)
	assert.Equal(t, "10", list.Products[0].ID)

	code, _ = s.do(http.MethodGet, "/api/v1/products?sort=cheapest", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodGet, "/api/v1/products?min_price=50&max_price=10", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(http.MethodGet, "/api/v1/products/1", nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = s.do(http.MethodGet, "/api/v1/products/999", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Product not found", env.Error)

	code, env = s.do(http.MethodGet, "/api/v1/products/1/reviews", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[struct {
		Reviews []json.RawMessage `json:"reviews"`
	}](t, env.Data).Reviews, 3)

	code, env = s.do(http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]json.RawMessage](t, env.Data), 4)

	code, env = s.do(http.MethodGet, "/api/v1/search?q=VITAMIN", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"count":2`)
}

func TestAccount(t *testing.T) {
	srv, _ := newTestServer(t)
	s := newShopper(t, srv)

	code, env := s.do(http.MethodGet, "/api/v1/account/dashboard", nil)
	require.Equal(t, http.StatusOK, code)
	dash := decode[struct {
		TotalOrders  int               `json:"total_orders"`
		TotalSpent   string            `json:"total_spent"`
		RecentOrders []json.RawMessage `json:"recent_orders"`
	}](t, env.Data)
	assert.Equal(t, 4, dash.TotalOrders)
	assert.Equal(t, "392.78", dash.TotalSpent)
	assert.Len(t, dash.RecentOrders, 3)

	code, env = s.do(http.MethodGet, "/api/v1/account/orders", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]json.RawMessage](t, env.Data), 4)

	code, _ = s.do(http.MethodGet, "/api/v1/account/orders/ORD-2024-001", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodGet, "/api/v1/account/orders/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env = s.do(http.MethodGet, "/api/v1/account/addresses", nil)
	require.Equal(t, http.StatusOK, code)
	addresses := decode[[]struct {
		ID        string `json:"id"`
		IsDefault bool   `json:"is_default"`
	}](t, env.Data)
	require.Len(t, addresses, 2)
	assert.True(t, addresses[0].IsDefault)
}

func TestAdmin(t *testing.T) {
	srv, _ := newTestServer(t)
	s := newShopper(t, srv)

	code, _ := s.do(http.MethodGet, "/api/v1/admin/inventory", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env := s.do(http.MethodPost, "/api/v1/admin/login", map[string]any{"email": "admin@verve.shop", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid email or password", env.Error)

	s.do(http.MethodPost, "/api/v1/session/actions", map[string]any{"type": "navigate", "page": "admin"})
	_, env = s.do(http.MethodGet, "/api/v1/session/view", nil)
	assert.Contains(t, string(env.Data), `"authorized":false`)

	code, env = s.do(http.MethodPost, "/api/v1/admin/login", map[string]any{"email": "admin@verve.shop", "password": adminPassword})
	require.Equal(t, http.StatusOK, code, env.Error)
	login := decode[auth.LoginResponse](t, env.Data)
	require.NotEmpty(t, login.AccessToken)
	s.token = login.AccessToken

	code, env = s.do(http.MethodGet, "/api/v1/admin/inventory", nil)
	require.Equal(t, http.StatusOK, code)
	inventory := decode[struct {
		TotalProducts int               `json:"total_products"`
		OutOfStock    []json.RawMessage `json:"out_of_stock"`
		LowStock      []json.RawMessage `json:"low_stock"`
	}](t, env.Data)
	assert.Equal(t, 12, inventory.TotalProducts)
	assert.Len(t, inventory.OutOfStock, 2)
	assert.Len(t, inventory.LowStock, 2)

	_, env = s.do(http.MethodGet, "/api/v1/session/view", nil)
	assert.Contains(t, string(env.Data), `"authorized":true`)
}

func TestSessionCookie_ReplacesMalformedID(t *testing.T) {
	srv, _ := newTestServer(t)
	s := newShopper(t, srv)
	s.cookie = &http.Cookie{Name: "session_id", Value: "../../etc/passwd"}

	code, _ := s.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotEqual(t, "../../etc/passwd", s.cookie.Value)
	assert.Len(t, s.cookie.Value, 36)
}

func TestServer_InvoiceHTML(t *testing.T) {
	srv, _ := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/account/orders/ORD-2025-002/invoice?format=html", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "INV-ORD-2025-002")
	assert.Contains(t, w.Body.String(), "482 Willow Lane")

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/account/orders/ORD-0000/invoice?format=html", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
