package routes

import (
	"encoding/json"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"go-storefront/catalog"
	"go-storefront/controllers"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/session"
	"go-storefront/static"
	"go-storefront/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shopper struct {
	t        *testing.T
	server   *httptest.Server
	client   *http.Client
	sessions *session.Store
}

func newShopper(t *testing.T) *shopper {
	t.Helper()
	return newShopperWithAssets(t, nil)
}

func newShopperWithAssets(t *testing.T, assets fs.FS) *shopper {
	t.Helper()

	products, err := catalog.Default()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := session.NewStore(session.Options{IdleTTL: time.Hour, NoticeTTL: time.Minute})
	signer := utils.NewTokenSigner([]byte("test-secret"), time.Hour)

	storefront := controllers.NewStorefrontController(products)
	if assets != nil {
		storefront.Script = static.ScriptSrc(assets)
	}

	router := mux.NewRouter()
	RegisterRoutes(router, Controllers{
		Storefront: storefront,
		Product:    controllers.NewProductController(products),
		Cart:       controllers.NewCartController(products),
		Contact:    controllers.NewContactController(logger),
		Assets:     assets,
	}, middleware.SessionMiddleware(sessions, signer))
	router.Use(middleware.RequestID, middleware.Recover(logger), middleware.Logging(logger))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &shopper{
		t:        t,
		server:   server,
		sessions: sessions,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (s *shopper) do(method, path string, form url.Values, htmx bool) (*http.Response, string) {
	s.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, s.server.URL+path, body)
	require.NoError(s.t, err)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}

	resp, err := s.client.Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	return resp, string(raw)
}

func (s *shopper) cart() models.Cart {
	s.t.Helper()
	resp, body := s.do(http.MethodGet, "/api/cart", nil, false)
	require.Equal(s.t, http.StatusOK, resp.StatusCode)

	var c models.Cart
	require.NoError(s.t, json.Unmarshal([]byte(body), &c))
	return c
}

func TestSessionStartsOnFirstMutation(t *testing.T) {
	s := newShopper(t)

	for _, path := range []string{"/", "/products?q=lens", "/cart", "/notifications", "/api/cart"} {
		resp, _ := s.do(http.MethodGet, path, nil, true)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Empty(t, resp.Header.Get("Set-Cookie"), path)
	}
	assert.Zero(t, s.sessions.Len())

	resp, body := s.do(http.MethodGet, "/", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Contains(t, body, "Professional Camera Lens")
	assert.Contains(t, body, "4K Ultra HD Laptop")
	assert.Contains(t, body, "Your cart is empty")

	resp, _ = s.do(http.MethodPost, "/cart/items/1", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Set-Cookie"), middleware.SessionCookieName+"=")
	assert.Equal(t, 1, s.sessions.Len())

	// Later requests reuse the cookie
	resp, _ = s.do(http.MethodGet, "/", nil, false)
	assert.Empty(t, resp.Header.Get("Set-Cookie"))
	resp, _ = s.do(http.MethodPost, "/cart/items/1/increment", nil, true)
	assert.Empty(t, resp.Header.Get("Set-Cookie"))
	assert.Equal(t, 1, s.sessions.Len())
	assert.Equal(t, 2, s.cart().Count)
}

func TestCartScenario(t *testing.T) {
	s := newShopper(t)

	for _, path := range []string{"/cart/items/1", "/cart/items/1", "/cart/items/2"} {
		resp, _ := s.do(http.MethodPost, path, nil, true)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	c := s.cart()
	require.Len(t, c.Lines, 2)
	assert.Equal(t, 1, c.Lines[0].Product.ID)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, 2, c.Lines[1].Product.ID)
	assert.Equal(t, 1, c.Lines[1].Quantity)
	assert.Equal(t, 3, c.Count)
	assert.Equal(t, "379.97", c.Total.StringFixed(2))
}

func TestAddToCartFragment(t *testing.T) {
	s := newShopper(t)
	resp, body := s.do(http.MethodPost, "/cart/items/3", nil, true)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.True(t, strings.HasPrefix(body, `<div id="cartContents"`))
	assert.Contains(t, body, `<span id="cartCount" class="cart-count" hx-swap-oob="true">1</span>`)
	assert.Contains(t, body, "Professional Camera Lens added to cart!")
	assert.Contains(t, body, `<span id="cartTotal">299.99</span>`)
}

func TestQuantityControls(t *testing.T) {
	s := newShopper(t)
	s.do(http.MethodPost, "/cart/items/4", nil, true)

	resp, _ := s.do(http.MethodPost, "/cart/items/4/increment", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, s.cart().Count)

	s.do(http.MethodPost, "/cart/items/4/decrement", nil, true)
	assert.Equal(t, 1, s.cart().Count)

	t.Run("decrement at one removes the line", func(t *testing.T) {
		_, body := s.do(http.MethodPost, "/cart/items/4/decrement", nil, true)
		assert.Contains(t, body, "Your cart is empty")
		assert.Contains(t, body, "Item removed from cart")
		assert.Empty(t, s.cart().Lines)
	})

	t.Run("absent line -> no-op", func(t *testing.T) {
		for _, path := range []string{"/cart/items/4/increment", "/cart/items/4/decrement", "/cart/items/4/remove"} {
			resp, _ := s.do(http.MethodPost, path, nil, true)
			assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		}
		assert.Zero(t, s.cart().Count)
	})
}

func TestRemoveFromCart(t *testing.T) {
	s := newShopper(t)
	s.do(http.MethodPost, "/cart/items/1", nil, true)
	s.do(http.MethodPost, "/cart/items/2", nil, true)

	resp, body := s.do(http.MethodDelete, "/cart/items/1", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Item removed from cart")

	c := s.cart()
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Product.ID)

	t.Run("non-existent id leaves cart unchanged", func(t *testing.T) {
		resp, body := s.do(http.MethodDelete, "/cart/items/5", nil, true)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Item removed from cart")
		assert.Equal(t, c, s.cart())
	})
}

func TestCartInputErrors(t *testing.T) {
	s := newShopper(t)

	resp, _ := s.do(http.MethodPost, "/cart/items/404", nil, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := s.do(http.MethodPost, "/cart/items/abc", nil, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Invalid product ID")
}

func TestPlainFormPostRedirects(t *testing.T) {
	s := newShopper(t)
	resp, _ := s.do(http.MethodPost, "/cart/items/1", nil, false)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Equal(t, 1, s.cart().Count)

	_, page := s.do(http.MethodGet, "/", nil, false)
	assert.Contains(t, page, `<span id="cartCount" class="cart-count">1</span>`)
	assert.Contains(t, page, "Wireless Bluetooth Headphones added to cart!")
}

func TestSearch(t *testing.T) {
	s := newShopper(t)

	t.Run("lens -> camera lens only", func(t *testing.T) {
		resp, body := s.do(http.MethodGet, "/products?q=lens", nil, true)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Professional Camera Lens")
		assert.NotContains(t, body, "Smart Fitness Watch")
		assert.Equal(t, 1, strings.Count(body, `class="product-card"`))
	})

	t.Run("empty -> full catalog", func(t *testing.T) {
		_, body := s.do(http.MethodGet, "/products?q=", nil, true)
		assert.Equal(t, 6, strings.Count(body, `class="product-card"`))
	})

	t.Run("no match -> placeholder", func(t *testing.T) {
		_, body := s.do(http.MethodGet, "/products?q=toaster", nil, true)
		assert.Contains(t, body, "No products found matching your search.")
	})

	t.Run("plain request -> page with query", func(t *testing.T) {
		resp, _ := s.do(http.MethodGet, "/products?q=lens", nil, false)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/?q=lens#products", resp.Header.Get("Location"))

		_, page := s.do(http.MethodGet, "/?q=lens", nil, false)
		assert.Equal(t, 1, strings.Count(page, `class="product-card"`))
	})
}

func TestContactForm(t *testing.T) {
	s := newShopper(t)

	t.Run("complete -> thanks and reset", func(t *testing.T) {
		form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"}}
		resp, body := s.do(http.MethodPost, "/contact", form, true)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Thank you for your message! We&#39;ll get back to you soon.")
		assert.NotContains(t, body, `value="Ada"`)
	})

	t.Run("missing field -> values kept", func(t *testing.T) {
		form := url.Values{"name": {"Ada"}, "email": {""}, "message": {"Hello"}}
		_, body := s.do(http.MethodPost, "/contact", form, true)
		assert.Contains(t, body, "Please fill in all fields.")
		assert.Contains(t, body, `value="Ada"`)
		assert.Contains(t, body, "Hello</textarea>")
	})
}

func TestToggles(t *testing.T) {
	s := newShopper(t)

	_, body := s.do(http.MethodPost, "/menu/toggle", nil, true)
	assert.Contains(t, body, `class="nav-menu active"`)
	_, body = s.do(http.MethodPost, "/menu/toggle", nil, true)
	assert.NotContains(t, body, "active")

	_, body = s.do(http.MethodPost, "/cart/toggle", nil, true)
	assert.Contains(t, body, `class="cart-modal active"`)
	_, body = s.do(http.MethodGet, "/cart", nil, true)
	assert.Contains(t, body, `class="cart-modal active"`)
	_, body = s.do(http.MethodPost, "/cart/close", nil, true)
	assert.Contains(t, body, `class="cart-modal"`)
}

func TestNotificationsRegion(t *testing.T) {
	s := newShopper(t)
	s.do(http.MethodPost, "/cart/items/5", nil, true)

	_, body := s.do(http.MethodGet, "/notifications", nil, true)
	assert.Contains(t, body, "Mechanical Gaming Keyboard added to cart!")
	assert.Contains(t, body, `hx-get="/notifications"`)
}

func TestForgedCookieGetsFreshSession(t *testing.T) {
	s := newShopper(t)
	s.do(http.MethodPost, "/cart/items/1", nil, true)

	u, err := url.Parse(s.server.URL)
	require.NoError(t, err)
	s.client.Jar.SetCookies(u, []*http.Cookie{{Name: middleware.SessionCookieName, Value: "forged"}})

	resp, _ := s.do(http.MethodGet, "/", nil, false)
	assert.Empty(t, resp.Header.Get("Set-Cookie"))
	assert.Zero(t, s.cart().Count)

	resp, _ = s.do(http.MethodPost, "/menu/toggle", nil, true)
	assert.Contains(t, resp.Header.Get("Set-Cookie"), middleware.SessionCookieName+"=")
	assert.Equal(t, 2, s.sessions.Len())
	assert.Zero(t, s.cart().Count)
}

func TestStatelessRoutes(t *testing.T) {
	styles, err := fs.ReadFile(static.FS, "styles.css")
	require.NoError(t, err)
	s := newShopperWithAssets(t, fstest.MapFS{
		"styles.css":    {Data: styles},
		static.HTMXFile: {Data: []byte("/* htmx 2.0.4 */")},
	})

	resp, _ := s.do(http.MethodGet, "/healthz", nil, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Set-Cookie"))

	resp, body := s.do(http.MethodGet, "/static/styles.css", nil, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, ".product-card")

	resp, body = s.do(http.MethodGet, "/static/js/htmx.min.js", nil, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "javascript")
	assert.Equal(t, "/* htmx 2.0.4 */", body)

	_, body = s.do(http.MethodGet, "/", nil, false)
	assert.Contains(t, body, `<script src="/static/js/htmx.min.js"></script>`)
	assert.NotContains(t, body, "unpkg.com")

	resp, body = s.do(http.MethodGet, "/api/products?q=lens", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var products []models.Product
	require.NoError(t, json.Unmarshal([]byte(body), &products))
	require.Len(t, products, 1)
	assert.Equal(t, 3, products[0].ID)
	assert.Equal(t, "299.99", products[0].Price.StringFixed(2))

	resp, _ = s.do(http.MethodGet, "/api/products/7", nil, false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
