package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/backend"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/notify"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/session"
)

const testSecret = "test-session-secret-0123456789abcdef"

// recordingBackend is an httptest stand-in for the remote shop API. It
// records every request it sees and answers from canned JSON.
type recordingBackend struct {
	mu       sync.Mutex
	requests []string
	handler  http.HandlerFunc
}

func (rb *recordingBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rb.mu.Lock()
	rb.requests = append(rb.requests, r.Method+" "+r.URL.Path)
	rb.mu.Unlock()
	if rb.handler != nil {
		rb.handler(w, r)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func (rb *recordingBackend) seen() []string {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return append([]string(nil), rb.requests...)
}

type testApp struct {
	router  http.Handler
	store   *session.Store
	tokens  *session.TokenService
	backend *recordingBackend
}

func setupTestApp(t *testing.T, backendHandler http.HandlerFunc) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := session.NewStore(rdb)
	tokens := session.NewTokenService(testSecret, session.TTLSession)
	sessions := session.NewManager(store, tokens, false)
	broadcaster := session.NewBroadcaster(rdb)
	flasher := notify.NewFlasher(store)

	rb := &recordingBackend{handler: backendHandler}
	srv := httptest.NewServer(rb)
	t.Cleanup(srv.Close)

	client := backend.NewClient(srv.URL, SessionCredentials{Store: store})

	renderer, err := NewRenderer()
	require.NoError(t, err)

	handlers := NewHandlers(client, sessions, flasher, broadcaster, renderer, false)

	return &testApp{
		router:  NewRouter(handlers),
		store:   store,
		tokens:  tokens,
		backend: rb,
	}
}

// loginCookie creates a logged-in session and returns its signed cookie.
func (app *testApp) loginCookie(t *testing.T, sessionID string) *http.Cookie {
	t.Helper()
	token, _, err := app.tokens.Generate(sessionID)
	require.NoError(t, err)
	require.NoError(t, app.store.SetLoggedIn(context.Background(), sessionID, true))
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ============================================
// Session Middleware Tests
// ============================================

func TestRouter_IssuesSessionCookie(t *testing.T) {
	app := setupTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var found bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			found = true
			assert.True(t, ck.HttpOnly)
		}
	}
	assert.True(t, found, "expected a session cookie on first visit")
}

func TestRouter_HomeRendersCatalog(t *testing.T) {
	app := setupTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/":
			_, _ = w.Write([]byte(`[{"id": 1, "name": "Gaming Laptop", "price": "999.99", "category_name": "Electronics", "stock_quantity": 3}]`))
		case "/categories/":
			_, _ = w.Write([]byte(`[{"id": 1, "name": "Electronics"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Gaming Laptop")
	assert.Contains(t, rec.Body.String(), "Electronics")
}

// ============================================
// Login Guard Tests
// ============================================

func TestRequireLogin_RedirectsAnonymousSessions(t *testing.T) {
	app := setupTestApp(t, nil)

	for _, path := range []string{"/cart", "/orders", "/profile", "/reviews"} {
		rec := httptest.NewRecorder()
		app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
	}
	assert.Empty(t, app.backend.seen(), "guarded pages must not touch the backend when signed out")
}

func TestAddToCart_AnonymousRedirectsToLogin(t *testing.T) {
	app := setupTestApp(t, nil)

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, postForm("/products/1/cart", url.Values{"quantity": {"1"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Empty(t, app.backend.seen())
}

// ============================================
// Cart Quantity Floor Tests
// ============================================

func TestUpdateCartItem_BelowFloorIssuesNoCall(t *testing.T) {
	app := setupTestApp(t, nil)
	cookie := app.loginCookie(t, "sess-1")

	for _, quantity := range []string{"0", "-1", "garbage"} {
		req := postForm("/cart/items/5/update", url.Values{"quantity": {quantity}})
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		app.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code, quantity)
		assert.Equal(t, "/cart", rec.Header().Get("Location"), quantity)
	}
	assert.Empty(t, app.backend.seen(), "quantities below 1 must not reach the backend")
}

func TestUpdateCartItem_ValidQuantityCallsBackend(t *testing.T) {
	app := setupTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	cookie := app.loginCookie(t, "sess-1")

	req := postForm("/cart/items/5/update", url.Values{"quantity": {"3"}})
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cart", rec.Header().Get("Location"))
	assert.Equal(t, []string{"PUT /cart/update/5/"}, app.backend.seen())
}

func TestRemoveCartItem_CallsBackend(t *testing.T) {
	app := setupTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	cookie := app.loginCookie(t, "sess-1")

	req := postForm("/cart/items/9/remove", url.Values{})
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"DELETE /cart/remove/9/"}, app.backend.seen())
}

// ============================================
// Checkout Tests
// ============================================

func TestCheckout_BlankAddressIssuesNoCall(t *testing.T) {
	app := setupTestApp(t, nil)
	cookie := app.loginCookie(t, "sess-1")

	for _, address := range []string{"", "   ", "\t\n"} {
		req := postForm("/checkout", url.Values{
			"shipping_address": {address},
			"checkout_token":   {"tok-1"},
		})
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		app.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/cart", rec.Header().Get("Location"))
	}
	assert.Empty(t, app.backend.seen(), "blank addresses must be rejected locally")
}

func TestCheckout_PlacesOrder(t *testing.T) {
	app := setupTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/create/", r.URL.Path)
		assert.Equal(t, "tok-1", r.Header.Get("X-Idempotency-Key"))
		_, _ = w.Write([]byte(`{"id": 7, "status": "pending"}`))
	})
	cookie := app.loginCookie(t, "sess-1")

	req := postForm("/checkout", url.Values{
		"shipping_address": {"123 Main St"},
		"checkout_token":   {"tok-1"},
	})
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/orders", rec.Header().Get("Location"))
	assert.Equal(t, []string{"POST /orders/create/"}, app.backend.seen())
}

func TestCheckout_DuplicateSubmitCreatesOneOrder(t *testing.T) {
	app := setupTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 7, "status": "pending"}`))
	})
	cookie := app.loginCookie(t, "sess-1")

	form := url.Values{
		"shipping_address": {"123 Main St"},
		"checkout_token":   {"tok-double"},
	}

	first := httptest.NewRecorder()
	req := postForm("/checkout", form)
	req.AddCookie(cookie)
	app.router.ServeHTTP(first, req)
	require.Equal(t, http.StatusSeeOther, first.Code)

	second := httptest.NewRecorder()
	req = postForm("/checkout", form)
	req.AddCookie(cookie)
	app.router.ServeHTTP(second, req)

	assert.Equal(t, http.StatusSeeOther, second.Code)
	assert.Equal(t, "/orders/7", second.Header().Get("Location"),
		"replayed token should land on the order the first submit created")
	assert.Equal(t, []string{"POST /orders/create/"}, app.backend.seen(),
		"the backend must see exactly one create")
}

func TestCheckout_BackendFailureReleasesToken(t *testing.T) {
	fail := true
	app := setupTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": "Cart is empty"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id": 8, "status": "pending"}`))
	})
	cookie := app.loginCookie(t, "sess-1")

	form := url.Values{
		"shipping_address": {"123 Main St"},
		"checkout_token":   {"tok-retry"},
	}

	first := httptest.NewRecorder()
	req := postForm("/checkout", form)
	req.AddCookie(cookie)
	app.router.ServeHTTP(first, req)
	require.Equal(t, "/cart", first.Header().Get("Location"))

	// A failed attempt releases the token, so the retry goes through.
	fail = false
	second := httptest.NewRecorder()
	req = postForm("/checkout", form)
	req.AddCookie(cookie)
	app.router.ServeHTTP(second, req)

	assert.Equal(t, "/orders", second.Header().Get("Location"))
	assert.Len(t, app.backend.seen(), 2)
}

// ============================================
// Auth Expiry Tests
// ============================================

func TestAuthExpiry_ClearsLoginFlag(t *testing.T) {
	app := setupTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	cookie := app.loginCookie(t, "sess-1")

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	// The page still renders (with its failure state) but the session is
	// now signed out.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, app.store.IsLoggedIn(context.Background(), "sess-1"))
}

// ============================================
// Nav State Tests
// ============================================

func TestNavState_AnonymousIsZero(t *testing.T) {
	app := setupTestApp(t, nil)

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nav/state", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var state map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, false, state["logged_in"])
	assert.Equal(t, float64(0), state["cart_count"])
	assert.Empty(t, app.backend.seen(), "anonymous polls must not hit the backend")
}

func TestNavState_CachesCartCount(t *testing.T) {
	app := setupTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 1, "items": [], "total_price": "59.97", "total_items": 3}`))
	})
	cookie := app.loginCookie(t, "sess-1")
	require.NoError(t, app.store.SaveProfile(context.Background(), "sess-1", session.Profile{Username: "alice"}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/nav/state", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		app.router.ServeHTTP(rec, req)

		var state map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
		assert.Equal(t, true, state["logged_in"])
		assert.Equal(t, "alice", state["username"])
		assert.Equal(t, float64(3), state["cart_count"])
	}

	assert.Equal(t, []string{"GET /cart/"}, app.backend.seen(),
		"repeated polls within the TTL should reuse the cached count")
}

// ============================================
// Flash Tests
// ============================================

func TestAddToCart_FlashAppearsOnNextPage(t *testing.T) {
	app := setupTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cart/add/":
			_, _ = w.Write([]byte(`{}`))
		case "/products/":
			_, _ = w.Write([]byte(`[]`))
		case "/categories/":
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	cookie := app.loginCookie(t, "sess-1")

	req := postForm("/products/1/cart", url.Values{"quantity": {"2"}, "name": {"Gaming Laptop"}})
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/products/1", rec.Header().Get("Location"))

	// The redirect target drains the queued flash.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), "Gaming Laptop added to cart!")

	// Drained, so it shows only once.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.NotContains(t, rec.Body.String(), "added to cart!")
}

// ============================================
// Profile Tests
// ============================================

func TestProfileSave_PersistsToSession(t *testing.T) {
	app := setupTestApp(t, nil)
	cookie := app.loginCookie(t, "sess-1")

	req := postForm("/profile/edit", url.Values{
		"username":     {"alice"},
		"email":        {"alice@example.com"},
		"first_name":   {"Alice"},
		"phone_number": {"555-0100"},
	})
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile", rec.Header().Get("Location"))

	profile, ok := app.store.Profile(context.Background(), "sess-1")
	require.True(t, ok)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice", profile.FirstName)
	assert.Empty(t, app.backend.seen(), "profile edits never reach the backend")
}
