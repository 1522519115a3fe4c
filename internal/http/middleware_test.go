package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-rest/internal/auth"
	api "github.com/rogerio-castellano/inventory-rest/internal/http"
	"github.com/rogerio-castellano/inventory-rest/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-rest/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-rest/internal/repo"
)

func newAuthRouter(t *testing.T) http.Handler {
	t.Helper()
	hash, err := auth.HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	users, err := repo.NewUserRepositoryFromHashes(map[string]string{"admin": hash})
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	return api.NewRouter(api.Deps{
		Products: repo.NewInMemoryProductInventory(),
		Records:  repo.NewInMemoryRecordInventory(),
		Users:    users,
		Issuer:   auth.NewIssuer("test-secret", time.Minute),
	})
}

func login(t *testing.T, r http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(handlers.LoginRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_WritesRequireToken(t *testing.T) {
	r := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":"A"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected reads to stay open, got %d", w.Code)
	}

	lw := login(t, r, "admin", "secret")
	if lw.Code != http.StatusOK {
		t.Fatalf("expected login 200, got %d", lw.Code)
	}
	var result handlers.LoginResult
	if err := json.NewDecoder(lw.Body).Decode(&result); err != nil {
		t.Fatalf("token decoding failed: %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":"A"}`))
	req.Header.Set("Authorization", "Bearer "+result.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201 with token, got %d", w.Code)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	r := newAuthRouter(t)

	if w := login(t, r, "admin", "wrong"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong password, got %d", w.Code)
	}
	if w := login(t, r, "ghost", "secret"); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown user, got %d", w.Code)
	}
}

func TestLogin_UsernameIgnoresCase(t *testing.T) {
	r := newAuthRouter(t)

	if w := login(t, r, "Admin", "secret"); w.Code != http.StatusOK {
		t.Errorf("expected 200 for differently cased username, got %d", w.Code)
	}
}

func TestRateLimiter_Returns429(t *testing.T) {
	r := api.NewRouter(api.Deps{
		Products: repo.NewInMemoryProductInventory(),
		Records:  repo.NewInMemoryRecordInventory(),
		Limiter:  rl.New(0.001, 1),
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/products", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/products", nil))

	if first.Code != http.StatusOK {
		t.Errorf("expected first request to pass, got %d", first.Code)
	}
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", second.Code)
	}

	health := httptest.NewRecorder()
	r.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if health.Code != http.StatusOK {
		t.Errorf("expected health check outside the limiter, got %d", health.Code)
	}
}

func TestRateLimiter_IgnoresForwardedForByDefault(t *testing.T) {
	r := api.NewRouter(api.Deps{
		Products: repo.NewInMemoryProductInventory(),
		Records:  repo.NewInMemoryRecordInventory(),
		Limiter:  rl.New(1, 1),
	})

	allowed := 0
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code == http.StatusOK {
			allowed++
		}
	}
	if allowed != 1 {
		t.Errorf("expected only the first request to pass, %d of 10 did", allowed)
	}
}

func TestRateLimiter_TrustsProxyHeadersWhenEnabled(t *testing.T) {
	r := api.NewRouter(api.Deps{
		Products:          repo.NewInMemoryProductInventory(),
		Records:           repo.NewInMemoryRecordInventory(),
		Limiter:           rl.New(1, 1),
		TrustProxyHeaders: true,
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("client %d: expected 200 behind a trusted proxy, got %d", i, w.Code)
		}
	}
}

func TestRequestID_GeneratedAndPropagated(t *testing.T) {
	s := newTestServer()

	w := s.do(http.MethodGet, "/products", "", "")
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("expected generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-Id"); got != "abc-123" {
		t.Errorf("expected propagated request id, got %q", got)
	}
}

func TestMetrics_CountsRoutes(t *testing.T) {
	s := newTestServer()
	s.do(http.MethodGet, "/products/42", "", "")

	w := s.do(http.MethodGet, "/metrics", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	want := `inventory_http_requests_total{method="GET",route="/products/{id}",status="404"} 1`
	if !strings.Contains(w.Body.String(), want) {
		t.Errorf("expected metrics to contain %q", want)
	}
}
