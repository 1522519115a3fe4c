package rate_limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddleware_LimitsPerIP(t *testing.T) {
	l := New(0.001, 2)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := send("10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
	if code := send("10.0.0.1:5678"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", code)
	}
	if code := send("10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("expected other IP to pass, got %d", code)
	}
}

func TestCleanup_RemovesIdleVisitors(t *testing.T) {
	l := New(1, 3)
	l.GetVisitor("10.0.0.1")

	l.cleanup(time.Now())
	if len(l.visitors) != 1 {
		t.Fatalf("expected active visitor to be kept")
	}

	l.cleanup(time.Now().Add(visitorTTL + time.Second))
	if len(l.visitors) != 0 {
		t.Errorf("expected idle visitor to be removed, have %d", len(l.visitors))
	}
}
