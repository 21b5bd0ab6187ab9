package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/api-sage/banking-transaction-api/src/internal/domain"
)

type stubLimiter struct {
	callers []string
	reject  bool
}

func (s *stubLimiter) Allow(callerID string) error {
	s.callers = append(s.callers, callerID)
	if s.reject {
		return domain.ErrRateLimitExceeded
	}
	return nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitUsesAPIKeyIdentity(t *testing.T) {
	limiter := &stubLimiter{}
	handler := RateLimit(limiter)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.Header.Set("X-API-Key", "key-123")
	req.RemoteAddr = "10.0.0.1:54321"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(limiter.callers) != 1 || limiter.callers[0] != "key-123" {
		t.Fatalf("caller identities = %v, want [key-123]", limiter.callers)
	}
}

func TestRateLimitFallsBackToRemoteHost(t *testing.T) {
	limiter := &stubLimiter{}
	handler := RateLimit(limiter)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.RemoteAddr = "10.0.0.1:54321"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if len(limiter.callers) != 1 || limiter.callers[0] != "10.0.0.1" {
		t.Fatalf("caller identities = %v, want [10.0.0.1]", limiter.callers)
	}
}

func TestRateLimitRejectsWith429(t *testing.T) {
	limiter := &stubLimiter{reject: true}
	handler := RateLimit(limiter)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.RemoteAddr = "10.0.0.1:54321"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
}
