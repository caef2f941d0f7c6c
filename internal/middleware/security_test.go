package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
}

func TestSecurityHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	SecurityHeaders(okHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestHostCheck(t *testing.T) {
	handler := HostCheck("api.lockin90.dev")(okHandler())

	t.Run("matching host passes", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Host = "api.lockin90.dev:443"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("foreign host is forbidden", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Host = "evil.example.com"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("empty allowed host disables the check", func(t *testing.T) {
		open := HostCheck("")(okHandler())
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Host = "anything.example.com"
		w := httptest.NewRecorder()
		open.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestExchangeRateLimit(t *testing.T) {
	handler := ExchangeRateLimit(okHandler())

	t.Run("other paths are not limited", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			r := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
			r.RemoteAddr = "10.1.0.1:1000"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("exchange route throttles bursts", func(t *testing.T) {
		var last int
		for i := 0; i < exchangeRateLimitBurst+2; i++ {
			r := httptest.NewRequest(http.MethodPost, sessionExchangePath, nil)
			r.RemoteAddr = "10.1.0.2:1000"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			last = w.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})
}
