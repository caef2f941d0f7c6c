package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedOK(t *testing.T) http.Handler {
	t.Helper()
	return RateLimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
}

func requestFrom(ip string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	r.RemoteAddr = ip + ":12345"
	return r
}

func TestRateLimitAllowsNormalTraffic(t *testing.T) {
	setupTestRedis(t)
	handler := rateLimitedOK(t)

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestFrom("10.0.0.1"))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.1"))
	assert.Equal(t, fmt.Sprintf("%d", RateLimitMaxRequests), w.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitBlocksAfterLimit(t *testing.T) {
	setupTestRedis(t)
	handler := rateLimitedOK(t)

	for i := 0; i < RateLimitMaxRequests; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestFrom("10.0.0.2"))
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// The IP is now blocked outright, regardless of the window counter.
	blocked, err := IsIPBlocked("10.0.0.2")
	require.NoError(t, err)
	assert.True(t, blocked)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Other IPs are unaffected.
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.3"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnblockIP(t *testing.T) {
	setupTestRedis(t)
	handler := rateLimitedOK(t)

	for i := 0; i <= RateLimitMaxRequests; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), requestFrom("10.0.0.4"))
	}

	blocked, _ := IsIPBlocked("10.0.0.4")
	require.True(t, blocked)

	require.NoError(t, UnblockIP("10.0.0.4"))
	blocked, _ = IsIPBlocked("10.0.0.4")
	assert.False(t, blocked)
}
