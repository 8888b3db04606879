package app

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Black-And-White-Club/golf-league/app/shared/observability"
	"github.com/Black-And-White-Club/golf-league/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHTTPConfig() config.HTTPConfig {
	return config.HTTPConfig{
		Addr:            ":0",
		AllowedOrigins:  []string{"https://league.example.com"},
		RateLimitRPS:    1,
		RateLimitBurst:  2,
		ShutdownTimeout: time.Second,
	}
}

func TestRouter(t *testing.T) {
	obs := observability.New(observability.Config{Environment: "test", LogLevel: "error"})
	ping := func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	}
	h := newRouter(testHTTPConfig(), obs, ping)

	t.Run("healthz", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "go_goroutines")
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/ping", nil)
		req.Header.Set("Origin", "https://league.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "https://league.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("api is rate limited per ip", func(t *testing.T) {
		codes := make([]int, 0, 3)
		for range 3 {
			req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
			req.RemoteAddr = "203.0.113.7:4000"
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)
		}
		assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
	})

	t.Run("forwarded clients are limited by their real ip", func(t *testing.T) {
		codes := make([]int, 0, 3)
		for i := range 3 {
			req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
			req.RemoteAddr = fmt.Sprintf("10.1.1.%d:8080", i+1)
			req.Header.Set("X-Real-IP", "198.51.100.20")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)
		}
		assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
	})
}
