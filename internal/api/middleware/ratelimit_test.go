package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestRouter(rl *RateLimiter) *mux.Router {
	r := mux.NewRouter()
	r.Use(rl.Middleware())
	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }
	r.HandleFunc("/api/v1/businesses/{businessId}", ok).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/resources/{resourceId}/availability", ok).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/reservations", ok).Methods(http.MethodPost)
	return r
}

func doRequest(router *mux.Router, method, path, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_GlobalLimit(t *testing.T) {
	stopCh := make(chan struct{})
	defer close(stopCh)

	rl := NewRateLimiter(5, 100, noopLogger{}, stopCh)
	router := newTestRouter(rl)

	for i := 0; i < 5; i++ {
		rec := doRequest(router, http.MethodGet, "/api/v1/businesses/1", "10.0.0.1")
		require.Equal(t, http.StatusOK, rec.Code, "request %d within limit", i+1)
	}

	rec := doRequest(router, http.MethodGet, "/api/v1/businesses/1", "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestRateLimiter_HotEndpointStricter(t *testing.T) {
	stopCh := make(chan struct{})
	defer close(stopCh)

	rl := NewRateLimiter(100, 2, noopLogger{}, stopCh)
	router := newTestRouter(rl)

	for i := 0; i < 2; i++ {
		rec := doRequest(router, http.MethodGet, "/api/v1/resources/1/availability?date=2026-03-14", "10.0.0.1")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doRequest(router, http.MethodGet, "/api/v1/resources/1/availability?date=2026-03-14", "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Холодные ручки продолжают работать
	rec = doRequest(router, http.MethodGet, "/api/v1/businesses/1", "10.0.0.1")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_PerIPIsolation(t *testing.T) {
	stopCh := make(chan struct{})
	defer close(stopCh)

	rl := NewRateLimiter(1, 100, noopLogger{}, stopCh)
	router := newTestRouter(rl)

	rec := doRequest(router, http.MethodGet, "/api/v1/businesses/1", "10.0.0.1")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/v1/businesses/1", "10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Другой клиент не задет
	rec = doRequest(router, http.MethodGet, "/api/v1/businesses/1", "10.0.0.2")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_XForwardedFor(t *testing.T) {
	stopCh := make(chan struct{})
	defer close(stopCh)

	rl := NewRateLimiter(1, 100, noopLogger{}, stopCh)
	router := newTestRouter(rl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/1", nil)
	req.RemoteAddr = "192.168.0.1:9999"
	req.Header.Set("X-Forwarded-For", "203.0.113.5, 192.168.0.1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Тот же клиентский IP за прокси упирается в лимит
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req.Clone(req.Context()))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestIsHotEndpoint(t *testing.T) {
	post := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", nil)
	assert.True(t, isHotEndpoint(post))

	avail := httptest.NewRequest(http.MethodGet, "/api/v1/resources/1/availability", nil)
	assert.True(t, isHotEndpoint(avail))

	getRes := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/1", nil)
	assert.False(t, isHotEndpoint(getRes))

	listBiz := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/1", nil)
	assert.False(t, isHotEndpoint(listBiz))
}
