package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PitchBooking/internal/service/adminauth"
	"github.com/m04kA/SMC-PitchBooking/pkg/logger"
)

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) ObserveHTTPRequest(method, route, status string, seconds float64) {
	m.Called(method, route, status, seconds)
}

func (m *mockRecorder) RateLimited(route string) {
	m.Called(route)
}

type mockValidator struct {
	mock.Mock
}

func (m *mockValidator) ValidateToken(raw string) (*adminauth.Claims, error) {
	args := m.Called(raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*adminauth.Claims), args.Error(1)
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusCreated)
})

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	h := Recovery(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	require.NotPanics(t, func() { h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil)) })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Sunucu hatası"}`, w.Body.String())
}

func TestAccessLog_PassesStatusThrough(t *testing.T) {
	w := httptest.NewRecorder()
	AccessLog(logger.NewNop())(okHandler).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://halisaha.example"})(okHandler)

	// разрешенный источник
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
	r.Header.Set("Origin", "https://halisaha.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "https://halisaha.example", w.Header().Get("Access-Control-Allow-Origin"))

	// preflight
	r = httptest.NewRequest(http.MethodOptions, "/api/v1/bookings", nil)
	r.Header.Set("Origin", "https://halisaha.example")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// чужой источник
	r = httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
	r.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_DisabledWithoutOrigins(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Origin", "https://halisaha.example")
	w := httptest.NewRecorder()
	CORS(nil)(okHandler).ServeHTTP(w, r)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	rec := new(mockRecorder)
	rec.On("ObserveHTTPRequest", http.MethodGet, "/api/v1/admin/bookings/{bookingId}", "201", mock.AnythingOfType("float64")).Once()

	router := mux.NewRouter()
	router.Use(Metrics(rec))
	router.Handle("/api/v1/admin/bookings/{bookingId}", okHandler)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings/42", nil))
	rec.AssertExpectations(t)
}

func TestAdminAuth(t *testing.T) {
	v := new(mockValidator)
	v.On("ValidateToken", "good").Return(&adminauth.Claims{}, nil)
	v.On("ValidateToken", "bad").Return(nil, adminauth.ErrInvalidToken)

	h := AdminAuth(v, logger.NewNop())(okHandler)

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{name: "valid", header: "Bearer good", code: http.StatusCreated},
		{name: "lowercase scheme", header: "bearer good", code: http.StatusCreated},
		{name: "invalid token", header: "Bearer bad", code: http.StatusUnauthorized},
		{name: "missing", header: "", code: http.StatusUnauthorized},
		{name: "basic scheme", header: "Basic Zm9vOmJhcg==", code: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", code: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", clientKey(r))

	r.Header.Set("X-Real-IP", "10.0.0.2")
	assert.Equal(t, "10.0.0.2", clientKey(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.3")
	assert.Equal(t, "203.0.113.7", clientKey(r))
}

type failingStore struct{}

func (failingStore) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("store down")
}

func newLimitedRouter(store Store, cfg RateLimitConfig, rec MetricsRecorder) *mux.Router {
	rl := NewRateLimiter(store, cfg, rec, logger.NewNop())
	router := mux.NewRouter()
	router.Handle("/api/v1/bookings", rl.Limit(okHandler)).Methods(http.MethodPost)
	return router
}

func send(router http.Handler, ip string) int {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
	r.RemoteAddr = ip + ":40000"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w.Code
}

func TestRateLimiter_Memory(t *testing.T) {
	rec := new(mockRecorder)
	rec.On("RateLimited", "/api/v1/bookings").Once()

	store := NewMemoryStore()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	router := newLimitedRouter(store, RateLimitConfig{Requests: 3, Window: 10 * time.Minute}, rec)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusCreated, send(router, "198.51.100.1"), "request %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, send(router, "198.51.100.1"))
	assert.Equal(t, http.StatusCreated, send(router, "198.51.100.2"), "other clients have their own window")

	now = now.Add(10 * time.Minute)
	assert.Equal(t, http.StatusCreated, send(router, "198.51.100.1"), "new window after expiry")
	rec.AssertExpectations(t)
}

func TestRateLimiter_StoreFailure(t *testing.T) {
	rec := new(mockRecorder)
	cfg := RateLimitConfig{Requests: 1, Window: time.Minute}

	assert.Equal(t, http.StatusInternalServerError, send(newLimitedRouter(failingStore{}, cfg, rec), "198.51.100.1"))

	cfg.FailOpen = true
	assert.Equal(t, http.StatusCreated, send(newLimitedRouter(failingStore{}, cfg, rec), "198.51.100.1"))
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Incr(context.Background(), "k", time.Minute)
		}()
	}
	wg.Wait()

	n, err := store.Incr(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(51), n)
}

func TestMemoryStore_SweepsExpired(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_, _ = store.Incr(context.Background(), "a", time.Minute)
	_, _ = store.Incr(context.Background(), "b", time.Minute)

	now = now.Add(2 * time.Minute)
	_, _ = store.Incr(context.Background(), "c", time.Minute)

	assert.Len(t, store.counters, 1)
}
