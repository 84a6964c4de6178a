package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/api/handlers"
)

const msgTooManyRequests = "Çok fazla istek. Lütfen 10 dakika sonra tekrar deneyin."

// RateLimitConfig параметры фиксированного окна
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
	// FailOpen пропускает запросы, если хранилище счетчиков недоступно
	FailOpen bool
}

// RateLimiter ограничивает число запросов клиента к маршруту за окно
type RateLimiter struct {
	store   Store
	cfg     RateLimitConfig
	metrics MetricsRecorder
	logger  Logger
}

func NewRateLimiter(store Store, cfg RateLimitConfig, metrics MetricsRecorder, logger Logger) *RateLimiter {
	return &RateLimiter{
		store:   store,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}
}

// Limit оборачивает обработчик; счетчик ведется отдельно для каждого маршрута и клиента
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := routeTemplate(r)
		key := r.Method + " " + route + "|" + clientKey(r)

		count, err := rl.store.Incr(r.Context(), key, rl.cfg.Window)
		if err != nil {
			if rl.cfg.FailOpen {
				rl.logger.Warn("RateLimit: store error, letting request through: route=%s, error=%v", route, err)
				next.ServeHTTP(w, r)
				return
			}
			rl.logger.Error("RateLimit: store error: route=%s, error=%v", route, err)
			handlers.RespondInternalError(w)
			return
		}

		if count > int64(rl.cfg.Requests) {
			rl.logger.Warn("RateLimit: limit exceeded: route=%s, client=%s, count=%d", route, clientKey(r), count)
			rl.metrics.RateLimited(route)
			handlers.RespondTooManyRequests(w, msgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey идентифицирует клиента: первый адрес X-Forwarded-For, затем X-Real-IP, затем RemoteAddr
func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

// MemoryStore счетчики в памяти процесса; подходит для одного экземпляра сервиса
type MemoryStore struct {
	mu        sync.Mutex
	counters  map[string]*windowCounter
	now       func() time.Time
	nextSweep time.Time
}

type windowCounter struct {
	count   int64
	resetAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counters: make(map[string]*windowCounter),
		now:      time.Now,
	}
}

func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now, window)

	c := s.counters[key]
	if c == nil || !now.Before(c.resetAt) {
		s.counters[key] = &windowCounter{count: 1, resetAt: now.Add(window)}
		return 1, nil
	}

	c.count++
	return c.count, nil
}

// sweep удаляет истекшие окна не чаще раза за окно
func (s *MemoryStore) sweep(now time.Time, window time.Duration) {
	if now.Before(s.nextSweep) {
		return
	}
	for key, c := range s.counters {
		if !now.Before(c.resetAt) {
			delete(s.counters, key)
		}
	}
	s.nextSweep = now.Add(window)
}
