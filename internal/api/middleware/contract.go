// Package middleware holds the HTTP middleware chain of the service:
// request ids, access logging, panic recovery, CORS, Prometheus metrics,
// admin bearer authentication and per-client rate limiting.
package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PitchBooking/internal/service/adminauth"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder принимает наблюдения HTTP запросов
type MetricsRecorder interface {
	ObserveHTTPRequest(method, route, status string, seconds float64)
	RateLimited(route string)
}

// TokenValidator проверяет bearer токен администратора
type TokenValidator interface {
	ValidateToken(raw string) (*adminauth.Claims, error)
}

// Store счетчик фиксированного окна для rate limiter'а.
// Incr увеличивает счетчик ключа и возвращает новое значение; окно начинается с первого запроса.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}
