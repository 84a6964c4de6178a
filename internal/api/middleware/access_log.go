package middleware

import (
	"net/http"
	"time"
)

// AccessLog пишет строку лога на каждый запрос; 5xx идут уровнем Error
func AccessLog(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			status := sw.Status()
			if status >= http.StatusInternalServerError {
				logger.Error("%s %s - status=%d, bytes=%d, duration=%s, request_id=%s",
					r.Method, r.URL.Path, status, sw.bytes, time.Since(start), RequestIDFromContext(r.Context()))
				return
			}
			logger.Info("%s %s - status=%d, bytes=%d, duration=%s, request_id=%s",
				r.Method, r.URL.Path, status, sw.bytes, time.Since(start), RequestIDFromContext(r.Context()))
		})
	}
}
