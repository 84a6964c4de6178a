package middleware

import (
	"net/http"
	"strconv"
	"time"
)

// Metrics записывает количество и длительность запросов по шаблону маршрута.
// Подключается через router.Use, чтобы маршрут был уже сопоставлен.
func Metrics(recorder MetricsRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			recorder.ObserveHTTPRequest(r.Method, routeTemplate(r), strconv.Itoa(sw.Status()), time.Since(start).Seconds())
		})
	}
}
