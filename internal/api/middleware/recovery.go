package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/SMC-PitchBooking/internal/api/handlers"
)

// Recovery перехватывает панику обработчика и отвечает 500 с общим сообщением
func Recovery(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("%s %s - panic recovered: %v, request_id=%s\n%s",
					r.Method, r.URL.Path, rec, RequestIDFromContext(r.Context()), debug.Stack())
				handlers.RespondInternalError(w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
