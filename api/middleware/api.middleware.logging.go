package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	nuts "github.com/vaudience/go-nuts"
)

// statusRecorder captures the status code written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Logging writes one access log line per request
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		defer func(begin time.Time) {
			nuts.L.Infof("[API] %s %s %d %s remote=%s request_id=%s",
				r.Method, r.URL.RequestURI(), rec.status, time.Since(begin), r.RemoteAddr, RequestIDFromContext(r.Context()))
		}(time.Now())

		next.ServeHTTP(rec, r)
	})
}

// recoveryLogger routes panics caught by gorilla/handlers into our logger
type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	nuts.L.Errorf("[API] Recovered from panic: %s", fmt.Sprint(v...))
}

// Recovery turns panics in next into a 500 response
func Recovery(next http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{}),
		handlers.PrintRecoveryStack(true),
	)(next)
}
