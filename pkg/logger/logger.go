// Package logger provides a zap-based application logger.
package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Joy-it-code/ecommerce-platform2/pkg/otel"
)

// Log is the global zap logger used across the project.
var Log *zap.Logger

// Init configures the global logger in production mode with the service
// name attached to every entry.
func Init(service string) {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Log = l.With(zap.String("service", service))
}

// statusWriter records the status code written by the wrapped handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Middleware logs one entry per request with method, path, status, duration
// and the active trace ID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		Log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("trace_id", otel.GetTraceID(r.Context())),
		)
	})
}
