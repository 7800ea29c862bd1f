// Package logger provides structured logging functionality using the Uber zap
// logging library.
package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Log is a global SugaredLogger instance. It defaults to a no-op logger so
// that packages may log before Init is called (e.g. in tests).
var Log = zap.NewNop().Sugar()

// Init initializes the global logger with the given level.
func Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl.Sugar()
	return nil
}

// responseData captures response parameters for request logging.
type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

// Write redefines the default http.ResponseWriter Write method capturing the response size.
func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

// WriteHeader redefines the default http.ResponseWriter WriteHeader method capturing the status code.
func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// RequestHandle serves as a middleware handler logging each request with its outcome.
func RequestHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rd := &responseData{}
		lw := loggingResponseWriter{ResponseWriter: w, responseData: rd}
		start := time.Now()
		next.ServeHTTP(&lw, r)
		Log.Infow("request served",
			"uri", r.RequestURI,
			"method", r.Method,
			"status", rd.status,
			"duration", time.Since(start),
			"size", rd.size,
		)
	})
}
