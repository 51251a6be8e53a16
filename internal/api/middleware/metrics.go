package middleware

import (
	"net/http"
	"strings"
	"time"

	"streamhub/pkg/metrics"
)

// MetricsMiddleware records request count and latency per method/endpoint.
// Numeric path segments (channel and video ids) are collapsed into ":id" so
// the endpoint label stays bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		metrics.RecordHttpRequest(
			r.Method,
			endpointLabel(r.URL.Path),
			http.StatusText(rw.statusCode),
			time.Since(startTime),
		)
	})
}

func endpointLabel(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if segment != "" && isNumeric(segment) {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	return rw.ResponseWriter.Write(b)
}
