package middleware

import (
	"log"
	"net/http"
	"time"

	"guildboard/core"
)

// RequestLogMiddleware tags each request with a ULID request id and logs
// its method, path and duration.
type RequestLogMiddleware struct{}

func NewRequestLogMiddleware() *RequestLogMiddleware {
	return &RequestLogMiddleware{}
}

func (m *RequestLogMiddleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := core.NewID("req")
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("📋 [%s] %s %s completed in %s", requestID, r.Method, r.URL.RequestURI(), time.Since(start))
	})
}
