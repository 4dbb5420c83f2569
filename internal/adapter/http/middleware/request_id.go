package middleware

import (
	"net/http"

	wrap "github.com/dauletm/pickup-share/pkg/logger/wrapper"
	"github.com/dauletm/pickup-share/pkg/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestID takes the request id from the incoming header or generates one,
// injects it into the log context and echoes it back in the response.
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			if id, err := uuid.New(); err == nil {
				requestID = id.String()
			}
		}

		w.Header().Set(requestIDHeader, requestID)

		ctx := wrap.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
