package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLength = 64

// RequestID propagates the caller's request id or assigns a new one.
// Oversized ids are replaced.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}

func requestIDOf(r *http.Request) string {
	return ctxutil.RequestIDFromCtx(r.Context())
}
