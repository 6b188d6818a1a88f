package middleware

import (
	"net/http"

	"github.com/google/uuid"

	pkgctx "github.com/prepview/interview-backend/internal/pkg/context"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID assigns each request an id (honoring one sent by the caller) and
// echoes it back in the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, reqID)

		ctx := pkgctx.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
