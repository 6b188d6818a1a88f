package response

import (
	"net/http"

	pkgctx "github.com/prepview/interview-backend/internal/pkg/context"
)

// RequestIDFromContext extracts the request id the middleware stored, if any.
func RequestIDFromContext(r *http.Request) string {
	return pkgctx.GetRequestID(r.Context())
}
