package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/hotelsuite/api/responses"
	"github.com/angelmondragon/hotelsuite/api/validators"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

const maxRequestIDLen = 64

// RequestID reuses a caller supplied X-Request-Id when it is printable and
// short, otherwise it mints one. The id is echoed on the response.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			incoming := r.Header.Get(responses.RequestIDHeader)
			reqID := validators.SanitizeString(incoming, maxRequestIDLen)
			if reqID == "" || reqID != incoming {
				reqID = uuid.NewString()
			}
			w.Header().Set(responses.RequestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
