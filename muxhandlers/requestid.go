package muxhandlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vitalvas/swaggerdoc/mux"
)

// DefaultRequestIDHeader is the header used when RequestIDConfig.HeaderName
// is empty.
const DefaultRequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromContext returns the request ID stored by RequestIDMiddleware,
// or an empty string.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDConfig configures the Request ID middleware behaviour.
type RequestIDConfig struct {
	// HeaderName overrides DefaultRequestIDHeader.
	HeaderName string

	// TimeOrdered selects UUID v7 identifiers instead of random v4 ones.
	TimeOrdered bool

	// TrustIncoming reuses a well-formed UUID from the incoming request
	// header instead of generating a new one. Malformed values are replaced.
	TrustIncoming bool
}

// RequestIDMiddleware returns a middleware that tags every request with a
// UUID. The ID is echoed on the response and stored in the request context.
func RequestIDMiddleware(cfg RequestIDConfig) mux.MiddlewareFunc {
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = DefaultRequestIDHeader
	}

	generate := newUUIDv4
	if cfg.TimeOrdered {
		generate = newUUIDv7
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cfg.TrustIncoming {
				if parsed, err := uuid.Parse(r.Header.Get(headerName)); err == nil {
					id = parsed.String()
				}
			}
			if id == "" {
				id = generate()
			}

			w.Header().Set(headerName, id)
			r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))

			next.ServeHTTP(w, r)
		})
	}
}

func newUUIDv4() string {
	return uuid.NewString()
}

// newUUIDv7 falls back to v4 when the clock source fails.
func newUUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return newUUIDv4()
	}
	return id.String()
}
