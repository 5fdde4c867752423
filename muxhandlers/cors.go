package muxhandlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vitalvas/swaggerdoc/mux"
)

// CORSConfig configures the CORS middleware behaviour.
//
// Spec references:
//   - CORS protocol: https://fetch.spec.whatwg.org/#http-cors-protocol
//   - HTTP Vary:     https://www.rfc-editor.org/rfc/rfc9110#field.vary
type CORSConfig struct {
	// AllowOrigin is sent as Access-Control-Allow-Origin. Defaults to "*".
	AllowOrigin string

	// AllowedMethods is sent as Access-Control-Allow-Methods, joined with ", ".
	// Omitted when empty.
	AllowedMethods []string

	// AllowedHeaders is sent as Access-Control-Allow-Headers, joined with ", ".
	// Omitted when empty.
	AllowedHeaders []string

	// ExposeHeaders lists the headers the browser may expose to client code.
	ExposeHeaders []string

	// MaxAge is the duration in seconds a preflight result may be cached.
	// Zero omits the header.
	MaxAge int
}

// DiscoveryCORS is the policy sent with every discovery document.
var DiscoveryCORS = CORSConfig{
	AllowOrigin: "*",
	AllowedMethods: []string{
		http.MethodGet, http.MethodPatch, http.MethodPost,
		http.MethodDelete, http.MethodPut,
	},
	AllowedHeaders: []string{"Content-Type"},
}

// CORSMiddleware returns a middleware that sets the configured CORS headers
// on every response it wraps.
func CORSMiddleware(cfg CORSConfig) mux.MiddlewareFunc {
	origin := cfg.AllowOrigin
	if origin == "" {
		origin = "*"
	}
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	expose := strings.Join(cfg.ExposeHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			if origin != "*" {
				h.Add("Vary", "Origin")
			}
			if methods != "" {
				h.Set("Access-Control-Allow-Methods", methods)
			}
			if headers != "" {
				h.Set("Access-Control-Allow-Headers", headers)
			}
			if expose != "" {
				h.Set("Access-Control-Expose-Headers", expose)
			}
			if cfg.MaxAge > 0 {
				h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			}

			next.ServeHTTP(w, req)
		})
	}
}
