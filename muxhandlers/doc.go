// Package muxhandlers provides HTTP middleware for the mux router used when
// serving API discovery documents.
//
// # CORS Middleware
//
// CORSMiddleware always advertises a fixed CORS policy on the wrapped
// routes, whether or not the request carries an Origin header. Discovery
// documents are fetched by browser-based API explorers hosted elsewhere, so
// the headers are unconditional:
//
//	r.Use(muxhandlers.CORSMiddleware(muxhandlers.DiscoveryCORS))
//
// # Request ID Middleware
//
// RequestIDMiddleware generates or propagates an X-Request-ID header and
// stores it in the request context:
//
//	r.Use(muxhandlers.RequestIDMiddleware(muxhandlers.RequestIDConfig{}))
//
// # Recovery Middleware
//
// RecoveryMiddleware turns handler panics into 500 responses and reports
// them, with the request ID when one is present, through LogFunc:
//
//	r.Use(muxhandlers.RecoveryMiddleware(muxhandlers.RecoveryConfig{
//	    LogFunc: func(r *http.Request, requestID string, err any) {
//	        log.Printf("%s: panic: %v", requestID, err)
//	    },
//	}))
package muxhandlers
