// Package middleware provides HTTP middleware for the MeowHome API.
//
// # Available Middleware
//
// Core middleware components:
//
//   - RequestID: unique request identifier propagation
//   - Logger: structured request logging
//   - Recovery: panic recovery with a problem-details response
//   - CORS: origin allow-listing for the web client
//   - Compress: gzip for non-streaming responses
//   - RateLimit: token bucket limiting keyed by client address
//
// # Usage
//
// Middlewares compose with Chain, applied left to right:
//
//	handler := middleware.Chain(mux,
//	    middleware.Recovery,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.CORS(cfg.Server.AllowedOrigins),
//	    middleware.Compress,
//	)
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
