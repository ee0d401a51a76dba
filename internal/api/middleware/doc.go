// Package middleware contains HTTP middleware specific to this service.
// Generic middleware (request IDs, panic recovery, CORS) comes from chi.
package middleware
