// Package middleware holds the HTTP middleware shared by every route:
// trace ID assignment and structured request logging.
package middleware
