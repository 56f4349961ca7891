// Package httputil provides small helpers for writing JSON HTTP responses
// with a consistent envelope across all API handlers.
package httputil
