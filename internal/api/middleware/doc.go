// Package middleware holds the HTTP middleware of the API: the bearer-token
// auth gate, per-request tracing, JSON panic recovery, Prometheus request
// metrics and the login rate limiter.
package middleware
