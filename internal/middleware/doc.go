// Package middleware provides HTTP middleware for the video player API.
//
// It includes:
//   - Request logging in W3C Extended Log Format
//   - Prometheus request metrics labelled by route template
//   - Per-client rate limiting
package middleware
