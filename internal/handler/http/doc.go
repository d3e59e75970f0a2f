// Package http implements the REST transport of the portfolio API.
//
// Routes live under /api/v1. Every response, including failures, is the
// JSON envelope described by [models.Response]. Tracing, access logging,
// compression, CORS, rate limiting, authentication and request validation
// run as middleware before a handler delegates to the service layer, and
// every failure is rendered by the single error normalizer in
// errors_mapper.go.
package http
