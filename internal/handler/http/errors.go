// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body is not a JSON object.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrTooManyRequests is returned by the rate limiter.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrOriginNotAllowed is returned by the CORS middleware for an origin
	// outside the configured list.
	ErrOriginNotAllowed = errors.New("not allowed by CORS")
)

// RoleNotAuthorizedError is returned by the role gate when the principal's
// role differs from the one the route requires.
type RoleNotAuthorizedError struct {
	Role string
}

func (e *RoleNotAuthorizedError) Error() string {
	return fmt.Sprintf("User role %s is not authorized to access this route", e.Role)
}
