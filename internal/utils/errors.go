// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "errors"

var (
	// ErrEmptyBody is returned by [ReadJSON] when the request carries no body.
	ErrEmptyBody = errors.New("empty request body")

	// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] when the
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJWTParams is returned by [GenerateJWTToken] when a required
	// argument is empty or zero.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT token")

	// ErrEmptySubject is returned when a verified token has no "sub" claim.
	ErrEmptySubject = errors.New("empty subject in token")
)
