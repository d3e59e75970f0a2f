// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the declarative request validation used by
// the HTTP layer before a handler runs.
//
// Core concepts:
//   - Chain: the ordered checks bound to one body field, array element
//     wildcard or path parameter, each with its own failure message.
//   - Rule set: a named, ordered list of chains (e.g. "project", "id").
//   - Validator: runs one or more rule sets against an [Input] and returns a
//     [*ValidationError] mapping each offending field to a message.
//
// Every chain runs independently of the others. When several checks fail for
// the same field the message of the check declared last is kept. Validation
// has no side effects beyond trimming string values of the input in place.
package validators

import "context"

// Validator defines a generic validation interface for request input.
type Validator interface {
	// Validate runs the named rule sets, in order, against obj, which must be
	// an [Input] or *[Input].
	Validate(ctx context.Context, obj any, ruleSets ...string) error
}
