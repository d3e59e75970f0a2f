// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter delivers outbound notifications to services outside the
// portfolio API.
//
// The primary abstraction is [Notifier], which decouples the contact service
// from the transport. [NewWebhookNotifier] posts JSON to a configured webhook
// URL; [NewNopNotifier] is used when no URL is configured.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinels in errors.go
// so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier announces events that the site owner should know about.
type Notifier interface {
	// ContactReceived reports a newly stored contact message.
	ContactReceived(ctx context.Context, contact models.Contact) error
}
