// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned when the operator aborts a prompt.
	ErrUserQuit = errors.New("provisioning aborted by the operator")

	// ErrNotInteractive is returned by prompts that need a terminal.
	ErrNotInteractive = errors.New("stdin is not a terminal")
)

const (
	minPasswordLength = 8

	messagePasswordTooShort = "Password must be at least 8 characters"
	messagePasswordMismatch = "Passwords do not match"
)
