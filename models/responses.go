// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the JSON envelope of every API response.
// Only Success is always present; the other members appear when set.
type Response struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message,omitempty"`
	Data        any               `json:"data,omitempty"`
	Errors      map[string]string `json:"errors,omitempty"`
	Count       *int              `json:"count,omitempty"`
	TotalPages  *int              `json:"totalPages,omitempty"`
	CurrentPage *int              `json:"currentPage,omitempty"`
	Error       string            `json:"error,omitempty"`
	Stack       string            `json:"stack,omitempty"`
}

// OK builds a successful envelope carrying data.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKMessage builds a successful envelope carrying only a message.
func OKMessage(message string) Response {
	return Response{Success: true, Message: message}
}

// OKList builds a successful envelope for a list and sets Count to its length.
func OKList[T any](items []T) Response {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	return Response{Success: true, Data: items, Count: &count}
}

// Fail builds a failed envelope.
func Fail(message string, errs map[string]string) Response {
	return Response{Success: false, Message: message, Errors: errs}
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expiresAt"`
	User      Principal `json:"user"`
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate,omitempty"`
	BuildCommit string `json:"buildCommit,omitempty"`
}
