package adapter

import "errors"

var (
	ErrEmptyWebhookURL     = errors.New("empty webhook url")
	ErrInvalidWebhookURL   = errors.New("invalid webhook url")
	ErrBadRequest          = errors.New("webhook rejected the request")
	ErrUnauthorized        = errors.New("webhook unauthorized")
	ErrNotFound            = errors.New("webhook not found")
	ErrTooManyRequests     = errors.New("webhook rate limited")
	ErrInternalServerError = errors.New("webhook internal error")
)
