package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPrincipalNotFound  = errors.New("no user found with this id")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrAdminEmailRequired = errors.New("admin email is required")
)
