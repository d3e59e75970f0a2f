// Package server runs the portfolio API's transport servers.
//
// It owns the listener lifecycle of the REST API and of the optional gRPC
// health service: binding, serving, health probing and graceful shutdown on
// context cancellation or a termination signal.
package server
