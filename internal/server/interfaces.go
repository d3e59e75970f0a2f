package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then shuts
	// down gracefully.
	RunServer() error

	// Run serves until ctx is done or a listener fails, then shuts down
	// gracefully. It returns the first serving error combined with any
	// shutdown errors.
	Run(ctx context.Context) error
}

// transport is a single listener managed by the server.
type transport interface {
	name() string
	listen() error
	addr() string
	// close releases a listener that was bound but never served.
	close() error
	serve() error
	shutdown(ctx context.Context) error
}
