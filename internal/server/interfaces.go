package server

import "context"

// Server is the process-level transport runner.
type Server interface {
	// RunServer blocks until ctx is done, a termination signal arrives or a
	// transport fails. Every transport is stopped before it returns.
	RunServer(ctx context.Context) error

	// Shutdown stops every transport.
	Shutdown()
}

// transport is one listener managed by Server.
type transport interface {
	name() string
	serve() error
	Shutdown()
}
