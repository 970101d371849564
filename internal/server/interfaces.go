package server

// Server defines the lifecycle contract of the discovery server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT is received
	// or the listener fails.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown()
}
