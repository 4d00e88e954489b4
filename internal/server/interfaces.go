package server

// Server runs the gallery API until the process is asked to stop.
type Server interface {
	// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives and the
	// listener has been shut down.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones up to
	// the shutdown timeout.
	Shutdown()
}
