package server

// Server defines the lifecycle contract of the process's serving side.
//
// RunServer blocks until a stop signal arrives or serving fails; Shutdown
// stops serving and releases resources.
type Server interface {
	RunServer()
	Shutdown()
}
