package server

// Server is the lifecycle contract of the inbound transport: a blocking run
// loop plus an idempotent shutdown hook.
type Server interface {
	RunServer()
	Shutdown()
}
