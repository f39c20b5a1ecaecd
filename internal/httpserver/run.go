package httpserver

import "fmt"

// Run maps all handlers and starts serving. Blocks until the listener
// fails or the process is stopped.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
