// Package server wires and runs the calculator's HTTP server.
//
// It owns the server lifecycle: listening, signal handling and graceful
// shutdown that lets in-flight requests finish before the process exits.
package server
