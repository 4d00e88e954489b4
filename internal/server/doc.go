// Package server runs the gallery HTTP API.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
