// Package server runs the HTTP transport of the application.
//
// It owns the listener lifecycle: startup, signal handling, graceful
// shutdown bounded by the configured timeout, and the release of resources
// registered as shutdown hooks.
package server
