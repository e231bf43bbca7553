// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the public
// map API. Cross-cutting concerns such as CORS, rate limiting, request
// tracing, access logging, metrics and response compression are handled in
// this package before requests are delegated to the service layer. Every
// API response is a JSON envelope whose "status" is "success" or "error".
package http
