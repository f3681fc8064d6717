// Package server runs the HTTP server of the dental-site backend together
// with its background workers, and shuts both down gracefully on SIGINT,
// SIGTERM or SIGQUIT.
package server
