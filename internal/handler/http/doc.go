// Package http implements the HTTP transport layer of the dental-site
// server.
//
// It exposes route wiring, request handlers, and middleware for the site
// API, the booking form and the admin inbox. Request tracing, access
// logging, request metrics, response compression, rate limiting and
// authentication are handled in this package before requests are
// delegated to the service layer.
package http
