// Package http contains the HTTP handlers for the analytics API. Handlers
// translate requests into service calls and render JSON responses; all
// error responses go through the shared error handler so they share one
// shape.
package http
