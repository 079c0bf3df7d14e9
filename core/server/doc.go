// Package server builds and runs the PantryPal HTTP application.
//
// # Bootstrap
//
// New constructs the Fiber app from an immutable Options value: static metadata (Info),
// the environment label and the CORS allow-list produced by ParseOrigins. It installs,
// in order, ray id tagging, request logging, panic recovery and CORS, then the
// documentation routes (/docs, /redoc).
//
// # Errors
//
// ErrorResponse is the single mapping from handler errors to HTTP responses. Unmatched
// routes become 404 {"error":"not_found",...,"path":...}; anything that is not a client
// error becomes 500 {"error":"internal_server_error",...} with the cause logged, never sent.
//
// # Lifecycle
//
// Start/Serve block while serving. The OnListen hook logs the startup lines before the
// first request is accepted and closes Ready. Stop logs the shutdown line, drains the
// server and releases every resource registered with OnStop in reverse order.
package server
