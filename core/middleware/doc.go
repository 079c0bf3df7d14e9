// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - CORS: Credentialed cross-origin policy restricted to the configured allow-list.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RequestLog: Logs each request with its ray id, status and latency.
//
// These are registered globally by core/server in a fixed order:
// rayid, requestlog, recover, cors.
package middleware
