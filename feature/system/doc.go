// Package system implements the informational endpoints every deployment exposes.
//
// # HTTP Endpoints
//
//   - GET /              : API name, version, "running" status and docs path.
//   - GET /health        : Always "healthy"; reports the database connection state
//     (not_connected, connected, unreachable) and the environment label.
//   - GET /health/ready  : Checks database and storage; 503 when any is down.
package system
