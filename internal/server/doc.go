// Package server implements the HTTP server and HTTP handlers for
// FileShare. It wires together the HTTP routes and dependencies
// (object store gateway, database pool) and provides lifecycle helpers
// used by tests and the production binary.
package server
