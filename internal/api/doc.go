// Package api defines the wire-format types and the transport-neutral service
// behind the HTTP daemon and the CLI.
//
// # Key Types
//
// ParseRequest/ParseResponse: load a recipe from a URL into a session.
//
// QueryRequest/QueryResponse: ask the session a free-text question.
//
// StatusResponse: what a session currently holds and where its cursor is.
//
// HealthResponse, ErrorResponse: liveness and failure payloads.
//
// # Service
//
// Service wires a recipe parser, an optional cache and the session manager.
// Errors it returns carry a services marker for status mapping and, through
// *Error, the exact message a client should see.
//
// # Design Notes
//
// DTOs use snake_case JSON tags to match the payloads browser clients of the
// original Flask server already consume.
package api
