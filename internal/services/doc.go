// Package services defines shared utilities consumed by the recipe parser,
// the session layer, and external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp session IDs, component names, and correlation
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent API status codes.
//
// Use these helpers when wiring new collaborators so operational behaviour
// (error handling, observability, retries) stays uniform across the service.
package services
