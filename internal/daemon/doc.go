// Package daemon runs the long-lived recipechat HTTP server.
//
// It wires configuration, the api.Service and the session sweeper into a
// single lifecycle with flock-based locking to prevent multiple instances on
// one state directory. Requests are routed with chi; every request gets a
// correlation id that flows into the logs of the handlers it reaches.
//
// Keep request semantics in package api: the daemon only decodes JSON, maps
// errors to status codes and owns startup and shutdown.
package daemon
