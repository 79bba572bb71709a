// Package session provides types and an HTTP client for the shell
// supervisor API.
//
// # Overview
//
// The supervisor owns the lifecycle of managed shell sessions; the panel
// only observes them. This package defines the wire representation of a
// session (including its captured log lines), the read-only Fetcher
// interface the poller depends on, and the Controller interface through
// which process-control commands are forwarded.
//
// # Client Usage
//
//	client, err := session.NewClient("127.0.0.1:7497")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//	sessions, err := client.FetchSessions(ctx)
//
// # API Endpoints
//
//   - GET  /api/sessions: full session list with logs
//   - POST /api/sessions/{id}/kill
//   - POST /api/sessions/{id}/resume
//   - POST /api/sessions/{id}/promote
//   - POST /api/sessions/{id}/diagnostics
//
// Control endpoints are fire-and-forget from the panel's point of view:
// the response body is ignored and any state change is observed through a
// later FetchSessions call.
//
// # Request Handling
//
// All requests use context for cancellation, carry Accept and User-Agent
// headers, and share a 5-second client timeout. Errors are wrapped with
// what failed; HTTP status >= 400 is reported as an error.
package session
