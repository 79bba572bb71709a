// Package app is the composition root for shellpanel.
//
// Run wires the pieces together and blocks until the context is cancelled:
//
//  1. Load configuration from ~/.config/shellpanel/config.toml
//  2. Load user preferences (theme)
//  3. Create the HTTP client for the session supervisor API
//  4. Create the shared state.Store for poller/UI coordination
//  5. Launch the background poller goroutine
//  6. Start the TUI (blocks)
//
// The poller fetches the session list at a fixed cadence (default 2s),
// backing off exponentially while the supervisor is unreachable, and writes
// results into the store atomically. The UI reads snapshots from the store
// on its own tick, so a slow or dead supervisor never blocks rendering.
//
// Startup errors (bad config, unparseable API address) are fatal and
// returned from Run. Poll failures are recoverable: they are logged,
// counted in the store so the UI can show an offline notice, and polling
// continues with the last good data still on screen.
package app
