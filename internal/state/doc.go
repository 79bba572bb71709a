// Package state provides thread-safe state management for the panel.
//
// # Overview
//
// The Store is the coordination point between the background poller and
// the UI: a single writer publishes full session snapshots, multiple
// readers take defensive copies. Update with a non-nil error keeps the
// previous data and records the failure, so the UI always renders the
// most recent successful poll while still being able to flag the
// supervisor as offline after consecutive failures.
//
// # Concurrency Model
//
// A sync.RWMutex guards the snapshot. Update acquires the write lock;
// Snapshot acquires the read lock and returns copies, so neither side ever
// holds the lock during network I/O or rendering. Session log slices are
// shared between copies; they are append-only on the producer side and
// treated as immutable by every reader.
//
// # Tabs
//
// Snapshot.Tabs partitions sessions into the fixed RUNNING, COMPLETED and
// FAILED tabs. The enumeration is always three tabs in that order, empty
// or not, and within a tab sessions keep the order the supervisor sent.
package state
