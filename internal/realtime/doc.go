// Package realtime keeps the in-memory store converged with the
// database view of each collection.
//
// The syncer re-lists every collection on a fixed interval, fingerprints
// the result, and on change replaces the store's copy wholesale and
// notifies subscribers. Wholesale replacement means edits made by other
// household devices, and corrections to optimistic local writes, land in
// the same code path with no per-record diffing.
package realtime
