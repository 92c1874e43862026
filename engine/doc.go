// Package engine provides helpers for opening SQLite databases with the
// modernc.org/sqlite driver. It intentionally keeps a thin surface so other
// packages can share the same driver instance.
package engine
