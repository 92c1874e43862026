// Package store persists chunk records and the per-file digest ledger in a
// single SQLite database file. The ledger digest for a file always reflects
// the content that produced its currently stored chunk rows; both sides of
// that invariant are updated inside one transaction per file.
package store
