package store

import "database/sql"

const schema = `
CREATE TABLE IF NOT EXISTS chunks (
    id         TEXT PRIMARY KEY,
    source     TEXT NOT NULL,
    chunk      TEXT NOT NULL,
    embedding  BLOB NOT NULL,
    chunk_hash TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS chunks_source_idx ON chunks(source);
CREATE TABLE IF NOT EXISTS file_ledger (
    file   TEXT PRIMARY KEY,
    digest TEXT NOT NULL
);
`

// EnsureSchema creates the chunk and ledger tables in the provided database
// if they do not already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
